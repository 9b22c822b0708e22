package main

import (
	"fmt"
	"os"

	"github.com/de-tools/feed-atlas/pkg/server"
	"github.com/de-tools/feed-atlas/pkg/services/calculator"
	"github.com/de-tools/feed-atlas/pkg/services/config"
	"github.com/de-tools/feed-atlas/pkg/store/norms"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Feed Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a settings file (yaml, toml or json)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	settings, err := config.LoadSettings(config.NewViper(), cfgPath)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", settings.LogLevel, err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	registry, err := config.OpenRegistry(settings)
	if err != nil {
		return fmt.Errorf("failed to create profile registry: %w", err)
	}

	profiles, _ := registry.GetProfiles(ctx)
	logger.Info().Msgf("Found the following profiles:")
	for _, name := range profiles {
		logger.Info().Msgf("Name: `%s`", name)
	}

	profile, err := registry.GetProfile(ctx, settings.Profile)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	logger.Info().Str("profile", profile.Name).Msg("profile selected")

	metrics := prometheus.NewRegistry()
	metrics.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	calc, err := calculator.NewInstrumented(
		calculator.NewCalculator(norms.NewStore(), calculator.OptionsFromProfile(profile)),
		metrics,
	)
	if err != nil {
		return fmt.Errorf("failed to register calculator metrics: %w", err)
	}

	api := server.NewWebAPI(server.Config{
		Addr:            settings.Server.Addr(),
		ShutdownTimeout: settings.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Calculator: calc,
			Logger:     logger,
			Metrics:    metrics,
		},
	})

	return api.Start()
}
