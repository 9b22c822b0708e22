package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/feed-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/feed-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/feed-atlas/pkg/services/calculator"
	"github.com/de-tools/feed-atlas/pkg/services/config"
	"github.com/de-tools/feed-atlas/pkg/store/norms"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CLI represents the command-line interface
type CLI struct {
	opts       Options
	viper      *viper.Viper
	configPath string
	env        *commands.Env
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Formats   export.Registry
	Store     norms.Store
	Output    io.Writer
	ErrOutput io.Writer
	Input     io.Reader
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Formats == nil {
		opts.Formats = export.NewDefaultRegistry()
	}
	if opts.Store == nil {
		opts.Store = norms.NewStore()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}

	v := config.NewViper()
	v.SetDefault("log_level", "warn")

	cli := &CLI{
		opts:  opts,
		viper: v,
		env:   &commands.Env{Formats: opts.Formats},
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.ExecuteContext(context.Background())
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "feed-atlas",
		Short:             "Livestock feed requirement calculator",
		SilenceUsage:      true,
		PersistentPreRunE: cli.setup,
	}
	cmd.SetOut(cli.opts.Output)
	cmd.SetErr(cli.opts.ErrOutput)
	cmd.SetIn(cli.opts.Input)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&cli.configPath, "config", "c", "", "Path to a settings file (yaml, toml or json)")
	flags.String("profile", config.DefaultProfile, "Calculation profile")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	_ = cli.viper.BindPFlag("profile", flags.Lookup("profile"))
	_ = cli.viper.BindPFlag("log_level", flags.Lookup("log-level"))

	cmd.AddCommand(commands.NewComputeCmd(cli.env))
	cmd.AddCommand(commands.NewCompareCmd(cli.env))
	cmd.AddCommand(commands.NewNormsCmd(cli.env))
	cmd.AddCommand(commands.NewHistoryCmd(cli.env))
	cmd.AddCommand(commands.NewChartCmd(cli.env))
	cmd.AddCommand(commands.NewFormCmd(cli.env))

	return cmd
}

// setup loads settings and the selected profile, then wires the calculator and
// the logger into the command environment.
func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(cli.viper, cli.configPath)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", settings.LogLevel, err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cli.opts.ErrOutput, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
	ctx := logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	registry, err := config.OpenRegistry(settings)
	if err != nil {
		return err
	}
	profile, err := registry.GetProfile(ctx, settings.Profile)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	logger.Debug().Stringer("profile", profile).Msg("profile loaded")

	cli.env.Profile = profile
	cli.env.Calc = calculator.NewCalculator(cli.opts.Store, calculator.OptionsFromProfile(profile))
	return nil
}
