package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/de-tools/feed-atlas/pkg/models/domain"
	"github.com/de-tools/feed-atlas/pkg/runtime/chart"
	"github.com/de-tools/feed-atlas/pkg/services/calculator"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	defaultChartPath = "comparison.html"
	stdoutPath       = "-"
)

var errNothingToCompare = errors.New("nothing to compare: pass --current or --herd and --days")

type ChartCmd struct {
	env      *Env
	current  string
	herdSize string
	days     string
	feedType string
	out      string
}

func NewChartCmd(env *Env) *cobra.Command {
	cc := &ChartCmd{env: env}
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the comparison scatter chart as an HTML page",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.current, "current", "", "Current requirement, ц")
	cmd.Flags().StringVar(&cc.herdSize, "herd", "", "Herd size, heads (computes the current requirement)")
	cmd.Flags().StringVar(&cc.days, "days", "", "Number of keeping days")
	cmd.Flags().StringVar(&cc.feedType, "feed", "", "Feed type")
	cmd.Flags().StringVar(&cc.out, "out", defaultChartPath, `Output file, "-" for stdout`)

	cmd.MarkFlagsMutuallyExclusive("current", "herd")
	cmd.MarkFlagsMutuallyExclusive("current", "days")

	return cmd
}

func (cc *ChartCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	var series domain.Series
	feedType := cc.feedType

	switch {
	case cc.current != "":
		current, err := calculator.ParseNumber("current", cc.current)
		if err != nil {
			return err
		}
		series = cc.env.Calc.CompareSeries(ctx, current)
	case cc.herdSize != "" || cc.days != "":
		if feedType == "" {
			feedType = defaultFeedType
		}
		input, err := calculator.ParseInput(cc.herdSize, cc.days, feedType)
		if err != nil {
			return err
		}
		result, err := cc.env.Calc.Compute(ctx, input)
		if err != nil {
			return err
		}
		series = cc.env.Calc.CompareSeries(ctx, result.Requirement)
	default:
		return errNothingToCompare
	}

	return writeChart(cmd, cc.out, series, feedType)
}

func writeChart(cmd *cobra.Command, path string, series domain.Series, feedType string) error {
	scatter := chart.NewScatter()

	if path == stdoutPath {
		return scatter.Render(cmd.OutOrStdout(), series, feedType)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}

	if err := scatter.Render(f, series, feedType); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write chart file: %w", err)
	}

	zerolog.Ctx(cmd.Context()).Debug().Str("path", path).Msg("chart written")
	fmt.Fprintf(cmd.OutOrStdout(), "График сравнения сохранен: %s\n", path)
	return nil
}
