package commands

import (
	"github.com/de-tools/feed-atlas/pkg/adapters"
	"github.com/de-tools/feed-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/feed-atlas/pkg/services/calculator"
	"github.com/spf13/cobra"
)

type CompareCmd struct {
	env      *Env
	current  string
	feedType string
	format   string
}

func NewCompareCmd(env *Env) *cobra.Command {
	cc := &CompareCmd{env: env}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a requirement with the totals of previous years",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.current, "current", "", "Current requirement, ц")
	cmd.Flags().StringVar(&cc.feedType, "feed", "", "Feed type shown in the title")
	cmd.Flags().StringVar(&cc.format, "format", export.FormatText, "Output format")

	_ = cmd.MarkFlagRequired("current")

	return cmd
}

func (cc *CompareCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	rep, err := cc.env.reporter(cmd, cc.format)
	if err != nil {
		return err
	}

	current, err := calculator.ParseNumber("current", cc.current)
	if err != nil {
		return err
	}

	series := cc.env.Calc.CompareSeries(ctx, current)
	return rep.Handle(adapters.MapSeriesToReport(series, cc.feedType, cc.env.Profile.Precision))
}
