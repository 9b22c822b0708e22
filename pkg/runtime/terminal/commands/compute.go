package commands

import (
	"github.com/de-tools/feed-atlas/pkg/adapters"
	"github.com/de-tools/feed-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/feed-atlas/pkg/services/calculator"
	"github.com/spf13/cobra"
)

const defaultFeedType = "Концентраты"

type ComputeCmd struct {
	env      *Env
	herdSize string
	days     string
	feedType string
	format   string
}

func NewComputeCmd(env *Env) *cobra.Command {
	cc := &ComputeCmd{env: env}
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the feed requirement for a herd",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.herdSize, "herd", "", "Herd size, heads")
	cmd.Flags().StringVar(&cc.days, "days", "", "Number of keeping days")
	cmd.Flags().StringVar(&cc.feedType, "feed", defaultFeedType, "Feed type")
	cmd.Flags().StringVar(&cc.format, "format", export.FormatText, "Output format")

	_ = cmd.MarkFlagRequired("herd")
	_ = cmd.MarkFlagRequired("days")

	return cmd
}

func (cc *ComputeCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	rep, err := cc.env.reporter(cmd, cc.format)
	if err != nil {
		return err
	}

	input, err := calculator.ParseInput(cc.herdSize, cc.days, cc.feedType)
	if err != nil {
		return err
	}

	result, err := cc.env.Calc.Compute(ctx, input)
	if err != nil {
		return err
	}

	return rep.Handle(adapters.MapCalculationToReport(result, cc.env.Calc.Breakdown(result), cc.env.Profile.Precision))
}
