package commands

import (
	"github.com/de-tools/feed-atlas/pkg/adapters"
	"github.com/de-tools/feed-atlas/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

func NewNormsCmd(env *Env) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "norms",
		Short: "List daily feed norms per head",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := env.reporter(cmd, format)
			if err != nil {
				return err
			}
			return rep.Handle(adapters.MapNormsToReport(env.Calc.Norms(cmd.Context())))
		},
	}
	cmd.Flags().StringVar(&format, "format", export.FormatText, "Output format")
	return cmd
}

func NewHistoryCmd(env *Env) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded requirements of previous years",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := env.reporter(cmd, format)
			if err != nil {
				return err
			}
			return rep.Handle(adapters.MapHistoryToReport(env.Calc.History(cmd.Context())))
		},
	}
	cmd.Flags().StringVar(&format, "format", export.FormatText, "Output format")
	return cmd
}
