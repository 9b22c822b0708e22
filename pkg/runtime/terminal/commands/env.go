package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/feed-atlas/pkg/models/domain"
	"github.com/de-tools/feed-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/feed-atlas/pkg/services/calculator"
	"github.com/spf13/cobra"
)

const commandTimeout = 30 * time.Second

// Env holds what every command needs. It is populated by the root command
// before any subcommand runs.
type Env struct {
	Calc    calculator.Calculator
	Profile domain.Profile
	Formats export.Registry
}

func (e *Env) reporter(cmd *cobra.Command, format string) (export.Reporter, error) {
	rep, err := e.Formats.Create(format, cmd.OutOrStdout())
	if err != nil {
		return nil, fmt.Errorf("%w (supported: %v)", err, e.Formats.ListFormats())
	}
	return rep, nil
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), commandTimeout)
}
