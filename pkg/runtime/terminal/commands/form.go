package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/de-tools/feed-atlas/pkg/adapters"
	"github.com/de-tools/feed-atlas/pkg/models/domain"
	"github.com/de-tools/feed-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/feed-atlas/pkg/services/calculator"
	"github.com/spf13/cobra"
)

// FormCmd walks through the calculation interactively: herd size, days and
// feed type are prompted for, the result and its breakdown are printed and the
// comparison chart can be saved.
type FormCmd struct {
	env *Env
}

func NewFormCmd(env *Env) *cobra.Command {
	fc := &FormCmd{env: env}
	return &cobra.Command{
		Use:   "form",
		Short: "Interactive requirement calculation",
		RunE:  fc.run,
	}
}

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *prompter) ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (fc *FormCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	p := &prompter{in: bufio.NewScanner(cmd.InOrStdin()), out: out}

	norms := fc.env.Calc.Norms(ctx)
	fmt.Fprintln(out, "Расчет потребности в кормах")
	if err := export.NewTableReporter(out).Handle(adapters.MapNormsToReport(norms)); err != nil {
		return err
	}

	for {
		err := fc.calculateOnce(cmd, p, norms)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}

		again, err := p.ask("Новый расчет? [y/N]: ")
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if err != nil || !strings.EqualFold(again, "y") {
			return nil
		}
	}
}

func (fc *FormCmd) calculateOnce(cmd *cobra.Command, p *prompter, norms []domain.FeedNorm) error {
	ctx := cmd.Context()

	var result domain.CalculationResult
	for {
		herd, err := p.ask("Поголовье коров, гол.: ")
		if err != nil {
			return err
		}
		days, err := p.ask("Количество дней содержания: ")
		if err != nil {
			return err
		}
		choice, err := p.ask(feedPrompt(norms))
		if err != nil {
			return err
		}

		input, err := calculator.ParseInput(herd, days, resolveFeedType(choice, norms))
		if err == nil {
			result, err = fc.env.Calc.Compute(ctx, input)
		}
		if calculator.IsInvalidInput(err) {
			fmt.Fprintf(p.out, "Ошибка ввода: %v\n", err)
			continue
		}
		if err != nil {
			return err
		}
		break
	}

	fmt.Fprintf(p.out, "\nПотребность в корме '%s': %s %s\n",
		result.Input.FeedType, result.Requirement.StringFixed(fc.env.Profile.Precision), domain.Unit)
	fmt.Fprintf(p.out, "Расчет: %s\n\n", fc.env.Calc.Breakdown(result))

	path, err := p.ask("Файл графика сравнения (Enter - пропустить): ")
	if err != nil || path == "" {
		return err
	}
	series := fc.env.Calc.CompareSeries(ctx, result.Requirement)
	return writeChart(cmd, path, series, result.Input.FeedType)
}

func feedPrompt(norms []domain.FeedNorm) string {
	var b strings.Builder
	b.WriteString("Вид корма:")
	for i, n := range norms {
		fmt.Fprintf(&b, " %d) %s", i+1, n.FeedType)
	}
	fmt.Fprintf(&b, " [1]: ")
	return b.String()
}

// resolveFeedType accepts a list number or a feed type name; empty picks the
// first entry.
func resolveFeedType(choice string, norms []domain.FeedNorm) string {
	if choice == "" && len(norms) > 0 {
		return norms[0].FeedType
	}
	if i, err := strconv.Atoi(choice); err == nil && i >= 1 && i <= len(norms) {
		return norms[i-1].FeedType
	}
	return choice
}
