package calculator

import (
	"context"
	"fmt"
	"strings"

	"github.com/de-tools/feed-atlas/pkg/models/domain"
	"github.com/de-tools/feed-atlas/pkg/store/norms"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	FieldHerdSize = "herdSize"
	FieldDays     = "days"
	FieldFeedType = "feedType"
)

// Calculator computes feed requirements and the comparison against past periods.
type Calculator interface {
	// Compute returns herdSize × days × norm for the requested feed type.
	Compute(ctx context.Context, input domain.CalculationInput) (domain.CalculationResult, error)
	// CompareSeries places the current requirement after the recorded totals.
	CompareSeries(ctx context.Context, current decimal.Decimal) domain.Series
	Norms(ctx context.Context) []domain.FeedNorm
	History(ctx context.Context) []domain.HistoricalRecord
	// Breakdown renders the calculation as a single human-readable line.
	Breakdown(result domain.CalculationResult) string
}

type Options struct {
	UnknownFeed domain.UnknownFeedPolicy
	Precision   int32
}

// OptionsFromProfile maps a profile onto calculator options.
func OptionsFromProfile(p domain.Profile) Options {
	return Options{UnknownFeed: p.UnknownFeed, Precision: p.Precision}
}

type calculator struct {
	store norms.Store
	opts  Options
}

func NewCalculator(store norms.Store, opts Options) Calculator {
	if !opts.UnknownFeed.Valid() {
		opts.UnknownFeed = domain.UnknownFeedReject
	}
	if opts.Precision < 0 || opts.Precision > domain.MaxPrecision {
		opts.Precision = domain.DefaultPrecision
	}
	return &calculator{store: store, opts: opts}
}

func (c *calculator) Compute(ctx context.Context, input domain.CalculationInput) (domain.CalculationResult, error) {
	logger := zerolog.Ctx(ctx)

	// Range goes first: formatting an out-of-range value for the message below
	// would expand its exponent.
	if err := checkRange(FieldHerdSize, "", input.HerdSize); err != nil {
		return domain.CalculationResult{}, err
	}
	if err := checkRange(FieldDays, "", input.Days); err != nil {
		return domain.CalculationResult{}, err
	}

	if !input.HerdSize.IsPositive() {
		return domain.CalculationResult{}, &ValidationError{
			Field:  FieldHerdSize,
			Value:  input.HerdSize.String(),
			Reason: "must be a positive number",
		}
	}
	if !input.Days.IsPositive() {
		return domain.CalculationResult{}, &ValidationError{
			Field:  FieldDays,
			Value:  input.Days.String(),
			Reason: "must be a positive number",
		}
	}

	result := domain.CalculationResult{Input: input}

	norm, ok := c.store.GetNorm(ctx, input.FeedType)
	switch {
	case ok:
		result.Norm = norm.PerHeadPerDay
	case c.opts.UnknownFeed == domain.UnknownFeedZero:
		logger.Warn().
			Str("feed_type", input.FeedType).
			Msg("no norm for feed type, using zero")
		result.Norm = decimal.Zero
		result.NormFallback = true
	default:
		return domain.CalculationResult{}, &ValidationError{
			Field:  FieldFeedType,
			Value:  input.FeedType,
			Reason: fmt.Sprintf("is unknown, expected one of: %s", strings.Join(c.feedTypes(ctx), ", ")),
		}
	}

	result.Requirement = input.HerdSize.Mul(input.Days).Mul(result.Norm)

	logger.Debug().
		Str("feed_type", input.FeedType).
		Stringer("herd_size", input.HerdSize).
		Stringer("days", input.Days).
		Stringer("requirement", result.Requirement).
		Msg("requirement computed")

	return result, nil
}

func (c *calculator) CompareSeries(ctx context.Context, current decimal.Decimal) domain.Series {
	history := c.store.ListHistory(ctx)

	series := make(domain.Series, 0, len(history)+1)
	for _, h := range history {
		series = append(series, domain.SeriesPoint{Label: h.Period, Value: h.Total})
	}
	return append(series, domain.SeriesPoint{Label: domain.CurrentPeriodLabel, Value: current})
}

func (c *calculator) Norms(ctx context.Context) []domain.FeedNorm {
	return c.store.ListNorms(ctx)
}

func (c *calculator) History(ctx context.Context) []domain.HistoricalRecord {
	return c.store.ListHistory(ctx)
}

func (c *calculator) Breakdown(result domain.CalculationResult) string {
	return fmt.Sprintf("%s гол. × %s дн. × %s %s/гол. = %s %s",
		result.Input.HerdSize.String(),
		result.Input.Days.String(),
		result.Norm.String(),
		domain.Unit,
		result.Requirement.StringFixed(c.opts.Precision),
		domain.Unit)
}

func (c *calculator) feedTypes(ctx context.Context) []string {
	list := c.store.ListNorms(ctx)
	types := make([]string, 0, len(list))
	for _, n := range list {
		types = append(types, n.FeedType)
	}
	return types
}

// DefaultOptions rejects unknown feed types and shows two decimals.
func DefaultOptions() Options {
	return Options{UnknownFeed: domain.UnknownFeedReject, Precision: domain.DefaultPrecision}
}
