package calculator

import (
	"context"

	"github.com/de-tools/feed-atlas/pkg/models/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK       = "ok"
	outcomeFallback = "fallback"
	outcomeInvalid  = "invalid"
)

type instrumented struct {
	Calculator
	calculations *prometheus.CounterVec
}

// NewInstrumented counts Compute outcomes per feed type on reg.
func NewInstrumented(next Calculator, reg prometheus.Registerer) (Calculator, error) {
	calculations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "feed_atlas",
		Name:      "calculations_total",
		Help:      "Feed requirement calculations by feed type and outcome.",
	}, []string{"feed_type", "outcome"})

	if err := reg.Register(calculations); err != nil {
		return nil, err
	}

	return &instrumented{Calculator: next, calculations: calculations}, nil
}

func (i *instrumented) Compute(ctx context.Context, input domain.CalculationInput) (domain.CalculationResult, error) {
	result, err := i.Calculator.Compute(ctx, input)

	outcome := outcomeOK
	switch {
	case err != nil:
		outcome = outcomeInvalid
	case result.NormFallback:
		outcome = outcomeFallback
	}
	i.calculations.WithLabelValues(i.feedTypeLabel(ctx, input.FeedType), outcome).Inc()

	return result, err
}

// feedTypeLabel keeps label cardinality bounded to the known feed types.
func (i *instrumented) feedTypeLabel(ctx context.Context, feedType string) string {
	for _, n := range i.Norms(ctx) {
		if n.FeedType == feedType {
			return feedType
		}
	}
	return "unknown"
}

