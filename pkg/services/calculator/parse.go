package calculator

import (
	"strings"

	"github.com/de-tools/feed-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// Numeric fields are limited to magnitudes up to MaxValue with at most MaxScale
// fractional digits. Wider values are rejected before any arithmetic.
const (
	MaxScale    = 18
	maxExponent = 15
)

var MaxValue = decimal.New(1, maxExponent)

// ParseNumber parses a textual numeric field. Surrounding whitespace is ignored,
// plain and exponent notation are accepted.
func ParseNumber(field, raw string) (decimal.Decimal, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return decimal.Zero, &ValidationError{Field: field, Reason: "is required"}
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: field, Value: value, Reason: "is not a number"}
	}
	if err := checkRange(field, value, d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// checkRange looks at the exponent first so that the magnitude comparison never
// rescales an unbounded coefficient.
func checkRange(field, raw string, d decimal.Decimal) error {
	exp := d.Exponent()
	if exp < -MaxScale || exp > maxExponent || d.Abs().GreaterThan(MaxValue) {
		return &ValidationError{Field: field, Value: raw, Reason: "is out of range"}
	}
	return nil
}

// ParseInput converts form values into a calculation input. Positivity is checked
// by Compute, so that parsed and programmatic inputs share one validation path.
func ParseInput(herdSize, days, feedType string) (domain.CalculationInput, error) {
	herd, err := ParseNumber(FieldHerdSize, herdSize)
	if err != nil {
		return domain.CalculationInput{}, err
	}

	d, err := ParseNumber(FieldDays, days)
	if err != nil {
		return domain.CalculationInput{}, err
	}

	return domain.CalculationInput{
		HerdSize: herd,
		Days:     d,
		FeedType: strings.TrimSpace(feedType),
	}, nil
}
