package domain

import "github.com/shopspring/decimal"

// Unit is the measurement unit of every feed quantity (centner, 100 kg).
const Unit = "ц"

// CurrentPeriodLabel labels the freshly computed value in a comparison series.
const CurrentPeriodLabel = "Текущий расчет"

// FeedNorm is the daily requirement of one animal for a given feed type.
type FeedNorm struct {
	FeedType      string
	PerHeadPerDay decimal.Decimal
}

// HistoricalRecord is a previously recorded total requirement for a past period.
type HistoricalRecord struct {
	Period string
	Total  decimal.Decimal
}

type CalculationInput struct {
	HerdSize decimal.Decimal
	Days     decimal.Decimal
	FeedType string
}

type CalculationResult struct {
	Input       CalculationInput
	Norm        decimal.Decimal
	Requirement decimal.Decimal
	// NormFallback is set when the feed type was unknown and a zero norm was used.
	NormFallback bool
}

type SeriesPoint struct {
	Label string
	Value decimal.Decimal
}

// Series is an ordered list of labelled values shown on the comparison chart.
type Series []SeriesPoint

func (s Series) Labels() []string {
	labels := make([]string, 0, len(s))
	for _, p := range s {
		labels = append(labels, p.Label)
	}
	return labels
}

// Max returns the largest value in the series, or zero for an empty series.
func (s Series) Max() decimal.Decimal {
	max := decimal.Zero
	for i, p := range s {
		if i == 0 || p.Value.GreaterThan(max) {
			max = p.Value
		}
	}
	return max
}
