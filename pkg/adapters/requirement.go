package adapters

import (
	"encoding/json"

	"github.com/de-tools/feed-atlas/pkg/models/api"
	"github.com/de-tools/feed-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func MapFeedNormDomainToApi(n domain.FeedNorm) api.FeedNorm {
	return api.FeedNorm{
		FeedType:      n.FeedType,
		PerHeadPerDay: number(n.PerHeadPerDay),
		Unit:          domain.Unit,
	}
}

func MapFeedNormsDomainToApi(norms []domain.FeedNorm) []api.FeedNorm {
	out := make([]api.FeedNorm, 0, len(norms))
	for _, n := range norms {
		out = append(out, MapFeedNormDomainToApi(n))
	}
	return out
}

func MapHistoryDomainToApi(history []domain.HistoricalRecord) []api.HistoricalRecord {
	out := make([]api.HistoricalRecord, 0, len(history))
	for _, h := range history {
		out = append(out, api.HistoricalRecord{
			Period: h.Period,
			Total:  number(h.Total),
			Unit:   domain.Unit,
		})
	}
	return out
}

func MapCalculationResultDomainToApi(result domain.CalculationResult, breakdown string) api.ComputeResponse {
	return api.ComputeResponse{
		Requirement:  number(result.Requirement),
		FeedType:     result.Input.FeedType,
		HerdSize:     number(result.Input.HerdSize),
		Days:         number(result.Input.Days),
		Norm:         number(result.Norm),
		Unit:         domain.Unit,
		NormFallback: result.NormFallback,
		Breakdown:    breakdown,
	}
}

func MapSeriesDomainToApi(series domain.Series) api.CompareResponse {
	resp := api.CompareResponse{Series: make([]api.SeriesPoint, 0, len(series))}
	for _, p := range series {
		resp.Series = append(resp.Series, api.SeriesPoint{Label: p.Label, Value: number(p.Value)})
	}
	return resp
}
