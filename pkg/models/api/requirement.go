package api

import "encoding/json"

type FeedNorm struct {
	FeedType      string      `json:"feedType"`
	PerHeadPerDay json.Number `json:"perHeadPerDay"`
	Unit          string      `json:"unit"`
}

type HistoricalRecord struct {
	Period string      `json:"period"`
	Total  json.Number `json:"total"`
	Unit   string      `json:"unit"`
}

// ComputeRequest accepts numbers either as JSON numbers or numeric strings.
type ComputeRequest struct {
	HerdSize NumberOrString `json:"herdSize"`
	Days     NumberOrString `json:"days"`
	FeedType string         `json:"feedType"`
}

type ComputeResponse struct {
	Requirement  json.Number `json:"requirement"`
	FeedType     string      `json:"feedType"`
	HerdSize     json.Number `json:"herdSize"`
	Days         json.Number `json:"days"`
	Norm         json.Number `json:"norm"`
	Unit         string      `json:"unit"`
	NormFallback bool        `json:"normFallback"`
	Breakdown    string      `json:"breakdown"`
}

type CompareRequest struct {
	CurrentRequirement NumberOrString `json:"currentRequirement"`
}

type SeriesPoint struct {
	Label string      `json:"label"`
	Value json.Number `json:"value"`
}

type CompareResponse struct {
	Series []SeriesPoint `json:"series"`
}

type ErrorResponse struct {
	ErrorKind string `json:"errorKind"`
	Message   string `json:"message"`
}
