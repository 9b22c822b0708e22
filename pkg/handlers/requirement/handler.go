package requirement

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/de-tools/feed-atlas/pkg/adapters"
	"github.com/de-tools/feed-atlas/pkg/models/api"
	"github.com/de-tools/feed-atlas/pkg/runtime/chart"
	"github.com/de-tools/feed-atlas/pkg/services/calculator"
	"github.com/rs/zerolog"
)

const (
	fieldCurrentRequirement = "currentRequirement"

	// maxBodyBytes bounds JSON request bodies.
	maxBodyBytes = 64 << 10
)

type Handler struct {
	calc  calculator.Calculator
	chart *chart.Scatter
}

func NewHandler(calc calculator.Calculator) *Handler {
	return &Handler{
		calc:  calc,
		chart: chart.NewScatter(),
	}
}

func (h *Handler) ListNorms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(w, r, http.StatusOK, adapters.MapFeedNormsDomainToApi(h.calc.Norms(ctx)))
}

func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(w, r, http.StatusOK, adapters.MapHistoryDomainToApi(h.calc.History(ctx)))
}

func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.ComputeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeInvalidInput(w, r, fmt.Sprintf("malformed request body: %v", err))
		return
	}

	input, err := calculator.ParseInput(req.HerdSize.String(), req.Days.String(), req.FeedType)
	if err != nil {
		writeInvalidInput(w, r, err.Error())
		return
	}

	result, err := h.calc.Compute(ctx, input)
	if err != nil {
		if calculator.IsInvalidInput(err) {
			writeInvalidInput(w, r, err.Error())
			return
		}
		logger.Error().
			Err(err).
			Str("feed_type", input.FeedType).
			Msg("failed to compute requirement")
		http.Error(w, "failed to compute requirement", http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapCalculationResultDomainToApi(result, h.calc.Breakdown(result)))
}

func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CompareRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeInvalidInput(w, r, fmt.Sprintf("malformed request body: %v", err))
		return
	}

	current, err := calculator.ParseNumber(fieldCurrentRequirement, req.CurrentRequirement.String())
	if err != nil {
		writeInvalidInput(w, r, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapSeriesDomainToApi(h.calc.CompareSeries(ctx, current)))
}

// Chart serves the comparison scatter chart for ?current=<n>&feedType=<t>.
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	raw := r.URL.Query().Get("current")
	if raw == "" {
		http.Error(w, "no requirement to compare: run a calculation first", http.StatusBadRequest)
		return
	}

	current, err := calculator.ParseNumber("current", raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	series := h.calc.CompareSeries(ctx, current)
	if err := h.chart.Render(w, series, r.URL.Query().Get("feedType")); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to render chart")
	}
}

func writeInvalidInput(w http.ResponseWriter, r *http.Request, message string) {
	writeJSON(w, r, http.StatusBadRequest, api.ErrorResponse{
		ErrorKind: calculator.ErrorKindInvalidInput,
		Message:   message,
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}
