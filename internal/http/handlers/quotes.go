package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"server/internal/domain"
	"server/internal/pricing"
)

// QuotesCompute computes a quote without persisting anything. Identical
// inputs are served from the quote cache when one is configured.
func (a *App) QuotesCompute(w http.ResponseWriter, r *http.Request) {
	var input domain.CampaignInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	if cached := a.Cache.Get(r.Context(), input); cached != nil {
		if a.Metrics != nil {
			a.Metrics.QuoteCacheHits.Inc()
		}
		a.json(w, http.StatusOK, cached)
		return
	}

	quote, err := pricing.Compute(input)
	if err != nil {
		a.quoteError(w, err)
		return
	}
	if a.Metrics != nil {
		a.Metrics.QuotesComputed.Inc()
	}
	a.Cache.Set(r.Context(), quote)
	a.json(w, http.StatusOK, quote)
}

// quoteError maps engine validation failures onto 400 responses.
func (a *App) quoteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrReachExceeded):
		a.error(w, http.StatusBadRequest, "reach_exceeded", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		a.error(w, http.StatusBadRequest, "invalid_input", err.Error())
	default:
		a.Logger.Error().Err(err).Msg("quote computation failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to compute quote")
	}
}
