package handlers

import (
	"net/http"

	"server/internal/domain"
	"server/internal/pricing"
)

type channelDTO struct {
	Channel     domain.Channel     `json:"channel"`
	Kind        domain.ChannelKind `json:"kind"`
	Weight      float64            `json:"weight"`
	Engagement  float64            `json:"engagement_rate"`
	Recommended int                `json:"recommended"`
	BaseCost    float64            `json:"base_cost"`
}

// ChannelsCatalog returns the channel effectiveness catalog with base costs.
func (a *App) ChannelsCatalog(w http.ResponseWriter, r *http.Request) {
	entries := pricing.Catalog()
	items := make([]channelDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, channelDTO{
			Channel:     e.Channel,
			Kind:        e.Metrics.Kind,
			Weight:      e.Metrics.Weight,
			Engagement:  e.Metrics.Engagement,
			Recommended: e.Metrics.Recommended,
			BaseCost:    e.BaseCost,
		})
	}
	a.json(w, http.StatusOK, map[string]any{
		"setup_cost": pricing.SetupCost,
		"items":      items,
	})
}

// Benchmarks returns the industry conversion-rate reference table.
func (a *App) Benchmarks(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"items": domain.ConversionBenchmarks})
}
