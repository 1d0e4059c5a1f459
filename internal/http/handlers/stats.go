package handlers

import (
	"net/http"

	"server/internal/sqlinline"
)

// StatsSummary returns proposal and export counters for the dashboard.
func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	row := a.SQL.QueryRow(r.Context(), sqlinline.QStatsSummary)
	var proposalsTotal, proposals24, exportsQueued, exportsSucceeded, exportsFailed, exports24 int64
	if err := row.Scan(&proposalsTotal, &proposals24, &exportsQueued, &exportsSucceeded, &exportsFailed, &exports24); err != nil {
		a.Logger.Error().Err(err).Msg("load stats failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load stats")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"proposals_total":    proposalsTotal,
		"proposals_last_24h": proposals24,
		"exports_queued":     exportsQueued,
		"exports_succeeded":  exportsSucceeded,
		"exports_failed":     exportsFailed,
		"exports_last_24h":   exports24,
	})
}
