package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"server/internal/cache"
	"server/internal/infra"
	"server/internal/middleware"
	"server/internal/storage"
)

// App carries the shared dependencies of all HTTP handlers.
type App struct {
	SQL     infra.SQLExecutor
	Cache   *cache.QuoteCache
	Store   *storage.FileStore
	Logger  zerolog.Logger
	Metrics *infra.Metrics
}

// NewApp builds the handler container.
func NewApp(sql infra.SQLExecutor, quoteCache *cache.QuoteCache, store *storage.FileStore, logger zerolog.Logger, metrics *infra.Metrics) *App {
	return &App{SQL: sql, Cache: quoteCache, Store: store, Logger: logger, Metrics: metrics}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, kind, message string) {
	a.json(w, code, map[string]errorBody{"error": {Code: kind, Message: message}})
}

// locale returns the request locale resolved by the i18n middleware.
func (a *App) locale(r *http.Request) string {
	return middleware.LocaleFromContext(r.Context())
}
