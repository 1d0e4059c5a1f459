package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"server/internal/http/handlers"
	"server/internal/infra"
)

func testRouter() http.Handler {
	cfg := &infra.Config{
		DefaultLocale:    "en",
		CORSOrigins:      []string{"*"},
		RateLimitPerMin:  1000,
		HTTPIdleTimeout:  time.Minute,
		HTTPReadTimeout:  time.Minute,
		HTTPWriteTimeout: time.Minute,
	}
	app := handlers.NewApp(nil, nil, nil, zerolog.Nop(), infra.NewMetrics())
	return NewRouter(app, cfg, zerolog.Nop(), nil)
}

func TestRouterServesCatalogRoutes(t *testing.T) {
	router := testRouter()

	for _, path := range []string{"/v1/healthz", "/v1/channels", "/v1/benchmarks", "/metrics", "/v1/openapi.json"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s = %d, want 200", path, rr.Code)
		}
	}
}

func TestRouterChannelCatalogContent(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/channels", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	body := rr.Body.String()
	for _, name := range []string{"sms", "app", "edm", "statement", "banner"} {
		if !strings.Contains(body, `"`+name+`"`) {
			t.Fatalf("catalog missing channel %q:\n%s", name, body)
		}
	}
}

func TestRouterSetsCORSHeaders(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/healthz", nil)
	req.Header.Set("Origin", "https://pricing.example.com")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://pricing.example.com" {
		t.Fatalf("Access-Control-Allow-Origin = %q", got)
	}
}
