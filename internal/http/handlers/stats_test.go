package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"

	"server/internal/sqlinline"
)

func TestStatsSummary(t *testing.T) {
	app := testApp(&stubSQL{
		queryRowFn: func(query string, args ...any) pgx.Row {
			if query != sqlinline.QStatsSummary {
				t.Fatalf("unexpected query: %s", query)
			}
			return NewSimpleRow(func(dest ...any) error {
				counts := []int64{42, 7, 1, 30, 2, 5}
				for i, c := range counts {
					*dest[i].(*int64) = c
				}
				return nil
			})
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/stats/summary", nil)
	rr := httptest.NewRecorder()
	app.StatsSummary(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d, want 200", rr.Code)
	}
	var payload map[string]int64
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["proposals_total"] != 42 || payload["exports_succeeded"] != 30 {
		t.Fatalf("unexpected payload: %#v", payload)
	}
}
