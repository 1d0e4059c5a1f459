package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"server/internal/sqlinline"
)

func TestProposalsCreatePersists(t *testing.T) {
	created := time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)
	sql := &stubSQL{
		queryRowFn: func(query string, args ...any) pgx.Row {
			if query != sqlinline.QInsertProposal {
				t.Fatalf("unexpected query: %s", query)
			}
			if len(args) != 4 {
				t.Fatalf("unexpected args count: %d", len(args))
			}
			if ref, ok := args[0].(string); !ok || !strings.HasPrefix(ref, "VX") {
				t.Fatalf("reference = %#v, want VX prefix", args[0])
			}
			return NewSimpleRow(func(dest ...any) error {
				*dest[0].(*string) = "7d0e6a70-0000-4000-8000-000000000042"
				*dest[1].(*time.Time) = created
				return nil
			})
		},
	}
	app := testApp(sql)

	body, _ := json.Marshal(testInput())
	req := httptest.NewRequest(http.MethodPost, "/v1/proposals", strings.NewReader(string(body)))
	rr := httptest.NewRecorder()

	app.ProposalsCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("unexpected status: got %d, want 201", rr.Code)
	}
	var dto proposalDTO
	if err := json.NewDecoder(rr.Body).Decode(&dto); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if dto.ID == "" || !strings.HasPrefix(dto.Reference, "VX") {
		t.Fatalf("unexpected proposal identity: %+v", dto)
	}
	if dto.Quote.MarketingCost == 0 {
		t.Fatalf("quote snapshot missing from response")
	}
	if !dto.CreatedAt.Equal(created) {
		t.Fatalf("CreatedAt = %v, want %v", dto.CreatedAt, created)
	}
}

func TestProposalsGetNotFound(t *testing.T) {
	app := testApp(&stubSQL{
		queryRowFn: func(string, ...any) pgx.Row { return NewSimpleRow(nil) },
	})

	r := chi.NewRouter()
	r.Get("/v1/proposals/{id}", app.ProposalsGet)

	req := httptest.NewRequest(http.MethodGet, "/v1/proposals/missing", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: got %d, want 404", rr.Code)
	}
}

func TestProposalsListReturnsItems(t *testing.T) {
	stored := storeProposal(t)
	app := testApp(&stubSQL{
		queryFn: func(query string, args ...any) (pgx.Rows, error) {
			if query != sqlinline.QListProposals {
				t.Fatalf("unexpected query: %s", query)
			}
			if len(args) != 1 || args[0] != 20 {
				t.Fatalf("unexpected args: %#v", args)
			}
			return &proposalRows{proposal: stored}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/proposals", nil)
	rr := httptest.NewRecorder()
	app.ProposalsList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d, want 200", rr.Code)
	}
	var payload struct {
		Items []proposalDTO `json:"items"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Items) != 1 {
		t.Fatalf("expected 1 proposal, got %d", len(payload.Items))
	}
	if payload.Items[0].Reference != stored.reference {
		t.Fatalf("reference = %q, want %q", payload.Items[0].Reference, stored.reference)
	}
	if payload.Items[0].Quote.Input.TargetUsers != 200_000 {
		t.Fatalf("quote snapshot not decoded: %+v", payload.Items[0].Quote)
	}
}

func TestProposalReferenceFormat(t *testing.T) {
	ref := ProposalReference(time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC))
	if ref != "VX202601021504" {
		t.Fatalf("ProposalReference = %q", ref)
	}
}
