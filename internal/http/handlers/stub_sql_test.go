package handlers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"server/internal/domain"
	"server/internal/pricing"
)

// stubSQL routes queries to test-provided functions.
type stubSQL struct {
	execFn     func(query string, args ...any) (pgconn.CommandTag, error)
	queryRowFn func(query string, args ...any) pgx.Row
	queryFn    func(query string, args ...any) (pgx.Rows, error)
}

func (s *stubSQL) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	if s.execFn == nil {
		return pgconn.CommandTag{}, nil
	}
	return s.execFn(query, args...)
}

func (s *stubSQL) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	if s.queryRowFn == nil {
		return NewSimpleRow(nil)
	}
	return s.queryRowFn(query, args...)
}

func (s *stubSQL) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	if s.queryFn == nil {
		return nil, pgx.ErrNoRows
	}
	return s.queryFn(query, args...)
}

func testApp(sql *stubSQL) *App {
	return NewApp(sql, nil, nil, zerolog.Nop(), nil)
}

func testInput() domain.CampaignInput {
	return domain.CampaignInput{
		TargetUsers: 200_000,
		BaseRate:    0.0549,
		Allocation:  domain.Allocation{SMSPct: 20, AppPct: 30, EDMPct: 25},
		Schedule:    domain.Schedule{StatementWeeks: 4, BannerWeeks: 3},
	}
}

type storedProposal struct {
	id        string
	reference string
	locale    string
	inputJSON []byte
	quoteJSON []byte
	createdAt time.Time
}

func storeProposal(t *testing.T) storedProposal {
	t.Helper()
	input := testInput()
	quote, err := pricing.Compute(input)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	inputJSON, _ := json.Marshal(input)
	quoteJSON, _ := json.Marshal(quote)
	return storedProposal{
		id:        "7d0e6a70-0000-4000-8000-000000000042",
		reference: "VX202601021504",
		locale:    "en",
		inputJSON: inputJSON,
		quoteJSON: quoteJSON,
		createdAt: time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC),
	}
}

// scanRow copies the stored proposal into scan destinations in select order.
func (p storedProposal) scanRow() SimpleRow {
	return NewSimpleRow(func(dest ...any) error {
		*dest[0].(*string) = p.id
		*dest[1].(*string) = p.reference
		*dest[2].(*string) = p.locale
		*dest[3].(*[]byte) = p.inputJSON
		*dest[4].(*[]byte) = p.quoteJSON
		*dest[5].(*time.Time) = p.createdAt
		return nil
	})
}

// proposalRows is a single-row pgx.Rows over a stored proposal.
type proposalRows struct {
	TestRowsBase
	proposal storedProposal
	idx      int
}

func (r *proposalRows) Next() bool {
	r.idx++
	return r.idx == 1
}

func (r *proposalRows) Scan(dest ...any) error {
	return r.proposal.scanRow().Scan(dest...)
}

func (r *proposalRows) Close() {}

func (r *proposalRows) Err() error { return nil }
