package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"testing"
	"time"

	"server/internal/domain"
	"server/internal/pricing"
)

func testProposal(t *testing.T) *domain.Proposal {
	t.Helper()
	input := domain.CampaignInput{
		TargetUsers: 200_000,
		BaseRate:    0.0549,
		Allocation:  domain.Allocation{SMSPct: 20, AppPct: 30, EDMPct: 25},
		Schedule:    domain.Schedule{StatementWeeks: 4, BannerWeeks: 3},
	}
	quote, err := pricing.Compute(input)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	return &domain.Proposal{
		ID:        "a1f2a9de-0000-4000-8000-000000000001",
		Reference: "VX202601021504",
		Locale:    "en",
		Input:     input,
		Quote:     *quote,
		CreatedAt: time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC),
	}
}

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse rendered csv: %v", err)
	}
	return rows
}

func TestCampaignReportLayout(t *testing.T) {
	p := testProposal(t)
	data, err := CampaignReport(p, NewFormatter("en"))
	if err != nil {
		t.Fatalf("CampaignReport returned error: %v", err)
	}
	rows := parseCSV(t, data)

	if got := rows[0]; got[0] != "Category" || got[1] != "Item" || got[2] != "Value" {
		t.Fatalf("unexpected header: %v", got)
	}
	// Header + 4 groups of 4/5/5/5 items.
	if len(rows) != 1+4+5+5+5 {
		t.Fatalf("unexpected row count: %d", len(rows))
	}

	byItem := map[string]string{}
	for _, row := range rows[1:] {
		byItem[row[1]] = row[2]
	}
	if byItem["Target Users"] != "200,000" {
		t.Fatalf("Target Users = %q", byItem["Target Users"])
	}
	if byItem["Partner Reference"] != "VX202601021504" {
		t.Fatalf("Partner Reference = %q", byItem["Partner Reference"])
	}
	if byItem["Setup Cost"] != "RM 10,000.00" {
		t.Fatalf("Setup Cost = %q", byItem["Setup Cost"])
	}
	if byItem["SMS Cost (per user)"] != "RM 0.0270" {
		t.Fatalf("SMS Cost = %q", byItem["SMS Cost (per user)"])
	}
	if byItem["Total Marketing Cost"] != "RM 40,320.00" {
		t.Fatalf("Total Marketing Cost = %q", byItem["Total Marketing Cost"])
	}
	if byItem["Base Conversion Rate"] != "5.49%" {
		t.Fatalf("Base Conversion Rate = %q", byItem["Base Conversion Rate"])
	}
	if byItem["Statement Message Duration"] != "4 weeks" {
		t.Fatalf("Statement Message Duration = %q", byItem["Statement Message Duration"])
	}
}

func TestInvoiceTotalReconciles(t *testing.T) {
	p := testProposal(t)
	data, err := Invoice(p, NewFormatter("en"))
	if err != nil {
		t.Fatalf("Invoice returned error: %v", err)
	}
	rows := parseCSV(t, data)

	// Header + setup + 5 channel lines + TOTAL.
	if len(rows) != 8 {
		t.Fatalf("unexpected row count: %d", len(rows))
	}
	if rows[1][2] != "Campaign Setup Fee" || rows[1][0] != p.Reference {
		t.Fatalf("unexpected setup line: %v", rows[1])
	}

	total := rows[len(rows)-1]
	if total[2] != "TOTAL" {
		t.Fatalf("expected TOTAL row, got %v", total)
	}
	if want := fmt.Sprintf("%.2f", p.Quote.MarketingCost); total[5] != want {
		t.Fatalf("TOTAL = %q, want %q", total[5], want)
	}

	// Statement line bills weeks at the weekly rate, not weeks squared.
	var statement []string
	for _, row := range rows {
		if row[2] == "Statement Messages" {
			statement = row
		}
	}
	if statement == nil {
		t.Fatalf("statement line missing")
	}
	if statement[3] != "4" || statement[4] != "3800.00" || statement[5] != "15200.00" {
		t.Fatalf("unexpected statement line: %v", statement)
	}
}

func TestFormatterLocales(t *testing.T) {
	en := NewFormatter("en")
	if got := en.RM(40320); got != "RM 40,320.00" {
		t.Fatalf("RM = %q", got)
	}
	if got := en.RMUnit(0.027); got != "RM 0.0270" {
		t.Fatalf("RMUnit = %q", got)
	}
	if got := en.Percent(0.0549, 2); got != "5.49%" {
		t.Fatalf("Percent = %q", got)
	}
	if got := en.Count(1162.9); got != "1,162" {
		t.Fatalf("Count = %q", got)
	}

	ms := NewFormatter("ms-MY")
	if got := ms.RM(40320); got != "RM 40,320.00" {
		t.Fatalf("ms RM = %q", got)
	}
}
