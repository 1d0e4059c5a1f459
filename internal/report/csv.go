package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"server/internal/domain"
)

// ReportFilename returns the download name for a campaign report generated
// on the given day.
func ReportFilename(now time.Time) string {
	return fmt.Sprintf("veroXis_campaign_proposal_%s.csv", now.Format("20060102"))
}

// InvoiceFilename returns the download name for an invoice generated on the
// given day.
func InvoiceFilename(now time.Time) string {
	return fmt.Sprintf("veroXis_invoice_%s.csv", now.Format("20060102"))
}

// CampaignReport renders the Category/Item/Value campaign report for a
// proposal. Category cells are only filled on the first row of each group.
func CampaignReport(p *domain.Proposal, f *Formatter) ([]byte, error) {
	q := p.Quote
	in := q.Input

	rows := [][]string{{"Category", "Item", "Value"}}

	appendGroup := func(category string, items [][2]string) {
		for i, item := range items {
			cat := ""
			if i == 0 {
				cat = category
			}
			rows = append(rows, []string{cat, item[0], item[1]})
		}
	}

	appendGroup("Campaign Information", [][2]string{
		{"Target Users", f.Count(float64(in.TargetUsers))},
		{"Campaign Date", p.CreatedAt.Format("2006-01-02")},
		{"Setup Cost", f.RM(q.SetupCost)},
		{"Partner Reference", p.Reference},
	})

	appendGroup("Channel Allocation", [][2]string{
		{"SMS Reach", fmt.Sprintf("%d%%", in.Allocation.SMSPct)},
		{"eDM Reach", fmt.Sprintf("%d%%", in.Allocation.EDMPct)},
		{"App Notification", fmt.Sprintf("%d%%", in.Allocation.AppPct)},
		{"Statement Message Duration", fmt.Sprintf("%d weeks", in.Schedule.StatementWeeks)},
		{"Website Banner Duration", fmt.Sprintf("%d weeks", in.Schedule.BannerWeeks)},
	})

	appendGroup("Costs", [][2]string{
		{"SMS Cost (per user)", f.RMUnit(lineUnit(q, domain.ChannelSMS))},
		{"App Notification Cost (per user)", f.RMUnit(lineUnit(q, domain.ChannelApp))},
		{"eDM Cost (per user)", f.RMUnit(lineUnit(q, domain.ChannelEDM))},
		{"Statement Message Cost (per week)", f.RM(lineUnit(q, domain.ChannelStatement))},
		{"Website Banner Cost (per week)", f.RM(lineUnit(q, domain.ChannelBanner))},
	})

	appendGroup("Campaign Metrics", [][2]string{
		{"Total Marketing Cost", f.RM(q.MarketingCost)},
		{"Cost Per User", f.RMUnit(q.CostPerUser)},
		{"Estimated Approvals", f.Count(q.Approvals)},
		{"Base Conversion Rate", f.Percent(in.BaseRate, 2)},
		{"Adjusted Conversion Rate", f.Percent(q.AdjustedRate, 4)},
	})

	return encode(rows)
}

// Invoice renders the proposal/invoice CSV: setup fee, one line per channel,
// and a TOTAL row reconciling with the marketing cost.
func Invoice(p *domain.Proposal, f *Formatter) ([]byte, error) {
	q := p.Quote

	rows := [][]string{{"Item Reference", "Date", "Description", "Quantity", "Unit Cost (RM)", "Total Cost (RM)"}}
	rows = append(rows, []string{
		p.Reference,
		p.CreatedAt.Format("2006-01-02"),
		"Campaign Setup Fee",
		"1",
		fmt.Sprintf("%.2f", q.SetupCost),
		fmt.Sprintf("%.2f", q.SetupCost),
	})

	descriptions := map[domain.Channel]string{
		domain.ChannelSMS:       "SMS Marketing",
		domain.ChannelApp:       "App Notifications",
		domain.ChannelEDM:       "eDM Campaign",
		domain.ChannelStatement: "Statement Messages",
		domain.ChannelBanner:    "Website Banner",
	}

	for _, line := range q.Lines {
		quantity := fmt.Sprintf("%.0f", line.Quantity)
		unit := fmt.Sprintf("%.4f", line.UnitCost)
		if line.Kind == domain.ChannelKindWeekly {
			quantity = fmt.Sprintf("%d", int(line.Quantity))
			unit = fmt.Sprintf("%.2f", line.UnitCost)
		}
		rows = append(rows, []string{
			"", "",
			descriptions[line.Channel],
			quantity,
			unit,
			fmt.Sprintf("%.2f", line.Total),
		})
	}

	rows = append(rows, []string{"", "", "TOTAL", "", "", fmt.Sprintf("%.2f", q.MarketingCost)})

	return encode(rows)
}

func lineUnit(q domain.Quote, ch domain.Channel) float64 {
	for _, line := range q.Lines {
		if line.Channel == ch {
			return line.UnitCost
		}
	}
	return 0
}

func encode(rows [][]string) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("report: encode csv: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("report: encode csv: %w", err)
	}
	return buf.Bytes(), nil
}
