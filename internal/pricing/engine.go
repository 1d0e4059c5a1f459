package pricing

import (
	"server/internal/domain"
)

// Diminishing factor anchors: campaigns at the minimum size convert at half
// strength, scaling linearly up to full strength at the maximum size.
const (
	MinTargetUsers = 50_000
	MaxTargetUsers = 500_000

	diminishingAtMin = 0.5
	diminishingAtMax = 1.0
)

// DiminishingFactor linearly interpolates the approval dampening factor over
// the supported campaign size range, clamped at both ends.
func DiminishingFactor(targetUsers int) float64 {
	if targetUsers <= MinTargetUsers {
		return diminishingAtMin
	}
	if targetUsers >= MaxTargetUsers {
		return diminishingAtMax
	}
	span := float64(MaxTargetUsers - MinTargetUsers)
	return diminishingAtMin + (diminishingAtMax-diminishingAtMin)*float64(targetUsers-MinTargetUsers)/span
}

// Effectiveness computes the weighted channel-mix effectiveness score. Each
// per-user channel contributes reach * weight * engagement; the weekly
// channels contribute a flat weight * engagement regardless of duration.
func Effectiveness(input domain.CampaignInput) float64 {
	total := 0.0
	for _, ch := range domain.PerUserChannels {
		m := channelMetrics[ch]
		total += float64(input.Allocation.Pct(ch)) / 100 * m.Weight * m.Engagement
	}
	for _, ch := range domain.WeeklyChannels {
		m := channelMetrics[ch]
		total += m.Weight * m.Engagement
	}
	return total
}

// Compute validates the input and produces the full quote: volume-adjusted
// cost lines, cost per user, total marketing cost, effectiveness-adjusted
// conversion rate, estimated approvals, and CPA.
func Compute(input domain.CampaignInput) (*domain.Quote, error) {
	if err := Validate(input); err != nil {
		return nil, err
	}

	users := float64(input.TargetUsers)
	lines := make([]domain.CostLine, 0, 5)
	costPerUser := 0.0

	for _, ch := range domain.PerUserChannels {
		unit := UnitCost(input.TargetUsers, ch)
		reached := float64(input.Allocation.Pct(ch)) / 100 * users
		lines = append(lines, domain.CostLine{
			Channel:  ch,
			Kind:     domain.ChannelKindPerUser,
			UnitCost: unit,
			Quantity: reached,
			Total:    unit * reached,
		})
		costPerUser += unit * float64(input.Allocation.Pct(ch)) / 100
	}

	for _, ch := range domain.WeeklyChannels {
		unit := UnitCost(input.TargetUsers, ch)
		weeks := float64(input.Schedule.Weeks(ch))
		lines = append(lines, domain.CostLine{
			Channel:  ch,
			Kind:     domain.ChannelKindWeekly,
			UnitCost: unit,
			Quantity: weeks,
			Total:    unit * weeks,
		})
		costPerUser += unit * weeks / users
	}

	marketingCost := costPerUser*users + SetupCost
	effectiveness := Effectiveness(input)
	diminishing := DiminishingFactor(input.TargetUsers)
	adjustedRate := input.BaseRate * effectiveness
	approvals := users * adjustedRate * diminishing

	cpa := 0.0
	if approvals > 0 {
		cpa = marketingCost / approvals
	}

	return &domain.Quote{
		Input:             input,
		SetupCost:         SetupCost,
		CostPerUser:       costPerUser,
		MarketingCost:     marketingCost,
		Effectiveness:     effectiveness,
		DiminishingFactor: diminishing,
		AdjustedRate:      adjustedRate,
		Approvals:         approvals,
		CPA:               cpa,
		Lines:             lines,
		Advisories:        Advisories(input),
	}, nil
}
