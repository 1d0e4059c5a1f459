package pricing

import (
	"fmt"

	"server/internal/domain"
)

// Base conversion rate bounds as fractions (0.1% to 15%).
const (
	MinBaseRate = 0.001
	MaxBaseRate = 0.15
)

// Advisory thresholds: rates outside the usual industry band are legal but
// get flagged.
const (
	highRateThreshold = 0.08
	lowRateThreshold  = 0.01
)

// Validate rejects campaign inputs outside the supported parameter space.
func Validate(input domain.CampaignInput) error {
	if input.TargetUsers < MinTargetUsers || input.TargetUsers > MaxTargetUsers {
		return fmt.Errorf("%w: target users %d outside [%d, %d]",
			domain.ErrInvalidInput, input.TargetUsers, MinTargetUsers, MaxTargetUsers)
	}
	if input.BaseRate < MinBaseRate || input.BaseRate > MaxBaseRate {
		return fmt.Errorf("%w: base rate %.4f outside [%.3f, %.2f]",
			domain.ErrInvalidInput, input.BaseRate, MinBaseRate, MaxBaseRate)
	}
	for _, ch := range domain.PerUserChannels {
		m := channelMetrics[ch]
		pct := input.Allocation.Pct(ch)
		if pct < m.MinAlloc || pct > m.MaxAlloc {
			return fmt.Errorf("%w: %s allocation %d%% outside [%d, %d]",
				domain.ErrInvalidInput, ch, pct, m.MinAlloc, m.MaxAlloc)
		}
	}
	for _, ch := range domain.WeeklyChannels {
		weeks := input.Schedule.Weeks(ch)
		if weeks < 0 || weeks > MaxWeeks {
			return fmt.Errorf("%w: %s duration %d weeks outside [0, %d]",
				domain.ErrInvalidInput, ch, weeks, MaxWeeks)
		}
	}
	if reach := input.Allocation.TotalReach(); reach > 100 {
		return fmt.Errorf("%w: total reach %d%%", domain.ErrReachExceeded, reach)
	}
	return nil
}

// Advisories returns non-fatal guidance for a valid input: under-allocated
// reach and conversion rates outside typical industry benchmarks.
func Advisories(input domain.CampaignInput) []domain.Advisory {
	var out []domain.Advisory

	if reach := input.Allocation.TotalReach(); reach < 100 {
		out = append(out, domain.Advisory{
			Code: "reach_below_full",
			Message: fmt.Sprintf(
				"current reach is %d%% with %d%% unused; campaign effectiveness is reduced to %.1f%% of maximum potential",
				reach, 100-reach, float64(reach)),
		})
	}
	if input.BaseRate > highRateThreshold {
		out = append(out, domain.Advisory{
			Code:    "rate_above_benchmarks",
			Message: "expected conversion rate is higher than typical industry benchmarks; ensure historical data supports this projection",
		})
	}
	if input.BaseRate < lowRateThreshold {
		out = append(out, domain.Advisory{
			Code:    "rate_below_benchmarks",
			Message: "expected conversion rate is lower than typical industry benchmarks; review audience selection, messaging, and channel mix",
		})
	}
	return out
}
