package pricing

import "server/internal/domain"

// SetupCost is the fixed campaign setup fee in RM.
const SetupCost = 10000

// Base unit costs in RM: per reached user for sms/app/edm, per week for
// statement and banner.
var baseCosts = map[domain.Channel]float64{
	domain.ChannelSMS:       0.03,
	domain.ChannelApp:       0.06,
	domain.ChannelEDM:       0.20,
	domain.ChannelStatement: 4000,
	domain.ChannelBanner:    750,
}

// Volume band thresholds on the target user count.
const (
	bandSmallMax  = 100_000
	bandMediumMax = 200_000
)

// volumeFactor returns the cost multiplier applied to a channel's base unit
// cost for the given target user count. Larger campaigns negotiate lower
// per-unit rates; the statement channel discounts least.
func volumeFactor(targetUsers int, ch domain.Channel) float64 {
	switch {
	case targetUsers <= bandSmallMax:
		return 1.0
	case targetUsers <= bandMediumMax:
		switch ch {
		case domain.ChannelStatement:
			return 0.95
		case domain.ChannelBanner:
			return 0.80
		default:
			return 0.90
		}
	default:
		switch ch {
		case domain.ChannelStatement:
			return 0.95
		case domain.ChannelBanner:
			return 0.75
		default:
			return 0.85
		}
	}
}

// UnitCost returns the volume-adjusted unit cost for a channel at the given
// campaign size.
func UnitCost(targetUsers int, ch domain.Channel) float64 {
	return baseCosts[ch] * volumeFactor(targetUsers, ch)
}
