// Package pricing implements the campaign pricing model: channel
// effectiveness weighting, volume-banded cost adjustment, and the
// cost-per-acquisition computation.
package pricing

import "server/internal/domain"

// ChannelMetrics captures the effectiveness profile of a channel. Weight is
// the channel's share of overall campaign impact; Engagement is the expected
// engagement (open/click) rate of users reached through it.
type ChannelMetrics struct {
	Kind       domain.ChannelKind
	Weight     float64
	Engagement float64

	// Per-user channels: allocation bounds and the recommended reach
	// percentage. Weekly channels: MaxAlloc is unused and Recommended is
	// the recommended booking in weeks.
	MinAlloc    int
	MaxAlloc    int
	Recommended int
}

// MaxWeeks bounds the booking duration for weekly channels.
const MaxWeeks = 12

var channelMetrics = map[domain.Channel]ChannelMetrics{
	// Lowest impact: SMS carries no links.
	domain.ChannelSMS: {
		Kind:        domain.ChannelKindPerUser,
		Weight:      0.15,
		Engagement:  0.05,
		MinAlloc:    0,
		MaxAlloc:    100,
		Recommended: 20,
	},
	domain.ChannelApp: {
		Kind:        domain.ChannelKindPerUser,
		Weight:      0.25,
		Engagement:  0.15,
		MinAlloc:    0,
		MaxAlloc:    100,
		Recommended: 30,
	},
	domain.ChannelEDM: {
		Kind:        domain.ChannelKindPerUser,
		Weight:      0.20,
		Engagement:  0.08,
		MinAlloc:    0,
		MaxAlloc:    100,
		Recommended: 25,
	},
	// Statement messages have the highest open rate of all channels.
	domain.ChannelStatement: {
		Kind:        domain.ChannelKindWeekly,
		Weight:      0.40,
		Engagement:  0.35,
		Recommended: 4,
	},
	domain.ChannelBanner: {
		Kind:        domain.ChannelKindWeekly,
		Weight:      0.10,
		Engagement:  0.02,
		Recommended: 3,
	},
}

// Metrics returns the effectiveness profile for the given channel.
func Metrics(ch domain.Channel) (ChannelMetrics, bool) {
	m, ok := channelMetrics[ch]
	return m, ok
}

// CatalogEntry is a channel with its metrics and base cost, used by the
// catalog endpoint and the CLI.
type CatalogEntry struct {
	Channel  domain.Channel `json:"channel"`
	Metrics  ChannelMetrics `json:"metrics"`
	BaseCost float64        `json:"base_cost"`
}

// Catalog returns all channels in display order with their metrics and base
// unit costs (per user for per-user channels, per week otherwise).
func Catalog() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(channelMetrics))
	for _, ch := range domain.PerUserChannels {
		entries = append(entries, CatalogEntry{Channel: ch, Metrics: channelMetrics[ch], BaseCost: baseCosts[ch]})
	}
	for _, ch := range domain.WeeklyChannels {
		entries = append(entries, CatalogEntry{Channel: ch, Metrics: channelMetrics[ch], BaseCost: baseCosts[ch]})
	}
	return entries
}
