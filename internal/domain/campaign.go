package domain

// ChannelKind splits the five marketing channels into the two families the
// pricing engine treats differently: channels costed per reached user and
// channels booked for a number of weeks.
type ChannelKind string

const (
	ChannelKindPerUser ChannelKind = "per_user"
	ChannelKindWeekly  ChannelKind = "weekly"
)

// Channel identifies one of the supported marketing channels.
type Channel string

const (
	ChannelSMS       Channel = "sms"
	ChannelApp       Channel = "app"
	ChannelEDM       Channel = "edm"
	ChannelStatement Channel = "statement"
	ChannelBanner    Channel = "banner"
)

// PerUserChannels lists the channels allocated as a percentage of the target
// user base, in display order.
var PerUserChannels = []Channel{ChannelSMS, ChannelApp, ChannelEDM}

// WeeklyChannels lists the channels booked by week, in display order.
var WeeklyChannels = []Channel{ChannelStatement, ChannelBanner}

// Allocation holds the per-user channel reach percentages (0-100).
type Allocation struct {
	SMSPct int `json:"sms_pct"`
	AppPct int `json:"app_pct"`
	EDMPct int `json:"edm_pct"`
}

// TotalReach returns the combined per-user reach percentage.
func (a Allocation) TotalReach() int {
	return a.SMSPct + a.AppPct + a.EDMPct
}

// Pct returns the allocation for the given per-user channel.
func (a Allocation) Pct(ch Channel) int {
	switch ch {
	case ChannelSMS:
		return a.SMSPct
	case ChannelApp:
		return a.AppPct
	case ChannelEDM:
		return a.EDMPct
	}
	return 0
}

// Schedule holds the booked duration in weeks for the weekly channels (0-12).
type Schedule struct {
	StatementWeeks int `json:"statement_weeks"`
	BannerWeeks    int `json:"banner_weeks"`
}

// Weeks returns the booked duration for the given weekly channel.
func (s Schedule) Weeks(ch Channel) int {
	switch ch {
	case ChannelStatement:
		return s.StatementWeeks
	case ChannelBanner:
		return s.BannerWeeks
	}
	return 0
}

// CampaignInput is the full set of parameters a quote is computed from.
// BaseRate is the expected base conversion rate as a fraction (0.0549 for
// 5.49%).
type CampaignInput struct {
	TargetUsers int        `json:"target_users"`
	BaseRate    float64    `json:"base_rate"`
	Allocation  Allocation `json:"allocation"`
	Schedule    Schedule   `json:"schedule"`
}
