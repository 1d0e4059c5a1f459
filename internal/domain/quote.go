package domain

import "time"

// CostLine is one channel's adjusted cost within a quote. UnitCost is per
// reached user for per-user channels and per week for weekly channels.
type CostLine struct {
	Channel  Channel     `json:"channel"`
	Kind     ChannelKind `json:"kind"`
	UnitCost float64     `json:"unit_cost"`
	Quantity float64     `json:"quantity"`
	Total    float64     `json:"total"`
}

// Quote is the computed outcome for a campaign input.
type Quote struct {
	Input             CampaignInput `json:"input"`
	SetupCost         float64       `json:"setup_cost"`
	CostPerUser       float64       `json:"cost_per_user"`
	MarketingCost     float64       `json:"marketing_cost"`
	Effectiveness     float64       `json:"effectiveness"`
	DiminishingFactor float64       `json:"diminishing_factor"`
	AdjustedRate      float64       `json:"adjusted_rate"`
	Approvals         float64       `json:"approvals"`
	CPA               float64       `json:"cpa"`
	Lines             []CostLine    `json:"lines"`
	Advisories        []Advisory    `json:"advisories,omitempty"`
}

// Advisory flags a campaign parameter that is legal but outside the usual
// operating range, mirroring the guidance the planning tool surfaces.
type Advisory struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Proposal is a persisted quote with its customer-facing reference.
type Proposal struct {
	ID        string
	Reference string
	Locale    string
	Input     CampaignInput
	Quote     Quote
	CreatedAt time.Time
}

// ExportKind enumerates the artifacts the export worker can produce.
type ExportKind string

const (
	ExportKindReport  ExportKind = "report"
	ExportKindInvoice ExportKind = "invoice"
	ExportKindBundle  ExportKind = "bundle"
)

// ExportStatus is the lifecycle of an export job.
type ExportStatus string

const (
	ExportStatusQueued    ExportStatus = "QUEUED"
	ExportStatusRunning   ExportStatus = "RUNNING"
	ExportStatusSucceeded ExportStatus = "SUCCEEDED"
	ExportStatusFailed    ExportStatus = "FAILED"
)

// ExportJob is a queued request to render a proposal artifact to storage.
type ExportJob struct {
	ID         string
	ProposalID string
	Kind       ExportKind
	Status     ExportStatus
	Error      *string
	StorageKey *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidExportKind reports whether kind names a producible artifact.
func ValidExportKind(kind ExportKind) bool {
	switch kind {
	case ExportKindReport, ExportKindInvoice, ExportKindBundle:
		return true
	}
	return false
}
