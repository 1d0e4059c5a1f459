package domain

import "context"

// ProposalRepository defines persistence for proposals.
type ProposalRepository interface {
	Create(ctx context.Context, proposal *Proposal) error
	GetByID(ctx context.Context, id string) (*Proposal, error)
	ListRecent(ctx context.Context, limit int) ([]Proposal, error)
}

// ExportJobRepository defines persistence for export jobs, including the
// worker-side queue operations.
type ExportJobRepository interface {
	Enqueue(ctx context.Context, job *ExportJob) error
	GetByID(ctx context.Context, id string) (*ExportJob, error)
	Claim(ctx context.Context) (*ExportJob, error)
	Finalize(ctx context.Context, jobID string, status ExportStatus, errMsg *string, storageKey *string) error
}
