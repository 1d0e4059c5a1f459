package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// ExportJobRepositoryPG implements ExportJobRepository on top of the
// marker-checked SQL executor.
type ExportJobRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewExportJobRepository creates a new export job repo.
func NewExportJobRepository(sql infra.SQLExecutor) *ExportJobRepositoryPG {
	return &ExportJobRepositoryPG{sql: sql}
}

// Enqueue inserts a QUEUED job and fills in its generated ID.
func (r *ExportJobRepositoryPG) Enqueue(ctx context.Context, job *domain.ExportJob) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertExportJob, job.ProposalID, job.Kind)
	if err := row.Scan(&job.ID); err != nil {
		return err
	}
	job.Status = domain.ExportStatusQueued
	return nil
}

// GetByID loads an export job.
func (r *ExportJobRepositoryPG) GetByID(ctx context.Context, id string) (*domain.ExportJob, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectExportJobByID, id)
	var job domain.ExportJob
	err := row.Scan(&job.ID, &job.ProposalID, &job.Kind, &job.Status, &job.Error, &job.StorageKey, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// Claim atomically moves the oldest QUEUED job to RUNNING and returns it.
// Returns ErrNotFound when the queue is empty.
func (r *ExportJobRepositoryPG) Claim(ctx context.Context) (*domain.ExportJob, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QWorkerClaimExportJob)
	var job domain.ExportJob
	if err := row.Scan(&job.ID, &job.ProposalID, &job.Kind); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	job.Status = domain.ExportStatusRunning
	return &job, nil
}

// Finalize records the terminal status of a job.
func (r *ExportJobRepositoryPG) Finalize(ctx context.Context, jobID string, status domain.ExportStatus, errMsg *string, storageKey *string) error {
	_, err := r.sql.Exec(ctx, sqlinline.QFinalizeExportJob, jobID, status, errMsg, storageKey)
	return err
}
