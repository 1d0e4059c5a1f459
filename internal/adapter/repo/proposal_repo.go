package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// ProposalRepositoryPG implements ProposalRepository on top of the
// marker-checked SQL executor.
type ProposalRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewProposalRepository creates a new proposal repo.
func NewProposalRepository(sql infra.SQLExecutor) *ProposalRepositoryPG {
	return &ProposalRepositoryPG{sql: sql}
}

// Create inserts a proposal and fills in its generated ID and timestamp.
func (r *ProposalRepositoryPG) Create(ctx context.Context, proposal *domain.Proposal) error {
	inputJSON, err := json.Marshal(proposal.Input)
	if err != nil {
		return fmt.Errorf("marshal input: %w", err)
	}
	quoteJSON, err := json.Marshal(proposal.Quote)
	if err != nil {
		return fmt.Errorf("marshal quote: %w", err)
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertProposal,
		proposal.Reference, proposal.Locale, inputJSON, quoteJSON)
	return row.Scan(&proposal.ID, &proposal.CreatedAt)
}

// GetByID loads a proposal with its quote snapshot.
func (r *ProposalRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Proposal, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectProposalByID, id)
	proposal, err := scanProposal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return proposal, nil
}

// ListRecent returns recent proposals limited by the input value.
func (r *ProposalRepositoryPG) ListRecent(ctx context.Context, limit int) ([]domain.Proposal, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListProposals, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Proposal
	for rows.Next() {
		proposal, err := scanProposal(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *proposal)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanProposal(row pgx.Row) (*domain.Proposal, error) {
	var proposal domain.Proposal
	var inputJSON, quoteJSON []byte
	if err := row.Scan(&proposal.ID, &proposal.Reference, &proposal.Locale, &inputJSON, &quoteJSON, &proposal.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(inputJSON, &proposal.Input); err != nil {
		return nil, fmt.Errorf("unmarshal input: %w", err)
	}
	if err := json.Unmarshal(quoteJSON, &proposal.Quote); err != nil {
		return nil, fmt.Errorf("unmarshal quote: %w", err)
	}
	return &proposal, nil
}
