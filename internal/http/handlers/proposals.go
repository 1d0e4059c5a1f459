package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/pricing"
	"server/internal/sqlinline"
)

type proposalDTO struct {
	ID        string               `json:"id"`
	Reference string               `json:"reference"`
	Locale    string               `json:"locale"`
	Input     domain.CampaignInput `json:"input"`
	Quote     domain.Quote         `json:"quote"`
	CreatedAt time.Time            `json:"created_at"`
}

// ProposalReference builds the customer-facing reference for a proposal
// created at the given time, e.g. VX202601021504.
func ProposalReference(now time.Time) string {
	return "VX" + now.Format("200601021504")
}

// ProposalsCreate computes a quote and persists it as a proposal.
func (a *App) ProposalsCreate(w http.ResponseWriter, r *http.Request) {
	var input domain.CampaignInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	quote, err := pricing.Compute(input)
	if err != nil {
		a.quoteError(w, err)
		return
	}

	locale := a.locale(r)
	reference := ProposalReference(time.Now().UTC())
	inputJSON, _ := json.Marshal(input)
	quoteJSON, _ := json.Marshal(quote)

	row := a.SQL.QueryRow(r.Context(), sqlinline.QInsertProposal, reference, locale, inputJSON, quoteJSON)
	var id string
	var createdAt time.Time
	if err := row.Scan(&id, &createdAt); err != nil {
		a.Logger.Error().Err(err).Msg("insert proposal failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to persist proposal")
		return
	}

	if a.Metrics != nil {
		a.Metrics.ProposalsSaved.Inc()
	}
	a.json(w, http.StatusCreated, proposalDTO{
		ID:        id,
		Reference: reference,
		Locale:    locale,
		Input:     input,
		Quote:     *quote,
		CreatedAt: createdAt,
	})
}

// ProposalsList returns recent proposals, newest first.
func (a *App) ProposalsList(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	rows, err := a.SQL.Query(r.Context(), sqlinline.QListProposals, limit)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list proposals failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load proposals")
		return
	}
	defer rows.Close()

	items := []proposalDTO{}
	for rows.Next() {
		dto, err := scanProposalDTO(rows)
		if err != nil {
			a.Logger.Error().Err(err).Msg("scan proposal failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to load proposals")
			return
		}
		items = append(items, dto)
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// ProposalsGet returns one proposal with its quote snapshot.
func (a *App) ProposalsGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	row := a.SQL.QueryRow(r.Context(), sqlinline.QSelectProposalByID, id)
	dto, err := scanProposalDTO(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			a.error(w, http.StatusNotFound, "not_found", "proposal not found")
			return
		}
		a.Logger.Error().Err(err).Msg("load proposal failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load proposal")
		return
	}
	a.json(w, http.StatusOK, dto)
}

// loadProposal fetches and decodes a proposal for handlers that render
// artifacts from it.
func (a *App) loadProposal(r *http.Request, id string) (*domain.Proposal, error) {
	row := a.SQL.QueryRow(r.Context(), sqlinline.QSelectProposalByID, id)
	dto, err := scanProposalDTO(row)
	if err != nil {
		return nil, err
	}
	return &domain.Proposal{
		ID:        dto.ID,
		Reference: dto.Reference,
		Locale:    dto.Locale,
		Input:     dto.Input,
		Quote:     dto.Quote,
		CreatedAt: dto.CreatedAt,
	}, nil
}

func scanProposalDTO(row pgx.Row) (proposalDTO, error) {
	var dto proposalDTO
	var inputJSON, quoteJSON []byte
	if err := row.Scan(&dto.ID, &dto.Reference, &dto.Locale, &inputJSON, &quoteJSON, &dto.CreatedAt); err != nil {
		return proposalDTO{}, err
	}
	if err := json.Unmarshal(inputJSON, &dto.Input); err != nil {
		return proposalDTO{}, err
	}
	if err := json.Unmarshal(quoteJSON, &dto.Quote); err != nil {
		return proposalDTO{}, err
	}
	return dto, nil
}
