package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/sqlinline"
	"server/internal/storage"
)

type exportRequest struct {
	Kind domain.ExportKind `json:"kind"`
}

type exportDTO struct {
	ID         string              `json:"id"`
	ProposalID string              `json:"proposal_id"`
	Kind       domain.ExportKind   `json:"kind"`
	Status     domain.ExportStatus `json:"status"`
	Error      *string             `json:"error,omitempty"`
	StorageKey *string             `json:"storage_key,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// ExportsCreate enqueues an export job for the worker to render.
func (a *App) ExportsCreate(w http.ResponseWriter, r *http.Request) {
	proposalID := chi.URLParam(r, "id")

	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Kind == "" {
		req.Kind = domain.ExportKindBundle
	}
	if !domain.ValidExportKind(req.Kind) {
		a.error(w, http.StatusBadRequest, "bad_request", "kind must be report, invoice, or bundle")
		return
	}

	// Ensure the proposal exists before queueing work against it.
	if _, err := a.loadProposal(r, proposalID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			a.error(w, http.StatusNotFound, "not_found", "proposal not found")
			return
		}
		a.Logger.Error().Err(err).Msg("load proposal failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load proposal")
		return
	}

	row := a.SQL.QueryRow(r.Context(), sqlinline.QInsertExportJob, proposalID, req.Kind)
	var jobID string
	if err := row.Scan(&jobID); err != nil {
		a.Logger.Error().Err(err).Msg("enqueue export failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to enqueue export")
		return
	}

	a.json(w, http.StatusAccepted, map[string]any{
		"id":     jobID,
		"status": domain.ExportStatusQueued,
	})
}

// ExportsDownload streams a finished export artifact.
func (a *App) ExportsDownload(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	row := a.SQL.QueryRow(r.Context(), sqlinline.QSelectExportJobByID, id)

	var dto exportDTO
	err := row.Scan(&dto.ID, &dto.ProposalID, &dto.Kind, &dto.Status, &dto.Error, &dto.StorageKey, &dto.CreatedAt, &dto.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			a.error(w, http.StatusNotFound, "not_found", "export job not found")
			return
		}
		a.Logger.Error().Err(err).Msg("load export job failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load export job")
		return
	}
	if dto.Status != domain.ExportStatusSucceeded || dto.StorageKey == nil {
		a.error(w, http.StatusConflict, "not_ready", "export has not finished")
		return
	}

	data, err := a.Store.Read(r.Context(), *dto.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "artifact missing from storage")
			return
		}
		a.Logger.Error().Err(err).Msg("read artifact failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to read artifact")
		return
	}

	filename := path.Base(*dto.StorageKey)
	contentType := "text/csv"
	if strings.HasSuffix(filename, ".zip") {
		contentType = "application/zip"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// ExportsGet reports the status of an export job.
func (a *App) ExportsGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	row := a.SQL.QueryRow(r.Context(), sqlinline.QSelectExportJobByID, id)

	var dto exportDTO
	err := row.Scan(&dto.ID, &dto.ProposalID, &dto.Kind, &dto.Status, &dto.Error, &dto.StorageKey, &dto.CreatedAt, &dto.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			a.error(w, http.StatusNotFound, "not_found", "export job not found")
			return
		}
		a.Logger.Error().Err(err).Msg("load export job failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load export job")
		return
	}
	a.json(w, http.StatusOK, dto)
}
