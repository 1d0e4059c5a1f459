package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"server/internal/domain"
	"server/internal/report"
)

// ProposalReport streams the campaign report CSV for a proposal.
func (a *App) ProposalReport(w http.ResponseWriter, r *http.Request) {
	a.serveArtifact(w, r, report.CampaignReport, report.ReportFilename(time.Now()))
}

// ProposalInvoice streams the proposal/invoice CSV for a proposal.
func (a *App) ProposalInvoice(w http.ResponseWriter, r *http.Request) {
	a.serveArtifact(w, r, report.Invoice, report.InvoiceFilename(time.Now()))
}

type renderFunc func(*domain.Proposal, *report.Formatter) ([]byte, error)

func (a *App) serveArtifact(w http.ResponseWriter, r *http.Request, render renderFunc, filename string) {
	id := chi.URLParam(r, "id")
	proposal, err := a.loadProposal(r, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			a.error(w, http.StatusNotFound, "not_found", "proposal not found")
			return
		}
		a.Logger.Error().Err(err).Msg("load proposal failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load proposal")
		return
	}

	// The artifact renders in the locale detected for this request, not the
	// one the proposal was created under.
	data, err := render(proposal, report.NewFormatter(a.locale(r)))
	if err != nil {
		a.Logger.Error().Err(err).Msg("render artifact failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to render artifact")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
