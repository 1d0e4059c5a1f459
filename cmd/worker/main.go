package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"server/internal/adapter/repo"
	"server/internal/domain"
	"server/internal/infra"
	"server/internal/report"
	"server/internal/storage"
	zipbundle "server/pkg/zip"
)

const jobPollInterval = 2 * time.Second

type exportWorker struct {
	proposals domain.ProposalRepository
	jobs      domain.ExportJobRepository
	logger    zerolog.Logger
	store     *storage.FileStore
	metrics   *infra.Metrics
}

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv, "export-worker")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: db connection failed")
	}
	defer pool.Close()

	store, err := storage.NewFileStore(cfg.StoragePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: storage init failed")
	}

	metrics := infra.NewMetrics()
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
		logger.Info().Msgf("worker metrics listening on :%s", cfg.MetricsPort)
		if err := http.ListenAndServe(":"+cfg.MetricsPort, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("worker: metrics server failed")
		}
	}()

	runner := infra.NewSQLRunner(pool, logger)
	w := &exportWorker{
		proposals: repo.NewProposalRepository(runner),
		jobs:      repo.NewExportJobRepository(runner),
		logger:    logger,
		store:     store,
		metrics:   metrics,
	}

	logger.Info().Msg("export worker started")
	w.run(ctx)
	logger.Info().Msg("export worker stopped")
}

func (w *exportWorker) run(ctx context.Context) {
	ticker := time.NewTicker(jobPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Drain the queue before sleeping again.
			for {
				err := w.processNext(ctx)
				if errors.Is(err, domain.ErrNotFound) {
					break
				}
				if err != nil {
					w.logger.Error().Err(err).Msg("worker: claim failed")
					break
				}
			}
		}
	}
}

func (w *exportWorker) processNext(ctx context.Context) error {
	job, err := w.jobs.Claim(ctx)
	if err != nil {
		return err
	}

	w.metrics.ExportsStarted.Inc()
	w.logger.Info().Str("job_id", job.ID).Str("kind", string(job.Kind)).Msg("worker: job claimed")

	key, err := w.render(ctx, job)
	if err != nil {
		msg := err.Error()
		w.finalize(ctx, job.ID, domain.ExportStatusFailed, &msg, nil)
		w.metrics.ExportsFinished.WithLabelValues("failed").Inc()
		w.logger.Error().Err(err).Str("job_id", job.ID).Msg("worker: job failed")
		return nil
	}

	w.finalize(ctx, job.ID, domain.ExportStatusSucceeded, nil, &key)
	w.metrics.ExportsFinished.WithLabelValues("succeeded").Inc()
	w.logger.Info().Str("job_id", job.ID).Str("storage_key", key).Msg("worker: job done")
	return nil
}

func (w *exportWorker) render(ctx context.Context, job *domain.ExportJob) (string, error) {
	proposal, err := w.proposals.GetByID(ctx, job.ProposalID)
	if err != nil {
		return "", err
	}

	formatter := report.NewFormatter(proposal.Locale)
	now := proposal.CreatedAt

	var filename string
	var data []byte
	switch job.Kind {
	case domain.ExportKindReport:
		filename = report.ReportFilename(now)
		data, err = report.CampaignReport(proposal, formatter)
	case domain.ExportKindInvoice:
		filename = report.InvoiceFilename(now)
		data, err = report.Invoice(proposal, formatter)
	case domain.ExportKindBundle:
		var reportCSV, invoiceCSV []byte
		if reportCSV, err = report.CampaignReport(proposal, formatter); err != nil {
			return "", err
		}
		if invoiceCSV, err = report.Invoice(proposal, formatter); err != nil {
			return "", err
		}
		filename = proposal.Reference + "_bundle.zip"
		data, err = zipbundle.Bundle([]zipbundle.Entry{
			{Filename: report.ReportFilename(now), Data: reportCSV},
			{Filename: report.InvoiceFilename(now), Data: invoiceCSV},
		})
	default:
		return "", domain.ErrUnsupportedExport
	}
	if err != nil {
		return "", err
	}

	return w.store.Write(ctx, path.Join("exports", job.ID, filename), data)
}

func (w *exportWorker) finalize(ctx context.Context, jobID string, status domain.ExportStatus, errMsg *string, storageKey *string) {
	if err := w.jobs.Finalize(ctx, jobID, status, errMsg, storageKey); err != nil {
		w.logger.Error().Err(err).Str("job_id", jobID).Msg("worker: finalize failed")
	}
}
