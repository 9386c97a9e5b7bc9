package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"startify/internal/adapter/repo"
	"startify/internal/content"
	"startify/internal/domain"
	"startify/internal/infra"
)

type jobWorker struct {
	ctx          context.Context
	jobs         domain.JobRepository
	logger       infra.Logger
	pollInterval time.Duration
}

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: db connection failed")
	}
	defer pool.Close()

	runner := infra.NewSQLRunner(pool, logger)

	worker := &jobWorker{
		ctx:          ctx,
		jobs:         repo.NewJobRepository(runner),
		logger:       logger,
		pollInterval: cfg.PollInterval,
	}

	if err := worker.Run(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("worker: stopped with error")
	}
	logger.Info().Msg("worker: stopped")
}

func (w *jobWorker) Run() error {
	w.logger.Info().Msg("worker: started")
	for {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		job, err := w.jobs.ClaimNextPending(w.ctx)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				w.sleep()
				continue
			}
			if w.ctx.Err() != nil {
				return w.ctx.Err()
			}
			w.logger.Error().Err(err).Msg("worker: failed to claim job")
			w.sleep()
			continue
		}

		w.handleJob(job)
	}
}

func (w *jobWorker) sleep() {
	select {
	case <-w.ctx.Done():
	case <-time.After(w.pollInterval):
	}
}

func (w *jobWorker) handleJob(job *domain.GenerationJob) {
	w.logger.Info().Str("job_id", job.ID).Msg("worker: picked job")

	result := content.GenerateFromComposite(job.IdeaText)
	payload, err := json.Marshal(result)
	if err != nil {
		msg := err.Error()
		if updateErr := w.jobs.UpdateStatus(w.ctx, job.ID, domain.JobStatusFailed, &msg, nil); updateErr != nil {
			w.logger.Error().Err(updateErr).Str("job_id", job.ID).Msg("worker: update status failed")
		}
		w.logger.Error().Err(err).Str("job_id", job.ID).Msg("worker: job failed")
		return
	}

	if err := w.jobs.UpdateStatus(w.ctx, job.ID, domain.JobStatusCompleted, nil, payload); err != nil {
		w.logger.Error().Err(err).Str("job_id", job.ID).Msg("worker: update status failed")
		return
	}
	w.logger.Info().Str("job_id", job.ID).Msg("worker: job completed")
}
