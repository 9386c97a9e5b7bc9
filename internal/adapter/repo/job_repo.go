package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"startify/internal/domain"
	"startify/internal/infra"
	"startify/internal/sqlinline"
)

// JobRepositoryPG implements domain.JobRepository on PostgreSQL.
type JobRepositoryPG struct {
	db infra.SQLExecutor
}

// NewJobRepository creates a job repository backed by the SQL runner.
func NewJobRepository(db infra.SQLExecutor) *JobRepositoryPG {
	return &JobRepositoryPG{db: db}
}

// Create inserts a new pending job, assigning an id if the caller did not.
func (r *JobRepositoryPG) Create(ctx context.Context, job *domain.GenerationJob) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Status == "" {
		job.Status = domain.JobStatusPending
	}
	_, err := r.db.Exec(ctx, sqlinline.QInsertJob,
		job.ID,
		job.UserEmail,
		job.Status,
		job.IdeaText,
	)
	return err
}

// ClaimNextPending atomically claims the oldest pending job and flips it to
// running. Returns ErrNotFound when the queue is empty.
func (r *JobRepositoryPG) ClaimNextPending(ctx context.Context) (*domain.GenerationJob, error) {
	row := r.db.QueryRow(ctx, sqlinline.QClaimNextPendingJob)
	var job domain.GenerationJob
	if err := row.Scan(
		&job.ID,
		&job.UserEmail,
		&job.Status,
		&job.IdeaText,
		&job.SubmittedAt,
		&job.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// UpdateStatus updates job status and optionally error/result payloads.
func (r *JobRepositoryPG) UpdateStatus(ctx context.Context, jobID string, status domain.JobStatus, errMsg *string, resultJSON []byte) error {
	_, err := r.db.Exec(ctx, sqlinline.QUpdateJobStatus, jobID, status, errMsg, nullableBytes(resultJSON))
	return err
}

// GetByID fetches a job by its identifier.
func (r *JobRepositoryPG) GetByID(ctx context.Context, jobID string) (*domain.GenerationJob, error) {
	row := r.db.QueryRow(ctx, sqlinline.QSelectJobByID, jobID)
	var job domain.GenerationJob
	if err := row.Scan(
		&job.ID,
		&job.UserEmail,
		&job.Status,
		&job.IdeaText,
		&job.ResultJSON,
		&job.ErrorMessage,
		&job.SubmittedAt,
		&job.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func nullableBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}

var _ domain.JobRepository = (*JobRepositoryPG)(nil)
