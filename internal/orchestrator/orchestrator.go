// Package orchestrator drives a generation job from submission to cached
// result. It owns the client-side state machine: submit, poll the Job Service
// on a fixed interval, advance the presentational stage estimator, and land
// the result in the session store.
//
// Only one job is live at a time. A new Start supersedes any job still in
// flight; the superseded loop stops touching shared state the moment it
// notices a newer generation.
package orchestrator

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"startify/internal/domain"
	"startify/internal/infra"
	"startify/internal/jobservice"
)

// Client is the slice of the Job Service API the orchestrator needs.
type Client interface {
	Generate(ctx context.Context, email, idea string) (*jobservice.GenerateResponse, error)
	Status(ctx context.Context, jobID string) (*jobservice.StatusResponse, error)
	Results(ctx context.Context, jobID string) (*domain.GenerationResult, error)
}

// Options configures the orchestrator.
type Options struct {
	Client       Client
	Cache        domain.SessionRepository
	Logger       *infra.Logger
	PollInterval time.Duration
	MaxAttempts  int

	// now and wait exist for tests; production uses the clock.
	Now  func() time.Time
	Wait func(ctx context.Context, d time.Duration) error
}

// Orchestrator tracks the live job and its presentational stages.
type Orchestrator struct {
	client      Client
	cache       domain.SessionRepository
	logger      *infra.Logger
	interval    time.Duration
	maxAttempts int
	now         func() time.Time
	wait        func(ctx context.Context, d time.Duration) error

	// cacheMu orders cache writes against the supersede sequence in Start.
	// It is always acquired before mu.
	cacheMu sync.Mutex

	mu         sync.Mutex
	generation int
	jobID      string
	status     domain.JobStatus
	stages     []domain.AgentStage
	stageIdx   int
	startedAt  time.Time
	result     *domain.GenerationResult
	err        error
	done       chan struct{}
}

// New constructs an orchestrator with sane defaults.
func New(opts Options) (*Orchestrator, error) {
	if opts.Client == nil {
		return nil, fmt.Errorf("orchestrator: client is required")
	}
	if opts.Cache == nil {
		return nil, fmt.Errorf("orchestrator: cache is required")
	}
	interval := opts.PollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 60
	}
	logger := opts.Logger
	if logger == nil {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	wait := opts.Wait
	if wait == nil {
		wait = sleepWait
	}
	return &Orchestrator{
		client:      opts.Client,
		cache:       opts.Cache,
		logger:      logger,
		interval:    interval,
		maxAttempts: maxAttempts,
		now:         now,
		wait:        wait,
		stages:      newStages(),
	}, nil
}

func sleepWait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Start validates and submits an idea, then polls in the background until the
// job finishes, times out, or is superseded. It returns the job id as soon as
// the submission is acknowledged.
func (o *Orchestrator) Start(ctx context.Context, email string, idea domain.StartupIdea) (string, error) {
	if err := idea.Validate(); err != nil {
		return "", err
	}

	// The previous result is stale the moment a new submission begins.
	// Holding cacheMu across clear-then-bump means a superseded job that
	// already passed its staleness check cannot commit in between.
	o.cacheMu.Lock()
	if err := o.cache.ClearLatestResult(ctx); err != nil {
		o.cacheMu.Unlock()
		return "", fmt.Errorf("orchestrator: clear cached result: %w", err)
	}

	o.mu.Lock()
	o.generation++
	gen := o.generation
	o.jobID = ""
	o.status = domain.JobStatusPending
	o.stages = newStages()
	o.stageIdx = 0
	o.startedAt = o.now()
	o.result = nil
	o.err = nil
	o.done = make(chan struct{})
	done := o.done
	o.mu.Unlock()
	o.cacheMu.Unlock()

	ack, err := o.client.Generate(ctx, email, idea.Composite())
	if err != nil {
		o.finish(gen, domain.JobStatusFailed, nil, err, done)
		return "", err
	}

	o.mu.Lock()
	if o.generation == gen {
		o.jobID = ack.JobID
		o.status = domain.JobStatusRunning
		o.stages[0].Status = domain.StageRunning
	}
	o.mu.Unlock()

	o.logger.Info().Str("job_id", ack.JobID).Int("generation", gen).Msg("generation job started")

	go o.run(ctx, gen, ack.JobID, done)
	return ack.JobID, nil
}

// run is the poll loop. It is the only goroutine that mutates state for its
// generation, so ticks are serialized by construction.
func (o *Orchestrator) run(ctx context.Context, gen int, jobID string, done chan struct{}) {
	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		if err := o.wait(ctx, o.interval); err != nil {
			o.finish(gen, domain.JobStatusFailed, nil, err, done)
			return
		}
		if o.stale(gen) {
			o.finish(gen, domain.JobStatusFailed, nil, domain.ErrJobSuperseded, done)
			return
		}

		st, err := o.client.Status(ctx, jobID)
		if err != nil {
			o.finish(gen, domain.JobStatusFailed, nil, err, done)
			return
		}
		if o.stale(gen) {
			o.finish(gen, domain.JobStatusFailed, nil, domain.ErrJobSuperseded, done)
			return
		}

		switch domain.JobStatus(st.Status) {
		case domain.JobStatusCompleted:
			result, err := o.client.Results(ctx, jobID)
			if err != nil {
				o.finish(gen, domain.JobStatusFailed, nil, err, done)
				return
			}
			if err := o.cacheResult(ctx, gen, result); err != nil {
				o.finish(gen, domain.JobStatusFailed, nil, err, done)
				return
			}
			o.finish(gen, domain.JobStatusCompleted, result, nil, done)
			return
		case domain.JobStatusFailed:
			o.finish(gen, domain.JobStatusFailed, nil,
				fmt.Errorf("orchestrator: job failed: %s", st.Error), done)
			return
		default:
			o.advanceStages(gen)
		}
	}
	o.finish(gen, domain.JobStatusFailed, nil, domain.ErrJobTimeout, done)
}

func (o *Orchestrator) stale(gen int) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.generation != gen
}

// advanceStages moves the elapsed-time estimator forward. The index never
// moves backwards even if the clock does.
func (o *Orchestrator) advanceStages(gen int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.generation != gen {
		return
	}
	elapsed := int(o.now().Sub(o.startedAt).Seconds())
	idx := estimateStageIndex(elapsed)
	if idx < o.stageIdx {
		idx = o.stageIdx
	}
	for i := 0; i < idx; i++ {
		o.stages[i].Status = domain.StageCompleted
		o.stages[i].Progress = 100
	}
	o.stages[idx].Status = domain.StageRunning
	o.stageIdx = idx
}

// cacheResult commits a completed job's result. The staleness check and the
// write happen under cacheMu so a concurrent Start cannot clear and bump the
// generation in between, which would let a superseded result land.
func (o *Orchestrator) cacheResult(ctx context.Context, gen int, result *domain.GenerationResult) error {
	o.cacheMu.Lock()
	defer o.cacheMu.Unlock()
	if o.stale(gen) {
		return domain.ErrJobSuperseded
	}
	if err := o.cache.SetLatestResult(ctx, result); err != nil {
		return fmt.Errorf("orchestrator: cache result: %w", err)
	}
	return nil
}

// finish records the terminal state for a generation. A stale generation
// only closes its own done channel; shared state belongs to the newer job.
func (o *Orchestrator) finish(gen int, status domain.JobStatus, result *domain.GenerationResult, err error, done chan struct{}) {
	o.mu.Lock()
	if o.generation == gen {
		o.status = status
		o.result = result
		o.err = err
		switch status {
		case domain.JobStatusCompleted:
			for i := range o.stages {
				o.stages[i].Status = domain.StageCompleted
				o.stages[i].Progress = 100
			}
		case domain.JobStatusFailed:
			for i := range o.stages {
				if o.stages[i].Status != domain.StageCompleted {
					o.stages[i].Status = domain.StageError
				}
			}
		}
	} else if err == nil {
		err = domain.ErrJobSuperseded
	}
	o.mu.Unlock()

	if err != nil {
		o.logger.Warn().Int("generation", gen).Err(err).Msg("generation job ended")
	} else {
		o.logger.Info().Int("generation", gen).Msg("generation job completed")
	}
	close(done)
}

// Await blocks until the job started by the matching Start call reaches a
// terminal state, then returns its result.
func (o *Orchestrator) Await(ctx context.Context) (*domain.GenerationResult, error) {
	o.mu.Lock()
	gen := o.generation
	done := o.done
	o.mu.Unlock()
	if done == nil {
		return nil, domain.ErrNotFound
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-done:
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.generation != gen {
		return nil, domain.ErrJobSuperseded
	}
	if o.err != nil {
		return nil, o.err
	}
	return o.result, nil
}

// Snapshot returns the current job id, status, and a copy of the stage list.
func (o *Orchestrator) Snapshot() (string, domain.JobStatus, []domain.AgentStage) {
	o.mu.Lock()
	defer o.mu.Unlock()
	stages := make([]domain.AgentStage, len(o.stages))
	copy(stages, o.stages)
	return o.jobID, o.status, stages
}
