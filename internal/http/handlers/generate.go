package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"startify/internal/derive"
	"startify/internal/domain"
	"startify/internal/middleware"
	"startify/internal/render"
)

type generateRequest struct {
	Email string `json:"email"`
	Idea  string `json:"idea"`
}

// Generate enqueues a new generation job.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, r, http.StatusBadRequest, "invalid payload")
		return
	}
	if strings.TrimSpace(req.Idea) == "" {
		a.error(w, r, http.StatusBadRequest, "idea required")
		return
	}

	email := strings.TrimSpace(req.Email)
	if email != "" {
		if _, err := a.Users.UpsertByEmail(r.Context(), email); err != nil {
			a.Logger.Error().Err(err).Msg("upsert user failed")
			a.error(w, r, http.StatusInternalServerError, "internal error")
			return
		}
	}

	job := &domain.GenerationJob{
		UserEmail: email,
		Status:    domain.JobStatusPending,
		IdeaText:  req.Idea,
	}
	if err := a.Jobs.Create(r.Context(), job); err != nil {
		a.Logger.Error().Err(err).Msg("create job failed")
		a.error(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	a.Logger.Info().
		Str("job_id", job.ID).
		Str("country", middleware.CountryFromContext(r.Context())).
		Msg("job queued")
	a.json(w, r, http.StatusOK, map[string]string{
		"job_id": job.ID,
		"status": string(job.Status),
	})
}

// Status reports job state with a coarse progress figure.
func (a *App) Status(w http.ResponseWriter, r *http.Request) {
	job, ok := a.loadJob(w, r)
	if !ok {
		return
	}
	a.json(w, r, http.StatusOK, map[string]any{
		"job_id":   job.ID,
		"status":   string(job.Status),
		"progress": jobProgress(job),
	})
}

// Results returns the full generation result of a completed job.
func (a *App) Results(w http.ResponseWriter, r *http.Request) {
	job, ok := a.loadJob(w, r)
	if !ok {
		return
	}
	if job.Status != domain.JobStatusCompleted {
		a.error(w, r, http.StatusBadRequest, "job not completed")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Language", middleware.LocaleFromContext(r.Context()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(job.ResultJSON)
}

// Download streams the zipped document package of a completed job.
func (a *App) Download(w http.ResponseWriter, r *http.Request) {
	job, ok := a.loadJob(w, r)
	if !ok {
		return
	}
	if job.Status != domain.JobStatusCompleted {
		a.error(w, r, http.StatusBadRequest, "job not completed")
		return
	}

	idea := domain.ParseComposite(job.IdeaText)
	var result domain.GenerationResult
	if err := json.Unmarshal(job.ResultJSON, &result); err != nil {
		a.Logger.Error().Err(err).Str("job_id", job.ID).Msg("stored result is corrupt")
		a.error(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	bundle, err := a.Exports.Bundle(r.Context(), render.Params{
		Idea:    idea,
		Metrics: derive.Derive(idea),
		Result:  &result,
	})
	if err != nil {
		a.Logger.Error().Err(err).Str("job_id", job.ID).Msg("bundle failed")
		a.error(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="startup_package.zip"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(bundle)
}

func (a *App) loadJob(w http.ResponseWriter, r *http.Request) (*domain.GenerationJob, bool) {
	jobID := chi.URLParam(r, "job_id")
	if jobID == "" {
		a.error(w, r, http.StatusBadRequest, "job id required")
		return nil, false
	}
	job, err := a.Jobs.GetByID(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, r, http.StatusNotFound, "not found")
			return nil, false
		}
		a.Logger.Error().Err(err).Str("job_id", jobID).Msg("load job failed")
		a.error(w, r, http.StatusInternalServerError, "internal error")
		return nil, false
	}
	return job, true
}

// jobProgress maps a job onto the 0-100 progress scale the status endpoint
// reports. Running jobs advance with wall-clock time and cap at 95 until the
// worker actually finishes.
func jobProgress(job *domain.GenerationJob) int {
	switch job.Status {
	case domain.JobStatusCompleted, domain.JobStatusFailed:
		return 100
	case domain.JobStatusRunning:
		elapsed := int(time.Since(job.SubmittedAt).Seconds())
		progress := elapsed * 100 / 30
		if progress > 95 {
			progress = 95
		}
		if progress < 5 {
			progress = 5
		}
		return progress
	default:
		return 0
	}
}
