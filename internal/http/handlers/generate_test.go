package handlers_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"startify/internal/domain"
	"startify/internal/http/handlers"
	"startify/internal/http/httpapi"
	"startify/internal/infra"
)

type memUsers struct {
	upserts []string
}

func (m *memUsers) UpsertByEmail(_ context.Context, email string) (*domain.User, error) {
	m.upserts = append(m.upserts, email)
	return &domain.User{ID: "u-1", Email: email}, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	return nil, domain.ErrNotFound
}

type memJobs struct {
	jobs map[string]*domain.GenerationJob
	next int
}

func newMemJobs() *memJobs {
	return &memJobs{jobs: map[string]*domain.GenerationJob{}}
}

func (m *memJobs) Create(_ context.Context, job *domain.GenerationJob) error {
	m.next++
	if job.ID == "" {
		job.ID = fmt.Sprintf("job-%d", m.next)
	}
	job.SubmittedAt = time.Now()
	job.UpdatedAt = job.SubmittedAt
	m.jobs[job.ID] = job
	return nil
}

func (m *memJobs) ClaimNextPending(_ context.Context) (*domain.GenerationJob, error) {
	for _, job := range m.jobs {
		if job.Status == domain.JobStatusPending {
			job.Status = domain.JobStatusRunning
			return job, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memJobs) UpdateStatus(_ context.Context, jobID string, status domain.JobStatus, errMsg *string, resultJSON []byte) error {
	job, ok := m.jobs[jobID]
	if !ok {
		return domain.ErrNotFound
	}
	job.Status = status
	if errMsg != nil {
		job.ErrorMessage = *errMsg
	}
	if resultJSON != nil {
		job.ResultJSON = resultJSON
	}
	return nil
}

func (m *memJobs) GetByID(_ context.Context, jobID string) (*domain.GenerationJob, error) {
	job, ok := m.jobs[jobID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return job, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *memUsers, *memJobs) {
	t.Helper()
	users := &memUsers{}
	jobs := newMemJobs()
	logger := infra.Logger(zerolog.New(io.Discard))
	app := handlers.NewApp(users, jobs, logger)
	srv := httptest.NewServer(httpapi.NewRouter(app, httpapi.Options{Logger: logger}))
	t.Cleanup(srv.Close)
	return srv, users, jobs
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return out
}

func TestGenerateEnqueuesJob(t *testing.T) {
	srv, users, jobs := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/generate",
		`{"email":"founder@example.com","idea":"health app | Industry: HealthTech | Target: B2B SMB | Founder: Solo Technical Founder"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["status"] != "pending" {
		t.Fatalf("status field = %v", body["status"])
	}
	jobID, _ := body["job_id"].(string)
	if jobID == "" {
		t.Fatal("missing job_id")
	}
	if len(users.upserts) != 1 || users.upserts[0] != "founder@example.com" {
		t.Fatalf("upserts = %v", users.upserts)
	}
	if jobs.jobs[jobID] == nil || jobs.jobs[jobID].Status != domain.JobStatusPending {
		t.Fatalf("job not persisted pending")
	}
}

func TestGenerateRequiresIdea(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/generate", `{"email":"a@b.c","idea":"   "}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["error"] != "idea required" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestStatusLifecycle(t *testing.T) {
	srv, _, jobs := newTestServer(t)
	job := &domain.GenerationJob{UserEmail: "a@b.c", IdeaText: "x", Status: domain.JobStatusPending}
	_ = jobs.Create(context.Background(), job)

	resp, err := http.Get(srv.URL + "/api/status/" + job.ID)
	if err != nil {
		t.Fatal(err)
	}
	body := decodeBody(t, resp)
	if body["status"] != "pending" || body["progress"].(float64) != 0 {
		t.Fatalf("pending body = %v", body)
	}

	_ = jobs.UpdateStatus(context.Background(), job.ID, domain.JobStatusCompleted, nil, []byte(`{}`))
	resp, err = http.Get(srv.URL + "/api/status/" + job.ID)
	if err != nil {
		t.Fatal(err)
	}
	body = decodeBody(t, resp)
	if body["status"] != "completed" || body["progress"].(float64) != 100 {
		t.Fatalf("completed body = %v", body)
	}
}

func TestStatusUnknownJob(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/status/nope")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestResultsGatesOnCompletion(t *testing.T) {
	srv, _, jobs := newTestServer(t)
	job := &domain.GenerationJob{UserEmail: "a@b.c", IdeaText: "x", Status: domain.JobStatusPending}
	_ = jobs.Create(context.Background(), job)

	resp, err := http.Get(srv.URL + "/api/results/" + job.ID)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["error"] != "job not completed" {
		t.Fatalf("error = %v", body["error"])
	}

	result := domain.GenerationResult{BrandNames: []string{"MediFlow"}}
	raw, _ := json.Marshal(result)
	_ = jobs.UpdateStatus(context.Background(), job.ID, domain.JobStatusCompleted, nil, raw)

	resp, err = http.Get(srv.URL + "/api/results/" + job.ID)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var got domain.GenerationResult
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	resp.Body.Close()
	if len(got.BrandNames) != 1 || got.BrandNames[0] != "MediFlow" {
		t.Fatalf("result = %+v", got)
	}
}

func TestDownloadBundlesDocuments(t *testing.T) {
	srv, _, jobs := newTestServer(t)
	job := &domain.GenerationJob{
		UserEmail: "a@b.c",
		IdeaText:  "health app | Industry: HealthTech | Target: B2B SMB | Founder: Solo Technical Founder",
		Status:    domain.JobStatusPending,
	}
	_ = jobs.Create(context.Background(), job)
	raw, _ := json.Marshal(domain.GenerationResult{BrandNames: []string{"MediFlow"}})
	_ = jobs.UpdateStatus(context.Background(), job.ID, domain.JobStatusCompleted, nil, raw)

	resp, err := http.Get(srv.URL + "/api/download/" + job.ID)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/zip" {
		t.Fatalf("content type = %q", ct)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("not a zip: %v", err)
	}
	if len(zr.File) != 8 {
		t.Fatalf("bundle has %d files, want the full package", len(zr.File))
	}
}

func TestErrorEnvelopeLocalized(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/status/nope", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Accept-Language", "id-ID,id;q=0.9")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if lang := resp.Header.Get("Content-Language"); lang != "id" {
		t.Fatalf("Content-Language = %q, want %q", lang, "id")
	}
	body := decodeBody(t, resp)
	if body["error"] != "not found" {
		t.Fatalf("error field = %v, must stay English for client matching", body["error"])
	}
	if body["message"] != "tidak ditemukan" {
		t.Fatalf("message field = %v", body["message"])
	}
}

func TestErrorEnvelopeDefaultsToEnglish(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/status/nope")
	if err != nil {
		t.Fatal(err)
	}
	if lang := resp.Header.Get("Content-Language"); lang != "en" {
		t.Fatalf("Content-Language = %q, want %q", lang, "en")
	}
	body := decodeBody(t, resp)
	if body["error"] != "not found" {
		t.Fatalf("error field = %v", body["error"])
	}
	if _, ok := body["message"]; ok {
		t.Fatalf("unexpected message field in default locale: %v", body["message"])
	}
}

func TestHealth(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	body := decodeBody(t, resp)
	if body["status"] != "ok" {
		t.Fatalf("health body = %v", body)
	}
}
