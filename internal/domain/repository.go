package domain

import "context"

// UserRepository defines server-side persistence for users.
type UserRepository interface {
	UpsertByEmail(ctx context.Context, email string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// JobRepository defines server-side persistence for generation jobs.
type JobRepository interface {
	Create(ctx context.Context, job *GenerationJob) error
	ClaimNextPending(ctx context.Context) (*GenerationJob, error)
	UpdateStatus(ctx context.Context, jobID string, status JobStatus, errMsg *string, resultJSON []byte) error
	GetByID(ctx context.Context, jobID string) (*GenerationJob, error)
}

// SessionRepository is the client-side persistence boundary: a typed
// key-value store standing in for browser-local storage. Implementations are
// single-slot and last-write-wins; Get methods return ErrNotFound when the
// slot is empty.
type SessionRepository interface {
	AuthToken(ctx context.Context) (string, error)
	SetAuthToken(ctx context.Context, token string) error

	Profile(ctx context.Context) (*Profile, error)
	SetProfile(ctx context.Context, p *Profile) error

	// Credential reads the locally stored password for an email. The map is
	// plaintext and demo-only; a production deployment must replace it with a
	// real authentication service.
	Credential(ctx context.Context, email string) (string, error)
	SetCredential(ctx context.Context, email, password string) error

	LatestResult(ctx context.Context) (*GenerationResult, error)
	SetLatestResult(ctx context.Context, r *GenerationResult) error
	ClearLatestResult(ctx context.Context) error
}
