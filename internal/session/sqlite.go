package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"startify/internal/domain"
)

// Slot keys for the single-value table.
const (
	keyAuthToken    = "auth_token"
	keyProfile      = "profile"
	keyLatestResult = "latest_startup_results"
)

// SQLiteStore persists session state in a local SQLite file so it survives
// restarts, the durable stand-in for browser-local storage.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the session database at path and ensures
// the schema exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("session: db path is required")
	}
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("session: open database: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS slots (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS credentials (
			email TEXT PRIMARY KEY,
			password TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("session: create schema: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) getSlot(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("session: read slot %s: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) setSlot(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO slots (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("session: write slot %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) clearSlot(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("session: clear slot %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) AuthToken(ctx context.Context) (string, error) {
	return s.getSlot(ctx, keyAuthToken)
}

func (s *SQLiteStore) SetAuthToken(ctx context.Context, token string) error {
	return s.setSlot(ctx, keyAuthToken, token)
}

func (s *SQLiteStore) Profile(ctx context.Context) (*domain.Profile, error) {
	raw, err := s.getSlot(ctx, keyProfile)
	if err != nil {
		return nil, err
	}
	var p domain.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("session: decode profile: %w", err)
	}
	return &p, nil
}

func (s *SQLiteStore) SetProfile(ctx context.Context, p *domain.Profile) error {
	if p == nil {
		return s.clearSlot(ctx, keyProfile)
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("session: encode profile: %w", err)
	}
	return s.setSlot(ctx, keyProfile, string(raw))
}

func (s *SQLiteStore) Credential(ctx context.Context, email string) (string, error) {
	var password string
	err := s.db.QueryRowContext(ctx,
		`SELECT password FROM credentials WHERE email = ?`, email).Scan(&password)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("session: read credential: %w", err)
	}
	return password, nil
}

func (s *SQLiteStore) SetCredential(ctx context.Context, email, password string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO credentials (email, password) VALUES (?, ?)
		 ON CONFLICT(email) DO UPDATE SET password = excluded.password`, email, password)
	if err != nil {
		return fmt.Errorf("session: write credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) LatestResult(ctx context.Context) (*domain.GenerationResult, error) {
	raw, err := s.getSlot(ctx, keyLatestResult)
	if err != nil {
		return nil, err
	}
	var r domain.GenerationResult
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return nil, fmt.Errorf("session: decode result: %w", err)
	}
	return &r, nil
}

func (s *SQLiteStore) SetLatestResult(ctx context.Context, r *domain.GenerationResult) error {
	if r == nil {
		return s.clearSlot(ctx, keyLatestResult)
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("session: encode result: %w", err)
	}
	return s.setSlot(ctx, keyLatestResult, string(raw))
}

func (s *SQLiteStore) ClearLatestResult(ctx context.Context) error {
	return s.clearSlot(ctx, keyLatestResult)
}

var _ domain.SessionRepository = (*SQLiteStore)(nil)
