package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startify/internal/domain"
)

// Both backends must behave identically; the suite runs against each.
func stores(t *testing.T) map[string]domain.SessionRepository {
	t.Helper()
	sqlite, err := NewSQLiteStore(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })
	return map[string]domain.SessionRepository{
		"memory": NewMemoryStore(),
		"sqlite": sqlite,
	}
}

func TestEmptySlotsReturnNotFound(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_, err := store.AuthToken(ctx)
			assert.ErrorIs(t, err, domain.ErrNotFound)
			_, err = store.Profile(ctx)
			assert.ErrorIs(t, err, domain.ErrNotFound)
			_, err = store.LatestResult(ctx)
			assert.ErrorIs(t, err, domain.ErrNotFound)
			_, err = store.Credential(ctx, "nobody@example.com")
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestAuthTokenRoundTrip(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.SetAuthToken(ctx, "token-1"))
			got, err := store.AuthToken(ctx)
			require.NoError(t, err)
			assert.Equal(t, "token-1", got)

			// Last write wins.
			require.NoError(t, store.SetAuthToken(ctx, "token-2"))
			got, err = store.AuthToken(ctx)
			require.NoError(t, err)
			assert.Equal(t, "token-2", got)
		})
	}
}

func TestProfileRoundTrip(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			p := &domain.Profile{Email: "founder@example.com", Name: "Founder"}
			require.NoError(t, store.SetProfile(ctx, p))
			got, err := store.Profile(ctx)
			require.NoError(t, err)
			assert.Equal(t, p.Email, got.Email)
			assert.Equal(t, p.Name, got.Name)
		})
	}
}

func TestCredentialsPerEmail(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.SetCredential(ctx, "a@example.com", "pw-a"))
			require.NoError(t, store.SetCredential(ctx, "b@example.com", "pw-b"))

			got, err := store.Credential(ctx, "a@example.com")
			require.NoError(t, err)
			assert.Equal(t, "pw-a", got)

			require.NoError(t, store.SetCredential(ctx, "a@example.com", "pw-a2"))
			got, err = store.Credential(ctx, "a@example.com")
			require.NoError(t, err)
			assert.Equal(t, "pw-a2", got)
		})
	}
}

func TestLatestResultSingleSlot(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			first := &domain.GenerationResult{BrandNames: []string{"MediFlow"}}
			second := &domain.GenerationResult{BrandNames: []string{"EduSpark"}}

			require.NoError(t, store.SetLatestResult(ctx, first))
			require.NoError(t, store.SetLatestResult(ctx, second))

			got, err := store.LatestResult(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"EduSpark"}, got.BrandNames)

			require.NoError(t, store.ClearLatestResult(ctx))
			_, err = store.LatestResult(ctx)
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestClearLatestResultIsIdempotent(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.ClearLatestResult(ctx))
			require.NoError(t, store.ClearLatestResult(ctx))
		})
	}
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	first, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.SetLatestResult(ctx, &domain.GenerationResult{
		BrandNames: []string{"MediFlow"},
		MarketInsights: domain.MarketInsights{
			MarketSize: "$374B",
			Growth:     "18.3% CAGR",
		},
	}))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.LatestResult(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"MediFlow"}, got.BrandNames)
	assert.Equal(t, "$374B", got.MarketInsights.MarketSize)
}
