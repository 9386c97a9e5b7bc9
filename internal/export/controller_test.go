package export

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startify/internal/derive"
	"startify/internal/domain"
	"startify/internal/render"
)

type fakeStore struct {
	mu    sync.Mutex
	saved []domain.Document
	err   error
}

func (s *fakeStore) SaveDocument(_ context.Context, doc domain.Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, doc)
	return doc.Filename, nil
}

func instantWait(context.Context, time.Duration) error { return nil }

func testParams() render.Params {
	idea := domain.StartupIdea{
		Description:    "AI health monitoring for clinics",
		Industry:       "HealthTech",
		TargetMarket:   "B2B SMB",
		FounderPersona: "Solo Technical Founder",
	}
	return render.Params{Idea: idea, Metrics: derive.Derive(idea)}
}

func TestExportAllDeliversFreeItemsOnce(t *testing.T) {
	store := &fakeStore{}
	var events []Event
	c := NewController(Options{
		Store:   store,
		Wait:    instantWait,
		OnEvent: func(e Event) { events = append(events, e) },
	})

	items, err := c.ExportAll(context.Background(), testParams())
	require.NoError(t, err)

	require.Len(t, store.saved, 5, "exactly the free items, exactly once each")
	wantOrder := []domain.DocumentType{
		domain.DocBusinessPlan,
		domain.DocPitchDeck,
		domain.DocFinancialModel,
		domain.DocBrandPackage,
		domain.DocMarketingKit,
	}
	for i, doc := range store.saved {
		assert.Equal(t, wantOrder[i], doc.Type)
	}

	require.Len(t, events, 5)
	for _, e := range events {
		assert.NoError(t, e.Err)
		assert.False(t, e.Item.Generating, "Generating must be reset after delivery")
	}
	for _, item := range items {
		assert.False(t, item.Generating)
	}
}

func TestExportAllPacesBetweenDeliveries(t *testing.T) {
	store := &fakeStore{}
	var waits []time.Duration
	c := NewController(Options{
		Store: store,
		Wait: func(_ context.Context, d time.Duration) error {
			waits = append(waits, d)
			return nil
		},
	})

	_, err := c.ExportAll(context.Background(), testParams())
	require.NoError(t, err)

	// 5 deliveries, pacing between consecutive ones only.
	require.Len(t, waits, 4)
	for _, d := range waits {
		assert.Equal(t, 500*time.Millisecond, d)
	}
}

func TestExportAllSkipsPremiumWhileLocked(t *testing.T) {
	store := &fakeStore{}
	c := NewController(Options{Store: store, Wait: instantWait})

	_, err := c.ExportAll(context.Background(), testParams())
	require.NoError(t, err)
	for _, doc := range store.saved {
		assert.NotContains(t, []domain.DocumentType{
			domain.DocInvestorData, domain.DocMarketReport, domain.DocLegalDocs,
		}, doc.Type)
	}
}

func TestExportAllIncludesPremiumWhenUnlocked(t *testing.T) {
	store := &fakeStore{}
	c := NewController(Options{Store: store, Wait: instantWait, PremiumUnlocked: true})

	_, err := c.ExportAll(context.Background(), testParams())
	require.NoError(t, err)
	assert.Len(t, store.saved, 8)
}

func TestExportOnePremiumRejectedBeforeIO(t *testing.T) {
	store := &fakeStore{}
	c := NewController(Options{Store: store, Wait: instantWait})

	_, err := c.ExportOne(context.Background(), domain.DocInvestorData, testParams())
	assert.ErrorIs(t, err, domain.ErrGatedFeature)
	assert.Empty(t, store.saved, "gated rejection must not touch the store")
}

func TestExportOneUnknownType(t *testing.T) {
	c := NewController(Options{Store: &fakeStore{}, Wait: instantWait})

	_, err := c.ExportOne(context.Background(), domain.DocumentType("nope"), testParams())
	assert.ErrorIs(t, err, domain.ErrUnknownDocument)
}

func TestExportOneDeliversFreeItem(t *testing.T) {
	store := &fakeStore{}
	c := NewController(Options{Store: store, Wait: instantWait})

	key, err := c.ExportOne(context.Background(), domain.DocBusinessPlan, testParams())
	require.NoError(t, err)
	assert.Equal(t, "business-plan_HealthTech.html", key)
	require.Len(t, store.saved, 1)
}

func TestExportAllStopsOnDeliveryError(t *testing.T) {
	boom := errors.New("disk full")
	store := &fakeStore{err: boom}
	var events []Event
	c := NewController(Options{
		Store:   store,
		Wait:    instantWait,
		OnEvent: func(e Event) { events = append(events, e) },
	})

	_, err := c.ExportAll(context.Background(), testParams())
	assert.ErrorIs(t, err, boom)
	require.Len(t, events, 1)
	assert.ErrorIs(t, events[0].Err, boom)
}

func TestBundleContainsFreeDocuments(t *testing.T) {
	c := NewController(Options{Store: &fakeStore{}, Wait: instantWait})

	data, err := c.Bundle(context.Background(), testParams())
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Len(t, zr.File, 5)
	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	assert.True(t, names["business-plan_HealthTech.html"])
	assert.True(t, names["pitch-deck_HealthTech.html"])
}
