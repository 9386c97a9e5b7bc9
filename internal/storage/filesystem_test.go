package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"startify/internal/domain"
)

func TestSaveDocumentRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	doc := domain.Document{
		Type:     domain.DocBusinessPlan,
		Filename: "business-plan_HealthTech.html",
		MIME:     "text/html",
		Content:  []byte("<html>plan</html>"),
	}
	key, err := store.SaveDocument(ctx, doc)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if key != doc.Filename {
		t.Fatalf("key = %q, want %q", key, doc.Filename)
	}

	got, err := store.Read(ctx, key)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(doc.Content) {
		t.Fatalf("content = %q", got)
	}
}

func TestReadMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.Read(context.Background(), "nope.html"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestWriteRejectsTraversal(t *testing.T) {
	base := t.TempDir()
	store, err := NewFileStore(base)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.Write(context.Background(), "../escape.html", []byte("x")); err == nil {
		t.Fatal("expected traversal rejection")
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(base), "escape.html")); err == nil {
		t.Fatal("file escaped storage root")
	}
}

func TestWriteNestedKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	key, err := store.Write(context.Background(), "exports/2026/report.html", []byte("r"))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if key != "exports/2026/report.html" {
		t.Fatalf("key = %q", key)
	}
	if _, err := store.Read(context.Background(), key); err != nil {
		t.Fatalf("read back: %v", err)
	}
}
