package zip

import (
	stdzip "archive/zip"
	"bytes"
	"io"
	"testing"
)

func TestArchive(t *testing.T) {
	data, err := Archive([]Entry{
		{Name: "a.html", Data: []byte("alpha")},
		{Name: "", Data: []byte("skipped")},
		{Name: "docs/b.html", Data: []byte("beta")},
	})
	if err != nil {
		t.Fatalf("archive: %v", err)
	}

	zr, err := stdzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("file count = %d, want 2", len(zr.File))
	}
	want := map[string]string{"a.html": "alpha", "docs/b.html": "beta"}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		if want[f.Name] != string(content) {
			t.Fatalf("%s = %q", f.Name, content)
		}
	}
}

func TestArchiveEmpty(t *testing.T) {
	data, err := Archive(nil)
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	zr, err := stdzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	if len(zr.File) != 0 {
		t.Fatalf("file count = %d, want 0", len(zr.File))
	}
}
