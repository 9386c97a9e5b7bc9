// Package zip bundles rendered documents into a single archive for delivery.
package zip

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Entry is one file in the archive.
type Entry struct {
	Name string
	Data []byte
}

// Archive writes all entries into a zip and returns its bytes. Entries with
// empty names are skipped.
func Archive(entries []Entry) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, entry := range entries {
		if entry.Name == "" {
			continue
		}
		w, err := zw.Create(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("zip: create %s: %w", entry.Name, err)
		}
		if _, err := w.Write(entry.Data); err != nil {
			return nil, fmt.Errorf("zip: write %s: %w", entry.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip: close archive: %w", err)
	}
	return buf.Bytes(), nil
}
