package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SubmissionStore is an append-only log of form submissions. Exposed as an
// interface so a database-backed implementation can replace the file one
// without touching the handlers.
type SubmissionStore interface {
	Append(record any) error
}

// FileStore keeps submissions as a pretty-printed JSON array in a single file.
// Append is a full read-modify-write cycle; two concurrent writers can lose an
// entry to the race. Known limitation, accepted for this workload.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Append(record any) error {
	var entries []json.RawMessage
	b, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", s.path, err)
		}
	} else if len(b) > 0 {
		if err := json.Unmarshal(b, &entries); err != nil {
			return fmt.Errorf("parse %s: %w", s.path, err)
		}
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	entries = append(entries, raw)

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write %s: %w", s.path, err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Read unmarshals the whole backing array into out (a pointer to a slice).
// A missing or empty file reads as an empty array.
func (s *FileStore) Read(out any) error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", s.path, err)
	}
	return nil
}
