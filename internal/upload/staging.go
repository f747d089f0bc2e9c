package upload

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// StagedFile is a temporary on-disk copy of an uploaded file. It is owned by
// exactly one request; nothing else may retain the path past that request.
type StagedFile struct {
	Path string
}

// Staging writes incoming uploads under a shared directory, one uuid-named
// file per request.
type Staging struct {
	dir string
}

func NewStaging(dir string) (*Staging, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Staging{dir: dir}, nil
}

// Stage copies r to a new file in the staging directory and returns its handle.
func (s *Staging) Stage(r io.Reader) (*StagedFile, error) {
	path := filepath.Join(s.dir, uuid.NewString())
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("stage upload: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("stage upload: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("stage upload: %w", err)
	}
	return &StagedFile{Path: path}, nil
}

// DataURI reads the staged blob and returns it as a base64 JPEG data URI for
// embedding in a chat turn.
func (f *StagedFile) DataURI() (string, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("read staged upload: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(b), nil
}

// Remove deletes the staged blob. Safe to call more than once; a second call
// on an already-removed file is a no-op.
func (f *StagedFile) Remove() error {
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
