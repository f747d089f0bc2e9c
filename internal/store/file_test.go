package store

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

type record struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func TestAppendRoundTrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "customer.json"))

	const n = 5
	for i := 0; i < n; i++ {
		r := record{Name: fmt.Sprintf("user %d", i), Email: fmt.Sprintf("u%d@example.com", i)}
		if err := s.Append(r); err != nil {
			t.Fatalf("Append(%d): %v", i, err)
		}
	}

	var got []record
	if err := s.Read(&got); err != nil {
		t.Fatal(err)
	}
	if len(got) != n {
		t.Fatalf("read %d records, want %d", len(got), n)
	}
	for i, r := range got {
		if r.Name != fmt.Sprintf("user %d", i) || r.Email != fmt.Sprintf("u%d@example.com", i) {
			t.Errorf("record %d = %+v, out of append order or fields lost", i, r)
		}
	}
}

func TestReadMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))
	var got []record
	if err := s.Read(&got); err != nil {
		t.Fatalf("Read on missing file: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("read %d records from missing file, want 0", len(got))
	}
}

func TestAppendTreatsEmptyFileAsEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(path)
	if err := s.Append(record{Name: "a", Email: "a@example.com"}); err != nil {
		t.Fatal(err)
	}
	var got []record
	if err := s.Read(&got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("read %d records, want 1", len(got))
	}
}

func TestAppendCorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(path)
	if err := s.Append(record{Name: "a"}); err == nil {
		t.Fatal("Append on corrupt file succeeded, want error")
	}
}

func TestAppendPreservesExistingEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customer.json")
	seed := `[{"name":"seeded","email":"s@example.com"}]`
	if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(path)
	if err := s.Append(record{Name: "new", Email: "n@example.com"}); err != nil {
		t.Fatal(err)
	}
	var got []record
	if err := s.Read(&got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name != "seeded" || got[1].Name != "new" {
		t.Errorf("records = %+v, want seeded then new", got)
	}
}
