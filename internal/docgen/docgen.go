package docgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fumiama/go-docx"
)

// Writer renders ordered lines of text into .docx files under one directory.
type Writer struct {
	dir string
}

func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create download dir: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Lines splits text on newlines and drops blank lines, preserving order.
func Lines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// Write renders one paragraph per line and returns the generated filename.
// Names are time-based; same-millisecond collisions are possible and not
// guarded against.
func (w *Writer) Write(lines []string) (string, error) {
	doc := docx.New().WithDefaultTheme()
	for _, line := range lines {
		doc.AddParagraph().AddText(line)
	}

	name := fmt.Sprintf("document-%d.docx", time.Now().UnixMilli())
	f, err := os.Create(filepath.Join(w.dir, name))
	if err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("write document: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}
	return name, nil
}
