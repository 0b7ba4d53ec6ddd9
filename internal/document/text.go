package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jorge-barreto/contractgen/internal/layout"
)

// TextEditor edits plain-text templates.
type TextEditor struct {
	Converter *Converter
}

func (e *TextEditor) Open(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening template: %w", err)
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		ext = "txt"
	}
	return &textSession{
		content:  string(data),
		editable: Format{Name: "text", Ext: ext, Kind: Editable, Code: CodeText},
		conv:     e.Converter,
	}, nil
}

type textSession struct {
	content  string
	editable Format
	conv     *Converter
	closed   bool
}

func (s *textSession) ScanText() string { return s.content }

func (s *textSession) Replace(find, with string) int {
	if find == "" {
		return 0
	}
	n := strings.Count(s.content, find)
	if n > 0 {
		s.content = strings.ReplaceAll(s.content, find, with)
	}
	return n
}

func (s *textSession) Formats() []Format { return withFixedLayout(s.editable, s.conv) }

func (s *textSession) SaveAs(ctx context.Context, path string, f Format) error {
	if s.closed {
		return errClosed
	}
	switch {
	case f.Kind == Editable:
		return layout.WriteFileAtomic(path, []byte(s.content), 0644)
	case f.Kind == FixedLayout && s.conv != nil:
		return s.conv.Render(ctx, []byte(s.content), "."+s.editable.Ext, path)
	default:
		return fmt.Errorf("%w: cannot save text as %s", ErrUnsupported, f.Name)
	}
}

func (s *textSession) Close() error {
	s.closed = true
	return nil
}
