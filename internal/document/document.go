// Package document is the editing side of contract generation: it opens a
// template, exposes its text for placeholder discovery, applies literal
// find/replace edits and saves the result in one or more formats.
package document

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Kind separates editable outputs from fixed-layout (print-ready) ones.
type Kind int

const (
	Editable Kind = iota
	FixedLayout
)

func (k Kind) String() string {
	if k == FixedLayout {
		return "fixed-layout"
	}
	return "editable"
}

// Save-as codes, numbered the way word processors number them.
const (
	CodeText = 2
	CodeDocx = 16
	CodePDF  = 17
)

// Format is one output format a session can save to.
type Format struct {
	Name string
	Ext  string // without leading dot
	Kind Kind
	Code int
}

// PDF is the fixed-layout format produced through a Converter.
var PDF = Format{Name: "pdf", Ext: "pdf", Kind: FixedLayout, Code: CodePDF}

var ErrUnsupported = errors.New("unsupported template format")

// Editor opens templates.
type Editor interface {
	Open(path string) (Session, error)
}

// Session is one open template. Sessions are not safe for concurrent use;
// callers open, scan, replace, save and close in sequence.
type Session interface {
	// ScanText is the visible text of the document, used to find placeholders.
	ScanText() string
	// Replace substitutes every literal, case-sensitive occurrence of find
	// and reports how many were replaced.
	Replace(find, with string) int
	// Formats lists the formats SaveAs accepts.
	Formats() []Format
	SaveAs(ctx context.Context, path string, f Format) error
	Close() error
}

// Options configure the editors returned by ForPath.
type Options struct {
	// Converter renders fixed-layout output. Nil disables FixedLayout formats.
	Converter *Converter
}

// ForPath picks an editor by the template's extension.
func ForPath(path string, opts Options) (Editor, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text", ".md":
		return &TextEditor{Converter: opts.Converter}, nil
	case ".docx":
		return &DocxEditor{Converter: opts.Converter}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, filepath.Ext(path))
	}
}

// FindFormat returns the format of the given kind from formats.
func FindFormat(formats []Format, kind Kind) (Format, bool) {
	for _, f := range formats {
		if f.Kind == kind {
			return f, true
		}
	}
	return Format{}, false
}

func withFixedLayout(editable Format, conv *Converter) []Format {
	if conv == nil {
		return []Format{editable}
	}
	return []Format{editable, PDF}
}

var errClosed = errors.New("document session is closed")
