package document

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/jorge-barreto/contractgen/internal/layout"
)

const (
	docxMainPart = "word/document.xml"
	wordNS       = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
)

var docxFormat = Format{Name: "docx", Ext: "docx", Kind: Editable, Code: CodeDocx}

// DocxEditor edits Office Open XML documents in memory. Replacements are
// applied to the XML of the body, headers and footers. A placeholder that
// the word processor split across adjacent runs with identical formatting
// is matched after those runs are merged; one split across differently
// formatted runs is not.
type DocxEditor struct {
	Converter *Converter
}

type docxPart struct {
	header zip.FileHeader
	data   []byte
}

func (e *DocxEditor) Open(path string) (Session, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening template: %w", err)
	}
	defer zr.Close()

	s := &docxSession{conv: e.Converter}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Name, err)
		}
		s.parts = append(s.parts, docxPart{header: f.FileHeader, data: data})
	}
	if s.part(docxMainPart) == nil {
		return nil, fmt.Errorf("%w: %s has no %s", ErrUnsupported, path, docxMainPart)
	}
	return s, nil
}

type docxSession struct {
	parts  []docxPart
	conv   *Converter
	closed bool
}

func (s *docxSession) part(name string) *docxPart {
	for i := range s.parts {
		if s.parts[i].header.Name == name {
			return &s.parts[i]
		}
	}
	return nil
}

// editablePart reports whether name holds document text.
func editablePart(name string) bool {
	if name == docxMainPart {
		return true
	}
	if !strings.HasSuffix(name, ".xml") {
		return false
	}
	return strings.HasPrefix(name, "word/header") || strings.HasPrefix(name, "word/footer")
}

// ScanText returns the text runs of the main document, one line per
// paragraph.
func (s *docxSession) ScanText() string {
	main := s.part(docxMainPart)
	if main == nil {
		return ""
	}
	var b strings.Builder
	dec := xml.NewDecoder(bytes.NewReader(main.data))
	inText := false
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space == wordNS {
				switch t.Name.Local {
				case "t":
					inText = true
				case "tab":
					b.WriteByte('\t')
				case "br":
					b.WriteByte('\n')
				}
			}
		case xml.EndElement:
			if t.Name.Space == wordNS {
				switch t.Name.Local {
				case "t":
					inText = false
				case "p":
					b.WriteByte('\n')
				}
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String()
}

func (s *docxSession) Replace(find, with string) int {
	if find == "" {
		return 0
	}
	xf, xw := []byte(escapeXML(find)), []byte(escapeXML(with))
	total := 0
	for i := range s.parts {
		p := &s.parts[i]
		if !editablePart(p.header.Name) {
			continue
		}
		n := bytes.Count(p.data, xf)
		if n == 0 {
			merged := mergeRuns(p.data)
			if n = bytes.Count(merged, xf); n == 0 {
				continue
			}
			p.data = merged
		}
		p.data = bytes.ReplaceAll(p.data, xf, xw)
		total += n
	}
	return total
}

var (
	// textRunRe matches a run holding only optional properties and one text
	// element. Properties with closing tags inside are left alone.
	textRunRe  = regexp.MustCompile(`<w:r(?:\s[^>]*)?>(<w:rPr>(?:[^<]|<[^/])*</w:rPr>)?<w:t(?:\s[^>]*)?>([^<]*)</w:t></w:r>`)
	proofErrRe = regexp.MustCompile(`<w:proofErr\b[^>]*/>`)
)

// mergeRuns joins directly adjacent text runs that share the same run
// properties, so text Word split for spell-check or revision tracking reads
// as one string again. Proofing marks between runs are dropped.
func mergeRuns(data []byte) []byte {
	data = proofErrRe.ReplaceAll(data, nil)
	locs := textRunRe.FindAllSubmatchIndex(data, -1)
	var out bytes.Buffer
	last := 0
	for i := 0; i < len(locs); {
		props := submatch(data, locs[i], 1)
		j := i + 1
		for j < len(locs) && locs[j][0] == locs[j-1][1] && bytes.Equal(submatch(data, locs[j], 1), props) {
			j++
		}
		if j-i > 1 {
			out.Write(data[last:locs[i][0]])
			out.WriteString("<w:r>")
			out.Write(props)
			out.WriteString(`<w:t xml:space="preserve">`)
			for k := i; k < j; k++ {
				out.Write(submatch(data, locs[k], 2))
			}
			out.WriteString("</w:t></w:r>")
			last = locs[j-1][1]
		}
		i = j
	}
	out.Write(data[last:])
	return out.Bytes()
}

func submatch(data []byte, loc []int, n int) []byte {
	if loc[2*n] < 0 {
		return nil
	}
	return data[loc[2*n]:loc[2*n+1]]
}

func (s *docxSession) Formats() []Format { return withFixedLayout(docxFormat, s.conv) }

func (s *docxSession) SaveAs(ctx context.Context, path string, f Format) error {
	if s.closed {
		return errClosed
	}
	if f.Kind == FixedLayout && s.conv == nil {
		return fmt.Errorf("%w: cannot save docx as %s", ErrUnsupported, f.Name)
	}
	data, err := s.archive()
	if err != nil {
		return err
	}
	if f.Kind == FixedLayout {
		return s.conv.Render(ctx, data, ".docx", path)
	}
	return layout.WriteFileAtomic(path, data, 0644)
}

func (s *docxSession) archive() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range s.parts {
		hdr := p.header
		w, err := zw.CreateHeader(&hdr)
		if err != nil {
			return nil, fmt.Errorf("writing %s: %w", p.header.Name, err)
		}
		if _, err := w.Write(p.data); err != nil {
			return nil, fmt.Errorf("writing %s: %w", p.header.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *docxSession) Close() error {
	s.closed = true
	s.parts = nil
	return nil
}

func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
