// Package generate runs one contract through a template: it loads the
// contract document, derives the contract number, fills every placeholder
// and saves the editable and fixed-layout outputs.
package generate

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jorge-barreto/contractgen/internal/config"
	"github.com/jorge-barreto/contractgen/internal/document"
	"github.com/jorge-barreto/contractgen/internal/layout"
	"github.com/jorge-barreto/contractgen/internal/logging"
	"github.com/jorge-barreto/contractgen/internal/manifest"
	"github.com/jorge-barreto/contractgen/internal/numbering"
	"github.com/jorge-barreto/contractgen/internal/placeholder"
	"github.com/jorge-barreto/contractgen/internal/ux"
)

// Step names recorded in the manifest.
const (
	StepLoad    = "load"
	StepOpen    = "open"
	StepResolve = "resolve"
	StepApply   = "apply"
	StepSave    = "save"
)

// Request describes one generation run.
type Request struct {
	ContractFile string
	Template     string
	// OutDir overrides the base directory. Empty means the template's folder.
	OutDir      string
	Fallbacks   numbering.Fallbacks
	PartyMarker string
	// Kinds lists the output kinds to produce, in order. Nil means editable
	// followed by fixed-layout.
	Kinds  []document.Kind
	DryRun bool
}

// Result is what a run produced.
type Result struct {
	Number       string
	Tokens       []string
	Resolved     placeholder.Result
	Layout       layout.Output
	Outputs      []string
	Manifest     *manifest.Manifest
	ManifestPath string
}

// Generator wires the collaborators used by Run.
type Generator struct {
	// Editor opens the template. Nil picks one by extension via document.ForPath.
	Editor   document.Editor
	Options  document.Options
	Resolver *placeholder.Resolver
	Logger   *zap.Logger
}

// DefaultKinds is the output set produced when a Request names none.
var DefaultKinds = []document.Kind{document.Editable, document.FixedLayout}

// Run executes req. The template session is always closed. Once the output
// folder exists, the manifest is written even when the run fails.
func (g *Generator) Run(ctx context.Context, req Request) (*Result, error) {
	log := logging.OrNop(g.Logger).With(zap.String("template", req.Template))
	m := manifest.New(req.ContractFile, req.Template)

	m.StepStart(StepLoad)
	data, err := config.Load(req.ContractFile)
	m.StepEnd(StepLoad)
	if err != nil {
		return nil, err
	}

	// The number goes into the document as written; only paths lose whitespace.
	number := numbering.Number(data, req.Fallbacks)
	m.ContractNumber = number
	out := layout.New(req.Template, req.OutDir, numbering.FolderName(number),
		data.Trimmed(config.KeyArea), numbering.PartyType(data, req.PartyMarker))
	log = log.With(zap.String("contract", number))
	log.Debug("contract number derived", zap.String("dir", out.Dir()))

	res := &Result{Number: number, Layout: out, Manifest: m, ManifestPath: out.ManifestPath()}

	editor := g.Editor
	if editor == nil {
		editor, err = document.ForPath(req.Template, g.Options)
		if err != nil {
			return res, err
		}
	}

	m.StepStart(StepOpen)
	sess, err := editor.Open(req.Template)
	m.StepEnd(StepOpen)
	if err != nil {
		return res, err
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil {
			log.Warn("closing template", zap.Error(cerr))
		}
	}()

	m.StepStart(StepResolve)
	resolver := g.Resolver
	if resolver == nil {
		resolver = placeholder.NewResolver()
	}
	res.Resolved = resolver.Resolve(sess.ScanText(), data, number)
	res.Tokens = res.Resolved.Tokens()
	m.StepEnd(StepResolve)
	log.Debug("placeholders resolved", zap.Int("tokens", len(res.Tokens)))

	if req.DryRun {
		printPlan(res, sess.Formats(), kinds(req))
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	if err := out.EnsureDir(); err != nil {
		return res, err
	}
	ux.RunHeader(number, req.Template)

	err = g.apply(ctx, sess, res, req, log)
	m.Finish(err)
	if saveErr := m.Save(res.ManifestPath); saveErr != nil {
		log.Warn("saving manifest", zap.String("path", res.ManifestPath), zap.Error(saveErr))
		if err == nil {
			err = fmt.Errorf("saving manifest: %w", saveErr)
		}
	}
	if err != nil {
		ux.Fail(err.Error())
		return res, err
	}
	ux.Success(len(res.Outputs), m.Elapsed())
	return res, nil
}

func (g *Generator) apply(ctx context.Context, sess document.Session, res *Result, req Request, log *zap.Logger) error {
	m := res.Manifest

	m.StepStart(StepApply)
	replaced := 0
	for _, r := range res.Resolved.Replacements() {
		n := sess.Replace(r.Find, r.With)
		replaced += n
		m.AddToken(manifest.Token{
			Token:    r.Token,
			Strategy: placeholder.Classify(r.Token),
			Value:    r.With,
			Replaced: n,
		})
		if n == 0 {
			// Seen in the scan text but not in any single text run.
			log.Warn("placeholder not replaced", zap.String("token", r.Token))
			ux.Warn(fmt.Sprintf("%s not replaced (split across formatting?)", r.Find))
		}
	}
	m.StepEnd(StepApply)
	ux.StepDone("replaced", fmt.Sprintf("%d placeholder(s), %d occurrence(s)", len(res.Tokens), replaced))

	m.StepStart(StepSave)
	defer m.StepEnd(StepSave)
	formats := sess.Formats()
	for _, k := range kinds(req) {
		if err := ctx.Err(); err != nil {
			return err
		}
		f, ok := document.FindFormat(formats, k)
		if !ok {
			reason := fmt.Sprintf("%s output not available for this template", k)
			log.Info("output skipped", zap.Stringer("kind", k))
			m.Skip(reason)
			ux.Skipped(reason)
			continue
		}
		path := res.Layout.Path(f.Ext)
		if err := sess.SaveAs(ctx, path, f); err != nil {
			if errors.Is(err, document.ErrUnsupported) {
				m.Skip(err.Error())
				ux.Skipped(err.Error())
				continue
			}
			return fmt.Errorf("saving %s: %w", f.Name, err)
		}
		res.Outputs = append(res.Outputs, path)
		m.AddOutput(manifest.Output{Format: f.Name, Kind: k.String(), Path: path})
		ux.Saved(f.Name, path)
		log.Debug("output saved", zap.String("format", f.Name), zap.String("path", path))
	}
	return nil
}

func kinds(req Request) []document.Kind {
	if len(req.Kinds) == 0 {
		return DefaultKinds
	}
	return req.Kinds
}

func printPlan(res *Result, formats []document.Format, want []document.Kind) {
	ux.ContractNumber(res.Number)
	fmt.Fprintf(ux.Out, "\n%sPlaceholders:%s\n", ux.Bold, ux.Reset)
	rows := make([]ux.TokenRow, 0, len(res.Tokens))
	for _, tok := range res.Tokens {
		rows = append(rows, ux.TokenRow{Token: tok, Strategy: placeholder.Classify(tok), Value: res.Resolved[tok]})
	}
	ux.Tokens(rows)
	fmt.Fprintf(ux.Out, "\n%sWould write:%s\n", ux.Bold, ux.Reset)
	for _, k := range want {
		if f, ok := document.FindFormat(formats, k); ok {
			fmt.Fprintf(ux.Out, "  %s\n", res.Layout.Path(f.Ext))
		} else {
			fmt.Fprintf(ux.Out, "  %s(no %s output)%s\n", ux.Dim, k, ux.Reset)
		}
	}
	fmt.Fprintf(ux.Out, "  %s\n\n", res.ManifestPath)
}
