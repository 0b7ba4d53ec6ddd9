package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/jorge-barreto/contractgen/internal/layout"
)

// ConverterBinaries are looked up on PATH, in order, by FindConverter.
var ConverterBinaries = []string{"soffice", "libreoffice"}

// DefaultConvertTimeout bounds a single headless conversion.
const DefaultConvertTimeout = 2 * time.Minute

// Converter renders fixed-layout output by running an office suite in
// headless mode.
type Converter struct {
	Bin     string
	Timeout time.Duration
}

// FindConverter returns a Converter for the first binary from
// ConverterBinaries found on PATH.
func FindConverter() (*Converter, error) {
	for _, bin := range ConverterBinaries {
		if path, err := exec.LookPath(bin); err == nil {
			return &Converter{Bin: path, Timeout: DefaultConvertTimeout}, nil
		}
	}
	return nil, fmt.Errorf("no converter found in PATH (tried %s)", strings.Join(ConverterBinaries, ", "))
}

// Render writes src (a document with extension srcExt) to a scratch
// directory, converts it to PDF and moves the result to dst.
func (c *Converter) Render(ctx context.Context, src []byte, srcExt, dst string) error {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	work, err := os.MkdirTemp("", "contractgen-render-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(work)

	in := filepath.Join(work, "document"+srcExt)
	if err := os.WriteFile(in, src, 0644); err != nil {
		return err
	}
	outDir := filepath.Join(work, "out")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, c.Bin, "--headless", "--convert-to", "pdf", "--outdir", outDir, in)
	var captured bytes.Buffer
	cmd.Stdout = &captured
	cmd.Stderr = &captured

	code, err := exitCode(cmd.Run())
	if err != nil {
		return fmt.Errorf("running %s: %w", filepath.Base(c.Bin), err)
	}
	if code != 0 {
		return fmt.Errorf("%s exited with code %d: %s", filepath.Base(c.Bin), code, strings.TrimSpace(captured.String()))
	}

	pdf, err := os.ReadFile(filepath.Join(outDir, "document.pdf"))
	if err != nil {
		return fmt.Errorf("converter produced no output: %w", err)
	}
	return layout.WriteFileAtomic(dst, pdf, 0644)
}

// exitCode extracts an exit code from a command error.
// Returns (code, nil) for ExitError, (0, err) for other errors, (0, nil) for nil.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}
