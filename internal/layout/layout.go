// Package layout decides where generated contracts are written:
//
//	<base>/Contract/<number>/<number>, <area>-kv, <party>, <template>.<ext>
package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ContractDir is the folder created under the base directory.
const ContractDir = "Contract"

// Output describes one contract run's output location.
type Output struct {
	BaseDir      string // usually the template's folder
	Number       string // contract number, already stripped of whitespace
	Area         string
	PartyType    string
	TemplateBase string // template file name without extension
}

// New builds an Output for templatePath. An empty baseDir means the
// template's own folder.
func New(templatePath, baseDir, number, area, partyType string) Output {
	if baseDir == "" {
		baseDir = filepath.Dir(templatePath)
	}
	return Output{
		BaseDir:      baseDir,
		Number:       number,
		Area:         area,
		PartyType:    partyType,
		TemplateBase: TemplateBase(templatePath),
	}
}

// TemplateBase returns the file name of path without its extension.
func TemplateBase(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Dir is the per-contract output folder.
func (o Output) Dir() string {
	return filepath.Join(o.BaseDir, ContractDir, o.Number)
}

// FileName returns the output file name for ext (without a leading dot).
func (o Output) FileName(ext string) string {
	return fmt.Sprintf("%s, %s-kv, %s, %s.%s", o.Number, o.Area, o.PartyType, o.TemplateBase, strings.TrimPrefix(ext, "."))
}

// Path returns the full output path for ext.
func (o Output) Path(ext string) string {
	return filepath.Join(o.Dir(), o.FileName(ext))
}

// ManifestPath is where the run manifest for this contract is written.
func (o Output) ManifestPath() string {
	return filepath.Join(o.Dir(), "manifest.json")
}

// EnsureDir creates the contract folder and its parents. Existing
// directories are left as they are.
func (o Output) EnsureDir() error {
	for _, d := range []string{filepath.Join(o.BaseDir, ContractDir), o.Dir()} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("creating output dir %s: %w", d, err)
		}
	}
	return nil
}
