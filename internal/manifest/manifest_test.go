package manifest

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNew(t *testing.T) {
	m := New("ALL.contract", "t.docx")
	if _, err := uuid.Parse(m.RunID); err != nil {
		t.Fatalf("RunID %q is not a uuid: %v", m.RunID, err)
	}
	if m.Status != StatusRunning {
		t.Fatalf("Status = %q, want running", m.Status)
	}
	if other := New("a", "b"); other.RunID == m.RunID {
		t.Fatal("run ids should differ between runs")
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	m := New("ALL.contract", "t.txt")
	m.ContractNumber = "RC-1"
	m.StepStart("resolve")
	m.StepEnd("resolve")
	m.AddToken(Token{Token: "Area", Strategy: "field", Value: "45", Replaced: 2})
	m.AddOutput(Output{Format: "text", Kind: "editable", Path: "/x/RC-1.txt"})
	m.Skip("pdf: no converter")
	m.Finish(nil)

	if err := m.Save(path); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.RunID != m.RunID || got.ContractNumber != "RC-1" || got.Status != StatusCompleted {
		t.Fatalf("got %+v", got)
	}
	if len(got.Steps) != 1 || got.Steps[0].Duration == "" {
		t.Fatalf("steps = %+v", got.Steps)
	}
	if len(got.Tokens) != 1 || got.Tokens[0].Replaced != 2 {
		t.Fatalf("tokens = %+v", got.Tokens)
	}
	if len(got.Outputs) != 1 || len(got.Skipped) != 1 {
		t.Fatalf("outputs = %+v skipped = %+v", got.Outputs, got.Skipped)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "manifest.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
}

func TestFinish_Error(t *testing.T) {
	m := New("a", "b")
	m.Finish(errors.New("boom"))
	if m.Status != StatusFailed || m.Error != "boom" {
		t.Fatalf("got status %q error %q", m.Status, m.Error)
	}
	if m.Elapsed() < 0 {
		t.Fatal("negative elapsed time")
	}
}

func TestStepEnd_MostRecentOpen(t *testing.T) {
	m := New("a", "b")
	m.StepStart("save")
	m.StepEnd("save")
	m.StepStart("save")
	m.StepEnd("save")
	for i, s := range m.Steps {
		if s.End.IsZero() {
			t.Fatalf("step %d not closed", i)
		}
	}
	m.StepEnd("unknown")
}

func TestFormatDuration(t *testing.T) {
	tests := map[time.Duration]string{
		250 * time.Millisecond: "250ms",
		65 * time.Second:       "1m 05s",
		3 * time.Second:        "0m 03s",
	}
	for d, want := range tests {
		if got := FormatDuration(d); got != want {
			t.Errorf("FormatDuration(%v) = %q, want %q", d, got, want)
		}
	}
}
