package ux

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jorge-barreto/contractgen/internal/manifest"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Out
	Out = &buf
	t.Cleanup(func() { Out = prev })
	return &buf
}

func TestContractNumber(t *testing.T) {
	buf := capture(t)
	ContractNumber("RC-2024-03-05")
	if !strings.Contains(buf.String(), "Contract Number: RC-2024-03-05\n") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestTokens(t *testing.T) {
	buf := capture(t)
	Tokens([]TokenRow{
		{Token: "Area", Strategy: "field", Value: "45"},
		{Token: "ClientPhone", Strategy: "phone", Value: ""},
	})
	out := buf.String()
	if !strings.Contains(out, "[Area]") || !strings.Contains(out, "45") {
		t.Fatalf("got %q", out)
	}
	if !strings.Contains(out, "(empty)") {
		t.Fatalf("empty value should be marked, got %q", out)
	}
}

func TestTokens_None(t *testing.T) {
	buf := capture(t)
	Tokens(nil)
	if !strings.Contains(buf.String(), "no placeholders") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestRenderStatus(t *testing.T) {
	buf := capture(t)
	m := manifest.New("ALL.contract", "t.txt")
	m.ContractNumber = "RC-1"
	m.AddToken(manifest.Token{Token: "Area", Strategy: "field", Value: "45"})
	m.AddOutput(manifest.Output{Format: "text", Kind: "editable", Path: "/x/RC-1.txt"})
	m.Skip("pdf: no converter")
	m.Finish(nil)

	RenderStatus(m, "/x/manifest.json")
	out := buf.String()
	for _, want := range []string{"RC-1", "completed", "[Area]", "/x/RC-1.txt", "pdf: no converter", m.RunID} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
