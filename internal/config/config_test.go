package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleDoc = `ComName: «Smart Teams» LLC
MyName: OOO SMART TEAMS
ContractFormat: {Prefix}-{CName}-{Year}/{Month}/{Day}
ContractNumber: 2024 001
Day: 5
Month: 03
Year: 2024
Amount: 1500.50
Area: "45"
ClientPhone: 998901112233
Signed: true
Note: ~
Items:
  - one
  - 2
Nested:
  a: b
`

func TestParse_Sample(t *testing.T) {
	data, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	got := make(map[string]string)
	for _, k := range data.Keys() {
		got[k] = data.String(k)
	}
	want := map[string]string{
		"ComName":        "«Smart Teams» LLC",
		"MyName":         "OOO SMART TEAMS",
		"ContractFormat": "{Prefix}-{CName}-{Year}/{Month}/{Day}",
		"ContractNumber": "2024 001",
		"Day":            "5",
		"Month":          "3",
		"Year":           "2024",
		"Amount":         "1500.5",
		"Area":           "45",
		"ClientPhone":    "998901112233",
		"Signed":         "true",
		"Items":          "one,2",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parsed data mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Kinds(t *testing.T) {
	data, err := Parse([]byte("Day: 5\nArea: \"45\"\nNote: null\n"))
	if err != nil {
		t.Fatal(err)
	}
	if k := data["Day"].Kind(); k != Number {
		t.Fatalf("Day kind = %v, want number", k)
	}
	if k := data["Area"].Kind(); k != String {
		t.Fatalf("Area kind = %v, want string", k)
	}
	if _, ok := data.Lookup("Note"); ok {
		t.Fatal("null field should be absent")
	}
	if _, ok := data.Lookup("Missing"); ok {
		t.Fatal("missing field should be absent")
	}
}

func TestParse_NotMapping(t *testing.T) {
	for _, in := range []string{"", "- a\n- b\n", "just text"} {
		if _, err := Parse([]byte(in)); !errors.Is(err, ErrNotMapping) {
			t.Errorf("Parse(%q): got %v, want ErrNotMapping", in, err)
		}
	}
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := Parse([]byte("a: [unclosed\n"))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("got %v, want ErrParse", err)
	}
	if !strings.Contains(err.Error(), "yaml") {
		t.Fatalf("error should carry the parser message, got %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.contract")
	_, err := Load(path)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("error should name the path, got %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ALL.contract")
	if err := os.WriteFile(path, []byte("ContractFormat: RC-{Year}\nYear: 2025\n"), 0644); err != nil {
		t.Fatal(err)
	}
	data, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := data.String("ContractFormat"); got != "RC-{Year}" {
		t.Fatalf("got %q", got)
	}
}

func TestValue(t *testing.T) {
	tests := []struct {
		name   string
		v      Value
		str    string
		truthy bool
		num    float64
		numOK  bool
	}{
		{"absent", Value{}, "", false, 0, false},
		{"empty string", StringValue(""), "", false, 0, true},
		{"numeric string", StringValue(" 12 "), " 12 ", true, 12, true},
		{"word", StringValue("abc"), "abc", true, 0, false},
		{"zero", NumberValue(0), "0", false, 0, true},
		{"float", NumberValue(2.5), "2.5", true, 2.5, true},
		{"big int", NumberValue(998901112233), "998901112233", true, 998901112233, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.v.Truthy(); got != tt.truthy {
				t.Errorf("Truthy() = %v, want %v", got, tt.truthy)
			}
			n, ok := tt.v.Float()
			if ok != tt.numOK || n != tt.num {
				t.Errorf("Float() = (%v, %v), want (%v, %v)", n, ok, tt.num, tt.numOK)
			}
		})
	}
}

func TestData_Trimmed(t *testing.T) {
	d := Data{"ContractPrefix": StringValue("  RC  ")}
	if got := d.Trimmed("ContractPrefix"); got != "RC" {
		t.Fatalf("got %q", got)
	}
	if got := d.Trimmed("Nope"); got != "" {
		t.Fatalf("got %q", got)
	}
}
