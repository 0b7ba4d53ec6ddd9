package config

import "testing"

func TestSanitize_Lines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"format braces", "ContractFormat: RC-{Year}", `ContractFormat: "RC-{Year}"`},
		{"format already double quoted", `ContractFormat: "RC-{Year}"`, `ContractFormat: "RC-{Year}"`},
		{"format already single quoted", `ContractFormat: 'RC-{Year}'`, `ContractFormat: 'RC-{Year}'`},
		{"format without braces", "ContractFormat: RC-2024", "ContractFormat: RC-2024"},
		{"format trailing blanks", "ContractFormat: {Prefix}-{Day}  ", `ContractFormat: "{Prefix}-{Day}"`},
		{"format half quoted", `ContractFormat: "RC-{Year}`, `ContractFormat: ""RC-{Year}"`},
		{"number with space", "ContractNumber: 2024 001", `ContractNumber: "2024 001"`},
		{"number quoted", `ContractNumber: "2024 001"`, `ContractNumber: "2024 001"`},
		{"number single token", "ContractNumber: 2024-001", "ContractNumber: 2024-001"},
		{"number empty", "ContractNumber:", "ContractNumber:"},
		{"other key with braces", "Title: {x}", "Title: {x}"},
		{"key prefix only", "ContractFormatX: RC-{Year}", "ContractFormatX: RC-{Year}"},
		{"indented key", "  ContractFormat: RC-{Year}", "  ContractFormat: RC-{Year}"},
		{"space before colon", "ContractNumber : A 1", `ContractNumber : "A 1"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitize_Document(t *testing.T) {
	in := "ComName: «Smart Teams»\r\nContractFormat: {Prefix}-{Year}\r\nContractNumber: 12 34\r\nDay: 5\r\n"
	want := "ComName: «Smart Teams»\r\nContractFormat: \"{Prefix}-{Year}\"\r\nContractNumber: \"12 34\"\r\nDay: 5\r\n"
	if got := Sanitize(in); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	in := "ContractFormat: RC-{Year}\nContractNumber: 2024 001\n"
	once := Sanitize(in)
	if twice := Sanitize(once); twice != once {
		t.Fatalf("second pass changed output: %q -> %q", once, twice)
	}
}
