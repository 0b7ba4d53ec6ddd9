package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvFile_Missing(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("missing env file should be ignored, got %v", err)
	}
	if err := LoadEnvFile(""); err != nil {
		t.Fatal(err)
	}
}

func TestLoadEnvFile_DoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "ContractPrefix=FROMFILE\nCONTRACTGEN_TEST_ONLY_VAR=hello\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvPrefix, "FROMENV")
	t.Setenv("CONTRACTGEN_TEST_ONLY_VAR", "")
	os.Unsetenv("CONTRACTGEN_TEST_ONLY_VAR")

	if err := LoadEnvFile(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv(EnvPrefix); got != "FROMENV" {
		t.Fatalf("ContractPrefix = %q, want FROMENV", got)
	}
	if got := os.Getenv("CONTRACTGEN_TEST_ONLY_VAR"); got != "hello" {
		t.Fatalf("CONTRACTGEN_TEST_ONLY_VAR = %q, want hello", got)
	}
}
