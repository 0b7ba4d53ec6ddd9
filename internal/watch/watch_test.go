package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/jorge-barreto/contractgen/internal/config"
)

func TestRun_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "ALL.contract")
	if err := os.WriteFile(path, []byte("Year: 2023\n"), 0644); err != nil {
		t.Fatal(err)
	}

	changes := make(chan string, 8)
	w := &Watcher{
		Path:     path,
		Debounce: 20 * time.Millisecond,
		OnChange: func(data config.Data, err error) {
			if err != nil {
				changes <- "error: " + err.Error()
				return
			}
			changes <- data.String(config.KeyYear)
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("Year: 2024\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-changes:
		if got != "2024" {
			t.Fatalf("got %q, want %q", got, "2024")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "ALL.contract")
	if err := os.WriteFile(path, []byte("Year: 2023\n"), 0644); err != nil {
		t.Fatal(err)
	}

	called := make(chan struct{}, 1)
	w := &Watcher{
		Path:     path,
		Debounce: 20 * time.Millisecond,
		OnChange: func(config.Data, error) { called <- struct{}{} },
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-called:
		t.Fatal("callback fired for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
	cancel()
	<-done
}

func TestRun_MissingDir(t *testing.T) {
	w := &Watcher{Path: filepath.Join(t.TempDir(), "nope", "ALL.contract")}
	if err := w.Run(context.Background()); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
