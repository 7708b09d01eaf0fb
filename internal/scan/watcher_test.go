package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStartWatcher(t *testing.T) {
	t.Run("rejects an empty root", func(t *testing.T) {
		if _, _, err := StartWatcher(context.Background(), WatchConfig{}); err == nil {
			t.Fatal("expected an error for an empty root")
		}
	})

	t.Run("debounced writes are delivered once settled", func(t *testing.T) {
		root := t.TempDir()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		evCh, _, err := StartWatcher(ctx, WatchConfig{Root: root, Debounce: 20 * time.Millisecond})
		if err != nil {
			t.Fatalf("start watcher: %v", err)
		}

		path := filepath.Join(root, "fatura.pdf")
		for i := 0; i < 3; i++ {
			if err := os.WriteFile(path, []byte("conteudo"), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
		}

		select {
		case got := <-evCh:
			if got != path {
				t.Fatalf("expected %s, got %s", path, got)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("debounced event never arrived")
		}
	})

	t.Run("initial scan emits existing files", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "antiga.pdf")
		if err := os.WriteFile(path, []byte("conteudo"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		evCh, _, err := StartWatcher(ctx, WatchConfig{Root: root, InitialScan: true})
		if err != nil {
			t.Fatalf("start watcher: %v", err)
		}
		select {
		case got := <-evCh:
			if got != path {
				t.Fatalf("expected %s, got %s", path, got)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("initial scan emitted nothing")
		}
	})
}
