package storage

import (
	"context"
	"os"
	"strings"
	"testing"
)

func TestFSStore(t *testing.T) {
	ctx := context.Background()

	t.Run("write and reopen", func(t *testing.T) {
		s, err := NewFSStore(t.TempDir())
		if err != nil {
			t.Fatalf("new store: %v", err)
		}

		path, err := s.Write(ctx, "abc123.pdf", strings.NewReader("conteúdo"))
		if err != nil {
			t.Fatalf("write: %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != "conteúdo" {
			t.Fatalf("content mismatch: %q", got)
		}

		rc, err := s.Open("abc123.pdf")
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		_ = rc.Close()
	})

	t.Run("second write of the same name is a no-op", func(t *testing.T) {
		s, err := NewFSStore(t.TempDir())
		if err != nil {
			t.Fatalf("new store: %v", err)
		}

		first, err := s.Write(ctx, "abc123.pdf", strings.NewReader("original"))
		if err != nil {
			t.Fatalf("first write: %v", err)
		}
		second, err := s.Write(ctx, "abc123.pdf", strings.NewReader("mudou"))
		if err != nil {
			t.Fatalf("second write: %v", err)
		}
		if first != second {
			t.Fatalf("paths differ: %q vs %q", first, second)
		}
		got, _ := os.ReadFile(first)
		if string(got) != "original" {
			t.Fatalf("existing blob overwritten: %q", got)
		}
	})

	t.Run("name is flattened to its base", func(t *testing.T) {
		s, err := NewFSStore(t.TempDir())
		if err != nil {
			t.Fatalf("new store: %v", err)
		}
		path, err := s.Write(ctx, "../../etc/abc123.pdf", strings.NewReader("x"))
		if err != nil {
			t.Fatalf("write: %v", err)
		}
		if !strings.HasSuffix(path, "abc123.pdf") || strings.Contains(path, "..") {
			t.Fatalf("path traversal not neutralized: %q", path)
		}
	})

	t.Run("empty root is rejected", func(t *testing.T) {
		if _, err := NewFSStore(""); err == nil {
			t.Fatal("expected error")
		}
	})
}
