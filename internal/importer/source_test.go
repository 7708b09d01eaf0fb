package importer

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestContentHash(t *testing.T) {
	payload := []byte("%PDF-1.4 mesmo conteúdo")

	dir := t.TempDir()
	path := filepath.Join(dir, "fatura.pdf")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	fromPath, err := ContentHash(PathSource(path))
	if err != nil {
		t.Fatalf("path hash: %v", err)
	}
	fromBytes, err := ContentHash(BytesSource{Filename: "fatura.pdf", Data: payload})
	if err != nil {
		t.Fatalf("bytes hash: %v", err)
	}
	fromStream, err := ContentHash(StreamSource{Filename: "fatura.pdf", R: bytes.NewReader(payload)})
	if err != nil {
		t.Fatalf("stream hash: %v", err)
	}

	if fromPath != fromBytes || fromBytes != fromStream {
		t.Fatalf("hash differs by representation: %s %s %s", fromPath, fromBytes, fromStream)
	}
	if len(fromPath) != 64 {
		t.Fatalf("expected sha-256 hex digest, got %q", fromPath)
	}
}

func TestStreamSourceRestoresPosition(t *testing.T) {
	r := bytes.NewReader([]byte("abcdefgh"))
	if _, err := r.Seek(3, io.SeekStart); err != nil {
		t.Fatalf("seek: %v", err)
	}

	src := StreamSource{Filename: "s.pdf", R: r}
	rc, err := src.Open()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	all, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(all) != "abcdefgh" {
		t.Fatalf("open must rewind, got %q", all)
	}
	if err := rc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	rest, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read rest: %v", err)
	}
	if string(rest) != "defgh" {
		t.Fatalf("close must restore the caller position, got %q", rest)
	}
}

func TestMaterialize(t *testing.T) {
	t.Run("path sources are used in place", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "fatura.pdf")
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}

		got, cleanup, err := Materialize(PathSource(path))
		if err != nil {
			t.Fatalf("materialize: %v", err)
		}
		defer cleanup()
		if got != path {
			t.Fatalf("expected the original path, got %q", got)
		}
		cleanup()
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("cleanup must not remove the original file: %v", err)
		}
	})

	t.Run("uploads spill to a temp file", func(t *testing.T) {
		payload := []byte("%PDF-1.4 upload")
		got, cleanup, err := Materialize(BytesSource{Filename: "up.pdf", Data: payload})
		if err != nil {
			t.Fatalf("materialize: %v", err)
		}
		content, err := os.ReadFile(got)
		if err != nil {
			t.Fatalf("read temp: %v", err)
		}
		if !bytes.Equal(content, payload) {
			t.Fatalf("temp content mismatch: %q", content)
		}
		cleanup()
		if _, err := os.Stat(got); !os.IsNotExist(err) {
			t.Fatalf("cleanup should remove the temp file, stat err: %v", err)
		}
	})
}
