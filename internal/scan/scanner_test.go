package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestScanDirectory(t *testing.T) {
	ctx := context.Background()

	t.Run("walks the year/city/carrier/month layout", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "2025", "SP", "VIVO", "Janeiro", "a.pdf"))
		writeFile(t, filepath.Join(root, "2025", "SP", "CLARO", "Fevereiro", "b.PDF"))
		writeFile(t, filepath.Join(root, "2025", "SP", "VIVO", "Janeiro", "notas.txt"))
		writeFile(t, filepath.Join(root, ".cache", "c.pdf"))

		files, stats, err := ScanDirectory(ctx, root)
		if err != nil {
			t.Fatalf("scan: %v", err)
		}
		if len(files) != 2 {
			t.Fatalf("expected 2 invoices, got %d: %+v", len(files), files)
		}
		if stats.Matched != 2 {
			t.Fatalf("expected 2 matched, got %d", stats.Matched)
		}
		if stats.Skipped == 0 {
			t.Fatal("non-pdf file should be counted as skipped")
		}

		byName := map[string]FileMeta{}
		for _, f := range files {
			byName[f.Filename] = f
		}
		a := byName["a.pdf"]
		if a.Year != 2025 || a.City != "SP" || a.Carrier != "VIVO" || a.Month != "Janeiro" {
			t.Fatalf("wrong metadata for a.pdf: %+v", a)
		}
		if _, ok := byName["b.PDF"]; !ok {
			t.Fatal("extension match must be case-insensitive")
		}
	})

	t.Run("empty root is rejected", func(t *testing.T) {
		if _, _, err := ScanDirectory(ctx, "   "); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestMetaFromPath(t *testing.T) {
	cases := []struct {
		name string
		rel  string
		want FileMeta
	}{
		{
			name: "full depth",
			rel:  filepath.Join("2025", "Campinas", "CLARO", "Dezembro", "f.pdf"),
			want: FileMeta{Year: 2025, City: "Campinas", Carrier: "CLARO", Month: "Dezembro"},
		},
		{
			name: "partial depth keeps zero values",
			rel:  filepath.Join("2026", "f.pdf"),
			want: FileMeta{Year: 2026},
		},
		{
			name: "file at root has no metadata",
			rel:  "f.pdf",
			want: FileMeta{},
		},
		{
			name: "non-numeric year is ignored",
			rel:  filepath.Join("arquivo-morto", "SP", "VIVO", "Maio", "f.pdf"),
			want: FileMeta{City: "SP", Carrier: "VIVO", Month: "Maio"},
		},
	}

	root := string(filepath.Separator) + "faturas"
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(root, tc.rel)
			got := MetaFromPath(root, path)
			if got.Year != tc.want.Year || got.City != tc.want.City ||
				got.Carrier != tc.want.Carrier || got.Month != tc.want.Month {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
			if got.Path != path || got.Filename != "f.pdf" {
				t.Fatalf("path fields wrong: %+v", got)
			}
		})
	}
}
