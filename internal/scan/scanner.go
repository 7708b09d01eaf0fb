package scan

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/telbill/invoice-pipeline/constants"
)

// FileMeta is an invoice file found on disk plus the attributes derived
// from its directory layout: <root>/<year>/<city>/<carrier>/<month>/file.pdf.
// Files sitting above the expected depth keep zero values for the missing
// segments.
type FileMeta struct {
	Path     string
	Filename string
	Year     int
	City     string
	Carrier  string
	Month    string
}

type Stats struct {
	Scanned uint32
	Matched uint32
	Skipped uint32
	Failed  uint32
}

// ScanDirectory walks root and returns every allowed invoice file with
// metadata derived from its location. Hidden files and directories are
// skipped; walk errors on individual entries are counted but do not
// abort the scan.
func ScanDirectory(ctx context.Context, root string) ([]FileMeta, Stats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, Stats{}, fmt.Errorf("root path is required")
	}
	root = filepath.Clean(root)

	var files []FileMeta
	var stats Stats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats.Scanned++
		if walkErr != nil {
			stats.Failed++
			return nil
		}
		if isHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			stats.Skipped++
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := constants.AllowedExtensions[constants.NormalizeExt(filepath.Ext(path))]; !ok {
			stats.Skipped++
			return nil
		}
		stats.Matched++
		files = append(files, MetaFromPath(root, path))
		return nil
	})
	if err != nil {
		return files, stats, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, stats, nil
}

// MetaFromPath derives year/city/carrier/month from the file's position
// under root.
func MetaFromPath(root, path string) FileMeta {
	meta := FileMeta{Path: path, Filename: filepath.Base(path)}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return meta
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) < 2 {
		return meta
	}
	segs := parts[:len(parts)-1]

	if y, err := strconv.Atoi(segs[0]); err == nil {
		meta.Year = y
	}
	if len(segs) > 1 {
		meta.City = segs[1]
	}
	if len(segs) > 2 {
		meta.Carrier = segs[2]
	}
	if len(segs) > 3 {
		meta.Month = segs[3]
	}
	return meta
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
