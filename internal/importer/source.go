package importer

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// FileSource abstracts where invoice bytes come from: a path on disk, an
// in-memory upload, or a seekable stream. Hashing and parsing work the
// same regardless of representation.
type FileSource interface {
	// Name is a human-readable origin (path or upload filename).
	Name() string
	// Open returns a fresh reader over the full content. For seekable
	// streams the original position is restored on Close.
	Open() (io.ReadCloser, error)
	// Uploaded reports whether a genuine binary payload accompanies the
	// source (true for uploads, false for files already on disk).
	Uploaded() bool
}

// PathSource reads from the local filesystem.
type PathSource string

func (p PathSource) Name() string { return string(p) }

func (p PathSource) Open() (io.ReadCloser, error) { return os.Open(string(p)) }

func (p PathSource) Uploaded() bool { return false }

// BytesSource wraps an upload already held in memory.
type BytesSource struct {
	Filename string
	Data     []byte
}

func (b BytesSource) Name() string { return b.Filename }

func (b BytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b.Data)), nil
}

func (b BytesSource) Uploaded() bool { return true }

// StreamSource wraps a seekable stream (e.g. a spooled upload). Open
// rewinds to the start and Close restores the caller's position.
type StreamSource struct {
	Filename string
	R        io.ReadSeeker
}

func (s StreamSource) Name() string { return s.Filename }

func (s StreamSource) Open() (io.ReadCloser, error) {
	cur, err := s.R.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	if _, err := s.R.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return &restoringReader{r: s.R, restoreTo: cur}, nil
}

func (s StreamSource) Uploaded() bool { return true }

type restoringReader struct {
	r         io.ReadSeeker
	restoreTo int64
}

func (rr *restoringReader) Read(p []byte) (int, error) { return rr.r.Read(p) }

func (rr *restoringReader) Close() error {
	_, err := rr.r.Seek(rr.restoreTo, io.SeekStart)
	return err
}

// ContentHash computes the dedup fingerprint: a SHA-256 hex digest over
// the full byte content, independent of source representation.
func ContentHash(src FileSource) (string, error) {
	rc, err := src.Open()
	if err != nil {
		return "", fmt.Errorf("open source %q: %w", src.Name(), err)
	}
	defer func() { _ = rc.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, rc); err != nil {
		return "", fmt.Errorf("hash source %q: %w", src.Name(), err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Materialize yields a filesystem path for the source, writing a temp
// file when the content is not already on disk. cleanup is always safe
// to call.
func Materialize(src FileSource) (path string, cleanup func(), err error) {
	if p, ok := src.(PathSource); ok {
		return string(p), func() {}, nil
	}

	rc, err := src.Open()
	if err != nil {
		return "", func() {}, err
	}
	defer func() { _ = rc.Close() }()

	tmp, err := os.CreateTemp("", "iv-upload-*.pdf")
	if err != nil {
		return "", func() {}, err
	}
	if _, err := io.Copy(tmp, rc); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", func() {}, err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", func() {}, err
	}
	name := tmp.Name()
	return name, func() { _ = os.Remove(name) }, nil
}
