package importer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/telbill/invoice-pipeline/constants"
	"github.com/telbill/invoice-pipeline/internal/entity"
	"github.com/telbill/invoice-pipeline/internal/ocr"
)

// In-memory store fakes shared by the importer tests.

type statusCall struct {
	id     uuid.UUID
	status constants.ImportStatus
	code   *string
	msg    *string
}

type reclaimCall struct {
	statuses []constants.ImportStatus
	before   time.Time
	code     string
	msg      string
}

type fakeImportStore struct {
	mu          sync.Mutex
	byID        map[uuid.UUID]*entity.InvoiceImport
	createErr     error
	findErr       error
	missFirstFind bool
	statusCalls []statusCall
	reclaimed   []reclaimCall
	reclaimN    int
	reclaimErr  error
}

func newFakeImportStore() *fakeImportStore {
	return &fakeImportStore{byID: map[uuid.UUID]*entity.InvoiceImport{}}
}

func (s *fakeImportStore) add(rec *entity.InvoiceImport) *entity.InvoiceImport {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	s.byID[rec.ID] = rec
	return rec
}

func (s *fakeImportStore) Get(_ context.Context, id uuid.UUID) (*entity.InvoiceImport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byID[id], nil
}

func (s *fakeImportStore) FindByHash(_ context.Context, hash string) (*entity.InvoiceImport, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.missFirstFind {
		s.missFirstFind = false
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.byID {
		if rec.FileHash == hash {
			return rec, nil
		}
	}
	return nil, nil
}

func (s *fakeImportStore) Create(_ context.Context, rec *entity.InvoiceImport) (*entity.InvoiceImport, error) {
	if s.createErr != nil {
		err := s.createErr
		s.createErr = nil
		return nil, err
	}
	return s.add(rec), nil
}

func (s *fakeImportStore) Update(_ context.Context, rec *entity.InvoiceImport) (*entity.InvoiceImport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[rec.ID]; !ok {
		return nil, errors.New("update of unknown record")
	}
	s.byID[rec.ID] = rec
	return rec, nil
}

func (s *fakeImportStore) SetStatus(_ context.Context, id uuid.UUID, status constants.ImportStatus, code, msg *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statusCalls = append(s.statusCalls, statusCall{id: id, status: status, code: code, msg: msg})
	if rec, ok := s.byID[id]; ok {
		rec.Status = status
		rec.ErrorCode = code
		rec.ErrorMessage = msg
	}
	return nil
}

func (s *fakeImportStore) ListByStatuses(_ context.Context, statuses []constants.ImportStatus) ([]*entity.InvoiceImport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.InvoiceImport
	for _, rec := range s.byID {
		for _, st := range statuses {
			if rec.Status == st {
				out = append(out, rec)
				break
			}
		}
	}
	return out, nil
}

func (s *fakeImportStore) ReclaimStale(_ context.Context, statuses []constants.ImportStatus, before time.Time, code, msg string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reclaimed = append(s.reclaimed, reclaimCall{statuses: statuses, before: before, code: code, msg: msg})
	return s.reclaimN, s.reclaimErr
}

type fakeReportStore struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*entity.Report
}

func newFakeReportStore() *fakeReportStore {
	return &fakeReportStore{byID: map[uuid.UUID]*entity.Report{}}
}

func (s *fakeReportStore) Get(_ context.Context, id uuid.UUID) (*entity.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byID[id], nil
}

func (s *fakeReportStore) Create(_ context.Context, rep *entity.Report) (*entity.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rep.ID = uuid.New()
	s.byID[rep.ID] = rep
	return rep, nil
}

func (s *fakeReportStore) Update(_ context.Context, rep *entity.Report) (*entity.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[rep.ID] = rep
	return rep, nil
}

type fakeCategoryStore struct {
	mu     sync.Mutex
	byName map[string]*entity.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{byName: map[string]*entity.Category{}}
}

func (s *fakeCategoryStore) GetOrCreate(_ context.Context, name string) (*entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.byName[name]; ok {
		return c, nil
	}
	c := &entity.Category{ID: uuid.New(), Name: name}
	s.byName[name] = c
	return c, nil
}

type fakeBlobStore struct {
	mu     sync.Mutex
	writes []string
}

func (s *fakeBlobStore) Write(_ context.Context, name string, r io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = append(s.writes, name)
	return "/blobs/" + name, nil
}

type auditEntry struct {
	actor    string
	action   constants.AuditAction
	entity   string
	entityID string
	before   json.RawMessage
	after    json.RawMessage
}

type fakeAuditor struct {
	mu      sync.Mutex
	entries []auditEntry
}

func (a *fakeAuditor) Log(_ context.Context, actor string, action constants.AuditAction, entityName, entityID string, before, after json.RawMessage) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, auditEntry{actor: actor, action: action, entity: entityName, entityID: entityID, before: before, after: after})
}

func (a *fakeAuditor) byAction(action constants.AuditAction) []auditEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []auditEntry
	for _, e := range a.entries {
		if e.action == action {
			out = append(out, e)
		}
	}
	return out
}

// nopTx runs the closure without any transaction semantics.
type nopTx struct{}

func (nopTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// cannedExtractor feeds fixed text to the parsers.
type cannedExtractor struct{ text string }

func (c cannedExtractor) Extract(_ context.Context, _ string) ocr.ExtractionResult {
	return ocr.ExtractionResult{Text: c.text, Method: "pdf-text", Pages: 1}
}

// brokenSource fails on Open, for hash and materialize error paths.
type brokenSource struct{}

func (brokenSource) Name() string                 { return "broken.pdf" }
func (brokenSource) Open() (io.ReadCloser, error) { return nil, errors.New("disk gone") }
func (brokenSource) Uploaded() bool               { return false }

func containsUpper(s, sub string) bool {
	return strings.Contains(strings.ToUpper(s), strings.ToUpper(sub))
}
