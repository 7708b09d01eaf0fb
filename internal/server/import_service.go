package server

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/telbill/invoice-pipeline/constants"
	v1 "github.com/telbill/invoice-pipeline/gen/proto/invoices/v1"
	"github.com/telbill/invoice-pipeline/internal/async"
	"github.com/telbill/invoice-pipeline/internal/common"
	"github.com/telbill/invoice-pipeline/internal/entity"
	"github.com/telbill/invoice-pipeline/internal/importer"
	"github.com/telbill/invoice-pipeline/internal/scan"
	"github.com/telbill/invoice-pipeline/internal/utils"
)

type ImportService struct {
	v1.UnimplementedImportServiceServer
	manager *importer.Manager
	imports importer.ImportStore
	queue   async.Queue
	logger  *slog.Logger
}

func NewImportService(manager *importer.Manager, imports importer.ImportStore, queue async.Queue, logger *slog.Logger) *ImportService {
	return &ImportService{manager: manager, imports: imports, queue: queue, logger: logger}
}

// ImportFile implements v1.ImportServiceServer
func (s *ImportService) ImportFile(ctx context.Context, req *v1.ImportFileRequest) (*v1.ImportFileResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("import request missing path")
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}
	if !allowedInvoiceFile(path) {
		return nil, status.Error(codes.InvalidArgument, "only PDF invoices are accepted")
	}

	src := importer.PathSource(path)
	meta := &importer.Metadata{
		Year:    int(req.GetYear()),
		City:    req.GetCity(),
		Carrier: req.GetCarrier(),
		Month:   req.GetMonth(),
	}
	actor := actorOrDefault(ctx, req.GetActor())

	s.logger.Info("starting invoice import", "path", path, "actor", actor)
	st, msg := s.manager.ProcessInvoice(ctx, src, meta, actor, nil)
	return s.respond(ctx, src, st, msg)
}

func (s *ImportService) ImportUpload(ctx context.Context, req *v1.ImportUploadRequest) (*v1.ImportFileResponse, error) {
	name := strings.TrimSpace(req.GetFilename())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}
	if !allowedInvoiceFile(name) {
		return nil, status.Error(codes.InvalidArgument, "only PDF invoices are accepted")
	}
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}

	src := importer.BytesSource{Filename: name, Data: req.GetContent()}
	meta := &importer.Metadata{
		Year:    int(req.GetYear()),
		City:    req.GetCity(),
		Carrier: req.GetCarrier(),
		Month:   req.GetMonth(),
	}
	actor := actorOrDefault(ctx, req.GetActor())

	s.logger.Info("starting invoice upload import", "filename", name, "size", len(req.GetContent()), "actor", actor)
	st, msg := s.manager.ProcessInvoice(ctx, src, meta, actor, nil)
	return s.respond(ctx, src, st, msg)
}

// ImportDirectory walks the invoice tree and queues every discovered file
// for background processing. Files whose content already backs an active
// report are skipped without queueing.
func (s *ImportService) ImportDirectory(ctx context.Context, req *v1.ImportDirectoryRequest) (*v1.ImportDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("import directory request missing root_path")
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}
	actor := actorOrDefault(ctx, req.GetActor())

	s.logger.Info("starting directory import", "root", root, "actor", actor)
	files, stats, err := scan.ScanDirectory(ctx, root)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "scan directory: %v", err)
	}

	out := &v1.ImportDirectoryResponse{
		Scanned: stats.Scanned,
		Matched: stats.Matched,
		Skipped: stats.Skipped,
		Failed:  stats.Failed,
	}
	for _, f := range files {
		id, err := s.stage(ctx, f)
		if err != nil {
			s.logger.Error("failed to stage invoice", "path", f.Path, "error", err)
			out.Failed++
			continue
		}
		if id == uuid.Nil {
			out.Skipped++
			continue
		}
		if err := s.queue.Enqueue(ctx, async.Job{ImportID: id, Actor: actor}); err != nil {
			s.logger.Error("failed to queue invoice", "path", f.Path, "error", err)
			out.Failed++
			continue
		}
		out.Queued++
	}
	s.logger.Info("directory import staged",
		"root", root, "scanned", out.Scanned, "matched", out.Matched,
		"queued", out.Queued, "skipped", out.Skipped, "failed", out.Failed)
	return out, nil
}

func (s *ImportService) Reprocess(ctx context.Context, req *v1.ReprocessRequest) (*v1.ImportFileResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetImportId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "import_id must be a UUID")
	}
	rec, err := s.imports.Get(ctx, id)
	if err != nil {
		return nil, status.Error(codes.Internal, "load import failed")
	}
	if rec == nil {
		return nil, status.Error(codes.NotFound, "import not found")
	}
	actor := actorOrDefault(ctx, req.GetActor())

	s.logger.Info("reprocessing invoice", "import_id", id, "actor", actor)
	meta := &importer.Metadata{Year: rec.Year, City: rec.City, Carrier: rec.Carrier, Month: rec.Month}
	st, msg := s.manager.ProcessInvoice(ctx, importer.PathSource(rec.FilePath), meta, actor, rec)

	return &v1.ImportFileResponse{
		Import:  utils.ToPBImport(rec),
		Status:  string(st),
		Message: msg,
	}, nil
}

func (s *ImportService) GetImport(ctx context.Context, req *v1.GetImportRequest) (*v1.GetImportResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetImportId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "import_id must be a UUID")
	}
	rec, err := s.imports.Get(ctx, id)
	if err != nil {
		s.logger.Error("get import failed", "import_id", id, "error", err)
		return nil, status.Error(codes.Internal, "get import failed")
	}
	if rec == nil {
		return nil, status.Error(codes.NotFound, "import not found")
	}
	return &v1.GetImportResponse{Import: utils.ToPBImport(rec)}, nil
}

// stage creates an INBOX record for a discovered file, reusing the
// existing record when the content was seen before. A uuid.Nil return
// means the file is a duplicate of an active import.
func (s *ImportService) stage(ctx context.Context, f scan.FileMeta) (uuid.UUID, error) {
	hash, err := importer.ContentHash(importer.PathSource(f.Path))
	if err != nil {
		return uuid.Nil, err
	}
	existing, err := s.imports.FindByHash(ctx, hash)
	if err != nil {
		return uuid.Nil, err
	}
	if existing != nil {
		if existing.HasActiveReport() {
			return uuid.Nil, nil
		}
		return existing.ID, nil
	}

	rec := &entity.InvoiceImport{
		FilePath: f.Path,
		FileHash: hash,
		Year:     f.Year,
		City:     f.City,
		Carrier:  constants.NormalizeCarrier(f.Carrier),
		Month:    f.Month,
		Status:   constants.ImportStatusInbox,
	}
	created, err := s.imports.Create(ctx, rec)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			// Lost the race to a concurrent scan of the same content.
			winner, lerr := s.imports.FindByHash(ctx, hash)
			if lerr != nil || winner == nil {
				return uuid.Nil, err
			}
			return winner.ID, nil
		}
		return uuid.Nil, err
	}
	return created.ID, nil
}

func (s *ImportService) respond(ctx context.Context, src importer.FileSource, st constants.ImportStatus, msg string) (*v1.ImportFileResponse, error) {
	resp := &v1.ImportFileResponse{Status: string(st), Message: msg}
	if hash, err := importer.ContentHash(src); err == nil {
		if rec, err := s.imports.FindByHash(ctx, hash); err == nil && rec != nil {
			resp.Import = utils.ToPBImport(rec)
		}
	}
	return resp, nil
}

func actorOrDefault(ctx context.Context, actor string) string {
	if actor != "" {
		return actor
	}
	if a := common.ActorFromContext(ctx); a != "" {
		return a
	}
	return "system"
}

func allowedInvoiceFile(path string) bool {
	_, ok := constants.AllowedExtensions[constants.NormalizeExt(filepath.Ext(path))]
	return ok
}
