package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
	"github.com/papyrus-labs/pdfchat-cli/internal/core/ports/driven"
	"github.com/papyrus-labs/pdfchat-cli/internal/core/ports/driving"
	"github.com/papyrus-labs/pdfchat-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService extracts uploaded files in parallel and adds the results
// to a session.
type IngestService struct {
	extractor driven.Extractor

	// workers bounds the extraction pool. Zero means GOMAXPROCS.
	workers int
}

// NewIngestService creates an ingest service backed by the given extractor.
func NewIngestService(extractor driven.Extractor) *IngestService {
	return &IngestService{extractor: extractor}
}

// SetWorkers overrides the extraction pool size. Values below one restore
// the default of runtime.GOMAXPROCS(0).
func (s *IngestService) SetWorkers(n int) {
	s.workers = n
}

// extraction is one finished per-document extraction task.
type extraction struct {
	doc domain.Document
	err error
}

// IngestAll extracts every new file concurrently, one task per document.
// Tasks share no mutable state; each writes only its own result slot.
// All tasks are joined before the session is touched, and the session
// update runs single-threaded on the calling goroutine.
func (s *IngestService) IngestAll(
	ctx context.Context, session *domain.Session, files []domain.UploadFile,
) (domain.IngestReport, error) {
	logger.Section("Ingest")
	logger.Debug("Batch of %d file(s)", len(files))

	var report domain.IngestReport

	// Skip already-known names before scheduling any work (idempotence:
	// a re-upload triggers no extraction call).
	var pending []domain.UploadFile
	for _, f := range files {
		if session.HasDocument(f.Name) {
			logger.Debug("Skipping %s: already processed", f.Name)
			report.Skipped = append(report.Skipped, f.Name)
			continue
		}
		pending = append(pending, f)
	}
	if len(pending) == 0 {
		return report, nil
	}

	workers := s.workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger.Debug("Extraction pool size: %d", workers)

	results := make([]extraction, len(pending))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, f := range pending {
		g.Go(func() error {
			results[i] = s.extractOne(gctx, f)
			// Failures are isolated per document; never abort the group.
			return nil
		})
	}
	// Join all tasks for the batch before the mapping is updated.
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return report, err
	}

	for _, res := range results {
		if res.err != nil {
			logger.Warn("Extraction failed for %s: %v", res.doc.Name, res.err)
			report.Failed = append(report.Failed, domain.IngestFailure{
				Name: res.doc.Name,
				Err:  res.err,
			})
			continue
		}
		session.AddDocument(res.doc)
		report.Processed = append(report.Processed, res.doc.Name)
	}

	logger.Info("Ingest complete: %d processed, %d skipped, %d failed",
		len(report.Processed), len(report.Skipped), len(report.Failed))
	return report, nil
}

// extractOne runs a single extraction task. The returned value carries the
// document name even on failure so the report can identify the file.
func (s *IngestService) extractOne(ctx context.Context, f domain.UploadFile) extraction {
	res := extraction{doc: domain.Document{Name: f.Name}}

	if !s.supported(f.Name) {
		res.err = fmt.Errorf("%s: %w", f.Name, domain.ErrUnsupportedType)
		return res
	}

	text, pages, err := s.extractor.Extract(ctx, f.Name, f.Data)
	if err != nil {
		res.err = fmt.Errorf("%s: %w: %w", f.Name, domain.ErrExtraction, err)
		return res
	}

	res.doc.Text = text
	res.doc.Pages = pages
	res.doc.IngestedAt = time.Now()
	logger.Debug("Extracted %s: %d page(s), %d byte(s)", f.Name, pages, len(text))
	return res
}

// IngestPaths reads the named files from disk and ingests them.
func (s *IngestService) IngestPaths(
	ctx context.Context, session *domain.Session, paths []string,
) (domain.IngestReport, error) {
	files := make([]domain.UploadFile, 0, len(paths))
	var report domain.IngestReport

	for _, path := range paths {
		name := filepath.Base(path)
		data, err := os.ReadFile(path)
		if err != nil {
			report.Failed = append(report.Failed, domain.IngestFailure{
				Name: name,
				Err:  fmt.Errorf("read %s: %w", path, err),
			})
			continue
		}
		files = append(files, domain.UploadFile{Name: name, Data: data})
	}

	batch, err := s.IngestAll(ctx, session, files)
	report.Processed = batch.Processed
	report.Skipped = batch.Skipped
	report.Failed = append(report.Failed, batch.Failed...)
	return report, err
}

// supported reports whether the extractor handles the file's extension.
func (s *IngestService) supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, supported := range s.extractor.SupportedExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
