package driving

import (
	"context"

	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
)

// IngestService turns uploaded files into session documents.
type IngestService interface {
	// IngestAll extracts every file concurrently and adds the results to
	// the session. Files whose names are already in the session are
	// skipped without extraction. A per-file failure is recorded in the
	// report and does not abort the batch. The session is only updated
	// after all extractions have returned.
	IngestAll(ctx context.Context, session *domain.Session, files []domain.UploadFile) (domain.IngestReport, error)

	// IngestPaths reads the named files from disk and ingests them.
	IngestPaths(ctx context.Context, session *domain.Session, paths []string) (domain.IngestReport, error)
}
