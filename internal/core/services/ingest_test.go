package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
)

// --- Mock implementations ---

// mockExtractor implements driven.Extractor for testing.
type mockExtractor struct {
	mu    sync.Mutex
	calls int

	// failFor maps file names to forced extraction errors.
	failFor map[string]error
}

func (m *mockExtractor) Extract(_ context.Context, name string, _ []byte) (string, int, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if err, ok := m.failFor[name]; ok {
		return "", 0, err
	}
	return "text of " + name, 1, nil
}

func (m *mockExtractor) SupportedExtensions() []string {
	return []string{".pdf"}
}

func (m *mockExtractor) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func TestIngestService_IngestAll(t *testing.T) {
	svc := NewIngestService(&mockExtractor{})
	session := domain.NewSession()

	files := []domain.UploadFile{
		{Name: "a.pdf", Data: []byte("a")},
		{Name: "b.pdf", Data: []byte("b")},
		{Name: "c.pdf", Data: []byte("c")},
	}

	report, err := svc.IngestAll(context.Background(), session, files)

	require.NoError(t, err)
	assert.Len(t, report.Processed, 3)
	assert.Empty(t, report.Skipped)
	assert.Empty(t, report.Failed)
	assert.Equal(t, 3, session.DocumentCount())
	assert.Equal(t, []string{"a.pdf", "b.pdf", "c.pdf"}, session.DocumentNames(),
		"documents keep submission order")
}

func TestIngestService_IngestAll_SkipsKnownNames(t *testing.T) {
	extractor := &mockExtractor{}
	svc := NewIngestService(extractor)
	session := domain.NewSession()
	session.AddDocument(domain.Document{Name: "a.pdf", Text: "original"})

	report, err := svc.IngestAll(context.Background(), session, []domain.UploadFile{
		{Name: "a.pdf", Data: []byte("changed")},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a.pdf"}, report.Skipped)
	assert.Empty(t, report.Processed)
	assert.Equal(t, 0, extractor.callCount(), "re-upload must not trigger extraction")

	text, err := session.DocumentText("a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "original", text)
}

func TestIngestService_IngestAll_FailureIsolation(t *testing.T) {
	boom := errors.New("corrupt xref")
	svc := NewIngestService(&mockExtractor{failFor: map[string]error{"bad.pdf": boom}})
	session := domain.NewSession()

	report, err := svc.IngestAll(context.Background(), session, []domain.UploadFile{
		{Name: "good.pdf"},
		{Name: "bad.pdf"},
		{Name: "fine.pdf"},
	})

	require.NoError(t, err, "a per-file failure never aborts the batch")
	assert.Equal(t, []string{"good.pdf", "fine.pdf"}, report.Processed)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "bad.pdf", report.Failed[0].Name)
	assert.ErrorIs(t, report.Failed[0].Err, domain.ErrExtraction)
	assert.ErrorIs(t, report.Failed[0].Err, boom)
	assert.False(t, session.HasDocument("bad.pdf"))
}

func TestIngestService_IngestAll_UnsupportedType(t *testing.T) {
	extractor := &mockExtractor{}
	svc := NewIngestService(extractor)
	session := domain.NewSession()

	report, err := svc.IngestAll(context.Background(), session, []domain.UploadFile{
		{Name: "notes.txt"},
	})

	require.NoError(t, err)
	require.Len(t, report.Failed, 1)
	assert.ErrorIs(t, report.Failed[0].Err, domain.ErrUnsupportedType)
	assert.Equal(t, 0, extractor.callCount(), "unsupported files are rejected before extraction")
}

func TestIngestService_IngestAll_EmptyBatch(t *testing.T) {
	svc := NewIngestService(&mockExtractor{})
	session := domain.NewSession()

	report, err := svc.IngestAll(context.Background(), session, nil)

	require.NoError(t, err)
	assert.True(t, report.Empty())
}

func TestIngestService_IngestAll_SingleWorker(t *testing.T) {
	svc := NewIngestService(&mockExtractor{})
	svc.SetWorkers(1)
	session := domain.NewSession()

	report, err := svc.IngestAll(context.Background(), session, []domain.UploadFile{
		{Name: "a.pdf"},
		{Name: "b.pdf"},
	})

	require.NoError(t, err)
	assert.Len(t, report.Processed, 2)
}

func TestIngestService_IngestAll_CancelledContext(t *testing.T) {
	svc := NewIngestService(&mockExtractor{})
	session := domain.NewSession()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.IngestAll(ctx, session, []domain.UploadFile{{Name: "a.pdf"}})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestIngestService_IngestPaths(t *testing.T) {
	svc := NewIngestService(&mockExtractor{})
	session := domain.NewSession()

	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0644))

	report, err := svc.IngestPaths(context.Background(), session, []string{path})

	require.NoError(t, err)
	assert.Equal(t, []string{"report.pdf"}, report.Processed)
	assert.True(t, session.HasDocument("report.pdf"))
}

func TestIngestService_IngestPaths_MissingFile(t *testing.T) {
	svc := NewIngestService(&mockExtractor{})
	session := domain.NewSession()

	report, err := svc.IngestPaths(context.Background(), session,
		[]string{filepath.Join(t.TempDir(), "missing.pdf")})

	require.NoError(t, err)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "missing.pdf", report.Failed[0].Name)
	assert.Empty(t, report.Processed)
}
