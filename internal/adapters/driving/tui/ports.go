// Package tui provides the interactive chat interface for pdfchat.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/papyrus-labs/pdfchat-cli/internal/core/ports/driven"
	"github.com/papyrus-labs/pdfchat-cli/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Ingest turns uploaded files into session documents.
	Ingest driving.IngestService

	// Query answers questions and produces summaries.
	Query driving.QueryService

	// Search scans documents for keywords.
	Search driving.SearchService

	// Table recovers tabular data from answers.
	Table driving.TableService

	// Export renders the conversation for download.
	Export driving.ExportService

	// Watcher reports new files dropped into the upload directory.
	// Optional; nil disables watch mode.
	Watcher driven.UploadWatcher
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	ingest driving.IngestService,
	query driving.QueryService,
	search driving.SearchService,
	table driving.TableService,
	export driving.ExportService,
) *Ports {
	return &Ports{
		Ingest: ingest,
		Query:  query,
		Search: search,
		Table:  table,
		Export: export,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Ingest == nil {
		return ErrMissingIngestService
	}
	if p.Query == nil {
		return ErrMissingQueryService
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Table == nil {
		return ErrMissingTableService
	}
	if p.Export == nil {
		return ErrMissingExportService
	}
	return nil
}
