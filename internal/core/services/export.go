package services

import (
	"fmt"

	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
	"github.com/papyrus-labs/pdfchat-cli/internal/core/ports/driven"
	"github.com/papyrus-labs/pdfchat-cli/internal/core/ports/driving"
	"github.com/papyrus-labs/pdfchat-cli/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// ExportService renders the session conversation through a configured
// exporter adapter.
type ExportService struct {
	exporter driven.ConversationExporter
}

// NewExportService creates an export service.
func NewExportService(exporter driven.ConversationExporter) *ExportService {
	return &ExportService{exporter: exporter}
}

// ExportConversation renders the conversation in append order.
func (s *ExportService) ExportConversation(session *domain.Session) ([]byte, error) {
	if s.exporter == nil {
		return nil, fmt.Errorf("conversation export: %w", domain.ErrNotFound)
	}

	entries := session.Conversation()
	if len(entries) == 0 {
		return nil, domain.ErrEmptyConversation
	}

	logger.Debug("Exporting %d conversation entr(ies)", len(entries))
	data, err := s.exporter.Export(entries)
	if err != nil {
		return nil, fmt.Errorf("render conversation: %w", err)
	}
	return data, nil
}

// FileExtension returns the artifact extension of the exporter.
func (s *ExportService) FileExtension() string {
	if s.exporter == nil {
		return ""
	}
	return s.exporter.FileExtension()
}
