package driving

import (
	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
)

// ExportService renders session artifacts for download.
type ExportService interface {
	// ExportConversation renders the session conversation as a paginated
	// document and returns the artifact bytes.
	ExportConversation(session *domain.Session) ([]byte, error)

	// FileExtension returns the conversation artifact extension.
	FileExtension() string
}
