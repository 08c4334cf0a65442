package driven

import (
	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
)

// ConversationExporter renders a conversation into a download artifact.
type ConversationExporter interface {
	// Export renders the entries, in order, and returns the artifact
	// bytes (e.g., a paginated PDF).
	Export(entries []domain.Entry) ([]byte, error)

	// FileExtension returns the artifact extension including the leading
	// dot (e.g., ".pdf").
	FileExtension() string
}
