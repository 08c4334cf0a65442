package driving

import (
	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
)

// SearchService scans session documents for a keyword or phrase.
type SearchService interface {
	// Search performs a case-insensitive substring test against every
	// line of every document. An empty (or all-whitespace) keyword means
	// no search is performed: the result is empty and the error nil.
	Search(session *domain.Session, keyword string) (domain.SearchResult, error)
}

// TableService recovers tabular data from a completed answer.
type TableService interface {
	// ExtractTable returns the first pipe-delimited table in the answer,
	// gated on the answer mentioning a comparison/table keyword.
	// Returns domain.ErrNoTable when nothing tabular was detected and
	// domain.ErrTableMalformed when a block was found but could not be
	// converted.
	ExtractTable(answer string) (*domain.Table, error)
}
