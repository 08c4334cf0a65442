package services

import (
	"strings"

	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
	"github.com/papyrus-labs/pdfchat-cli/internal/core/ports/driving"
	"github.com/papyrus-labs/pdfchat-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService performs the naive keyword scan across session documents.
// This is a linear substring test per line, not a retrieval system.
type SearchService struct{}

// NewSearchService creates a new search service.
func NewSearchService() *SearchService {
	return &SearchService{}
}

// Search tests the keyword case-insensitively against every line of every
// document. Documents with zero matching lines are excluded. An empty
// keyword means no search is performed.
func (s *SearchService) Search(session *domain.Session, keyword string) (domain.SearchResult, error) {
	result := domain.SearchResult{Keyword: keyword}

	if strings.TrimSpace(keyword) == "" {
		logger.Debug("Empty keyword, no search performed")
		return result, nil
	}

	logger.Section("Search")
	logger.Debug("Keyword: %q", keyword)

	needle := strings.ToLower(keyword)
	for _, doc := range session.Documents() {
		var lines []string
		for _, line := range strings.Split(doc.Text, "\n") {
			if strings.Contains(strings.ToLower(line), needle) {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			result.Matches = append(result.Matches, domain.SearchMatch{
				DocumentName: doc.Name,
				Lines:        lines,
			})
		}
	}

	logger.Debug("Matched %d document(s)", len(result.Matches))
	return result, nil
}
