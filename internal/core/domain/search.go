package domain

// SearchMatch holds the matching lines for one document.
type SearchMatch struct {
	// DocumentName is the session document the lines came from.
	DocumentName string

	// Lines are the matching lines in document order.
	Lines []string
}

// SearchResult maps documents to their matching lines for one keyword scan.
// Documents with zero matches are excluded.
type SearchResult struct {
	// Keyword is the phrase that was searched for.
	Keyword string

	// Matches are per-document hits in session insertion order.
	Matches []SearchMatch
}

// Empty returns true if no document matched.
func (r SearchResult) Empty() bool {
	return len(r.Matches) == 0
}
