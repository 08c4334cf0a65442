package driven

import "context"

// Extractor produces plain text from one uploaded file's raw bytes.
// Implementations handle a specific set of file extensions (e.g., ".pdf").
type Extractor interface {
	// Extract parses the file bytes and returns the concatenated plain
	// text of every page in page order, plus the page count. A failure
	// applies only to this file; callers isolate it from the batch.
	Extract(ctx context.Context, name string, data []byte) (text string, pages int, err error)

	// SupportedExtensions returns the lower-case file extensions this
	// extractor handles, including the leading dot.
	SupportedExtensions() []string
}
