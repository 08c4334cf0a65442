package domain

import "time"

// Document is one uploaded file after text extraction.
// The extracted text is immutable once the document is created; re-uploading
// a file with the same name is a no-op.
type Document struct {
	// Name is the unique identifier within a session (the upload filename).
	Name string

	// Text is the plain text concatenated from every page, in page order.
	Text string

	// Pages is the page count reported by the extractor.
	Pages int

	// IngestedAt is when extraction completed.
	IngestedAt time.Time
}

// UploadFile is one file supplied by an upload action, before extraction.
type UploadFile struct {
	// Name is the filename including extension.
	Name string

	// Data is the raw file bytes.
	Data []byte
}

// IngestFailure records one document that failed to extract.
// A failure is isolated to its document and never aborts the batch.
type IngestFailure struct {
	Name string
	Err  error
}

// IngestReport summarises one upload batch.
type IngestReport struct {
	// Processed lists documents extracted and added, in completion-
	// independent submission order.
	Processed []string

	// Skipped lists names that were already present in the session.
	Skipped []string

	// Failed lists per-document extraction failures.
	Failed []IngestFailure
}

// Empty returns true if the batch produced no new documents.
func (r IngestReport) Empty() bool {
	return len(r.Processed) == 0
}
