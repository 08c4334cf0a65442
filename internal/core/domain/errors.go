package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a file type the extractor cannot handle.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrNoDocuments indicates an operation that needs at least one
	// ingested document was attempted on an empty session.
	ErrNoDocuments = errors.New("no documents loaded")

	// ErrExtraction indicates a single document failed to parse.
	// Extraction of the other documents in a batch is unaffected.
	ErrExtraction = errors.New("extraction failed")

	// ErrLLMUnavailable indicates the model backend is not reachable.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrQueryInProgress indicates a model query is already streaming.
	// One query is in flight at a time per session.
	ErrQueryInProgress = errors.New("query already in progress")

	// ErrEmptyConversation indicates an export was attempted before any
	// conversation entries exist.
	ErrEmptyConversation = errors.New("no chat history to export")

	// ErrNoTable indicates no well-formed pipe table was found in an
	// answer. The CSV path treats this as "no result", not a failure.
	ErrNoTable = errors.New("no table detected")

	// ErrTableMalformed indicates tabular content was detected but could
	// not be converted (e.g. ragged rows). Surfaced as a non-fatal note.
	ErrTableMalformed = errors.New("malformed table")
)
