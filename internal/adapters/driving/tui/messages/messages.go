// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewChat is the main conversation view.
	ViewChat ViewType = iota
	// ViewDocuments lists the session's ingested documents.
	ViewDocuments
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewChat:
		return "chat"
	case ViewDocuments:
		return "documents"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// IngestCompleted carries the outcome of an upload batch.
type IngestCompleted struct {
	Report domain.IngestReport
	Err    error
}

// StreamStarted signals a model invocation has begun.
type StreamStarted struct {
	// Question is the user question, empty for summaries.
	Question string
}

// StreamProgress carries the accumulated answer text while streaming.
type StreamProgress struct {
	Text           string
	ElapsedSeconds float64
}

// StreamCompleted signals the model invocation finished.
type StreamCompleted struct {
	Text           string
	ElapsedSeconds float64
	FromCache      bool
	Err            error
}

// SummaryRequested asks for a summary of one session document.
type SummaryRequested struct {
	Request domain.SummaryRequest
}

// SearchCompleted carries keyword search results back to the model.
type SearchCompleted struct {
	Keyword string
	Result  domain.SearchResult
	Err     error
}

// ConversationExported signals the conversation PDF was written.
type ConversationExported struct {
	Path string
	Err  error
}

// TableSaved signals a comparison table was written as CSV.
type TableSaved struct {
	Path string
	Err  error
}

// WatchedFileFound signals the upload watcher saw a new file.
type WatchedFileFound struct {
	Path string
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
