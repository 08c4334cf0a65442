package driving

import (
	"context"

	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
)

// StreamSink receives progressive updates while a model answer streams.
// It is called on the consuming goroutine after each fragment with the
// text accumulated so far and the elapsed seconds since invocation start.
// The accumulated text only ever grows; elapsed is non-decreasing.
// A nil sink disables progressive display.
type StreamSink func(partial string, elapsedSeconds float64)

// Answer is the completed result of one model invocation.
type Answer struct {
	// Text is the concatenation of every streamed fragment in arrival
	// order.
	Text string

	// ElapsedSeconds is the wall-clock time from invocation start to
	// stream end, on the monotonic clock.
	ElapsedSeconds float64

	// FromCache is true when the answer was served from the memo cache
	// without a model call.
	FromCache bool
}

// QueryService runs question-answering and summarisation against the
// model backend, one query at a time per session.
type QueryService interface {
	// Ask answers a free-form question over the session's combined text
	// using the session's personality. On success the question and the
	// answer are appended to the conversation. On failure nothing is
	// appended and the error describes the cause.
	Ask(ctx context.Context, session *domain.Session, question string, sink StreamSink) (*Answer, error)

	// Summarise produces a summary of one session document and appends
	// it to the conversation on success.
	Summarise(ctx context.Context, session *domain.Session, req domain.SummaryRequest, sink StreamSink) (*Answer, error)
}
