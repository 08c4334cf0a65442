package domain

import (
	"fmt"
	"time"
)

// EntryRole identifies the author of a conversation entry.
type EntryRole string

// Conversation entry roles.
const (
	// RoleUser is a question typed by the user.
	RoleUser EntryRole = "user"

	// RoleBot is a streamed model answer to a question.
	RoleBot EntryRole = "bot"

	// RoleSummary is a streamed document summary.
	RoleSummary EntryRole = "summary"
)

// DisplayName returns the label used when exporting the conversation.
func (r EntryRole) DisplayName() string {
	switch r {
	case RoleUser:
		return "User"
	case RoleBot:
		return "Bot"
	case RoleSummary:
		return "Summary"
	default:
		return string(r)
	}
}

// Entry is one item in the session conversation. The conversation is an
// append-only ordered sequence, cleared in a single operation.
type Entry struct {
	// ID uniquely identifies the entry.
	ID string

	// Role is who produced the content.
	Role EntryRole

	// Content is the full message text.
	Content string

	// ElapsedSeconds is the wall-clock response time for bot and summary
	// entries, measured from invocation start to stream end. Zero and
	// meaningless for user entries.
	ElapsedSeconds float64

	// Personality is the tone that was active when a bot answer was
	// produced. Empty for user and summary entries.
	Personality Personality

	// CreatedAt is when the entry was appended.
	CreatedAt time.Time
}

// ExportLine renders the entry content the way the conversation export
// prints it, appending the response time where one was recorded.
func (e Entry) ExportLine() string {
	if e.Role == RoleUser {
		return e.Content
	}
	return fmt.Sprintf("%s (Response Time: %.2f seconds)", e.Content, e.ElapsedSeconds)
}
