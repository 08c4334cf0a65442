package driven

import "context"

// LLMService provides chat-completion operations against a locally hosted
// model backend.
//
// Implementations may include:
//   - Ollama (local models)
//   - LM Studio (local inference server)
type LLMService interface {
	// Chat conducts a conversation and returns the complete reply.
	Chat(ctx context.Context, messages []ChatMessage, opts ChatOptions) (string, error)

	// ChatStream conducts a conversation in streaming mode. The returned
	// stream yields text fragments as the model produces them and ends
	// with io.EOF when the model signals completion. The stream is
	// finite, forward-only, and not restartable.
	ChatStream(ctx context.Context, messages []ChatMessage, opts ChatOptions) (ChatStream, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the backend is reachable with a lightweight request.
	// Used at startup to verify connectivity before the first query.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// ChatStream is a lazy sequence of model output fragments.
type ChatStream interface {
	// Recv returns the next fragment. It returns io.EOF when the model
	// has signalled completion, and any other error if the stream fails
	// mid-flight. After a non-nil error no further fragments arrive.
	Recv() (string, error)

	// Close releases the underlying connection. Safe to call more than
	// once and after Recv has returned an error.
	Close() error
}

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	// Role is one of "system" or "user".
	Role string

	// Content is the message text.
	Content string
}

// ChatOptions configures chat behaviour.
type ChatOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}

// Message roles accepted by the chat-completion boundary.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)
