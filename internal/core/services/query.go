package services

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
	"github.com/papyrus-labs/pdfchat-cli/internal/core/ports/driven"
	"github.com/papyrus-labs/pdfchat-cli/internal/core/ports/driving"
	"github.com/papyrus-labs/pdfchat-cli/internal/logger"
)

// Ensure QueryService implements the interfaces.
var (
	_ driving.QueryService    = (*QueryService)(nil)
	_ driven.PromptStoreAware = (*QueryService)(nil)
)

// answerCacheSize bounds the memo cache for repeated identical queries.
const answerCacheSize = 128

// Default prompt texts, used when no PromptStore is configured or a named
// prompt cannot be loaded.
var defaultPrompts = map[string]string{
	driven.PromptToneNeutral:   "You are an excellent pdf-document chatbot.",
	driven.PromptToneFormal:    "You are a highly professional and formal pdf-document chatbot.",
	driven.PromptToneCasual:    "You are a friendly and casual pdf-document chatbot.",
	driven.PromptToneTechnical: "You are a highly technical and detail-oriented pdf-document chatbot.",

	driven.PromptAnswerRules: "Give accurate and concise answers only to the question that is asked. " +
		"You are able to handle data from PDFs such as key-value pairs, tabular data, graphs, " +
		"numbers, calculations, etc.",

	driven.PromptSummaryShort:    "Provide a concise summary of the text in no more than 2 sentences.",
	driven.PromptSummaryDetailed: "Provide a detailed summary of the text in 6-8 lines.",
	driven.PromptSummaryDetailedBullets: "Provide a detailed summary of the text in 6-8 lines. " +
		"Use bullet points for each key point.",
	driven.PromptSummaryTabular: "Summarize the full pdf data in a table format with max 6-7 points.",
}

// QueryService builds role-tagged prompts, invokes the model in streaming
// mode, and aggregates the fragment stream into a final answer with its
// response time.
type QueryService struct {
	llm         driven.LLMService
	promptStore driven.PromptStore
	cache       *lru.Cache[string, driving.Answer]
}

// NewQueryService creates a query service backed by the given LLM.
func NewQueryService(llm driven.LLMService) (*QueryService, error) {
	cache, err := lru.New[string, driving.Answer](answerCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create answer cache: %w", err)
	}
	return &QueryService{llm: llm, cache: cache}, nil
}

// SetPromptStore sets the prompt store for loading customisable prompts.
// If not set, the service uses hardcoded default prompts.
func (s *QueryService) SetPromptStore(store driven.PromptStore) {
	s.promptStore = store
}

// Ask answers a free-form question over the session's combined text.
func (s *QueryService) Ask(
	ctx context.Context, session *domain.Session, question string, sink driving.StreamSink,
) (*driving.Answer, error) {
	if s.llm == nil {
		return nil, domain.ErrLLMUnavailable
	}
	if session.DocumentCount() == 0 {
		return nil, domain.ErrNoDocuments
	}

	corpus := session.CombinedText()
	personality := session.Personality()

	logger.Section("Question")
	logger.Debug("Personality: %s, corpus: %d byte(s)", personality, len(corpus))

	// Repeated identical question/corpus/personality triples are served
	// from the memo cache without a model call.
	key := cacheKey(question, corpus, personality.String())
	if cached, ok := s.cache.Get(key); ok {
		logger.Debug("Answer served from cache")
		answer := cached
		answer.FromCache = true
		if sink != nil {
			sink(answer.Text, answer.ElapsedSeconds)
		}
		session.AppendUser(question)
		session.AppendBot(answer.Text, answer.ElapsedSeconds, personality)
		return &answer, nil
	}

	messages := []driven.ChatMessage{
		{
			Role:    driven.RoleSystem,
			Content: s.prompt(tonePrompt(personality)) + " " + s.prompt(driven.PromptAnswerRules),
		},
		{
			Role: driven.RoleUser,
			Content: fmt.Sprintf(
				"Here is the combined text from all uploaded documents: %s... Please answer the question: %s",
				corpus, question,
			),
		},
	}

	answer, err := s.stream(ctx, session, messages, sink)
	if err != nil {
		return nil, err
	}

	s.cache.Add(key, *answer)
	session.AppendUser(question)
	session.AppendBot(answer.Text, answer.ElapsedSeconds, personality)
	return answer, nil
}

// Summarise produces a summary of one session document.
func (s *QueryService) Summarise(
	ctx context.Context, session *domain.Session, req domain.SummaryRequest, sink driving.StreamSink,
) (*driving.Answer, error) {
	if s.llm == nil {
		return nil, domain.ErrLLMUnavailable
	}
	if !req.Kind.IsValid() {
		return nil, fmt.Errorf("summary kind %q: %w", req.Kind, domain.ErrInvalidInput)
	}

	text, err := session.DocumentText(req.DocumentName)
	if err != nil {
		return nil, fmt.Errorf("document %q: %w", req.DocumentName, err)
	}

	logger.Section("Summary")
	logger.Debug("Document: %s, kind: %s, bullets: %t", req.DocumentName, req.Kind, req.BulletPoints)

	messages := []driven.ChatMessage{
		{
			Role:    driven.RoleSystem,
			Content: "You are a summarization expert. " + s.prompt(summaryPrompt(req)),
		},
		{
			Role:    driven.RoleUser,
			Content: text,
		},
	}

	answer, err := s.stream(ctx, session, messages, sink)
	if err != nil {
		return nil, err
	}

	session.AppendSummary(
		fmt.Sprintf("Summary for %s: %s", req.DocumentName, answer.Text),
		answer.ElapsedSeconds,
	)
	return answer, nil
}

// stream invokes the model and aggregates the fragment stream. Fragments
// are concatenated in arrival order; elapsed time runs on the monotonic
// clock from invocation start to stream end. After each fragment the sink
// (when set) sees the accumulated text and current elapsed seconds.
// On any stream failure no partial result is returned.
func (s *QueryService) stream(
	ctx context.Context, session *domain.Session, messages []driven.ChatMessage, sink driving.StreamSink,
) (*driving.Answer, error) {
	// One query in flight at a time per session.
	if !session.BeginQuery() {
		return nil, domain.ErrQueryInProgress
	}
	defer session.EndQuery()

	start := time.Now()

	stream, err := s.llm.ChatStream(ctx, messages, driven.ChatOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLLMUnavailable, err)
	}
	defer stream.Close()

	var text []byte
	fragments := 0
	for {
		fragment, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("stream failed after %d fragment(s): %w", fragments, err)
		}
		text = append(text, fragment...)
		fragments++
		if sink != nil {
			sink(string(text), time.Since(start).Seconds())
		}
	}

	elapsed := time.Since(start).Seconds()
	logger.Info("Stream complete: %d fragment(s) in %.2f seconds", fragments, elapsed)

	return &driving.Answer{
		Text:           string(text),
		ElapsedSeconds: elapsed,
	}, nil
}

// prompt loads a named prompt, falling back to the embedded default.
func (s *QueryService) prompt(name string) string {
	if s.promptStore != nil {
		if p, err := s.promptStore.Load(name); err == nil {
			return p
		}
	}
	return defaultPrompts[name]
}

// tonePrompt maps a personality to its prompt name.
func tonePrompt(p domain.Personality) string {
	switch p.OrDefault() {
	case domain.PersonalityFormal:
		return driven.PromptToneFormal
	case domain.PersonalityCasual:
		return driven.PromptToneCasual
	case domain.PersonalityTechnical:
		return driven.PromptToneTechnical
	default:
		return driven.PromptToneNeutral
	}
}

// summaryPrompt maps a summary request to its prompt name.
func summaryPrompt(req domain.SummaryRequest) string {
	switch req.Kind {
	case domain.SummaryShort:
		return driven.PromptSummaryShort
	case domain.SummaryTabular:
		return driven.PromptSummaryTabular
	default:
		if req.BulletPoints {
			return driven.PromptSummaryDetailedBullets
		}
		return driven.PromptSummaryDetailed
	}
}

// cacheKey hashes the query identity. The corpus can be large, so the key
// is a digest rather than the raw strings.
func cacheKey(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
