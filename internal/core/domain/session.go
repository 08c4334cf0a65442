package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session owns all state for one interactive chat session: the ordered
// DocumentSet, the conversation, and the selected personality. State lives
// for the lifetime of the session and has no durable storage.
//
// The session is created by the calling layer (CLI or TUI) and passed
// explicitly into every operation. Document writes happen only from the
// caller goroutine after an upload batch joins, but reads may come from
// the TUI render loop, so all access is guarded.
type Session struct {
	mu          sync.RWMutex
	order       []string
	documents   map[string]Document
	entries     []Entry
	personality Personality

	// queryMu serialises model queries: one in flight per session.
	queryMu sync.Mutex
}

// NewSession creates an empty session with the Neutral personality.
func NewSession() *Session {
	return &Session{
		documents:   make(map[string]Document),
		personality: PersonalityNeutral,
	}
}

// HasDocument returns true if a document with this name is already stored.
func (s *Session) HasDocument(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.documents[name]
	return ok
}

// AddDocument stores a newly extracted document. Adding a name that is
// already present is a no-op, preserving the first extraction.
func (s *Session) AddDocument(doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[doc.Name]; ok {
		return
	}
	s.documents[doc.Name] = doc
	s.order = append(s.order, doc.Name)
}

// Documents returns a snapshot of all documents in insertion order.
func (s *Session) Documents() []Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]Document, 0, len(s.order))
	for _, name := range s.order {
		docs = append(docs, s.documents[name])
	}
	return docs
}

// DocumentNames returns the stored names in insertion order.
func (s *Session) DocumentNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// DocumentText returns the extracted text for one document by name.
func (s *Session) DocumentText(name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[name]
	if !ok {
		return "", ErrNotFound
	}
	return doc.Text, nil
}

// DocumentCount returns the number of stored documents.
func (s *Session) DocumentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}

// CombinedText concatenates all document texts with a single space, in
// insertion order. The text is not truncated, cleaned, or normalised.
func (s *Session) CombinedText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var b []byte
	for i, name := range s.order {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, s.documents[name].Text...)
	}
	return string(b)
}

// Personality returns the selected answer personality.
func (s *Session) Personality() Personality {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.personality
}

// SetPersonality selects the answer personality. Unrecognised values fall
// back to Neutral.
func (s *Session) SetPersonality(p Personality) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.personality = p.OrDefault()
}

// AppendUser appends a user question to the conversation and returns the
// stored entry.
func (s *Session) AppendUser(text string) Entry {
	e := Entry{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Content:   text,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	return e
}

// AppendBot appends a completed model answer with its response time and
// the personality that produced it.
func (s *Session) AppendBot(text string, elapsedSeconds float64, p Personality) Entry {
	e := Entry{
		ID:             uuid.NewString(),
		Role:           RoleBot,
		Content:        text,
		ElapsedSeconds: elapsedSeconds,
		Personality:    p.OrDefault(),
		CreatedAt:      time.Now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	return e
}

// AppendSummary appends a completed document summary with its response time.
func (s *Session) AppendSummary(text string, elapsedSeconds float64) Entry {
	e := Entry{
		ID:             uuid.NewString(),
		Role:           RoleSummary,
		Content:        text,
		ElapsedSeconds: elapsedSeconds,
		CreatedAt:      time.Now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	return e
}

// Conversation returns a snapshot of the conversation in append order.
func (s *Session) Conversation() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Clear resets the DocumentSet and the conversation in one atomic step.
// The selected personality survives a clear, matching the upload controls
// staying on screen.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = nil
	s.documents = make(map[string]Document)
	s.entries = nil
}

// BeginQuery acquires the session's query slot. It returns false if a
// query is already streaming; callers must not start a second one.
func (s *Session) BeginQuery() bool {
	return s.queryMu.TryLock()
}

// EndQuery releases the query slot acquired by BeginQuery.
func (s *Session) EndQuery() {
	s.queryMu.Unlock()
}
