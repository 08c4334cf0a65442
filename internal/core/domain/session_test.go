package domain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s := NewSession()

	require.NotNil(t, s)
	assert.Equal(t, 0, s.DocumentCount())
	assert.Equal(t, PersonalityNeutral, s.Personality())
	assert.Empty(t, s.Conversation())
}

func TestSession_AddDocument(t *testing.T) {
	s := NewSession()

	s.AddDocument(Document{Name: "report.pdf", Text: "hello", Pages: 2})

	assert.True(t, s.HasDocument("report.pdf"))
	assert.Equal(t, 1, s.DocumentCount())
}

func TestSession_AddDocument_DuplicateIsNoOp(t *testing.T) {
	s := NewSession()
	s.AddDocument(Document{Name: "report.pdf", Text: "first"})

	s.AddDocument(Document{Name: "report.pdf", Text: "second"})

	text, err := s.DocumentText("report.pdf")
	require.NoError(t, err)
	assert.Equal(t, "first", text, "first extraction must be preserved")
	assert.Equal(t, 1, s.DocumentCount())
}

func TestSession_DocumentText_NotFound(t *testing.T) {
	s := NewSession()

	_, err := s.DocumentText("missing.pdf")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSession_CombinedText_InsertionOrder(t *testing.T) {
	s := NewSession()
	s.AddDocument(Document{Name: "b.pdf", Text: "second"})
	s.AddDocument(Document{Name: "a.pdf", Text: "first"})
	s.AddDocument(Document{Name: "c.pdf", Text: "third"})

	assert.Equal(t, "second first third", s.CombinedText())
	assert.Equal(t, []string{"b.pdf", "a.pdf", "c.pdf"}, s.DocumentNames())
}

func TestSession_CombinedText_Empty(t *testing.T) {
	s := NewSession()

	assert.Equal(t, "", s.CombinedText())
}

func TestSession_SetPersonality(t *testing.T) {
	s := NewSession()

	s.SetPersonality(PersonalityFormal)
	assert.Equal(t, PersonalityFormal, s.Personality())

	s.SetPersonality(Personality("pirate"))
	assert.Equal(t, PersonalityNeutral, s.Personality(),
		"unknown personality falls back to neutral")
}

func TestSession_Conversation_AppendOrder(t *testing.T) {
	s := NewSession()

	s.AppendUser("what is this about?")
	s.AppendBot("it is about tests", 1.5, PersonalityCasual)
	s.AppendSummary("Summary for a.pdf: short", 0.8)

	entries := s.Conversation()
	require.Len(t, entries, 3)
	assert.Equal(t, RoleUser, entries[0].Role)
	assert.Equal(t, RoleBot, entries[1].Role)
	assert.Equal(t, RoleSummary, entries[2].Role)
	assert.Equal(t, 1.5, entries[1].ElapsedSeconds)
	assert.Equal(t, PersonalityCasual, entries[1].Personality)
	assert.NotEmpty(t, entries[0].ID)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
}

func TestSession_Clear(t *testing.T) {
	s := NewSession()
	s.AddDocument(Document{Name: "a.pdf", Text: "text"})
	s.AppendUser("question")
	s.SetPersonality(PersonalityTechnical)

	s.Clear()

	assert.Equal(t, 0, s.DocumentCount())
	assert.Empty(t, s.Conversation())
	assert.Equal(t, PersonalityTechnical, s.Personality(),
		"personality survives a clear")
}

func TestSession_BeginQuery_Exclusive(t *testing.T) {
	s := NewSession()

	require.True(t, s.BeginQuery())
	assert.False(t, s.BeginQuery(), "second query must be rejected while one runs")

	s.EndQuery()
	assert.True(t, s.BeginQuery())
	s.EndQuery()
}

func TestSession_ConcurrentAccess(t *testing.T) {
	s := NewSession()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.AddDocument(Document{Name: "doc.pdf", Text: "same"})
			_ = s.CombinedText()
			_ = s.DocumentNames()
			s.AppendUser("q")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, s.DocumentCount())
	assert.Len(t, s.Conversation(), 8)
}
