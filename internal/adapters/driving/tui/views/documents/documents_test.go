package documents

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papyrus-labs/pdfchat-cli/internal/adapters/driving/tui/messages"
	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
)

func newTestView() (*View, *domain.Session) {
	session := domain.NewSession()
	session.AddDocument(domain.Document{Name: "a.pdf", Text: "alpha", Pages: 1})
	session.AddDocument(domain.Document{Name: "b.pdf", Text: "beta", Pages: 2})

	v := NewView(nil, nil, session)
	v.Init()
	v.SetDimensions(80, 24)
	return v, session
}

func TestNewView(t *testing.T) {
	v, _ := newTestView()

	require.NotNil(t, v)
	assert.Equal(t, 2, v.Count())
	assert.Equal(t, 0, v.Selected())
}

func TestView_Navigation(t *testing.T) {
	v, _ := newTestView()

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.Selected())

	// Bottom of the list clamps.
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.Selected())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.Selected())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.Selected())
}

func TestView_VimNavigation(t *testing.T) {
	v, _ := newTestView()

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 1, v.Selected())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 0, v.Selected())
}

func TestView_SummaryKeys(t *testing.T) {
	tests := []struct {
		key  string
		kind domain.SummaryKind
	}{
		{"s", domain.SummaryShort},
		{"d", domain.SummaryDetailed},
		{"t", domain.SummaryTabular},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v, _ := newTestView()

			v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)})
			require.NotNil(t, cmd)

			msg := cmd()
			req, ok := msg.(messages.SummaryRequested)
			require.True(t, ok)
			assert.Equal(t, "a.pdf", req.Request.DocumentName)
			assert.Equal(t, tt.kind, req.Request.Kind)
			_ = v
		})
	}
}

func TestView_SummaryKey_EmptyList(t *testing.T) {
	v := NewView(nil, nil, domain.NewSession())
	v.Init()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})

	assert.Nil(t, cmd)
}

func TestView_EscReturnsToChat(t *testing.T) {
	v, _ := newTestView()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	msg := cmd()
	changed, ok := msg.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewChat, changed.View)
}

func TestView_Refresh_PicksUpNewDocuments(t *testing.T) {
	v, session := newTestView()

	session.AddDocument(domain.Document{Name: "c.pdf", Text: "gamma"})
	v.Refresh()

	assert.Equal(t, 3, v.Count())
}

func TestView_View_ListsDocuments(t *testing.T) {
	v, _ := newTestView()

	out := v.View()

	assert.Contains(t, out, "a.pdf")
	assert.Contains(t, out, "b.pdf")
	assert.Contains(t, out, "Documents")
}

func TestView_View_EmptySession(t *testing.T) {
	v := NewView(nil, nil, domain.NewSession())
	v.Init()
	v.SetDimensions(80, 24)

	assert.Contains(t, v.View(), "No documents loaded.")
}
