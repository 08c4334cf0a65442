// Package documents provides the session document list view for the TUI.
package documents

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papyrus-labs/pdfchat-cli/internal/adapters/driving/tui/keymap"
	"github.com/papyrus-labs/pdfchat-cli/internal/adapters/driving/tui/messages"
	"github.com/papyrus-labs/pdfchat-cli/internal/adapters/driving/tui/styles"
	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
)

// View lists the session's ingested documents and offers per-document
// summaries.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	session *domain.Session

	docs     []domain.Document
	selected int

	width  int
	height int
	ready  bool
}

// NewView creates a new documents view bound to a session.
func NewView(s *styles.Styles, km *keymap.KeyMap, session *domain.Session) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:  s,
		keymap:  km,
		session: session,
		width:   80,
		height:  24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	v.Refresh()
	return nil
}

// Refresh reloads the document list from the session.
func (v *View) Refresh() {
	v.docs = v.session.Documents()
	if v.selected >= len(v.docs) {
		v.selected = 0
	}
}

// Update handles messages for the documents view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.IngestCompleted:
		v.Refresh()
		return v, nil
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	if msg.Type == tea.KeyEsc || keymap.Matches(keyStr, v.keymap.Documents) {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewChat}
		}
	}

	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Down):
		if v.selected < len(v.docs)-1 {
			v.selected++
		}
		return v, nil
	}

	// s/d/t request a summary of the selected document.
	var kind domain.SummaryKind
	switch keyStr {
	case "s":
		kind = domain.SummaryShort
	case "d":
		kind = domain.SummaryDetailed
	case "t":
		kind = domain.SummaryTabular
	default:
		return v, nil
	}

	doc := v.SelectedDocument()
	if doc == nil {
		return v, nil
	}
	req := domain.SummaryRequest{DocumentName: doc.Name, Kind: kind}
	return v, func() tea.Msg {
		return messages.SummaryRequested{Request: req}
	}
}

// View renders the documents view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, len(v.docs)+4)
	sections = append(sections, v.styles.Title.Render("Documents"), "")

	if len(v.docs) == 0 {
		sections = append(sections, v.styles.Muted.Render("No documents loaded."))
	}

	for i, doc := range v.docs {
		line := fmt.Sprintf("%s  (%d pages, %d chars)", doc.Name, doc.Pages, len(doc.Text))
		if i == v.selected {
			line = v.styles.Selected.Render("> " + line)
		} else {
			line = v.styles.Normal.Render("  " + line)
		}
		sections = append(sections, line)
	}

	sections = append(sections, "",
		v.styles.Help.Render("s: short summary | d: detailed | t: tabular | esc: back"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// SelectedDocument returns the highlighted document, nil when the list
// is empty.
func (v *View) SelectedDocument() *domain.Document {
	if v.selected < 0 || v.selected >= len(v.docs) {
		return nil
	}
	doc := v.docs[v.selected]
	return &doc
}

// Selected returns the highlighted index.
func (v *View) Selected() int {
	return v.selected
}

// Count returns the number of listed documents.
func (v *View) Count() int {
	return len(v.docs)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}
