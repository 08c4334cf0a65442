// Package chat provides the main conversation view for the TUI.
package chat

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papyrus-labs/pdfchat-cli/internal/adapters/driving/tui/components/input"
	"github.com/papyrus-labs/pdfchat-cli/internal/adapters/driving/tui/components/status"
	"github.com/papyrus-labs/pdfchat-cli/internal/adapters/driving/tui/keymap"
	"github.com/papyrus-labs/pdfchat-cli/internal/adapters/driving/tui/messages"
	"github.com/papyrus-labs/pdfchat-cli/internal/adapters/driving/tui/styles"
	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
	"github.com/papyrus-labs/pdfchat-cli/internal/core/ports/driving"
)

// streamBuffer is the capacity of the progress channel between the query
// goroutine and the render loop. Intermediate fragments may be dropped
// when the terminal lags behind; the completion message never is.
const streamBuffer = 8

// View is the conversation view: transcript, input line, and status bar.
type View struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	input      *input.ChatInput
	transcript viewport.Model
	statusbar  *status.Bar

	queryService  driving.QueryService
	searchService driving.SearchService
	tableService  driving.TableService
	exportService driving.ExportService
	session       *domain.Session
	ctx           context.Context

	// stream receives progress and completion while a query runs.
	stream chan tea.Msg

	// streamText and streamElapsed mirror the live answer for rendering.
	streamText    string
	streamElapsed float64
	streaming     bool
	pendingUser   string

	// lastAnswer is the most recent completed bot answer, the input to
	// table extraction.
	lastAnswer string

	// notice is the output of the last slash command.
	notice string

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new chat view bound to a session.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	session *domain.Session,
	query driving.QueryService,
	search driving.SearchService,
	table driving.TableService,
	export driving.ExportService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	vp := viewport.New(80, 16)

	v := &View{
		styles:        s,
		keymap:        km,
		input:         input.NewChatInput(s),
		transcript:    vp,
		statusbar:     status.NewBar(s, km),
		queryService:  query,
		searchService: search,
		tableService:  table,
		exportService: export,
		session:       session,
		ctx:           context.Background(),
		width:         80,
		height:        24,
	}
	v.refreshStatus()
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.StreamProgress:
		v.streamText = msg.Text
		v.streamElapsed = msg.ElapsedSeconds
		v.statusbar.SetElapsed(msg.ElapsedSeconds)
		v.renderTranscript()
		return v, v.waitStream()

	case messages.StreamCompleted:
		return v.handleStreamCompleted(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ConversationExported:
		if msg.Err != nil {
			v.setError(msg.Err)
		} else {
			v.notice = "Conversation exported to " + msg.Path
			v.refreshStatus()
		}
		return v, nil

	case messages.TableSaved:
		if msg.Err != nil {
			v.setError(msg.Err)
		} else {
			v.notice = "Comparison table written to " + msg.Path
			v.refreshStatus()
		}
		return v, nil

	case messages.IngestCompleted:
		v.handleIngestCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Tab switches to the document list even mid-stream.
	if keymap.Matches(msg.String(), v.keymap.Documents) {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewDocuments}
		}
	}

	if msg.Type == tea.KeyEnter {
		line := strings.TrimSpace(v.input.Value())
		if line == "" {
			return v, nil
		}
		if v.streaming {
			v.notice = "A query is already running."
			return v, nil
		}
		v.input.Reset()
		if strings.HasPrefix(line, "/") {
			return v.handleCommand(line)
		}
		return v, v.startAsk(line)
	}

	// PgUp/PgDn scroll the transcript; everything else types.
	switch msg.Type {
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		v.transcript, cmd = v.transcript.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleCommand dispatches a slash command typed into the input line.
func (v *View) handleCommand(line string) (*View, tea.Cmd) {
	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]

	switch name {
	case "/help":
		v.notice = commandHelp
		return v, nil

	case "/search":
		if len(args) == 0 {
			v.notice = "Usage: /search <keyword>"
			return v, nil
		}
		keyword := strings.Join(args, " ")
		return v, v.performSearch(keyword)

	case "/personality":
		if len(args) != 1 {
			v.notice = "Usage: /personality <neutral|formal|casual|technical>"
			return v, nil
		}
		p := domain.Personality(args[0])
		if !p.IsValid() {
			v.notice = fmt.Sprintf("Unknown personality %q", args[0])
			return v, nil
		}
		v.session.SetPersonality(p)
		v.notice = "Personality set to " + p.String()
		v.refreshStatus()
		return v, nil

	case "/summary":
		return v.handleSummaryCommand(args)

	case "/clear":
		v.session.Clear()
		v.lastAnswer = ""
		v.notice = "Session cleared."
		v.refreshStatus()
		v.renderTranscript()
		return v, nil

	case "/export":
		if len(args) != 1 {
			v.notice = "Usage: /export <path>"
			return v, nil
		}
		return v, v.performExport(args[0])

	case "/csv":
		if len(args) != 1 {
			v.notice = "Usage: /csv <path>"
			return v, nil
		}
		return v, v.performTableSave(args[0])

	default:
		v.notice = fmt.Sprintf("Unknown command %s (try /help)", name)
		return v, nil
	}
}

// handleSummaryCommand parses "/summary <document> [kind] [bullets]".
func (v *View) handleSummaryCommand(args []string) (*View, tea.Cmd) {
	if len(args) == 0 {
		v.notice = "Usage: /summary <document> [short|detailed|tabular] [bullets]"
		return v, nil
	}

	req := domain.SummaryRequest{
		DocumentName: args[0],
		Kind:         domain.SummaryShort,
	}
	for _, arg := range args[1:] {
		if arg == "bullets" {
			req.BulletPoints = true
			continue
		}
		kind := domain.SummaryKind(arg)
		if !kind.IsValid() {
			v.notice = fmt.Sprintf("Unknown summary type %q", arg)
			return v, nil
		}
		req.Kind = kind
	}

	if !v.session.HasDocument(req.DocumentName) {
		v.notice = fmt.Sprintf("No document named %q in this session", req.DocumentName)
		return v, nil
	}
	return v, v.StartSummarise(req)
}

// startAsk begins a streamed question. The query runs on its own
// goroutine; progress flows back through the stream channel.
func (v *View) startAsk(question string) tea.Cmd {
	ch := make(chan tea.Msg, streamBuffer)
	v.beginStream(ch, question)

	session := v.session
	go func() {
		answer, err := v.queryService.Ask(v.ctx, session, question, sinkFor(ch))
		ch <- completion(answer, err)
	}()

	return v.waitStream()
}

// StartSummarise begins a streamed document summary.
func (v *View) StartSummarise(req domain.SummaryRequest) tea.Cmd {
	ch := make(chan tea.Msg, streamBuffer)
	v.beginStream(ch, "")

	session := v.session
	go func() {
		answer, err := v.queryService.Summarise(v.ctx, session, req, sinkFor(ch))
		ch <- completion(answer, err)
	}()

	return v.waitStream()
}

// beginStream puts the view into streaming state.
func (v *View) beginStream(ch chan tea.Msg, question string) {
	v.stream = ch
	v.streaming = true
	v.streamText = ""
	v.streamElapsed = 0
	v.pendingUser = question
	v.err = nil
	v.notice = ""
	v.statusbar.SetState(status.StateThinking)
	v.statusbar.SetElapsed(0)
	v.renderTranscript()
}

// sinkFor adapts the stream channel into a progress sink. Fragment
// updates are dropped when the channel is full; the next one catches up
// because the text is accumulated.
func sinkFor(ch chan tea.Msg) driving.StreamSink {
	return func(partial string, elapsedSeconds float64) {
		select {
		case ch <- messages.StreamProgress{Text: partial, ElapsedSeconds: elapsedSeconds}:
		default:
		}
	}
}

// completion builds the terminal stream message.
func completion(answer *driving.Answer, err error) tea.Msg {
	if err != nil {
		return messages.StreamCompleted{Err: err}
	}
	return messages.StreamCompleted{
		Text:           answer.Text,
		ElapsedSeconds: answer.ElapsedSeconds,
		FromCache:      answer.FromCache,
	}
}

// waitStream returns a command that delivers the next stream message.
func (v *View) waitStream() tea.Cmd {
	ch := v.stream
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		return <-ch
	}
}

// handleStreamCompleted finalises a query.
func (v *View) handleStreamCompleted(msg messages.StreamCompleted) (*View, tea.Cmd) {
	v.streaming = false
	v.stream = nil
	v.pendingUser = ""
	v.streamText = ""

	if msg.Err != nil {
		v.setError(fmt.Errorf("error querying model: %w", msg.Err))
		v.renderTranscript()
		return v, nil
	}

	v.lastAnswer = msg.Text
	if msg.FromCache {
		v.notice = "Answer served from cache."
	}
	v.statusbar.Clear()
	v.refreshStatus()
	v.renderTranscript()
	v.transcript.GotoBottom()
	return v, nil
}

// performSearch runs a keyword scan off the render loop.
func (v *View) performSearch(keyword string) tea.Cmd {
	session := v.session
	return func() tea.Msg {
		result, err := v.searchService.Search(session, keyword)
		return messages.SearchCompleted{Keyword: keyword, Result: result, Err: err}
	}
}

// handleSearchCompleted formats search hits into the notice area.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}
	if msg.Result.Empty() {
		v.notice = fmt.Sprintf("No matching results for %q.", msg.Keyword)
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Matches for %q:\n", msg.Keyword)
	for _, match := range msg.Result.Matches {
		fmt.Fprintf(&b, "%s:\n", match.DocumentName)
		for _, line := range match.Lines {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}
	v.notice = strings.TrimRight(b.String(), "\n")
}

// performExport renders the conversation and writes it to path.
func (v *View) performExport(path string) tea.Cmd {
	session := v.session
	return func() tea.Msg {
		data, err := v.exportService.ExportConversation(session)
		if err != nil {
			return messages.ConversationExported{Path: path, Err: err}
		}
		if ext := v.exportService.FileExtension(); !strings.HasSuffix(path, ext) {
			path += ext
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return messages.ConversationExported{Path: path, Err: err}
		}
		return messages.ConversationExported{Path: path}
	}
}

// performTableSave extracts a table from the last answer and writes CSV.
func (v *View) performTableSave(path string) tea.Cmd {
	answer := v.lastAnswer
	return func() tea.Msg {
		if answer == "" {
			return messages.TableSaved{Path: path, Err: domain.ErrNoTable}
		}
		table, err := v.tableService.ExtractTable(answer)
		if err != nil {
			return messages.TableSaved{Path: path, Err: err}
		}
		csvData, err := table.CSV()
		if err != nil {
			return messages.TableSaved{Path: path, Err: err}
		}
		if err := os.WriteFile(path, []byte(csvData), 0644); err != nil {
			return messages.TableSaved{Path: path, Err: err}
		}
		return messages.TableSaved{Path: path}
	}
}

// handleIngestCompleted reports an upload batch outcome.
func (v *View) handleIngestCompleted(msg messages.IngestCompleted) {
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}

	var parts []string
	if n := len(msg.Report.Processed); n > 0 {
		parts = append(parts, fmt.Sprintf("processed %d", n))
	}
	if n := len(msg.Report.Skipped); n > 0 {
		parts = append(parts, fmt.Sprintf("skipped %d", n))
	}
	for _, f := range msg.Report.Failed {
		parts = append(parts, fmt.Sprintf("%s failed: %v", f.Name, f.Err))
	}
	if len(parts) > 0 {
		v.notice = "Documents: " + strings.Join(parts, ", ")
	}
	v.refreshStatus()
}

// setError records an error and reflects it in the status bar.
func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// refreshStatus syncs the status bar with session state.
func (v *View) refreshStatus() {
	v.statusbar.SetDocCount(v.session.DocumentCount())
	v.statusbar.SetPersonality(v.session.Personality().String())
	if !v.streaming {
		v.statusbar.SetState(status.StateReady)
	}
}

// renderTranscript rebuilds the viewport content from the conversation
// plus the live streaming bubble.
func (v *View) renderTranscript() {
	blocks := make([]string, 0, 8)
	for _, entry := range v.session.Conversation() {
		blocks = append(blocks, v.renderEntry(entry))
	}

	if v.streaming {
		if v.pendingUser != "" {
			blocks = append(blocks, v.styles.UserBubble.Render(v.pendingUser))
		}
		live := v.streamText
		if live == "" {
			live = "..."
		}
		blocks = append(blocks,
			v.styles.BotBubble.Render(live),
			v.styles.Timer.Render(fmt.Sprintf("%.1fs elapsed", v.streamElapsed)),
		)
	}

	if len(blocks) == 0 {
		blocks = append(blocks, v.styles.Muted.Render(
			"No conversation yet. Ask a question about the loaded documents."))
	}

	v.transcript.SetContent(strings.Join(blocks, "\n"))
	v.transcript.GotoBottom()
}

// renderEntry renders one conversation entry as a bubble.
func (v *View) renderEntry(entry domain.Entry) string {
	switch entry.Role {
	case domain.RoleUser:
		return v.styles.UserBubble.Render(entry.Content)
	case domain.RoleSummary:
		return v.styles.SummaryBubble.Render(entry.Content) + "\n" +
			v.styles.Timer.Render(fmt.Sprintf("Response Time: %.2f seconds", entry.ElapsedSeconds))
	default:
		return v.styles.BotBubble.Render(entry.Content) + "\n" +
			v.styles.Timer.Render(fmt.Sprintf("Response Time: %.2f seconds", entry.ElapsedSeconds))
	}
}

// View renders the chat view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Title.Render("pdfchat"), "")
	sections = append(sections, v.transcript.View(), "")

	if v.notice != "" {
		sections = append(sections, v.styles.Muted.Render(v.notice), "")
	}
	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.input.View(), "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)

	// Reserve space for title, notice, input, and status bar.
	transcriptHeight := height - 10
	if transcriptHeight < 5 {
		transcriptHeight = 5
	}
	v.transcript.Width = width
	v.transcript.Height = transcriptHeight
	v.renderTranscript()
}

// Refresh re-renders the transcript and status from session state.
func (v *View) Refresh() {
	v.refreshStatus()
	v.renderTranscript()
}

// Streaming returns whether a query is in flight.
func (v *View) Streaming() bool {
	return v.streaming
}

// Notice returns the last command output.
func (v *View) Notice() string {
	return v.notice
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

const commandHelp = `Commands:
  /search <keyword>                         scan documents for a keyword
  /summary <doc> [short|detailed|tabular]   summarise one document
  /personality <neutral|formal|casual|technical>
  /csv <path>                               save last answer's table as CSV
  /export <path>                            export conversation as PDF
  /clear                                    reset documents and conversation
  /help                                     show this list`
