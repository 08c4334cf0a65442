package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papyrus-labs/pdfchat-cli/internal/adapters/driving/tui/keymap"
	"github.com/papyrus-labs/pdfchat-cli/internal/adapters/driving/tui/messages"
	"github.com/papyrus-labs/pdfchat-cli/internal/adapters/driving/tui/styles"
	"github.com/papyrus-labs/pdfchat-cli/internal/adapters/driving/tui/views/chat"
	"github.com/papyrus-labs/pdfchat-cli/internal/adapters/driving/tui/views/documents"
	"github.com/papyrus-labs/pdfchat-cli/internal/core/domain"
	"github.com/papyrus-labs/pdfchat-cli/internal/logger"
)

// watchExtensions are the upload extensions reported by the directory
// watcher.
var watchExtensions = []string{".pdf"}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// session holds the documents and conversation for this run.
	session *domain.Session

	// styles holds the TUI styles.
	styles *styles.Styles

	// chatView is the conversation view.
	chatView *chat.View

	// documentsView lists the ingested documents.
	documentsView *documents.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// initialPaths are ingested when the program starts.
	initialPaths []string

	// watchDir, when set, is observed for newly dropped PDFs.
	watchDir string

	// watchFiles and watchErrs are the live watcher channels.
	watchFiles <-chan string
	watchErrs  <-chan error

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports and session.
func NewApp(ports *Ports, session *domain.Session) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if session == nil {
		session = domain.NewSession()
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:   ports,
		ctx:     context.Background(),
		session: session,
		styles:  s,
		chatView: chat.NewView(s, km, session,
			ports.Query, ports.Search, ports.Table, ports.Export),
		documentsView: documents.NewView(s, km, session),
		currentView:   messages.ViewChat,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.chatView.WithContext(ctx)
	return a
}

// WithInitialFiles queues files to ingest on startup.
func (a *App) WithInitialFiles(paths []string) *App {
	a.initialPaths = paths
	return a
}

// WithWatchDir enables watch mode on the given directory.
func (a *App) WithWatchDir(dir string) *App {
	a.watchDir = dir
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("pdfchat - PDF Chatbot"),
		a.chatView.Init(),
	}
	if len(a.initialPaths) > 0 {
		cmds = append(cmds, a.ingestFiles(a.initialPaths))
	}
	if a.watchDir != "" && a.ports.Watcher != nil {
		cmds = append(cmds, a.startWatch())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.chatView.SetDimensions(msg.Width, msg.Height)
		a.documentsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.currentView {
		case messages.ViewChat:
			a.chatView, cmd = a.chatView.Update(msg)
		case messages.ViewDocuments:
			a.documentsView, cmd = a.documentsView.Update(msg)
		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewChat
			}
		}
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewDocuments {
			a.documentsView.Refresh()
		}
		if msg.View == messages.ViewChat {
			a.chatView.Refresh()
		}
		return a, nil

	case messages.SummaryRequested:
		// Summaries stream into the chat view.
		a.currentView = messages.ViewChat
		return a, a.chatView.StartSummarise(msg.Request)

	case messages.IngestCompleted:
		if msg.Err != nil {
			a.err = msg.Err
		}
		a.chatView, _ = a.chatView.Update(msg)
		a.documentsView, _ = a.documentsView.Update(msg)
		return a, nil

	case messages.WatchedFileFound:
		logger.Debug("Watcher picked up %s", msg.Path)
		return a, tea.Batch(a.ingestFiles([]string{msg.Path}), a.waitWatch())

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (stream progress, command results) to the
	// chat view, which owns all in-flight work.
	a.chatView, cmd = a.chatView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewDocuments:
		return a.documentsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.chatView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Chat:
  (type)      Ask a question over all loaded documents
  enter       Send
  /help       List slash commands
  tab         Document list

Documents:
  j/k, ↑/↓    Navigate
  s/d/t       Short / detailed / tabular summary
  esc         Back to chat

  ctrl+c      Quit

[esc] back to chat`
}

// ingestFiles extracts the given files into the session off the render
// loop.
func (a *App) ingestFiles(paths []string) tea.Cmd {
	return func() tea.Msg {
		report, err := a.ports.Ingest.IngestPaths(a.ctx, a.session, paths)
		return messages.IngestCompleted{Report: report, Err: err}
	}
}

// startWatch begins observing the watch directory.
func (a *App) startWatch() tea.Cmd {
	files, errs, err := a.ports.Watcher.Watch(a.ctx, a.watchDir, watchExtensions)
	if err != nil {
		return func() tea.Msg {
			return messages.ErrorOccurred{Err: fmt.Errorf("watching %s: %w", a.watchDir, err)}
		}
	}
	a.watchFiles = files
	a.watchErrs = errs
	return a.waitWatch()
}

// waitWatch delivers the next watcher event.
func (a *App) waitWatch() tea.Cmd {
	files, errs := a.watchFiles, a.watchErrs
	if files == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-files:
			if !ok {
				return nil
			}
			return messages.WatchedFileFound{Path: path}
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
			return messages.ErrorOccurred{Err: err}
		}
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Session returns the session driven by this app.
func (a *App) Session() *domain.Session {
	return a.session
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.chatView.SetDimensions(width, height)
	a.documentsView.SetDimensions(width, height)
}
