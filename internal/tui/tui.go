// Package tui provides a Bubble Tea terminal user interface for mcinit.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/handiism/mcinit/internal/download"
	"github.com/handiism/mcinit/internal/model"
	"github.com/handiism/mcinit/internal/provider"
)

// ErrInterrupted is returned when the user quits before the download ends.
var ErrInterrupted = errors.New("cancelled by user")

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#62B946")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	releaseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateResolving State = iota
	StateDownloading
	StateComplete
	StateError
)

// Setup is the part of download.Manager the UI drives.
type Setup interface {
	Prepare(ctx context.Context) error
	Resolve(ctx context.Context, name string, req provider.Request) (*model.Release, error)
	Start(ctx context.Context, rel *model.Release) (<-chan download.Event, error)
	Output() string
}

// Notices buffers manager notices for the UI. Pass its Notify method as
// the manager's callback.
type Notices chan download.Notice

// NewNotices creates a notice buffer.
func NewNotices() Notices {
	return make(Notices, 64)
}

// Notify queues n, dropping it if the buffer is full.
func (n Notices) Notify(notice download.Notice) {
	select {
	case n <- notice:
	default:
	}
}

// Message types
type (
	// ResolvedMsg is sent when resolution finished and the download started.
	ResolvedMsg struct {
		Release *model.Release
		Events  <-chan download.Event
		Err     error
	}

	// EventMsg carries one download event. Closed is set when the stream
	// ended.
	EventMsg struct {
		Event  download.Event
		Closed bool
	}

	// NoticeMsg carries one manager notice.
	NoticeMsg struct {
		Notice download.Notice
	}
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	spinner  spinner.Model
	progress progress.Model
	logs     []download.Notice
	err      error
	verbose  bool

	ctx    context.Context
	cancel context.CancelFunc

	setup        Setup
	providerName string
	request      provider.Request
	notices      Notices

	release *model.Release
	events  <-chan download.Event
	total   int64
	written int64
	started time.Time
	elapsed time.Duration
}

// NewModel creates a model that resolves and downloads one release.
func NewModel(ctx context.Context, setup Setup, providerName string, req provider.Request, notices Notices, verbose bool) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#62B946"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(ctx)

	return Model{
		state:        StateResolving,
		spinner:      sp,
		progress:     prog,
		ctx:          ctx,
		cancel:       cancel,
		setup:        setup,
		providerName: providerName,
		request:      req,
		notices:      notices,
		verbose:      verbose,
		total:        -1,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.resolve(), waitForNotice(m.notices))
}

// Err returns the failure that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// State returns the current state.
func (m Model) State() State {
	return m.state
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			if m.state == StateResolving || m.state == StateDownloading {
				m.cancel()
				m.state = StateError
				m.err = ErrInterrupted
			}
			return m, tea.Quit
		}

	case spinner.TickMsg:
		if m.state == StateResolving || m.state == StateDownloading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case NoticeMsg:
		if msg.Notice.Level != download.LevelVerbose || m.verbose {
			m.logs = append(m.logs, msg.Notice)
			// Keep only last 10 logs
			if len(m.logs) > 10 {
				m.logs = m.logs[len(m.logs)-10:]
			}
		}
		cmds = append(cmds, waitForNotice(m.notices))

	case ResolvedMsg:
		if m.state != StateResolving {
			return m, nil
		}
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			return m, tea.Quit
		}
		m.release = msg.Release
		m.events = msg.Events
		m.state = StateDownloading
		m.started = time.Now()
		cmds = append(cmds, waitForEvent(m.events))

	case EventMsg:
		if m.state != StateDownloading {
			return m, nil
		}
		if msg.Closed {
			m.state = StateError
			m.err = download.ErrIncomplete
			return m, tea.Quit
		}
		switch msg.Event.Kind {
		case download.EventLength:
			m.total = msg.Event.Total
		case download.EventProgress:
			m.written = msg.Event.Written
		case download.EventDone:
			m.written = msg.Event.Written
			m.elapsed = time.Since(m.started)
			m.state = StateComplete
			return m, tea.Quit
		case download.EventFailed:
			m.state = StateError
			m.err = msg.Event.Err
			return m, tea.Quit
		}
		cmds = append(cmds, waitForEvent(m.events))
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("mcinit"))
	b.WriteString("\n")

	switch m.state {
	case StateResolving:
		b.WriteString(m.viewResolving())
	case StateDownloading:
		b.WriteString(m.viewDownloading())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	if m.state == StateResolving || m.state == StateDownloading {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("esc: cancel"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewResolving() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Resolving %s release...", m.providerName)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewDownloading() string {
	var b strings.Builder

	b.WriteString(releaseStyle.Render(m.release.String()))
	b.WriteString("\n\n")

	if m.total >= 0 {
		percent := download.Percent(m.written, m.total)
		if percent < 0 {
			percent = 0
		}
		b.WriteString(m.progress.ViewAs(percent))
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(fmt.Sprintf("%s / %s",
			humanize.Bytes(uint64(m.written)), humanize.Bytes(uint64(m.total)))))
	} else {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(infoStyle.Render(fmt.Sprintf("Downloaded: %s", humanize.Bytes(uint64(m.written)))))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	box := boxStyle.Render(fmt.Sprintf(
		"Download Complete!\n\n"+
			"Release: %s\n"+
			"File: %s\n"+
			"Size: %s\n"+
			"Time: %s",
		m.release.String(),
		m.setup.Output(),
		humanize.Bytes(uint64(m.written)),
		m.elapsed.Round(time.Millisecond),
	))
	return box + "\n"
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s\n", m.err.Error()))
		var re *provider.ResolutionError
		if errors.As(m.err, &re) && re.Suggestion() != "" {
			b.WriteString(dimStyle.Render("  " + re.Suggestion()))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, n := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch n.Level {
		case download.LevelError:
			style = errorStyle
			prefix = "✗"
		case download.LevelWarning:
			style = warningStyle
			prefix = "!"
		case download.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case download.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + n.Text))
		b.WriteString("\n")
	}

	return b.String()
}

// resolve prepares the directory, resolves the release and starts the
// download.
func (m Model) resolve() tea.Cmd {
	ctx, setup, name, req := m.ctx, m.setup, m.providerName, m.request
	return func() tea.Msg {
		if err := setup.Prepare(ctx); err != nil {
			return ResolvedMsg{Err: err}
		}
		rel, err := setup.Resolve(ctx, name, req)
		if err != nil {
			return ResolvedMsg{Err: err}
		}
		events, err := setup.Start(ctx, rel)
		if err != nil {
			return ResolvedMsg{Err: err}
		}
		return ResolvedMsg{Release: rel, Events: events}
	}
}

func waitForEvent(events <-chan download.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return EventMsg{Closed: true}
		}
		return EventMsg{Event: ev}
	}
}

func waitForNotice(notices Notices) tea.Cmd {
	if notices == nil {
		return nil
	}
	return func() tea.Msg {
		return NoticeMsg{Notice: <-notices}
	}
}

// Run starts the TUI application and blocks until the download completes,
// fails or is cancelled.
func Run(ctx context.Context, setup Setup, providerName string, req provider.Request, notices Notices, verbose bool) error {
	m := NewModel(ctx, setup, providerName, req, notices, verbose)
	defer m.cancel()

	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	return final.(Model).Err()
}
