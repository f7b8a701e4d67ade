// Package bubble is the Bubble Tea display surface
package bubble

import (
	"io"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/speaker-cleaner/display"
)

const (
	// DefaultFrameInterval paces progress and wave animation
	DefaultFrameInterval = 50 * time.Millisecond
	maxBarWidth          = 48
	speakerGlyph         = "▐█◀ )))"
)

// wakeMsg signals queued session events in the mailbox
type wakeMsg struct{}

// frameMsg drives animation between countdown ticks
type frameMsg time.Time

// Model renders the session and maps keys to actions
type Model struct {
	actions display.Actions
	mailbox *display.Mailbox
	logger  *log.Logger
	now     func() time.Time
	frame   time.Duration

	keys KeyMap
	help help.Model
	bar  progress.Model
	view display.View

	width, height int
	quitting      bool
}

// NewModel builds a model reading events from mailbox
func NewModel(actions display.Actions, mailbox *display.Mailbox) Model {
	keys := DefaultKeyMap()
	keys.setRunning(false)

	bar := progress.New(
		progress.WithSolidFill(string(ColorRing)),
		progress.WithFillCharacters('●', '·'),
		progress.WithoutPercentage(),
		progress.WithWidth(maxBarWidth),
	)
	bar.EmptyColor = string(ColorTrack)

	return Model{
		actions: actions,
		mailbox: mailbox,
		logger:  log.New(io.Discard, "", 0),
		now:     time.Now,
		frame:   DefaultFrameInterval,
		keys:    keys,
		help:    help.New(),
		bar:     bar,
		view:    display.NewView(),
	}
}

// Init starts the animation ticker
func (m Model) Init() tea.Cmd {
	return m.frameCmd()
}

func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.bar.Width = max(min(msg.Width-8, maxBarWidth), 10)
		m.help.Width = msg.Width

	case wakeMsg:
		m.sync()

	case frameMsg:
		m.sync()
		return m, m.frameCmd()

	case tea.BlurMsg:
		m.request("background", m.actions.Background)
		m.sync()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Start):
		m.request("start", m.actions.RequestStart)

	case key.Matches(msg, m.keys.Cancel):
		m.request("cancel", m.actions.RequestCancel)

	case key.Matches(msg, m.keys.Background):
		m.request("background", m.actions.Background)
		m.sync()
		return m, tea.Suspend

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// sync folds queued session events into the view
func (m *Model) sync() {
	for _, ev := range m.mailbox.Drain() {
		m.view.Apply(ev, m.now())
	}
	m.keys.setRunning(m.view.Running())
}

func (m Model) request(name string, fn func() error) {
	if err := fn(); err != nil {
		m.logger.Printf("bubble: %s request failed: %v", name, err)
	}
}

// View renders the current state
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.view.Running() {
		body = m.runningView()
	} else {
		body = m.idleView()
	}
	body = lipgloss.JoinVertical(lipgloss.Center, body, "", m.help.View(m.keys))

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

func (m Model) idleView() string {
	button := ButtonStyle.Render(speakerGlyph + "\n\n" + display.StartLabel)
	return lipgloss.JoinVertical(lipgloss.Center,
		PromptStyle.Render(display.StartPrompt),
		"",
		button,
	)
}

func (m Model) runningView() string {
	now := m.now()
	count := CountStyle.Render(strings.Join(display.BigText(m.view.Text), "\n"))
	wave := WaveStyle.Render(display.WaveString(m.bar.Width, now.Sub(m.view.StartedAt)))

	return lipgloss.JoinVertical(lipgloss.Center,
		NoticeStyle.Render(display.CleaningNotice),
		"",
		count,
		"",
		m.bar.ViewAs(m.view.Stroke(now)),
		"",
		wave,
		"",
		CancelStyle.Render(display.CancelLabel),
	)
}
