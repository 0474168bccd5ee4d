package app

import (
	"context"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prefrontal-labs/mindly-app/internal/tutor"
	"github.com/prefrontal-labs/mindly-app/internal/ui/components"
	"github.com/prefrontal-labs/mindly-app/internal/ui/layout"
	"github.com/prefrontal-labs/mindly-app/internal/ui/theme"
)

const initialHistory = 50

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// chatLine is one rendered transcript entry.
type chatLine struct {
	role    string
	content string
	action  string
}

// ChatModel is the root Bubble Tea model for the chat surface.
type ChatModel struct {
	svc *Service

	vp    viewport.Model
	input components.TextInput

	lines     []chatLine
	streamBuf strings.Builder

	waiting bool
	events  chan tea.Msg

	phase   string
	streak  int
	errMsg  string
	spinner int

	width  int
	height int
	ready  bool
}

// NewChatModel creates the chat model for the given service.
func NewChatModel(svc *Service) *ChatModel {
	return &ChatModel{
		svc:   svc,
		vp:    viewport.New(),
		input: components.NewTextInput("Ask, answer, or say hi...", 500),
	}
}

func (m *ChatModel) Init() tea.Cmd {
	return tea.Batch(m.loadHistory(), m.input.Init())
}

func (m *ChatModel) loadHistory() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		msgs, err := m.svc.History(ctx, initialHistory)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		streak, err := m.svc.streaks.Get(ctx, m.svc.profile.UserID)
		if err != nil {
			return historyLoadedMsg{Messages: msgs}
		}
		return historyLoadedMsg{Messages: msgs, Streak: streak.Current}
	}
}

func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		return m, nil

	case historyLoadedMsg:
		return m.handleHistoryLoaded(msg)

	case streamDeltaMsg:
		m.streamBuf.WriteString(msg.Delta)
		m.refreshTranscript()
		return m, waitEvent(m.events)

	case turnDoneMsg:
		return m.handleTurnDone(msg)

	case turnFailedMsg:
		m.waiting = false
		m.streamBuf.Reset()
		m.errMsg = msg.Err.Error()
		m.refreshTranscript()
		return m, nil

	case spinnerTickMsg:
		if !m.waiting {
			return m, nil
		}
		m.spinner = (m.spinner + 1) % len(spinnerFrames)
		return m, spinnerTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.submit()
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	cmds = append(cmds, cmd)

	if !m.waiting {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *ChatModel) handleHistoryLoaded(msg historyLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.errMsg = msg.Err.Error()
		return m, nil
	}

	m.streak = msg.Streak
	m.lines = m.lines[:0]
	for _, stored := range msg.Messages {
		m.lines = append(m.lines, chatLine{
			role:    stored.Role,
			content: stored.Content,
			action:  stored.Action,
		})
	}
	m.refreshTranscript()
	return m, nil
}

func (m *ChatModel) handleTurnDone(msg turnDoneMsg) (tea.Model, tea.Cmd) {
	m.waiting = false
	m.streamBuf.Reset()
	m.lines = append(m.lines, chatLine{
		role:    "assistant",
		content: msg.Outcome.Reply,
		action:  string(msg.Outcome.Action),
	})
	m.phase = phaseLabel(msg.Outcome.Phase)
	m.refreshTranscript()
	return m, nil
}

func (m *ChatModel) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.waiting {
		return m, nil
	}

	m.input.Reset()
	m.errMsg = ""
	m.waiting = true
	m.lines = append(m.lines, chatLine{role: "user", content: text})
	m.refreshTranscript()

	m.events = make(chan tea.Msg, 64)
	events := m.events
	svc := m.svc

	go func() {
		outcome, err := svc.Turn(context.Background(), text, func(delta string) error {
			events <- streamDeltaMsg{Delta: delta}
			return nil
		})
		if err != nil {
			events <- turnFailedMsg{Err: err}
			return
		}
		events <- turnDoneMsg{Outcome: outcome}
	}()

	return m, tea.Batch(waitEvent(events), spinnerTick())
}

// waitEvent reads the next message from the turn goroutine.
func waitEvent(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg { return <-ch }
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (m *ChatModel) resize() {
	header := layout.RenderHeader("Exam Prep", m.phase, m.streak, m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)

	// One line for the input, one separator.
	vpHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer) - 2
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.vp.SetWidth(m.width)
	m.vp.SetHeight(vpHeight)
	m.refreshTranscript()
}

func (m *ChatModel) refreshTranscript() {
	m.vp.SetContent(m.renderTranscript())
	m.vp.GotoBottom()
}

func (m *ChatModel) renderTranscript() string {
	wrap := lipgloss.NewStyle().Width(m.width - 4)

	var b strings.Builder
	for _, line := range m.lines {
		b.WriteString(m.renderLine(line, wrap))
		b.WriteString("\n")
	}

	if m.waiting {
		b.WriteString(theme.TutorLabel.Render("Mindly"))
		b.WriteString("\n")
		if m.streamBuf.Len() > 0 {
			b.WriteString(wrap.Render(m.streamBuf.String() + "▍"))
		} else {
			b.WriteString(theme.Hint.Render(spinnerFrames[m.spinner] + " thinking..."))
		}
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString(theme.Incorrect.Render("error: " + m.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func (m *ChatModel) renderLine(line chatLine, wrap lipgloss.Style) string {
	var b strings.Builder
	if line.role == "user" {
		b.WriteString(theme.StudentLabel.Render("You"))
	} else {
		b.WriteString(theme.TutorLabel.Render("Mindly"))
		if line.action != "" {
			b.WriteString("  ")
			b.WriteString(theme.ActionBadge.Render(actionLabel(line.action)))
		}
	}
	b.WriteString("\n")
	b.WriteString(wrap.Render(line.content))
	b.WriteString("\n")
	return b.String()
}

func (m *ChatModel) keyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (m *ChatModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if !m.ready {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader("Exam Prep", m.phase, m.streak, m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)

	prompt := "> "
	if m.waiting {
		prompt = "  "
	}
	inputLine := theme.Body.Render(prompt) + m.input.View()

	content := m.vp.View() + "\n" + inputLine

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// phaseLabel formats a session phase for the header badge.
func phaseLabel(p tutor.SessionPhase) string {
	return strings.ReplaceAll(string(p), "_", " ")
}

// actionLabel formats a tutor action for the transcript badge.
func actionLabel(a string) string {
	return strings.ReplaceAll(a, "_", " ")
}
