// ============================================================================
// botparse - Bot Command Parser
// ============================================================================
//
// Package:     repl
// Description: Bubbletea model for the full-screen command REPL
// Author:      msto63
// Created:     2026-02-13
// License:     MIT
// ============================================================================

package repl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/botparse/foundation/botcmd"
	"github.com/msto63/botparse/foundation/utils/stringx"
	"github.com/msto63/botparse/pkg/core/version"
)

// Logo shown in the header
const Logo = "botparse"

// Model is the Bubbletea model of the REPL
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	running  bool
	quitting bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Transcript
	entries []Entry

	// Input history
	history      []string
	historyIndex int // -1 means not navigating
	draft        string

	engine *botcmd.Engine
	cfg    Config
}

// Config holds REPL configuration
type Config struct {
	Engine   *botcmd.Engine
	Prompt   string
	Greeting bool
}

// New creates a REPL model around cfg.Engine
func New(cfg Config) Model {
	if cfg.Prompt == "" {
		cfg.Prompt = ">>> "
	}

	ti := textinput.New()
	ti.Prompt = cfg.Prompt
	ti.PromptStyle = PromptStyle
	ti.Placeholder = "/repeat hello 3"
	ti.CharLimit = 4096
	ti.Focus()

	m := Model{
		input:        ti,
		historyIndex: -1,
		engine:       cfg.Engine,
		cfg:          cfg,
	}

	if cfg.Greeting {
		m.entries = append(m.entries, Entry{Kind: EntrySystem, Content: "Commands:", Timestamp: time.Now()})
		for _, line := range cfg.Engine.Usage(false) {
			m.entries = append(m.entries, Entry{Kind: EntrySystem, Content: "    " + line, Timestamp: time.Now()})
		}
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2
		footerHeight := 5
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - len(m.cfg.Prompt) - 6
		m.updateViewportContent()

	case executeResultMsg:
		m.running = false
		switch {
		case msg.quit:
			if msg.output != "" {
				m.appendEntry(EntryOutput, msg.output, msg.duration)
			}
			m.appendEntry(EntrySystem, "Bye!", 0)
			m.quitting = true
			m.updateViewportContent()
			return m, tea.Quit
		case msg.err != nil:
			m.appendEntry(EntryError, botcmd.Explain(msg.err), msg.duration)
		default:
			m.appendEntry(EntryOutput, msg.output, msg.duration)
		}
		m.updateViewportContent()
		m.viewport.GotoBottom()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
		m.appendEntry(EntrySystem, "Bye!", 0)
		m.quitting = true
		m.updateViewportContent()
		return m, tea.Quit

	case tea.KeyEnter:
		if m.running {
			return m, nil
		}
		line := m.input.Value()
		m.input.Reset()
		if stringx.IsBlank(line) {
			return m, nil
		}
		m.history = append(m.history, line)
		m.historyIndex = -1
		m.appendEntry(EntryInput, line, 0)
		m.updateViewportContent()
		m.viewport.GotoBottom()
		m.running = true
		return m, m.execute(line)

	case tea.KeyUp:
		if len(m.history) == 0 {
			return m, nil
		}
		if m.historyIndex == -1 {
			m.draft = m.input.Value()
			m.historyIndex = len(m.history) - 1
		} else if m.historyIndex > 0 {
			m.historyIndex--
		}
		m.input.SetValue(m.history[m.historyIndex])
		m.input.CursorEnd()
		return m, nil

	case tea.KeyDown:
		if m.historyIndex == -1 {
			return m, nil
		}
		if m.historyIndex < len(m.history)-1 {
			m.historyIndex++
			m.input.SetValue(m.history[m.historyIndex])
		} else {
			m.historyIndex = -1
			m.input.SetValue(m.draft)
		}
		m.input.CursorEnd()
		return m, nil

	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute dispatches line off the update loop
func (m Model) execute(line string) tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		start := time.Now()
		result, err := engine.Execute(context.Background(), line)
		msg := executeResultMsg{line: line, duration: time.Since(start)}
		if result != nil {
			msg.output = strings.TrimRight(result.Output, "\n")
		}
		if errors.Is(err, botcmd.ErrQuit) {
			msg.quit = true
			return msg
		}
		msg.err = err
		return msg
	}
}

func (m *Model) appendEntry(kind EntryKind, content string, duration time.Duration) {
	m.entries = append(m.entries, Entry{
		Kind:      kind,
		Content:   content,
		Timestamp: time.Now(),
		Duration:  duration,
	})
}

// Entries returns the transcript
func (m Model) Entries() []Entry {
	return m.entries
}

// View renders the REPL
func (m Model) View() string {
	if !m.ready {
		return "Starting botparse..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if !m.quitting {
		b.WriteString(InputBoxStyle.Width(m.width - 2).Render(m.input.View()))
		b.WriteString("\n")
	}
	b.WriteString(m.renderHelpBar())
	return b.String()
}

func (m Model) renderHeader() string {
	status := "ready"
	if m.running {
		status = "running..."
	}
	return LogoStyle.Render(Logo) + " " +
		SubHeaderStyle.Render(fmt.Sprintf("v%s · %d commands · %s",
			version.Version, m.engine.Registry().Len(), status))
}

func (m Model) renderHelpBar() string {
	hints := []string{
		RenderKeyHint("enter", "run"),
		RenderKeyHint("↑/↓", "history"),
		RenderKeyHint("pgup/pgdn", "scroll"),
		RenderKeyHint("esc", "quit"),
	}
	return StatusBarStyle.Render(strings.Join(hints, "  "))
}

func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(renderTranscript(m.entries, m.cfg.Prompt))
}

// renderTranscript renders every entry in order
func renderTranscript(entries []Entry, prompt string) string {
	var content strings.Builder
	for _, e := range entries {
		switch e.Kind {
		case EntryInput:
			content.WriteString(PromptStyle.Render(prompt) + InputEchoStyle.Render(e.Content))
		case EntryOutput:
			if e.Content == "" {
				continue
			}
			content.WriteString(OutputStyle.Render(e.Content))
		case EntryError:
			content.WriteString(ErrorStyle.Render(e.Content))
		case EntrySystem:
			content.WriteString(SystemStyle.Render(e.Content))
		}
		content.WriteString("\n")
	}
	return content.String()
}

// Run starts the REPL TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
