// Package tui implements the interactive surface: a prompt textarea on the
// left, the rendered recommendation on the right, and clipboard actions for
// both. It is a thin shell over services.RouterService; all decision logic
// lives in internal/router.
package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"promptrouter/internal/services"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

const emptyResultText = "No recommendation yet.\n\nType a prompt and press ctrl+enter."

// Model is the bubbletea model for the router TUI.
type Model struct {
	textarea textarea.Model
	viewport viewport.Model
	styles   Styles

	svc *services.RouterService

	// lastResult holds the rendered text of the most recent recommendation,
	// empty until the first successful classification.
	lastResult string
	status     string

	width  int
	height int
	ready  bool
}

func New(svc *services.RouterService) Model {
	ta := textarea.New()
	ta.Placeholder = "Type or paste a prompt..."
	ta.CharLimit = 0
	ta.Focus()

	vp := viewport.New(0, 0)
	vp.SetContent(emptyResultText)

	return Model{
		textarea: ta,
		viewport: vp,
		styles:   DefaultStyles(),
		svc:      svc,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+enter", "ctrl+e":
			m = m.classify()
			return m, nil
		case "ctrl+y":
			m = m.copyResult()
			return m, nil
		case "ctrl+u":
			m = m.copyInput()
			return m, nil
		case "ctrl+l":
			m = m.clear()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// classify runs the prompt through the service. Empty input never reaches
// the classifier; it only produces a status notice.
func (m Model) classify() Model {
	input := m.textarea.Value()
	if strings.TrimSpace(input) == "" {
		m.status = m.styles.Error.Render("Enter a prompt first.")
		return m
	}

	rec, err := m.svc.Classify(input)
	if err != nil {
		m.status = m.styles.Error.Render("Classification failed: " + err.Error())
		return m
	}

	m.lastResult = services.Render(rec)
	m.viewport.SetContent(m.lastResult)
	m.viewport.GotoTop()
	m.status = m.styles.Success.Render("Recommended: ") + m.styles.Model.Render(string(rec.Model))
	return m
}

func (m Model) copyResult() Model {
	if m.lastResult == "" {
		m.status = m.styles.Error.Render("No result to copy yet.")
		return m
	}
	if err := clipboardWriteAll(m.lastResult); err != nil {
		m.status = m.styles.Error.Render("Failed to copy result to clipboard")
		return m
	}
	m.status = m.styles.Success.Render("Result copied to clipboard")
	return m
}

func (m Model) copyInput() Model {
	input := strings.TrimSpace(m.textarea.Value())
	if input == "" {
		m.status = m.styles.Error.Render("No input to copy.")
		return m
	}
	if err := clipboardWriteAll(input); err != nil {
		m.status = m.styles.Error.Render("Failed to copy input to clipboard")
		return m
	}
	m.status = m.styles.Success.Render("Input copied to clipboard")
	return m
}

func (m Model) clear() Model {
	m.textarea.Reset()
	m.lastResult = ""
	m.viewport.SetContent(emptyResultText)
	m.status = ""
	return m
}

// layout splits the window into two columns under a header and above the
// status/help lines.
func (m *Model) layout() {
	paneWidth := m.width/2 - 4
	if paneWidth < 20 {
		paneWidth = 20
	}
	paneHeight := m.height - 7
	if paneHeight < 5 {
		paneHeight = 5
	}

	m.textarea.SetWidth(paneWidth)
	m.textarea.SetHeight(paneHeight)
	m.viewport.Width = paneWidth
	m.viewport.Height = paneHeight
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.PaneTitle.Render("Prompt"),
		m.styles.Pane.Render(m.textarea.View()),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.PaneTitle.Render("Recommendation"),
		m.styles.Pane.Render(m.viewport.View()),
	)

	help := m.styles.Help.Render(
		"ctrl+enter classify · ctrl+y copy result · ctrl+u copy input · ctrl+l clear · esc quit",
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Header.Render("promptrouter – heuristic model recommendation"),
		lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right),
		m.status,
		help,
	)
}
