package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/clippysay/internal/render"
)

// Fixed layout heights
const (
	titleHeight    = 1
	inputHeight    = 5
	statusHeight   = 1
	panelBorders   = 2
	minViewHeight  = 5
	minInputWidth  = 10
	horizontalPads = 2
)

// PreviewResult is what the preview returns once it exits
type PreviewResult struct {
	Text     string
	Options  render.Options
	Accepted bool
}

// PreviewModel is a textarea with the rendered message shown above it
type PreviewModel struct {
	textarea textarea.Model
	viewport viewport.Model
	opts     render.Options
	rendered string
	accepted bool

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewPreviewModel creates a preview starting with initial as the message
func NewPreviewModel(initial string, opts render.Options) PreviewModel {
	ta := textarea.New()
	ta.Placeholder = "Type a message..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(inputHeight)
	ta.SetValue(initial)
	ta.Focus()

	m := PreviewModel{
		textarea: ta,
		opts:     opts,
	}
	m.rendered = render.Message(initial, opts)
	return m
}

// Init initializes the model
func (m PreviewModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and updates the model
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - titleHeight - (inputHeight + panelBorders) - statusHeight - panelBorders
		if vpHeight < minViewHeight {
			vpHeight = minViewHeight
		}
		contentWidth := max(minInputWidth, m.width-panelBorders)

		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
		}
		m.textarea.SetWidth(contentWidth - horizontalPads)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+s":
			m.accepted = true
			return m, tea.Quit
		case "ctrl+b":
			m.opts = m.opts.WithBubbleOnly(!m.opts.BubbleOnly)
			m.refresh()
			return m, nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	before := m.textarea.Value()
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)
	if m.textarea.Value() != before {
		m.refresh()
	}

	// Keys belong to the textarea; the preview only scrolls with the mouse.
	if _, isKey := msg.(tea.KeyMsg); !isKey && m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// refresh re-renders the message and scrolls the preview to its end, where
// the bubble's tail and the mascot's feet are.
func (m *PreviewModel) refresh() {
	m.rendered = render.Message(m.textarea.Value(), m.opts)
	if m.ready {
		m.viewport.SetContent(m.rendered)
		m.viewport.GotoBottom()
	}
}

// View renders the model
func (m PreviewModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	mode := "mascot"
	if m.opts.BubbleOnly {
		mode = "bubble only"
	}
	title := titleStyle.Render("clippysay preview") + badgeStyle.Render(fmt.Sprintf("[%s]", mode))

	status := renderHints("ctrl+s accept", "ctrl+b toggle mascot", "esc quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		previewStyle.Render(m.viewport.View()),
		inputPanelStyle.Render(m.textarea.View()),
		status,
	)
}

// Rendered returns the current rendering of the message
func (m PreviewModel) Rendered() string {
	return m.rendered
}

// Result returns the message, the options in effect and whether it was accepted
func (m PreviewModel) Result() PreviewResult {
	return PreviewResult{
		Text:     m.textarea.Value(),
		Options:  m.opts,
		Accepted: m.accepted,
	}
}

// RunPreview starts the preview TUI and blocks until it exits
func RunPreview(initial string, opts render.Options) (PreviewResult, error) {
	m := NewPreviewModel(initial, opts)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return PreviewResult{}, err
	}

	if pm, ok := finalModel.(PreviewModel); ok {
		return pm.Result(), nil
	}

	return PreviewResult{}, nil
}
