package chatwidget

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zhouzirui/z-chat/backend/internal/model/chat"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	userStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	aiStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	controlStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1)
	focusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")).Padding(0, 1)
	outputStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type focusArea int

const (
	focusInput focusArea = iota
	focusModel
	focusSend
	focusCount
)

// chrome is the number of terminal rows used outside the output box.
const chrome = 8

// replyMsg carries a finished request back to the UI loop.
type replyMsg struct {
	exchange Exchange
	result   Result
}

// Model is the Bubble Tea front end for a Widget.
type Model struct {
	widget   *Widget
	input    textinput.Model
	models   []string
	selected int
	focus    focusArea
	ctx      context.Context
	cancel   context.CancelFunc
	width    int
	height   int
}

// NewModel builds the terminal UI. models is the selectable set; defaultModel
// is preselected when present in it.
func NewModel(ctx context.Context, widget *Widget, models []string, defaultModel string) Model {
	if len(models) == 0 {
		models = []string{chat.DefaultModel}
	}

	selected := 0
	for i, id := range models {
		if id == defaultModel {
			selected = i
			break
		}
	}

	ti := textinput.New()
	ti.Placeholder = "Type your message..."
	ti.Prompt = "> "
	ti.Focus()

	ctx, cancel := context.WithCancel(ctx)
	return Model{
		widget:   widget,
		input:    ti,
		models:   append([]string(nil), models...),
		selected: selected,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// SelectedModel returns the model id that the next submit will use.
func (m Model) SelectedModel() string {
	return m.models[m.selected]
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-6, 10)
		return m, nil
	case replyMsg:
		_ = m.widget.Complete(msg.exchange, msg.result)
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.cancel()
		return m, tea.Quit
	case "tab":
		return m.setFocus((m.focus + 1) % focusCount), nil
	case "shift+tab":
		return m.setFocus((m.focus + focusCount - 1) % focusCount), nil
	case "enter":
		return m.submit()
	case "left", "right":
		if m.focus == focusModel {
			step := 1
			if msg.String() == "left" {
				step = len(m.models) - 1
			}
			m.selected = (m.selected + step) % len(m.models)
			return m, nil
		}
	}

	if m.focus != focusInput {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) setFocus(f focusArea) Model {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m
}

// submit is shared by the Enter key and the send control.
func (m Model) submit() (tea.Model, tea.Cmd) {
	m.widget.SetInput(m.input.Value())
	ex, ok := m.widget.Submit(m.SelectedModel())
	m.input.SetValue(m.widget.Input())
	if !ok {
		return m, nil
	}
	return m, sendCmd(m.ctx, m.widget, ex)
}

func sendCmd(ctx context.Context, w *Widget, ex Exchange) tea.Cmd {
	return func() tea.Msg {
		return replyMsg{exchange: ex, result: w.Send(ctx, ex)}
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("AI Chat"))
	b.WriteString("\n")

	lines := renderMessages(m.widget.Messages())
	if m.height > chrome && len(lines) > m.height-chrome {
		lines = lines[len(lines)-(m.height-chrome):]
	}
	output := outputStyle
	if m.width > 2 {
		output = output.Width(m.width - 2)
	}
	b.WriteString(output.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")

	b.WriteString(m.control(focusModel, fmt.Sprintf("Model: < %s >", m.SelectedModel())))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString(" ")
	b.WriteString(m.control(focusSend, "[ Send ]"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter send • tab focus • ←/→ model • esc quit"))
	return b.String()
}

func (m Model) control(area focusArea, label string) string {
	if m.focus == area {
		return focusStyle.Render(label)
	}
	return controlStyle.Render(label)
}

func renderMessages(messages []chat.Message) []string {
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		switch {
		case msg.Pending:
			lines = append(lines, pendingStyle.Render(msg.Text))
		case msg.Sender == chat.SenderUser:
			lines = append(lines, userStyle.Render("User: ")+msg.Text)
		default:
			lines = append(lines, aiStyle.Render("AI: ")+msg.Text)
		}
	}
	return lines
}
