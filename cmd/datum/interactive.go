package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/avro-datum/datum"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateBrowse modelState = iota
	stateLookup
)

// frame is one level of the navigation stack.
type frame struct {
	path     string
	value    datum.Datum
	selected int
}

type browserModel struct {
	err      error
	filename string
	stack    []frame
	items    []child
	input    textinput.Model
	state    modelState
}

func newBrowserModel(filename string, root datum.Datum) *browserModel {
	ti := textinput.New()
	ti.Placeholder = "user.tags[0]"
	ti.Prompt = "path: "
	ti.Width = 40

	m := &browserModel{
		filename: filename,
		input:    ti,
		state:    stateBrowse,
	}
	m.push("", root)
	return m
}

func (m *browserModel) current() *frame {
	return &m.stack[len(m.stack)-1]
}

func (m *browserModel) push(path string, d datum.Datum) {
	m.stack = append(m.stack, frame{path: path, value: d})
	m.items = children(path, d)
}

func (m *browserModel) pop() {
	if len(m.stack) <= 1 {
		return
	}
	m.stack = m.stack[:len(m.stack)-1]
	f := m.current()
	m.items = children(f.path, f.value)
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.state == stateLookup {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.state == stateLookup {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.state = stateBrowse
			m.input.Blur()
			return m, nil
		case "enter":
			m.jump(strings.TrimSpace(m.input.Value()))
			m.state = stateBrowse
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	f := m.current()
	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if f.selected > 0 {
			f.selected--
		}
	case "down", "j":
		if f.selected < len(m.items)-1 {
			f.selected++
		}
	case "enter", "right", "l":
		if f.selected < len(m.items) {
			c := m.items[f.selected]
			if c.value.Kind().IsComposite() {
				m.err = nil
				m.push(c.path, c.value)
			}
		}
	case "esc", "backspace", "left", "h":
		m.err = nil
		m.pop()
	case "/":
		m.state = stateLookup
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

// jump navigates to path from the root, keeping the stack at the root when
// the lookup fails.
func (m *browserModel) jump(path string) {
	root := m.stack[0].value
	d, err := datum.Lookup(root, path)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.stack = m.stack[:1]
	m.items = children("", root)
	if path != "" {
		m.push(path, d)
	}
}

func (m *browserModel) View() string {
	var b strings.Builder

	f := m.current()
	b.WriteString(titleStyle.Render("Datum Browser"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	location := f.path
	if location == "" {
		location = "(root)"
	}
	b.WriteString(pathStyle.Render(location))
	b.WriteString(" ")
	b.WriteString(kindStyle.Render(summary(f.value)))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(datum.Dump(f.value))
	}
	for i, c := range m.items {
		line := c.label + ": " + summary(c.value)
		if i == f.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	if m.state == stateLookup {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter go • esc cancel"))
	} else {
		b.WriteString(helpStyle.Render("↑/↓ select • enter open • esc up • / path • q quit"))
	}

	return b.String()
}

func runInteractive(filename string, root datum.Datum) error {
	p := tea.NewProgram(newBrowserModel(filename, root), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
