package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gear-tech/scale/dynamic"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	shapeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectType modelState = iota
	stateInputHex
	stateShowResult
)

type inspectModel struct {
	err      error
	reg      *dynamic.Registry
	names    []string
	input    textinput.Model
	result   string
	selected int
	state    modelState
}

func newInspectModel(reg *dynamic.Registry) *inspectModel {
	ti := textinput.New()
	ti.Placeholder = "hex bytes, e.g. 0x00070000"
	ti.Prompt = "bytes: "
	ti.Width = 64

	return &inspectModel{
		reg:   reg,
		names: reg.Names(),
		input: ti,
		state: stateSelectType,
	}
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputHex {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectType && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectType && m.selected < len(m.names)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectType:
				m.input.SetValue("")
				m.input.Focus()
				m.state = stateInputHex

			case stateInputHex:
				m.decode()
				m.state = stateShowResult

			case stateShowResult:
				m.state = stateSelectType
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInputHex:
				m.input.Blur()
				m.state = stateSelectType
			case stateShowResult:
				m.state = stateSelectType
				m.result = ""
				m.err = nil
			}
		}
	}

	if m.state == stateInputHex {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *inspectModel) decode() {
	m.result, m.err = "", nil

	data, err := parseHex(m.input.Value())
	if err != nil {
		m.err = err
		return
	}

	v, err := m.reg.DecodeAs(data, m.names[m.selected])
	if err != nil {
		m.err = err
		return
	}
	m.result = v.String()
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("SCALE Inspector"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectType:
		b.WriteString("Select a type to decode as:\n\n")
		for i, name := range m.names {
			s, _ := m.reg.Lookup(name)
			line := fmt.Sprintf("%-28s %s", name, shapeStyle.Render(s.String()))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter decode • q quit"))

	case stateInputHex:
		b.WriteString(fmt.Sprintf("Decoding as %s\n\n", nameStyle.Render(m.names[m.selected])))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter decode • esc back"))

	case stateShowResult:
		b.WriteString(fmt.Sprintf("Decoded %s:\n\n", nameStyle.Render(m.names[m.selected])))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive(reg *dynamic.Registry) error {
	p := tea.NewProgram(newInspectModel(reg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
