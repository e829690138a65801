package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/qttylib/qtty/registry"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	unitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	dimStyle = lipgloss.NewStyle().
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
	stateSelectSrc modelState = iota
	stateSelectDst
	stateInputValue
	stateShowResult
)

type converterModel struct {
	err      error
	units    []registry.UnitID
	choices  []registry.UnitID
	src      registry.UnitID
	dst      registry.UnitID
	input    textinput.Model
	result   string
	selected int
	state    modelState
}

func newConverterModel() *converterModel {
	var units []registry.UnitID
	for _, id := range registry.Units() {
		if registry.Name(id) != "" {
			units = append(units, id)
		}
	}

	ti := textinput.New()
	ti.Placeholder = "value"
	ti.Prompt = "value: "
	ti.Width = 24

	return &converterModel{
		units:   units,
		choices: units,
		input:   ti,
		state:   stateSelectSrc,
	}
}

func (m *converterModel) Init() tea.Cmd {
	return nil
}

func (m *converterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInputValue || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "up", "k":
			if m.selecting() && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.selecting() && m.selected < len(m.choices)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectSrc:
				m.src = m.choices[m.selected]
				m.choices = m.compatibleWith(m.src)
				m.selected = 0
				m.state = stateSelectDst

			case stateSelectDst:
				m.dst = m.choices[m.selected]
				m.input.SetValue("")
				m.input.Focus()
				m.state = stateInputValue

			case stateInputValue:
				m.convert()
				m.state = stateShowResult

			case stateShowResult:
				m.reset()
			}

		case "esc":
			switch m.state {
			case stateSelectDst, stateInputValue, stateShowResult:
				m.reset()
			}
		}
	}

	if m.state == stateInputValue {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *converterModel) selecting() bool {
	return m.state == stateSelectSrc || m.state == stateSelectDst
}

func (m *converterModel) compatibleWith(src registry.UnitID) []registry.UnitID {
	var out []registry.UnitID
	for _, id := range m.units {
		if registry.Compatible(src, id) {
			out = append(out, id)
		}
	}
	return out
}

func (m *converterModel) convert() {
	value, err := strconv.ParseFloat(m.input.Value(), 64)
	if err != nil {
		m.err = fmt.Errorf("%q is not a number", m.input.Value())
		return
	}
	converted, err := registry.ConvertValue(value, m.src, m.dst)
	if err != nil {
		m.err = err
		return
	}
	m.result = fmt.Sprintf("%s %s = %s %s",
		formatValue(value), registry.Name(m.src),
		formatValue(converted), registry.Name(m.dst))
}

func (m *converterModel) reset() {
	m.choices = m.units
	m.selected = 0
	m.result = ""
	m.err = nil
	m.input.Blur()
	m.state = stateSelectSrc
}

func (m *converterModel) View() string {
	s := titleStyle.Render("qtty converter") + "\n\n"

	switch m.state {
	case stateSelectSrc, stateSelectDst:
		if m.state == stateSelectSrc {
			s += "Convert from:\n\n"
		} else {
			s += fmt.Sprintf("Convert %s to:\n\n", unitStyle.Render(registry.Name(m.src)))
		}
		for i, id := range m.choices {
			meta, _ := registry.Lookup(id)
			line := fmt.Sprintf("%-8s %s", meta.Name, dimStyle.Render(meta.Dim.String()))
			if i == m.selected {
				line = selectedStyle.Render(line)
			}
			s += "  " + line + "\n"
		}
		s += "\n" + helpStyle.Render("up/down: select • enter: confirm • q: quit")

	case stateInputValue:
		s += fmt.Sprintf("Convert %s to %s\n\n",
			unitStyle.Render(registry.Name(m.src)),
			unitStyle.Render(registry.Name(m.dst)))
		s += "  " + m.input.View() + "\n"
		s += "\n" + helpStyle.Render("enter: convert • esc: back")

	case stateShowResult:
		if m.err != nil {
			s += errorStyle.Render("Error: "+m.err.Error()) + "\n"
		} else {
			s += resultStyle.Render(m.result) + "\n"
		}
		s += "\n" + helpStyle.Render("enter: again • q: quit")
	}

	return s + "\n"
}

func runInteractive() error {
	p := tea.NewProgram(newConverterModel())
	_, err := p.Run()
	return err
}
