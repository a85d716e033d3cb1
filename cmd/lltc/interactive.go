package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/lltypes/lower"
	"github.com/wippyai/lltypes/schema"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	targetStyle = lipgloss.NewStyle().
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

type interactiveModel struct {
	compiler *lower.Compiler
	roots    map[string]schema.Type
	errs     map[string]error
	filter   textinput.Model
	names    []string
	visible  []string
	selected int
	target   int
}

func newInteractiveModel(c *lower.Compiler) *interactiveModel {
	ti := textinput.New()
	ti.Prompt = "filter: "
	ti.Placeholder = "schema name"
	ti.Width = 30
	ti.Focus()

	names := sampleNames()
	roots := make(map[string]schema.Type, len(names))
	errs := make(map[string]error)
	for _, name := range names {
		root, err := samples[name]()
		if err != nil {
			errs[name] = err
			continue
		}
		roots[name] = root
	}
	return &interactiveModel{
		compiler: c,
		roots:    roots,
		errs:     errs,
		filter:   ti,
		names:    names,
		visible:  names,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "up":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down":
			if m.selected < len(m.visible)-1 {
				m.selected++
			}
			return m, nil

		case "tab":
			m.target = (m.target + 1) % len(lower.Targets)
			return m, nil

		case "shift+tab":
			m.target = (m.target + len(lower.Targets) - 1) % len(lower.Targets)
			return m, nil

		case "esc":
			m.filter.SetValue("")
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *interactiveModel) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.visible = m.visible[:0:0]
	for _, name := range m.names {
		if q == "" || strings.Contains(name, q) {
			m.visible = append(m.visible, name)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = max(len(m.visible)-1, 0)
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("lltc"))
	b.WriteString(" ")
	b.WriteString(m.compiler.Options().ABI.Name)
	b.WriteString("\n\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	for i, name := range m.visible {
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + name))
		} else {
			b.WriteString("  " + nameStyle.Render(name))
		}
		b.WriteString("\n")
	}
	if len(m.visible) == 0 {
		b.WriteString(helpStyle.Render("  no match"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for i, t := range lower.Targets {
		label := " " + t.String() + " "
		if i == m.target {
			b.WriteString(selectedStyle.Render(label))
		} else {
			b.WriteString(targetStyle.Render(label))
		}
	}
	b.WriteString("\n\n")

	if len(m.visible) > 0 {
		b.WriteString(m.preview(m.visible[m.selected]))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ select • tab target • type to filter • esc clear • ctrl+c quit"))
	return b.String()
}

func (m *interactiveModel) preview(name string) string {
	if err := m.errs[name]; err != nil {
		return errorStyle.Render(err.Error())
	}
	root := m.roots[name]
	out, err := render(m.compiler, lower.Targets[m.target], root)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	return nameStyle.Render(root.String()) + " " + helpStyle.Render(nodeCount(root)) + "\n" + resultStyle.Render(out)
}

func nodeCount(t schema.Type) string {
	n := schema.Count(t)
	if n == 1 {
		return "(1 node)"
	}
	return "(" + strconv.Itoa(n) + " nodes)"
}

func runInteractive(c *lower.Compiler) error {
	p := tea.NewProgram(newInteractiveModel(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
