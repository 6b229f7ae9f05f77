package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/bindings"
	"github.com/wippyai/bindings/binder"
	"github.com/wippyai/bindings/loader"
	"github.com/wippyai/bindings/locate"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	exportStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

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

type exportInfo struct {
	name    string
	fn      *loader.Func
	display string
}

type interactiveModel struct {
	err      error
	binding  *bindings.Binding
	root     string
	result   string
	exports  []exportInfo
	probed   []string
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
}

type modelState int

const (
	stateSelectExport modelState = iota
	stateInputArgs
	stateShowResult
)

func newInteractiveModel(root string) *interactiveModel {
	return &interactiveModel{
		root:  root,
		state: stateSelectExport,
	}
}

type loadedMsg struct {
	err     error
	binding *bindings.Binding
	exports []exportInfo
	probed  []string
}

type callResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadBinding
}

func (m *interactiveModel) loadBinding() tea.Msg {
	ctx := context.Background()

	b := binder.New()
	spec, err := b.Find(m.root)
	if err != nil {
		return loadedMsg{err: err}
	}

	binding, err := b.Initialize(ctx, spec)
	if err != nil {
		return loadedMsg{err: err}
	}

	var exports []exportInfo
	for name, value := range binding.Exports {
		info := exportInfo{name: name}
		if fn, ok := value.(*loader.Func); ok {
			info.fn = fn
			info.display = fmt.Sprintf("func/%d -> %d", fn.ParamCount(), fn.ResultCount())
		} else {
			info.display = fmt.Sprintf("%T", value)
		}
		exports = append(exports, info)
	}
	sort.Slice(exports, func(i, j int) bool { return exports[i].name < exports[j].name })

	env := locate.CurrentEnv()
	var probed []string
	for _, candidate := range locate.Candidates(m.root, spec.Name, env) {
		marker := "  "
		if candidate == spec.ResolvedPath {
			marker = "✓ "
		}
		probed = append(probed, marker+candidate)
	}

	return loadedMsg{binding: binding, exports: exports, probed: probed}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectExport && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectExport && m.selected < len(m.exports)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectExport:
				if len(m.exports) == 0 {
					break
				}
				e := m.exports[m.selected]
				if e.fn == nil {
					m.result = fmt.Sprintf("%v", m.binding.Exports[e.name])
					m.state = stateShowResult
					break
				}
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.callExport
				}
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.callExport

			case stateShowResult:
				m.state = stateSelectExport
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectExport
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectExport
				m.result = ""
				m.err = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.binding = msg.binding
		m.exports = msg.exports
		m.probed = msg.probed

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	e := m.exports[m.selected]
	m.inputs = make([]textinput.Model, e.fn.ParamCount())
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = "u64"
		ti.Prompt = fmt.Sprintf("arg%d: ", i)
		ti.Width = 24
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) callExport() tea.Msg {
	ctx := context.Background()

	e := m.exports[m.selected]
	args := make([]uint64, len(m.inputs))
	for i, input := range m.inputs {
		v, err := strconv.ParseUint(strings.TrimSpace(input.Value()), 10, 64)
		if err != nil && input.Value() != "" {
			return callResultMsg{err: fmt.Errorf("parse arg%d: %w", i, err)}
		}
		args[i] = v
	}

	results, err := e.fn.Call(ctx, args...)
	if err != nil {
		return callResultMsg{err: err}
	}

	return callResultMsg{result: fmt.Sprintf("%v", results)}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.binding == nil {
		return "Locating artifact..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Binding Explorer"))
	b.WriteString(" ")
	b.WriteString(pathStyle.Render(m.binding.Spec.ResolvedPath))
	b.WriteString(fmt.Sprintf(" (%s)\n\n", m.binding.Spec.Kind))

	switch m.state {
	case stateSelectExport:
		b.WriteString("Probed candidates:\n")
		for _, line := range m.probed {
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("\nExports:\n\n")
		if len(m.exports) == 0 {
			b.WriteString(helpStyle.Render("  (none)"))
			b.WriteString("\n")
		}
		for i, e := range m.exports {
			line := exportStyle.Render(e.name) + "  " + helpStyle.Render(e.display)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> ") + line)
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter call • q quit"))

	case stateInputArgs:
		e := m.exports[m.selected]
		b.WriteString(fmt.Sprintf("Calling %s\n\n", exportStyle.Render(e.name)))
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter call • esc back"))

	case stateShowResult:
		e := m.exports[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", exportStyle.Render(e.name)))
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

func runInteractive(root string) error {
	p := tea.NewProgram(newInteractiveModel(root), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
