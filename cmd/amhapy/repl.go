package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/felekekinfe/AmhaPy-Amharic-based-Programming-Language-Transpiler/amhapy"
	"github.com/felekekinfe/AmhaPy-Amharic-based-Programming-Language-Transpiler/pyexec"
)

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	pythonStyle = lipgloss.NewStyle().
			Foreground(highlightColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(highlightColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)

type historyEntry struct {
	input  string
	python string
	output string
	isErr  bool
}

// replModel accumulates a program line by line. Each accepted entry re-runs
// the whole accumulated program and shows only the new output, so state
// carries across entries without keeping an interpreter process alive.
type replModel struct {
	textInput   textinput.Model
	runner      *pyexec.Runner
	committed   []string
	pending     []string
	lastOutput  string
	history     []historyEntry
	cmdHistory  []string
	historyIdx  int
	width       int
	height      int
	showHelp    bool
	showProgram bool
	showPython  bool
	quitting    bool
	initialized bool
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
	Tab   key.Binding
	CtrlP key.Binding
	CtrlK key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous input"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next input"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "autocomplete"),
	),
	CtrlP: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("ctrl+p", "toggle program"),
	),
	CtrlK: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "toggle help"),
	),
}

func newREPLModel() replModel {
	ti := textinput.New()
	ti.Placeholder = "type an AmhaPy statement..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = "amhapy> "

	m := replModel{
		textInput:  ti,
		history:    make([]historyEntry, 0),
		cmdHistory: make([]string, 0),
		historyIdx: -1,
		showPython: true,
	}

	runner, err := pyexec.NewRunner("")
	if err != nil {
		m.history = append(m.history, historyEntry{
			output: fmt.Sprintf("%s unavailable, transpiling without execution: %v", pyexec.DefaultInterpreter, err),
		})
	} else {
		m.runner = runner
	}
	return m
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = make([]historyEntry, 0)
			return m, nil

		case key.Matches(msg, keys.CtrlP):
			m.showProgram = !m.showProgram
			return m, nil

		case key.Matches(msg, keys.CtrlK):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Tab):
			m = m.handleAutocomplete()
			return m, nil

		case key.Matches(msg, keys.Enter):
			// Leading whitespace is significant inside a block, so only
			// the right side is trimmed.
			line := strings.TrimRight(m.textInput.Value(), " \t")
			trimmed := strings.TrimSpace(line)
			m.textInput.SetValue("")
			m.historyIdx = -1

			if len(m.pending) > 0 {
				if trimmed == "" {
					block := m.pending
					m.pending = nil
					m.setPrompt()
					return m.evaluate(block), nil
				}
				m.pending = append(m.pending, line)
				m.cmdHistory = append(m.cmdHistory, line)
				return m, nil
			}

			if trimmed == "" {
				return m, nil
			}

			if strings.HasPrefix(trimmed, ":") {
				var cmd tea.Cmd
				m, cmd = m.handleCommand(trimmed)
				return m, cmd
			}

			m.cmdHistory = append(m.cmdHistory, line)

			// A trailing colon opens a block; a blank line will close it.
			if strings.HasSuffix(trimmed, ":") {
				m.pending = []string{line}
				m.setPrompt()
				return m, nil
			}

			return m.evaluate([]string{line}), nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *replModel) setPrompt() {
	if len(m.pending) > 0 {
		m.textInput.Prompt = "   ...> "
		m.textInput.Placeholder = "block line, blank line to finish"
		return
	}
	m.textInput.Prompt = "amhapy> "
	m.textInput.Placeholder = "type an AmhaPy statement..."
}

func (m replModel) handleCommand(input string) (replModel, tea.Cmd) {
	parts := strings.Fields(input)
	cmd := parts[0]

	switch cmd {
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":clear", ":c":
		m.history = make([]historyEntry, 0)
	case ":program", ":p":
		m.showProgram = !m.showProgram
	case ":python", ":py":
		m.showPython = !m.showPython
	case ":keywords", ":k":
		m.history = append(m.history, historyEntry{
			input:  input,
			output: "Keywords: " + strings.Join(amhapy.Keywords(), " "),
		})
	case ":reset", ":r":
		m.committed = nil
		m.pending = nil
		m.lastOutput = ""
		m.setPrompt()
		m.history = append(m.history, historyEntry{
			input:  input,
			output: "Session reset",
		})
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	default:
		m.history = append(m.history, historyEntry{
			input:  input,
			output: fmt.Sprintf("Unknown command: %s", cmd),
			isErr:  true,
		})
	}
	return m, nil
}

func (m replModel) handleAutocomplete() replModel {
	input := m.textInput.Value()
	if input == "" {
		return m
	}

	words := strings.Fields(input)
	if len(words) == 0 {
		return m
	}
	lastWord := words[len(words)-1]

	var completions []string
	for _, k := range amhapy.Keywords() {
		if strings.HasPrefix(k, lastWord) {
			completions = append(completions, k)
		}
	}
	for _, name := range m.sessionNames() {
		if strings.HasPrefix(name, lastWord) {
			completions = append(completions, name)
		}
	}

	if len(completions) == 1 {
		prefix := strings.TrimSuffix(input, lastWord)
		m.textInput.SetValue(prefix + completions[0])
		m.textInput.CursorEnd()
	} else if len(completions) > 1 {
		m.history = append(m.history, historyEntry{
			output: "Completions: " + strings.Join(completions, ", "),
		})
	}

	return m
}

// sessionNames lists the identifiers used so far in the accumulated
// program, for autocompletion alongside the keyword vocabulary.
func (m replModel) sessionNames() []string {
	if len(m.committed) == 0 {
		return nil
	}
	tokens, err := amhapy.Lex(strings.Join(m.committed, "\n"))
	if err != nil {
		return nil
	}
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, tok := range tokens {
		if tok.Type != amhapy.TokenIdentifier {
			continue
		}
		if _, ok := seen[tok.Literal]; ok {
			continue
		}
		seen[tok.Literal] = struct{}{}
		names = append(names, tok.Literal)
	}
	sort.Strings(names)
	return names
}

func (m replModel) evaluate(block []string) replModel {
	input := strings.Join(block, "\n")

	blockPython, err := amhapy.Translate(input)
	if err != nil {
		return m.record(historyEntry{input: input, output: err.Error(), isErr: true})
	}

	candidate := make([]string, 0, len(m.committed)+len(block))
	candidate = append(candidate, m.committed...)
	candidate = append(candidate, block...)

	program, err := amhapy.Translate(strings.Join(candidate, "\n"))
	if err != nil {
		return m.record(historyEntry{input: input, output: err.Error(), isErr: true})
	}
	if err := pyexec.CheckSyntax(program); err != nil {
		return m.record(historyEntry{input: input, python: blockPython, output: err.Error(), isErr: true})
	}

	if m.runner == nil {
		m.committed = candidate
		return m.record(historyEntry{input: input, python: blockPython})
	}

	output, err := m.runner.Run(context.Background(), program)
	if err != nil {
		return m.record(historyEntry{input: input, python: blockPython, output: err.Error(), isErr: true})
	}

	delta := strings.TrimPrefix(output, m.lastOutput)
	m.committed = candidate
	m.lastOutput = output
	return m.record(historyEntry{
		input:  input,
		python: blockPython,
		output: strings.TrimRight(delta, "\n"),
	})
}

func (m replModel) record(entry historyEntry) replModel {
	m.history = append(m.history, entry)
	return m
}

func (m replModel) View() string {
	if !m.initialized {
		return "Loading..."
	}

	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder

	header := headerStyle.Render("AmhaPy REPL")
	version := mutedStyle.Render("v0.1.0")
	b.WriteString(header + " " + version + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", min(m.width-2, 60))) + "\n\n")

	reservedLines := 8 // header, input, footer, etc.
	if m.showHelp {
		reservedLines += 13
	}
	if m.showProgram {
		reservedLines += len(m.committed) + 3
	}
	availableHeight := m.height - reservedLines

	historyStart := 0
	if len(m.history) > availableHeight {
		historyStart = len(m.history) - availableHeight
	}

	for i := historyStart; i < len(m.history); i++ {
		entry := m.history[i]
		if entry.input != "" {
			for _, line := range strings.Split(entry.input, "\n") {
				b.WriteString(mutedStyle.Render("  › ") + line + "\n")
			}
		}
		if m.showPython && entry.python != "" {
			for _, line := range strings.Split(entry.python, "\n") {
				b.WriteString("  " + pythonStyle.Render("py│ "+line) + "\n")
			}
		}
		switch {
		case entry.isErr:
			b.WriteString("  " + errorStyle.Render("✗ "+entry.output) + "\n")
		case entry.output != "":
			for j, line := range strings.Split(entry.output, "\n") {
				marker := "→ "
				if j > 0 {
					marker = "  "
				}
				b.WriteString("  " + resultStyle.Render(marker+line) + "\n")
			}
		}
		b.WriteString("\n")
	}

	for _, line := range m.pending {
		b.WriteString(mutedStyle.Render("  ┆ ") + line + "\n")
	}

	if m.showProgram {
		b.WriteString(renderProgramPanel(m.committed, m.width))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(renderHelpPanel(m.width))
		b.WriteString("\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")

	footer := helpKeyStyle.Render("ctrl+k") + helpDescStyle.Render(" help  ") +
		helpKeyStyle.Render("ctrl+p") + helpDescStyle.Render(" program  ") +
		helpKeyStyle.Render("ctrl+l") + helpDescStyle.Render(" clear  ") +
		helpKeyStyle.Render("ctrl+c") + helpDescStyle.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

func renderProgramPanel(committed []string, width int) string {
	if len(committed) == 0 {
		return borderStyle.Render(mutedStyle.Render("No program yet"))
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Program"))
	for i, line := range committed {
		lines = append(lines, fmt.Sprintf("  %s %s", mutedStyle.Render(fmt.Sprintf("%3d", i+1)), line))
	}
	return borderStyle.Render(strings.Join(lines, "\n"))
}

func renderHelpPanel(width int) string {
	help := []struct {
		key  string
		desc string
	}{
		{"↑/↓", "Navigate input history"},
		{"Tab", "Autocomplete keywords and names"},
		{"Enter", "Run a statement"},
		{"line:", "A trailing colon opens a block"},
		{"blank", "A blank line closes the open block"},
		{":python", "Toggle transpiled Python display"},
		{":program", "Toggle the accumulated program panel"},
		{":keywords", "List the AmhaPy vocabulary"},
		{":reset", "Forget the accumulated program"},
		{":clear", "Clear history"},
		{":quit", "Exit REPL"},
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Help"))
	for _, h := range help {
		line := fmt.Sprintf("  %s  %s",
			helpKeyStyle.Render(fmt.Sprintf("%-9s", h.key)),
			helpDescStyle.Render(h.desc))
		lines = append(lines, line)
	}

	return borderStyle.Render(strings.Join(lines, "\n"))
}

func runREPL() error {
	p := tea.NewProgram(newREPLModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
