package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// practiceModel is a typing drill over the sampled words. Extra letters typed past the
// end of a word are shown by growing the ghost text with spaces.
type practiceModel struct {
	textInput textinput.Model
	help      help.Model
	keymap    keymap
	ghost     []rune
	done      bool
}

type keymap struct{}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "next word")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
	}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newPracticeModel(words []string) practiceModel {
	ti := textinput.New()
	ti.Width = 80
	ti.Prompt = ""
	ti.Focus()

	return practiceModel{
		textInput: ti,
		help:      help.New(),
		keymap:    keymap{},
		ghost:     []rune(strings.Join(words, " ")),
	}
}

func (m practiceModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m practiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	pos := m.textInput.Position()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyBackspace:
			if pos <= 0 || pos >= len(m.ghost) {
				break
			}
			if m.ghost[pos] == ' ' && m.ghost[pos-1] == ' ' {
				m.ghost = append(m.ghost[:pos-1:pos-1], m.ghost[pos:]...)
			}

		case tea.KeySpace:
			if pos >= len(m.ghost) {
				break
			}
			skip := indexRune(m.ghost[pos:], ' ')
			if skip < 0 {
				skip = len(m.ghost) - pos - 1
			}
			v := m.textInput.Value() + strings.Repeat(" ", skip)
			m.textInput.SetValue(v)
			m.textInput.SetCursor(len([]rune(v)))

		case tea.KeyRunes:
			if pos >= len(m.ghost) {
				break
			}
			// Runes that spill past the end of the current word each push the
			// rest of the text one column right.
			wordEnd := indexRune(m.ghost[pos:], ' ')
			if wordEnd < 0 {
				break
			}
			extra := len(msg.Runes) - wordEnd
			if extra <= 0 {
				break
			}
			at := pos + wordEnd
			grown := make([]rune, 0, len(m.ghost)+extra)
			grown = append(grown, m.ghost[:at]...)
			grown = append(grown, []rune(strings.Repeat(" ", extra))...)
			m.ghost = append(grown, m.ghost[at:]...)
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)

	if len([]rune(m.textInput.Value())) >= len(m.ghost) {
		m.done = true
		return m, tea.Quit
	}

	return m, cmd
}

func indexRune(rs []rune, r rune) int {
	for i, c := range rs {
		if c == r {
			return i
		}
	}
	return -1
}

var (
	ghostTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
	correctTextStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("2"))
	incorrectTextStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("1"))
	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("7")).
			Foreground(lipgloss.Color("0"))
)

// accuracy returns how many typed characters match the ghost text and how many were
// typed, ignoring skipped letters.
func (m practiceModel) accuracy() (correct, typed int) {
	for i, c := range []rune(m.textInput.Value()) {
		if i >= len(m.ghost) {
			break
		}
		if c == ' ' && m.ghost[i] != ' ' {
			continue
		}
		typed++
		if c == m.ghost[i] {
			correct++
		}
	}
	return correct, typed
}

func (m practiceModel) View() string {
	if len(m.ghost) == 0 {
		return "No words matched, nothing to practice.\n"
	}

	var builder strings.Builder

	typedRunes := []rune(m.textInput.Value())
	cursorPos := m.textInput.Position()

	for i, ghostChar := range m.ghost {
		if i < len(typedRunes) {
			typedChar := typedRunes[i]
			if typedChar == ghostChar {
				builder.WriteString(correctTextStyle.Render(string(ghostChar)))
			} else if typedChar == ' ' && ghostChar != ' ' {
				builder.WriteString(ghostTextStyle.Render(string(ghostChar)))
			} else {
				builder.WriteString(incorrectTextStyle.Render(string(typedChar)))
			}
		} else {
			if i == cursorPos {
				builder.WriteString(cursorStyle.Render(string(ghostChar)))
			} else {
				builder.WriteString(ghostTextStyle.Render(string(ghostChar)))
			}
		}
	}

	correct, typed := m.accuracy()
	status := fmt.Sprintf("%d/%d correct", correct, typed)
	if m.done {
		status = "Done! " + status
	}

	return fmt.Sprintf(
		"Type the words:\n\n%s\n\n%s\n\n%s",
		builder.String(),
		status,
		m.help.View(m.keymap),
	)
}
