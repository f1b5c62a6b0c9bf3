// internal/ui/prompt.go
//
// One-shot line prompt for the interactive game.
// Runs a small bubbletea program around a bubbles textinput so the player
// gets inline suggestions (accepted with tab) for the known commands.

package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted is returned when the player bails out with Ctrl+C / Ctrl+D.
var ErrAborted = errors.New("prompt aborted")

type promptModel struct {
	input   textinput.Model
	done    bool
	aborted bool
}

func newPromptModel(prompt string, suggestions []string) promptModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.CharLimit = 128
	ti.Width = 64
	ti.ShowSuggestions = true
	ti.SetSuggestions(suggestions)
	ti.Focus()
	return promptModel{input: ti}
}

func (m promptModel) Init() tea.Cmd { return textinput.Blink }

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.aborted {
		// Leave the entered line on screen after the program exits.
		return m.input.Prompt + m.input.Value() + "\n"
	}
	return m.input.View()
}

// ReadLine prompts for one line of input, offering the given suggestions.
func ReadLine(prompt string, suggestions []string) (string, error) {
	p := tea.NewProgram(newPromptModel(prompt, suggestions))
	res, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := res.(promptModel)
	if !ok || m.aborted {
		return "", ErrAborted
	}
	return strings.TrimSpace(m.input.Value()), nil
}
