package scaffold

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptModel is a minimal bubbletea program asking for a project name,
// used by `muxed new` when invoked with no positional argument. Narrowed
// from the teacher's much larger pkg/manager/tui_bubble.go session picker
// down to the single textinput.Model it actually needs here.
type promptModel struct {
	input textinput.Model
	done  bool
	value string
}

func newPromptModel() promptModel {
	ti := textinput.New()
	ti.Prompt = "project name> "
	ti.CharLimit = 128
	ti.Width = 40
	ti.Focus()
	return promptModel{input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch k := msg.(type) {
	case tea.KeyMsg:
		switch k.Type {
		case tea.KeyEnter:
			m.value = m.input.Value()
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done {
		return ""
	}
	return m.input.View() + "\n"
}

// PromptProjectName runs an interactive textinput prompt and returns the
// entered name. Returns an empty string if the user cancels.
func PromptProjectName() (string, error) {
	program := tea.NewProgram(newPromptModel())
	result, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("scaffold prompt: %w", err)
	}
	final, ok := result.(promptModel)
	if !ok {
		return "", nil
	}
	return final.value, nil
}
