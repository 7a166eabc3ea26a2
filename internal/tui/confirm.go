package tui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel is a minimal y/N prompt. Enter accepts the default (yes),
// matching the plan-approval flow where approval is the expected path.
type confirmModel struct {
	question string
	answered bool
	approved bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y", "enter":
		m.answered = true
		m.approved = true
		return m, tea.Quit
	case "n", "N", "q", "esc", "ctrl+c":
		m.answered = true
		m.approved = false
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.answered {
		answer := "no"
		if m.approved {
			answer = "yes"
		}
		return fmt.Sprintf("%s %s\n", TitleStyle.Render(m.question), answer)
	}
	return fmt.Sprintf("%s %s ", TitleStyle.Render(m.question), DimStyle.Render("[Y/n]"))
}

// Confirm asks the user a yes/no question and returns their answer. It runs
// a bubbletea prompt when possible and falls back to a plain line read when
// no terminal is available (piped stdin, CI).
func Confirm(question string) (bool, error) {
	m, err := tea.NewProgram(confirmModel{question: question}).Run()
	if err != nil {
		return confirmPlain(question)
	}

	result, ok := m.(confirmModel)
	if !ok || !result.answered {
		return false, nil
	}
	return result.approved, nil
}

// confirmPlain reads a y/n answer from stdin without any terminal control.
// An empty answer counts as yes.
func confirmPlain(question string) (bool, error) {
	fmt.Printf("%s [Y/n] ", question)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
