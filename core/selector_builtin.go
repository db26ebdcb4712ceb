package core

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var selectorTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(lipgloss.Color("#1B2838")).
	Padding(0, 1)

type gameItem string

func (i gameItem) FilterValue() string { return string(i) }
func (i gameItem) Title() string       { return string(i) }
func (i gameItem) Description() string { return "" }

type selectorModel struct {
	list     list.Model
	choice   string
	quitting bool
}

func newSelectorModel(names []string) selectorModel {
	items := make([]list.Item, 0, len(names))
	for _, name := range names {
		items = append(items, gameItem(name))
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, 40, 20)
	l.Title = "Launch a game"
	l.Styles.Title = selectorTitleStyle
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return selectorModel{list: l}
}

func (m selectorModel) Init() tea.Cmd {
	return nil
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// keys belong to the filter input while it is open
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(gameItem); ok {
				m.choice = string(item)
			}
			m.quitting = true
			return m, tea.Quit
		case "ctrl+c", "q", "esc":
			if msg.String() == "esc" && m.list.FilterState() == list.FilterApplied {
				break
			}
			m.choice = ""
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectorModel) View() string {
	if m.quitting {
		return ""
	}
	return m.list.View()
}

// BuiltinSelector is a terminal UI fallback for when no external finder is available.
type BuiltinSelector struct {
	Input  io.Reader
	Output io.Writer
}

func (s *BuiltinSelector) Select(ctx context.Context, names []string) (string, error) {
	output := s.Output
	if output == nil {
		output = os.Stderr
	}

	options := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(output), tea.WithAltScreen()}
	if s.Input != nil {
		options = append(options, tea.WithInput(s.Input))
	}

	final, err := tea.NewProgram(newSelectorModel(names), options...).Run()
	if err != nil {
		return "", fmt.Errorf("built-in selector failed: %w", err)
	}

	model, ok := final.(selectorModel)
	if !ok {
		return "", nil
	}

	return model.choice, nil
}
