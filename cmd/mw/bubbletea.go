package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julien-sobczak/the-moodwriter/internal/core"
)

/*
 * All Bubble Tea code is kept in this file.
 * Commands must still work without a terminal (flags only).
 */

var ErrAborted = errors.New("aborted")

var (
	// List-specific attributes
	listWidth             = 24
	listHeight            = 12
	listTitleStyle        = lipgloss.NewStyle().MarginLeft(2)
	listItemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	listSelectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))

	// Common attributes
	helpStyle     = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	quitTextStyle = lipgloss.NewStyle().Margin(1, 0, 1, 4)
)

/*
 * Mood Selection
 */

// ChooseMood asks the user to pick a mood on the scale.
func ChooseMood() (core.MoodLabel, error) {
	res, err := tea.NewProgram(NewMoodModel(core.MoodScale)).Run()
	if err != nil {
		return core.MoodLabel{}, err
	}
	model := res.(MoodModel)
	if model.choice == "" {
		return core.MoodLabel{}, ErrAborted
	}
	return core.ParseMoodLabel(model.choice)
}

func NewMoodModel(scale []core.MoodLabel) MoodModel {
	items := []list.Item{}

	// Best moods first
	for i := len(scale) - 1; i >= 0; i-- {
		items = append(items, MoodItem{
			label: scale[i].Emoji + " " + scale[i].Label,
			key:   scale[i].Label,
		})
	}

	l := list.New(items, moodDelegate{}, listWidth, listHeight)
	l.Title = "How do you feel?"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(false)
	l.Styles.Title = listTitleStyle
	l.Styles.HelpStyle = helpStyle

	return MoodModel{list: l}
}

type MoodItem struct {
	label string
	key   string
}

func (i MoodItem) FilterValue() string { return "" }

type moodDelegate struct{}

func (d moodDelegate) Height() int                             { return 1 }
func (d moodDelegate) Spacing() int                            { return 0 }
func (d moodDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d moodDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(MoodItem)
	if !ok {
		return
	}

	fn := listItemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return listSelectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(i.label))
}

type MoodModel struct {
	list     list.Model
	choice   string
	quitting bool
}

func (m MoodModel) Init() tea.Cmd {
	return nil
}

func (m MoodModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch keypress := msg.String(); keypress {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			i, ok := m.list.SelectedItem().(MoodItem)
			if ok {
				m.choice = i.key
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m MoodModel) View() string {
	if m.choice != "" {
		return quitTextStyle.Render(fmt.Sprintf("%s. Thanks for checking in.", m.choice))
	}
	if m.quitting {
		return ""
	}
	return "\n" + m.list.View()
}

/*
 * Editor Confirmation
 */

type editorModel struct {
	choice   string
	quitting bool
}

func initialEditorModel() editorModel {
	return editorModel{
		choice: "no",
	}
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y", "enter":
			m.choice = "yes"
			m.quitting = true
			return m, tea.Quit
		case "n", "N", "esc", "ctrl+c":
			m.choice = "no"
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m editorModel) View() string {
	if m.quitting {
		return ""
	}
	return "Open the journal in the editor? (y/n)\n"
}

// AskToOpenInEditor returns true when the user accepts to edit the journal file.
func AskToOpenInEditor() (bool, error) {
	m, err := tea.NewProgram(initialEditorModel()).Run()
	if err != nil {
		return false, err
	}
	if m, ok := m.(editorModel); ok {
		return m.choice == "yes", nil
	}
	return false, nil
}
