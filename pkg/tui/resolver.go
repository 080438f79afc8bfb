// Package tui implements an interactive terminal sam.Resolver: a
// bubbletea/bubbles list picker for StaticChoices and DynamicShell
// variables and for alias selection, and a textinput prompt for
// PromptInput variables.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mattsolo1/sam/pkg/sam"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	promptStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Resolver is a sam.Resolver backed by an interactive terminal.
type Resolver struct{}

// New builds an interactive terminal Resolver.
func New() *Resolver {
	return &Resolver{}
}

// ResolveInput prompts for free-form input with a textinput.Model.
func (r *Resolver) ResolveInput(id sam.Identifier, prompt string) (sam.Choice, error) {
	m := newPromptModel(prompt)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return sam.Choice{}, fmt.Errorf("sam/tui: running input prompt for %s: %w", id, err)
	}
	pm := final.(promptModel)
	if pm.aborted {
		return sam.Choice{}, &sam.NoInputError{ID: id, Reason: "cancelled"}
	}
	value := strings.TrimSpace(pm.input.Value())
	if value == "" {
		return sam.Choice{}, &sam.NoInputError{ID: id, Reason: "empty input"}
	}
	return sam.NewChoice(value), nil
}

// ResolveDynamic runs cmd, parses its stdout as a choice stream, and offers
// the result through the same picker as ResolveStatic.
func (r *Resolver) ResolveDynamic(id sam.Identifier, cmd sam.ShellCommand) (sam.Choice, error) {
	out, err := cmd.Cmd(context.Background()).Output()
	if err != nil {
		return sam.Choice{}, &sam.DynamicFailedError{ID: id, Cause: err}
	}
	choices, err := sam.ParseChoiceStream(strings.NewReader(string(out)))
	if err != nil {
		return sam.Choice{}, &sam.DynamicFailedError{ID: id, Cause: err}
	}
	if len(choices) == 0 {
		return sam.Choice{}, &sam.DynamicEmptyError{ID: id, Stdout: string(out)}
	}
	return r.ResolveStatic(id, choices)
}

// ResolveStatic presents choices in a filterable list.Model picker.
func (r *Resolver) ResolveStatic(id sam.Identifier, choices []sam.Choice) (sam.Choice, error) {
	if len(choices) == 0 {
		return sam.Choice{}, &sam.NoChoiceAvailableError{ID: id}
	}
	m := newPickerModel(id.String(), choices)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return sam.Choice{}, fmt.Errorf("sam/tui: running choice picker for %s: %w", id, err)
	}
	pm := final.(pickerModel)
	if pm.aborted {
		return sam.Choice{}, &sam.NoChoiceSelectedError{ID: id}
	}
	item, ok := pm.list.SelectedItem().(choiceItem)
	if !ok {
		return sam.Choice{}, &sam.NoChoiceSelectedError{ID: id}
	}
	return item.choice, nil
}

// SelectIdentifier presents candidate aliases in the same picker, using
// their descriptions as list subtitles.
func (r *Resolver) SelectIdentifier(identifiers []sam.Identifier, descriptions []string, prompt string) (sam.Identifier, error) {
	if len(identifiers) == 0 {
		return sam.Identifier{}, &sam.SelectionEmptyError{}
	}
	items := make([]list.Item, len(identifiers))
	for i, id := range identifiers {
		desc := ""
		if i < len(descriptions) {
			desc = descriptions[i]
		}
		items[i] = identifierItem{id: id, desc: desc}
	}
	m := newListModel(prompt, items)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return sam.Identifier{}, &sam.SelectionInvalidError{Cause: err}
	}
	pm := final.(pickerModel)
	if pm.aborted {
		return sam.Identifier{}, &sam.SelectionInvalidError{Cause: fmt.Errorf("selection cancelled")}
	}
	item, ok := pm.list.SelectedItem().(identifierItem)
	if !ok {
		return sam.Identifier{}, &sam.SelectionInvalidError{Cause: fmt.Errorf("no item selected")}
	}
	return item.id, nil
}

// choiceItem adapts a sam.Choice to list.Item.
type choiceItem struct {
	choice sam.Choice
}

func (i choiceItem) Title() string { return i.choice.Value }
func (i choiceItem) Description() string {
	if i.choice.HasDesc {
		return i.choice.Description
	}
	return ""
}
func (i choiceItem) FilterValue() string { return i.choice.Value }

// identifierItem adapts a sam.Identifier to list.Item.
type identifierItem struct {
	id   sam.Identifier
	desc string
}

func (i identifierItem) Title() string       { return i.id.String() }
func (i identifierItem) Description() string { return i.desc }
func (i identifierItem) FilterValue() string { return i.id.String() }

type pickerModel struct {
	title   string
	list    list.Model
	aborted bool
}

func newPickerModel(title string, choices []sam.Choice) pickerModel {
	items := make([]list.Item, len(choices))
	for i, c := range choices {
		items[i] = choiceItem{choice: c}
	}
	return newListModel(title, items)
}

func newListModel(title string, items []list.Item) pickerModel {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(lipgloss.Color("6"))
	l := list.New(items, delegate, 0, 0)
	l.Title = title
	l.Styles.Title = titleStyle
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	return pickerModel{title: title, list: l}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return m.list.View()
}

type promptModel struct {
	prompt  string
	input   textinput.Model
	aborted bool
}

func newPromptModel(prompt string) promptModel {
	ti := textinput.New()
	ti.Placeholder = prompt
	ti.Focus()
	ti.Cursor.Style = cursorStyle
	return promptModel{prompt: prompt, input: ti}
}

func (m promptModel) Init() tea.Cmd { return textinput.Blink }

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	return promptStyle.Render(m.prompt) + "\n" + m.input.View() + "\n" + faintStyle.Render("enter to confirm, esc to cancel")
}
