// Package tui implements the interactive review prompter for low-confidence
// suggestions, built on bubbletea.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cassis-finance/cassis/internal/cli"
	"github.com/cassis-finance/cassis/internal/model"
)

// Recorder receives the reviewer's decisions.
type Recorder interface {
	RecordCorrection(ctx context.Context, merchant, suggestedTag, actualTag string, accepted bool)
}

// Item is one suggestion queued for review.
type Item struct {
	Merchant string
	Label    string
	Amount   float64
	Result   model.Result
}

type state int

const (
	stateDeciding state = iota
	stateEditing
	stateDone
)

type keyMap struct {
	Accept   key.Binding
	Override key.Binding
	Skip     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Accept:   key.NewBinding(key.WithKeys("a", "y"), key.WithHelp("a", "accept")),
		Override: key.NewBinding(key.WithKeys("o", "e"), key.WithHelp("o", "override tag")),
		Skip:     key.NewBinding(key.WithKeys("s", "n"), key.WithHelp("s", "skip")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the bubbletea model for the review session.
type Model struct {
	recorder Recorder
	items    []Item
	index    int
	state    state
	input    textinput.Model
	keys     keyMap

	Accepted   int
	Overridden int
	Skipped    int
}

// NewModel builds a review session over the given items. Decisions are sent
// to the recorder as they are made.
func NewModel(items []Item, recorder Recorder) Model {
	input := textinput.New()
	input.Placeholder = "tag"
	input.CharLimit = 40

	return Model{
		recorder: recorder,
		items:    items,
		input:    input,
		keys:     defaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if len(m.items) == 0 {
		return tea.Quit
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.state == stateEditing {
		return m.updateEditing(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.state = stateDone
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Accept):
		item := m.current()
		if item.Result.SuggestedTag != "" {
			m.record(item, item.Result.SuggestedTag, true)
			m.Accepted++
		}
		return m.advance()

	case key.Matches(keyMsg, m.keys.Override):
		m.state = stateEditing
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(keyMsg, m.keys.Skip):
		m.Skipped++
		return m.advance()
	}

	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		tag := strings.TrimSpace(strings.ToLower(m.input.Value()))
		if tag == "" {
			return m, nil
		}
		item := m.current()
		m.record(item, tag, false)
		m.Overridden++
		m.state = stateDeciding
		m.input.Blur()
		return m.advance()

	case tea.KeyEsc:
		m.state = stateDeciding
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) record(item Item, actualTag string, accepted bool) {
	if m.recorder == nil {
		return
	}
	m.recorder.RecordCorrection(context.Background(), item.Merchant, item.Result.SuggestedTag, actualTag, accepted)
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	m.index++
	if m.index >= len(m.items) {
		m.state = stateDone
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) current() Item {
	return m.items[m.index]
}

// View implements tea.Model.
func (m Model) View() string {
	if m.state == stateDone || m.index >= len(m.items) {
		return cli.FormatSuccess(fmt.Sprintf("review complete: %d accepted, %d overridden, %d skipped\n",
			m.Accepted, m.Overridden, m.Skipped))
	}

	item := m.current()
	var b strings.Builder

	b.WriteString(cli.FormatTitle(fmt.Sprintf("Review %d/%d", m.index+1, len(m.items))) + "\n")
	b.WriteString(fmt.Sprintf("%s %s  %.2f\n", cli.BoldStyle.Render(item.Label), cli.SubtleStyle.Render("("+item.Merchant+")"), item.Amount))
	b.WriteString(cli.RenderResult(item.Result))

	if m.state == stateEditing {
		b.WriteString("\nnew tag: " + m.input.View() + "\n")
		b.WriteString(cli.SubtleStyle.Render("enter to confirm, esc to cancel") + "\n")
	} else {
		b.WriteString("\n" + cli.SubtleStyle.Render("[a]ccept  [o]verride  [s]kip  [q]uit") + "\n")
	}

	return b.String()
}

// Run starts the review session and returns the final model.
func Run(items []Item, recorder Recorder) (Model, error) {
	program := tea.NewProgram(NewModel(items, recorder))
	final, err := program.Run()
	if err != nil {
		return Model{}, fmt.Errorf("review session failed: %w", err)
	}
	return final.(Model), nil
}
