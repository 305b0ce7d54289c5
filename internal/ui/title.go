package ui

import (
	"strings"

	"github.com/atomicstack/gitmoji-picker/internal/logging/events"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const titlePlaceholder = "short summary of the change"

func newTitleInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = titlePlaceholder
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.Title != nil {
		ti.TextStyle = *styles.Title
	}
	if styles.Info != nil {
		ti.PlaceholderStyle = *styles.Info
	}
	return ti
}

func (m *Model) startTitle(index int) tea.Cmd {
	item := m.catalog.At(index)
	m.chosen = &Result{Index: index, Item: item, Glyph: item.Glyph()}
	m.stage = StageTitle
	events.UI.Confirm(index, item.Display())
	return m.title.Focus()
}

// handleTitleKey drives the commit title prompt. Esc discards the typed title
// and returns to the picker with the filter and highlight intact; Ctrl+C
// abandons the whole session.
func (m *Model) handleTitleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.title.Blur()
		m.chosen = nil
		m.stage = StageCancelled
		events.App.Cancelled("title")
		return tea.Quit
	case tea.KeyEsc:
		m.title.Blur()
		m.title.Reset()
		if m.chosen != nil {
			events.UI.Back(m.chosen.Glyph)
		}
		m.chosen = nil
		m.stage = StagePick
		return nil
	case tea.KeyEnter:
		if m.chosen == nil {
			return nil
		}
		m.title.Blur()
		m.chosen.Title = strings.TrimSpace(m.title.Value())
		m.stage = StageDone
		events.UI.Title(m.chosen.Glyph, m.chosen.Title)
		return tea.Quit
	}
	var cmd tea.Cmd
	m.title, cmd = m.title.Update(msg)
	return cmd
}
