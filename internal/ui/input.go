package ui

import (
	"unicode"

	"github.com/atomicstack/gitmoji-picker/internal/logging/events"
	"github.com/atomicstack/gitmoji-picker/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const rejectNotice = "nothing matches, edit the filter before confirming"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Delete  key.Binding
	Cancel  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/ctrl+p", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/ctrl+n", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("backspace", "delete"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Confirm, k.Delete, k.Cancel}}
}

// dispatch translates a key press into picker events. Pasted text and
// multi-rune presses become one event per rune; anything unbound is dropped.
func (k keyMap) dispatch(msg tea.KeyMsg) []state.Event {
	switch {
	case key.Matches(msg, k.Cancel):
		return []state.Event{{Action: state.ActionCancel}}
	case key.Matches(msg, k.Confirm):
		return []state.Event{{Action: state.ActionConfirm}}
	case key.Matches(msg, k.Up):
		return []state.Event{{Action: state.ActionMoveUp}}
	case key.Matches(msg, k.Down):
		return []state.Event{{Action: state.ActionMoveDown}}
	case key.Matches(msg, k.Delete):
		return []state.Event{{Action: state.ActionDeleteChar}}
	}
	switch msg.Type {
	case tea.KeySpace:
		return []state.Event{{Action: state.ActionTypeChar, Rune: ' '}}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		out := make([]state.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				continue
			}
			out = append(out, state.Event{Action: state.ActionTypeChar, Rune: r})
		}
		return out
	}
	return nil
}

func (m *Model) handlePickKey(msg tea.KeyMsg) tea.Cmd {
	for _, ev := range m.keys.dispatch(msg) {
		if cmd, done := m.apply(ev); done {
			return cmd
		}
	}
	return nil
}

// apply feeds one event through the session. done reports that the picker
// stage has ended and the remaining events of the key press must be dropped.
func (m *Model) apply(ev state.Event) (cmd tea.Cmd, done bool) {
	next, out := m.session.Step(ev)
	m.session = next
	switch out.Kind {
	case state.OutcomeCancelled:
		m.stage = StageCancelled
		events.App.Cancelled("pick")
		return tea.Quit, true
	case state.OutcomeRejected:
		m.notice = rejectNotice
		events.UI.Reject(m.session.Filter.Query())
		return nil, false
	case state.OutcomeConfirmed:
		m.notice = ""
		return m.startTitle(out.Index), true
	}
	if !out.Changed {
		return nil, false
	}
	m.notice = ""
	query := m.session.Filter.Query()
	switch ev.Action {
	case state.ActionTypeChar:
		events.Filter.Append(query, m.session.Filter.Len())
	case state.ActionDeleteChar:
		events.Filter.Backspace(query, m.session.Filter.Len())
	case state.ActionMoveUp, state.ActionMoveDown:
		events.UI.Cursor(m.session.Nav.Offset(), m.session.Nav.Cursor())
	}
	return nil, false
}
