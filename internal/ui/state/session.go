package state

import "github.com/atomicstack/gitmoji-picker/internal/catalog"

const (
	// maxSuggestions caps the "did you mean" hints shown for an empty view.
	maxSuggestions = 3
	// startRow is where the highlight sits when a session opens unfiltered.
	startRow = 2
)

// Action is a normalised user intent produced by the input dispatcher.
type Action int

const (
	ActionNone Action = iota
	ActionTypeChar
	ActionDeleteChar
	ActionMoveUp
	ActionMoveDown
	ActionConfirm
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionTypeChar:
		return "type-char"
	case ActionDeleteChar:
		return "delete-char"
	case ActionMoveUp:
		return "move-up"
	case ActionMoveDown:
		return "move-down"
	case ActionConfirm:
		return "confirm"
	case ActionCancel:
		return "cancel"
	default:
		return "none"
	}
}

// Event is one step of input. Rune is only meaningful for ActionTypeChar.
type Event struct {
	Action Action
	Rune   rune
}

// OutcomeKind says how a step ended.
type OutcomeKind int

const (
	OutcomeContinue OutcomeKind = iota
	OutcomeConfirmed
	OutcomeRejected
	OutcomeCancelled
)

// Outcome reports the result of a step. Index is the confirmed catalog index
// and is only set for OutcomeConfirmed.
type Outcome struct {
	Kind    OutcomeKind
	Index   int
	Changed bool
}

// Session is the complete picker state. It is a value: Step returns the next
// state and leaves the receiver alone.
type Session struct {
	Filter Filter
	Nav    Navigator
}

// NewSession builds a session over c. An unfiltered session opens with the
// highlight on the third row; an initial query opens reconciled at the top.
func NewSession(c *catalog.Catalog, window int, query string) Session {
	s := Session{
		Filter: NewFilter(c),
		Nav:    NewNavigator(window),
	}
	if query == "" {
		s.Nav.Place(s.Filter.Len(), startRow)
		return s
	}
	s.Filter.SetQuery(query)
	s.Nav.Reconcile(s.Filter.Len())
	return s
}

// Step applies ev and returns the resulting session. A filter change is always
// followed by a reconcile pass within the same step.
func (s Session) Step(ev Event) (Session, Outcome) {
	n := s.Filter.Len()
	switch ev.Action {
	case ActionTypeChar:
		s.Filter.AppendChar(ev.Rune)
		s.Nav.Reconcile(s.Filter.Len())
		return s, Outcome{Kind: OutcomeContinue, Changed: true}
	case ActionDeleteChar:
		if s.Filter.Query() == "" {
			return s, Outcome{Kind: OutcomeContinue}
		}
		s.Filter.DeleteLastChar()
		s.Nav.Reconcile(s.Filter.Len())
		return s, Outcome{Kind: OutcomeContinue, Changed: true}
	case ActionMoveUp:
		changed := s.Nav.MoveUp(n)
		return s, Outcome{Kind: OutcomeContinue, Changed: changed}
	case ActionMoveDown:
		changed := s.Nav.MoveDown(n)
		return s, Outcome{Kind: OutcomeContinue, Changed: changed}
	case ActionConfirm:
		idx, ok := s.Selected()
		if !ok {
			return s, Outcome{Kind: OutcomeRejected}
		}
		return s, Outcome{Kind: OutcomeConfirmed, Index: idx}
	case ActionCancel:
		return s, Outcome{Kind: OutcomeCancelled}
	}
	return s, Outcome{Kind: OutcomeContinue}
}

// Selected returns the catalog index under the highlight.
func (s Session) Selected() (int, bool) {
	pos, ok := s.Nav.CurrentIndex(s.Filter.Len())
	if !ok {
		return 0, false
	}
	return s.Filter.view[pos], true
}

// Frame is everything a renderer needs to paint the picker.
type Frame struct {
	Query       string
	Items       []string
	Highlight   int
	Offset      int
	Total       int
	Suggestions []string
}

// Frame snapshots the visible window.
func (s Session) Frame() Frame {
	n := s.Filter.Len()
	start, end := s.Nav.Visible(n)
	c := s.Filter.Catalog()
	items := make([]string, 0, end-start)
	for _, idx := range s.Filter.view[start:end] {
		items = append(items, c.At(idx).Display())
	}
	frame := Frame{
		Query:     s.Filter.Query(),
		Items:     items,
		Highlight: s.Nav.Cursor(),
		Offset:    s.Nav.Offset(),
		Total:     n,
	}
	if n == 0 && frame.Query != "" {
		for _, idx := range c.Suggest(frame.Query, maxSuggestions) {
			frame.Suggestions = append(frame.Suggestions, c.At(idx).Display())
		}
	}
	return frame
}
