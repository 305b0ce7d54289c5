package ui

import (
	"reflect"

	"github.com/atomicstack/gitmoji-picker/internal/catalog"
	"github.com/atomicstack/gitmoji-picker/internal/theme"
	"github.com/atomicstack/gitmoji-picker/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Stage is the phase of a picking session.
type Stage int

const (
	StagePick Stage = iota
	StageTitle
	StageDone
	StageCancelled
)

const defaultWindowSize = 6

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a new Model.
type Options struct {
	WindowSize int
	Query      string
	Width      int
	// InitialWidth is used until the first resize when Width is unset.
	InitialWidth int
	ShowFooter   bool
	// Renderer paints the picker; nil selects the default list renderer.
	Renderer Renderer
}

// Result is what a completed session hands back to its caller.
type Result struct {
	Index int
	Item  catalog.Item
	Glyph string
	Title string
}

// Model implements the Bubble Tea model for the gitmoji picker.
type Model struct {
	catalog    *catalog.Catalog
	session    state.Session
	stage      Stage
	keys       keyMap
	renderer   Renderer
	caret      cursor.Model
	title      textinput.Model
	help       help.Model
	chosen     *Result
	notice     string
	width      int
	fixedWidth bool
	showFooter bool

	handlers map[reflect.Type]msgHandler
}

// NewModel starts a picking session over c.
func NewModel(c *catalog.Catalog, opts Options) *Model {
	window := opts.WindowSize
	if window < 1 {
		window = defaultWindowSize
	}
	m := &Model{
		catalog:    c,
		session:    state.NewSession(c, window, opts.Query),
		stage:      StagePick,
		keys:       defaultKeyMap(),
		renderer:   opts.Renderer,
		caret:      newCaret(),
		title:      newTitleInput(),
		help:       help.New(),
		showFooter: opts.ShowFooter,
	}
	if m.renderer == nil {
		m.renderer = newListRenderer(styles)
	}
	switch {
	case opts.Width > 0:
		m.fixedWidth = true
		m.setWidth(opts.Width)
	case opts.InitialWidth > 0:
		m.setWidth(opts.InitialWidth)
	}
	m.registerHandlers()
	return m
}

func newCaret() cursor.Model {
	c := cursor.New()
	c.SetMode(cursor.CursorStatic)
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	c.SetChar(" ")
	c.Focus()
	return c
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	if m.stage == StageTitle {
		var cmd tea.Cmd
		m.title, cmd = m.title.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.stage {
	case StagePick:
		return m.handlePickKey(keyMsg)
	case StageTitle:
		return m.handleTitleKey(keyMsg)
	default:
		return nil
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.setWidth(resize.Width)
	}
	return nil
}

func (m *Model) setWidth(width int) {
	m.width = width
	m.help.Width = width
	if sized, ok := m.renderer.(interface{ SetWidth(int) }); ok {
		sized.SetWidth(width)
	}
}

// Stage reports the current phase.
func (m *Model) Stage() Stage {
	return m.stage
}

// Session exposes the picker state.
func (m *Model) Session() state.Session {
	return m.session
}

// Result returns the confirmed pick and title once the session has finished.
func (m *Model) Result() (Result, bool) {
	if m.stage != StageDone || m.chosen == nil {
		return Result{}, false
	}
	return *m.chosen, true
}
