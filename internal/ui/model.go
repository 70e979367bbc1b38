package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/tabdeck/internal/logging/events"
	"github.com/atomicstack/tabdeck/internal/tabs"
	"github.com/atomicstack/tabdeck/internal/theme"
	uistate "github.com/atomicstack/tabdeck/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// DefaultPollInterval bounds how long an iteration waits for input.
	DefaultPollInterval = 100 * time.Millisecond

	defaultWidth  = 80
	defaultHeight = 24
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Tabs         tabs.Set
	InitialTab   int
	PollInterval time.Duration
	Width        int
	Height       int
	ShowFooter   bool
	// FrameErr reports the first failed frame write, if any. It is consulted
	// once per poll tick.
	FrameErr func() error
}

// Model implements the Bubble Tea model for the dashboard.
type Model struct {
	tabs       tabs.Set
	sel        uistate.Selection
	keys       keyMap
	help       help.Model
	content    viewport.Model
	poll       time.Duration
	width      int
	height     int
	showFooter bool
	frameErr   func() error
	err        error

	iterations int
	renders    int

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the dashboard state.
func NewModel(opts Options) *Model {
	set := opts.Tabs
	if set.Len() == 0 {
		set = tabs.Default()
	}
	poll := opts.PollInterval
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	m := &Model{
		tabs:       set,
		sel:        uistate.NewSelection(opts.InitialTab, set.Len()),
		keys:       defaultKeyMap(),
		help:       newHelp(),
		poll:       poll,
		width:      defaultWidth,
		height:     defaultHeight,
		showFooter: opts.ShowFooter,
		frameErr:   opts.FrameErr,
	}
	if opts.Width > 0 {
		m.width = opts.Width
	}
	if opts.Height > 0 {
		m.height = opts.Height
	}
	m.content = viewport.New(0, 0)
	m.syncContent()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.pollCmd()
}

// Update responds to Bubble Tea messages. Once the loop has stopped no
// message changes the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.iterations++
	if m.stopped() {
		return m, nil
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(pollMsg{}):           m.handlePollMsg,
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
	input := m.keys.inputFor(keyMsg)
	before := m.sel
	m.sel = uistate.Apply(m.sel, m.tabs.Len(), input)
	switch {
	case input == uistate.InputQuit:
		events.Loop.Quit(m.iterations)
		return tea.Quit
	case input == uistate.InputIgnore:
		events.Tab.Ignore(keyMsg.String())
	case before.Current != m.sel.Current:
		events.Tab.Select(before.Current, m.sel.Current, m.tabs.Label(m.sel.Current))
		m.syncContent()
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if size.Width > 0 {
		m.width = size.Width
	}
	if size.Height > 0 {
		m.height = size.Height
	}
	events.Loop.Resize(m.width, m.height)
	m.syncContent()
	return nil
}

func (m *Model) stopped() bool {
	return !m.sel.Running || m.err != nil
}

// Current returns the active tab index.
func (m *Model) Current() int {
	return m.sel.Current
}

// Running reports whether the loop is still accepting input.
func (m *Model) Running() bool {
	return m.sel.Running
}

// Err returns the I/O failure that stopped the loop, if any.
func (m *Model) Err() error {
	return m.err
}

// Iterations returns the number of messages processed by Update.
func (m *Model) Iterations() int {
	return m.iterations
}

// Renders returns the number of frames produced by View.
func (m *Model) Renders() int {
	return m.renders
}

// Size returns the frame dimensions used for rendering.
func (m *Model) Size() (width, height int) {
	return m.width, m.height
}
