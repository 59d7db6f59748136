package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/slack-tui/internal/backend"
	"github.com/atomicstack/slack-tui/internal/chat"
	"github.com/atomicstack/slack-tui/internal/data/dispatcher"
	"github.com/atomicstack/slack-tui/internal/pane"
	"github.com/atomicstack/slack-tui/internal/state"
	"github.com/atomicstack/slack-tui/internal/theme"
	"github.com/atomicstack/slack-tui/internal/ui/command"
	uistate "github.com/atomicstack/slack-tui/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// TickInterval is the redraw cadence when no input arrives.
const TickInterval = 200 * time.Millisecond

const (
	channelListID = "channels"
	userListID    = "users"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Provider       chat.Provider
	Watcher        *backend.Watcher
	Width          int
	Height         int
	ShowFooter     bool
	InitialChannel string
	RequestTimeout time.Duration
}

// Model is the application-state aggregate owned by the dispatch loop.
type Model struct {
	focus    *uistate.Focus
	channels *uistate.List[chat.Channel]
	users    *uistate.List[chat.User]
	input    *uistate.Input

	conversation chat.Conversation
	messages     []chat.Message

	loading      bool
	sending      bool
	pendingID    string
	pendingLabel string
	errMsg       string

	initialChannel string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	ticks       int

	backend        *backend.Watcher
	backendState   map[backend.Kind]error
	backendLastErr string

	provider   chat.Provider
	bus        *command.Bus
	directory  state.DirectoryStore
	dispatcher *dispatcher.Dispatcher

	keys     KeyMap
	help     help.Model
	caret    cursor.Model
	tick     func() tea.Cmd
	quitting bool
	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state: Channels hovered, nothing active, empty
// lists until the first backend event arrives.
func NewModel(opts Options) *Model {
	directory := state.NewDirectoryStore()
	m := &Model{
		focus:          uistate.NewFocus(),
		channels:       uistate.NewList[chat.Channel](channelListID, nil),
		users:          uistate.NewList[chat.User](userListID, nil),
		input:          uistate.NewInput(),
		initialChannel: opts.InitialChannel,
		showFooter:     opts.ShowFooter,
		backend:        opts.Watcher,
		backendState:   map[backend.Kind]error{},
		provider:       opts.Provider,
		bus:            command.New(opts.RequestTimeout),
		directory:      directory,
		dispatcher:     dispatcher.New(directory),
		keys:           DefaultKeyMap(),
		help:           help.New(),
		tick:           tickCmd,
	}
	m.focus.Bind(pane.Channels, m.channels)
	m.focus.Bind(pane.Users, m.users)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Input != nil {
		c.TextStyle = styles.Input.Copy()
	}
	c.SetMode(cursor.CursorStatic)
	c.Focus()
	c.SetChar(" ")
	m.caret = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.tick(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update routes each message to its typed handler. Every message, including
// ticks, is followed by a redraw by the Bubble Tea runtime.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(messagesLoadedMsg{}): m.handleMessagesLoadedMsg,
		reflect.TypeOf(messageSentMsg{}):    m.handleMessageSentMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
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

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// handleTickMsg changes no UI state; it only re-arms the timer so the view is
// redrawn at least every TickInterval.
func (m *Model) handleTickMsg(tea.Msg) tea.Cmd {
	m.ticks++
	return m.tick()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	return nil
}

// Focus exposes the focus controller for rendering and tests.
func (m *Model) Focus() *uistate.Focus { return m.focus }

// Channels exposes the channel list controller.
func (m *Model) Channels() *uistate.List[chat.Channel] { return m.channels }

// Users exposes the user list controller.
func (m *Model) Users() *uistate.List[chat.User] { return m.users }

// Input exposes the text input editor.
func (m *Model) Input() *uistate.Input { return m.input }

// Conversation returns the conversation currently displayed.
func (m *Model) Conversation() chat.Conversation { return m.conversation }

// Messages returns a copy of the displayed message list, oldest first.
func (m *Model) Messages() []chat.Message {
	out := make([]chat.Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// Err returns the message shown in the status line, if any.
func (m *Model) Err() string { return m.errMsg }

// Quitting reports whether a quit key has been handled.
func (m *Model) Quitting() bool { return m.quitting }
