package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"mural/internal/catalog"
	"mural/internal/comments"
	"mural/internal/notify"
	"mural/internal/prefs"
	"mural/internal/session"
)

// Tab represents the current active tab.
type Tab int

const (
	TabPopular Tab = iota
	TabGallery
	TabProfile
)

// authMode tracks the state of the account dialog.
type authMode int

const (
	authClosed authMode = iota
	authLogin
	authRegister
)

// popularLimit caps how many wallpapers the popular tab shows.
const popularLimit = 6

// filterNames lists the togglable gallery filter tags, in display order.
var filterNames = []string{"popular", "new", "built-in", "user-uploaded"}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Sessions  *session.Store
	Catalog   *catalog.Store
	Comments  *comments.Thread
	Feed      *notify.Feed
	ThemeName string
	PrefsPath string
	Filters   []string
	PollTick  time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	sessions  *session.Store
	catalog   *catalog.Store
	comments  *comments.Thread
	feed      *notify.Feed
	prefsPath string
	pollTick  time.Duration

	// UI state
	theme      Theme
	keys       keyMap
	currentTab Tab
	width      int
	height     int
	ready      bool

	// List state
	cursor int

	// Detail state
	selectedID    int // 0 = no wallpaper open
	detailPane    int // 0 = actions, 1 = comments
	pendingRating int

	// Input state
	searchInput    textinput.Model
	searchFocused  bool
	commentInput   textinput.Model
	commentFocused bool

	// Account dialog state
	authMode     authMode
	authInputs   [3]textinput.Model // username, email, password
	authFocusIdx int

	// Upload dialog state
	showUpload     bool
	uploadInputs   [2]textinput.Model // title, image url
	uploadFocusIdx int

	// Gallery filter tags
	filters map[string]bool

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dark"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	feed := opts.Feed
	if feed == nil {
		feed = notify.NewFeed(0)
	}

	filters := make(map[string]bool, len(opts.Filters))
	for _, name := range opts.Filters {
		filters[name] = true
	}

	m := Model{
		ctx:        ctx,
		sessions:   opts.Sessions,
		catalog:    opts.Catalog,
		comments:   opts.Comments,
		feed:       feed,
		prefsPath:  prefsPath,
		pollTick:   pollTick,
		theme:      GetTheme(themeName),
		keys:       DefaultKeyMap(),
		currentTab: TabPopular,
		filters:    filters,
	}
	m.initInputs()
	return m
}

func (m *Model) initInputs() {
	search := textinput.New()
	search.Placeholder = "Search wallpapers..."
	search.CharLimit = 64
	search.Width = 32
	m.searchInput = search

	comment := textinput.New()
	comment.Placeholder = "Write a comment..."
	comment.CharLimit = 280
	comment.Width = 48
	m.commentInput = comment

	labels := []string{"Username", "Email", "Password"}
	for i := range m.authInputs {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.CharLimit = 64
		in.Width = 32
		m.authInputs[i] = in
	}
	m.authInputs[2].EchoMode = textinput.EchoPassword
	m.authInputs[2].EchoCharacter = '•'

	uploadLabels := []string{"Title", "Image URL"}
	for i := range m.uploadInputs {
		in := textinput.New()
		in.Placeholder = uploadLabels[i]
		in.CharLimit = 256
		in.Width = 48
		m.uploadInputs[i] = in
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	// Fetch the catalog immediately on start
	if m.catalog != nil {
		cmds = append(cmds, refreshCmd(m.ctx, m.catalog))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		// The tick drives notification expiry re-renders.
		return m, tickCmd(m.pollTick)

	case refreshMsg:
		if msg.err != nil {
			m.feed.Push("Refresh failed", msg.err.Error(), notify.Destructive)
		}
		m.clampCursor()
		return m, nil

	case authResultMsg:
		return m.handleAuthResult(msg)

	case logoutMsg:
		if msg.err != nil {
			m.feed.Push("Sign out failed", msg.err.Error(), notify.Destructive)
			return m, nil
		}
		m.feed.Push("Signed out", "See you next time", notify.Normal)
		return m, nil

	case rateResultMsg:
		return m.handleRateResult(msg)

	case commentResultMsg:
		return m.handleCommentResult(msg)

	case downloadResultMsg:
		if msg.err != nil {
			m.feed.Push("Download failed", msg.err.Error(), notify.Destructive)
			return m, nil
		}
		m.feed.Push("Download started", msg.url, notify.Normal)
		return m, refreshCmd(m.ctx, m.catalog)

	case uploadResultMsg:
		return m.handleUploadResult(msg)

	case viewCountMsg:
		// View counting is best effort; a failed increment changes nothing
		// the user acts on.
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}
	if m.authMode != authClosed {
		return m.renderAuthDialog()
	}
	if m.showUpload {
		return m.renderUploadDialog()
	}
	if m.selectedID != 0 {
		return m.renderDetail()
	}

	return m.renderMain()
}

// handleKey processes keyboard input. Overlays take precedence over
// tab-level keys so bindings never leak between surfaces.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.authMode != authClosed {
		return m.handleAuthKey(msg)
	}

	if m.showUpload {
		return m.handleUploadKey(msg)
	}

	if m.selectedID != 0 {
		return m.handleDetailKey(msg)
	}

	if m.searchFocused {
		return m.handleSearchKey(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.switchTab((m.currentTab + 1) % 3)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.switchTab((m.currentTab + 2) % 3)
		return m, nil

	case key.Matches(msg, m.keys.TabPopular):
		m.switchTab(TabPopular)
		return m, nil

	case key.Matches(msg, m.keys.TabGallery):
		m.switchTab(TabGallery)
		return m, nil

	case key.Matches(msg, m.keys.TabProfile):
		m.switchTab(TabProfile)
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, refreshCmd(m.ctx, m.catalog)

	case key.Matches(msg, m.keys.SignIn):
		m.openAuthDialog(authLogin)
		return m, nil

	case key.Matches(msg, m.keys.Register):
		m.openAuthDialog(authRegister)
		return m, nil

	case key.Matches(msg, m.keys.SignOut):
		if m.sessions.Current() == nil {
			m.feed.Push("Not signed in", "There is no session to close", notify.Normal)
			return m, nil
		}
		return m, logoutCmd(m.ctx, m.sessions)
	}

	// Tab-specific keys
	switch m.currentTab {
	case TabPopular, TabGallery:
		return m.handleListKey(msg)
	case TabProfile:
		return m.handleProfileKey(msg)
	}

	return m, nil
}

// switchTab changes the active tab and resets per-tab transient state.
func (m *Model) switchTab(tab Tab) {
	if m.currentTab == tab {
		return
	}
	m.currentTab = tab
	m.cursor = 0
	m.searchFocused = false
}

// openDetail selects a wallpaper and clears any rating left over from a
// previous selection.
func (m *Model) openDetail(id int) tea.Cmd {
	m.selectedID = id
	m.pendingRating = 0
	m.detailPane = 0
	m.commentFocused = false
	m.commentInput.Blur()
	return recordViewCmd(m.ctx, m.catalog, id)
}

// closeDetail deselects the current wallpaper. The pending rating never
// survives a deselection.
func (m *Model) closeDetail() {
	m.selectedID = 0
	m.pendingRating = 0
	m.commentFocused = false
	m.commentInput.Blur()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	var active []string
	for _, name := range filterNames {
		if m.filters[name] {
			active = append(active, name)
		}
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Filters: active})
}

func (m *Model) clampCursor() {
	visible := len(m.visibleWallpapers())
	if visible == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= visible {
		m.cursor = visible - 1
	}
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Confirm) || key.Matches(msg, m.keys.Escape) {
		m.searchFocused = false
		m.searchInput.Blur()
		m.clampCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.clampCursor()
	return m, cmd
}

func (m Model) handleAuthResult(msg authResultMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		title := "Sign in failed"
		if msg.register {
			title = "Registration failed"
		}
		m.feed.Push(title, msg.err.Error(), notify.Destructive)
		// The dialog stays open with the form intact so the user can
		// correct and resubmit.
		return m, nil
	}

	m.closeAuthDialog()
	if msg.register {
		m.feed.Push("Account created", "Welcome, "+msg.username, notify.Normal)
	} else {
		m.feed.Push("Signed in", "Welcome back, "+msg.username, notify.Normal)
	}
	return m, nil
}

func (m Model) handleRateResult(msg rateResultMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		m.feed.Push("Rating failed", msg.err.Error(), notify.Destructive)
		return m, nil
	}
	// Results can land after the user has moved on; only touch the
	// pending rating when the rated wallpaper is still selected.
	if m.selectedID == msg.id {
		m.pendingRating = 0
	}
	m.feed.Push("Rating saved", fmt.Sprintf("Your %s rating was recorded, now averaging %.2f", starLabel(msg.value), msg.avg), notify.Normal)
	return m, refreshCmd(m.ctx, m.catalog)
}

func (m Model) handleCommentResult(msg commentResultMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		// The draft stays in the input so nothing typed is lost.
		m.feed.Push("Comment failed", msg.err.Error(), notify.Destructive)
		return m, nil
	}
	if m.selectedID == msg.id {
		m.commentInput.Reset()
	}
	m.feed.Push("Comment added", "", notify.Normal)
	return m, nil
}

func (m Model) handleUploadResult(msg uploadResultMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		m.feed.Push("Upload failed", msg.err.Error(), notify.Destructive)
		return m, nil
	}
	m.showUpload = false
	for i := range m.uploadInputs {
		m.uploadInputs[i].Reset()
		m.uploadInputs[i].Blur()
	}
	m.feed.Push("Wallpaper uploaded", strings.TrimSpace(msg.title)+" is now in the gallery", notify.Normal)
	return m, refreshCmd(m.ctx, m.catalog)
}

func starLabel(value int) string {
	return strconv.Itoa(value) + "-star"
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
