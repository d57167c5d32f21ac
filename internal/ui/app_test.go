package ui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"mural/internal/api"
	"mural/internal/catalog"
	"mural/internal/comments"
	"mural/internal/notify"
	"mural/internal/session"
)

// fakeService records calls so tests can assert which remote actions ran.
type fakeService struct {
	wallpapers []api.Wallpaper
	fetchErr   error
	authErr    error

	commentCalls  int
	rateCalls     int
	downloadCalls int
	viewCalls     int
}

func (f *fakeService) FetchWallpapers(context.Context) ([]api.Wallpaper, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.wallpapers, nil
}

func (f *fakeService) Login(_ context.Context, username, _ string) (*api.AuthResult, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	return &api.AuthResult{Token: "tok", User: api.User{ID: 7, Username: username}}, nil
}

func (f *fakeService) Register(_ context.Context, username, email, _ string) (*api.AuthResult, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	return &api.AuthResult{Token: "tok", User: api.User{ID: 8, Username: username, Email: email}}, nil
}

func (f *fakeService) Rate(_ context.Context, _, _, _ int) (float64, error) {
	f.rateCalls++
	return 4.0, nil
}

func (f *fakeService) Comment(_ context.Context, _, _ int, _, _ string) (*api.CommentReceipt, error) {
	f.commentCalls++
	return &api.CommentReceipt{ID: 1}, nil
}

func (f *fakeService) Download(context.Context, int) error {
	f.downloadCalls++
	return nil
}

func (f *fakeService) Upload(_ context.Context, _, _, _ string) (int, error) {
	return 99, nil
}

func (f *fakeService) RecordView(context.Context, int) error {
	f.viewCalls++
	return nil
}

func newTestModel(t *testing.T, svc *fakeService) Model {
	t.Helper()

	db, err := session.Open(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("open session db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	m := New(Options{
		Context:  context.Background(),
		Sessions: session.NewStore(svc, session.NewKV(db)),
		Catalog:  catalog.NewStore(svc, svc.wallpapers),
		Comments: comments.NewThread(svc),
		Feed:     notify.NewFeed(0),
	})
	m.ready = true
	m.width = 120
	m.height = 40
	m.prefsPath = filepath.Join(t.TempDir(), "prefs.toml")
	return m
}

func testWallpapers() []api.Wallpaper {
	return []api.Wallpaper{
		{ID: 1, Title: "Cosmic Nebula", Author: "TheMe", Rating: 4.8},
		{ID: 2, Title: "Mountain Lake", Author: "User123", Rating: 4.2},
	}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyPress(k))
		m = next.(Model)
	}
	return m, cmd
}

func TestPendingRatingClearedOnDeselect(t *testing.T) {
	svc := &fakeService{wallpapers: testWallpapers()}
	m := newTestModel(t, svc)

	m, _ = press(t, m, "enter", "4")
	if m.selectedID != 1 {
		t.Fatalf("selectedID = %d, want 1", m.selectedID)
	}
	if m.pendingRating != 4 {
		t.Fatalf("pendingRating = %d, want 4", m.pendingRating)
	}

	m, _ = press(t, m, "esc")
	if m.selectedID != 0 || m.pendingRating != 0 {
		t.Fatalf("after close: selectedID=%d pendingRating=%d, want 0/0", m.selectedID, m.pendingRating)
	}

	// A new selection must not inherit the old in-progress rating.
	m, _ = press(t, m, "j", "enter")
	if m.selectedID != 2 {
		t.Fatalf("selectedID = %d, want 2", m.selectedID)
	}
	if m.pendingRating != 0 {
		t.Fatalf("pendingRating leaked across selections: %d", m.pendingRating)
	}
}

func TestRatingRequiresSession(t *testing.T) {
	svc := &fakeService{wallpapers: testWallpapers()}
	m := newTestModel(t, svc)

	m, cmd := press(t, m, "enter", "5", "enter")
	if cmd != nil {
		t.Fatalf("unauthenticated rating produced a command")
	}
	if svc.rateCalls != 0 {
		t.Fatalf("rateCalls = %d, want 0", svc.rateCalls)
	}
	if !hasNotification(m, "Sign in to rate") {
		t.Fatalf("expected sign-in notification, got %v", m.feed.Active())
	}
	if m.pendingRating != 5 {
		t.Fatalf("pendingRating = %d, want 5 kept for retry", m.pendingRating)
	}
}

func TestUnauthenticatedCommentShortCircuits(t *testing.T) {
	svc := &fakeService{wallpapers: testWallpapers()}
	m := newTestModel(t, svc)

	m, _ = press(t, m, "enter", "c")
	if !m.commentFocused {
		t.Fatalf("comment input not focused")
	}

	m, cmd := press(t, m, "n", "i", "c", "e", "enter")
	if cmd == nil {
		t.Fatalf("expected a comment command")
	}

	msg, ok := cmd().(commentResultMsg)
	if !ok {
		t.Fatalf("command returned %T, want commentResultMsg", cmd())
	}
	if !errors.Is(msg.err, session.ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", msg.err)
	}
	if svc.commentCalls != 0 {
		t.Fatalf("commentCalls = %d, want 0", svc.commentCalls)
	}

	next, _ := m.Update(msg)
	m = next.(Model)
	if !hasNotification(m, "Comment failed") {
		t.Fatalf("expected failure notification, got %v", m.feed.Active())
	}
	if m.commentInput.Value() != "nice" {
		t.Fatalf("draft = %q, want preserved %q", m.commentInput.Value(), "nice")
	}
}

func TestCommentDraftClearedOnSuccess(t *testing.T) {
	svc := &fakeService{wallpapers: testWallpapers()}
	m := newTestModel(t, svc)

	m, _ = press(t, m, "enter", "c", "w", "o", "w")
	next, _ := m.Update(commentResultMsg{id: 1})
	m = next.(Model)
	if m.commentInput.Value() != "" {
		t.Fatalf("draft = %q, want cleared", m.commentInput.Value())
	}
	if !hasNotification(m, "Comment added") {
		t.Fatalf("expected success notification, got %v", m.feed.Active())
	}
}

func TestRateResultOnlyClearsMatchingSelection(t *testing.T) {
	svc := &fakeService{wallpapers: testWallpapers()}
	m := newTestModel(t, svc)

	m, _ = press(t, m, "j", "enter", "3")
	if m.selectedID != 2 || m.pendingRating != 3 {
		t.Fatalf("setup: selectedID=%d pendingRating=%d", m.selectedID, m.pendingRating)
	}

	// A stale result for another wallpaper leaves the current pick alone.
	next, _ := m.Update(rateResultMsg{id: 1, value: 5, avg: 4.1})
	m = next.(Model)
	if m.pendingRating != 3 {
		t.Fatalf("pendingRating = %d, want 3", m.pendingRating)
	}

	next, _ = m.Update(rateResultMsg{id: 2, value: 3, avg: 4.0})
	m = next.(Model)
	if m.pendingRating != 0 {
		t.Fatalf("pendingRating = %d, want 0 after matching result", m.pendingRating)
	}
}

func TestAuthDialogFlow(t *testing.T) {
	svc := &fakeService{wallpapers: testWallpapers()}
	m := newTestModel(t, svc)

	m, _ = press(t, m, "i")
	if m.authMode != authLogin {
		t.Fatalf("authMode = %d, want login", m.authMode)
	}

	// Submitting an empty form is rejected locally.
	m, cmd := press(t, m, "enter")
	if cmd != nil {
		t.Fatalf("empty form produced a command")
	}
	if !hasNotification(m, "Missing fields") {
		t.Fatalf("expected validation notification")
	}

	m, _ = press(t, m, "b", "o", "b", "tab", "p", "w")
	m, cmd = press(t, m, "enter")
	if cmd == nil {
		t.Fatalf("expected a login command")
	}

	msg, ok := cmd().(authResultMsg)
	if !ok {
		t.Fatalf("command returned %T, want authResultMsg", cmd())
	}
	if msg.err != nil {
		t.Fatalf("login err = %v", msg.err)
	}

	next, _ := m.Update(msg)
	m = next.(Model)
	if m.authMode != authClosed {
		t.Fatalf("dialog still open after successful sign in")
	}
	if sess := m.sessions.Current(); sess == nil || sess.User.Username != "bob" {
		t.Fatalf("session not established: %+v", sess)
	}
	if !hasNotification(m, "Signed in") {
		t.Fatalf("expected welcome notification")
	}
}

func TestAuthFailureKeepsDialogAndForm(t *testing.T) {
	svc := &fakeService{wallpapers: testWallpapers(), authErr: errors.New("Invalid credentials")}
	m := newTestModel(t, svc)

	m, _ = press(t, m, "i", "b", "o", "b", "tab", "p", "w")
	m, cmd := press(t, m, "enter")
	msg := cmd().(authResultMsg)
	if msg.err == nil {
		t.Fatalf("expected login failure")
	}

	next, _ := m.Update(msg)
	m = next.(Model)
	if m.authMode != authLogin {
		t.Fatalf("dialog closed on failure")
	}
	if m.authInputs[0].Value() != "bob" {
		t.Fatalf("username field = %q, want preserved", m.authInputs[0].Value())
	}
	if !hasNotification(m, "Sign in failed") {
		t.Fatalf("expected failure notification")
	}
}

func TestGallerySearchNarrowsList(t *testing.T) {
	svc := &fakeService{wallpapers: testWallpapers()}
	m := newTestModel(t, svc)

	m, _ = press(t, m, "g", "/")
	if !m.searchFocused {
		t.Fatalf("search not focused")
	}

	m, _ = press(t, m, "l", "a", "k", "e", "enter")
	visible := m.visibleWallpapers()
	if len(visible) != 1 || visible[0].ID != 2 {
		t.Fatalf("visible = %v, want only Mountain Lake", visible)
	}
}

func TestTabSwitchResetsCursor(t *testing.T) {
	svc := &fakeService{wallpapers: testWallpapers()}
	m := newTestModel(t, svc)

	m, _ = press(t, m, "j")
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}

	m, _ = press(t, m, "g")
	if m.currentTab != TabGallery || m.cursor != 0 {
		t.Fatalf("tab=%d cursor=%d, want gallery/0", m.currentTab, m.cursor)
	}
}

func TestOpenDetailRecordsView(t *testing.T) {
	svc := &fakeService{wallpapers: testWallpapers()}
	m := newTestModel(t, svc)

	_, cmd := press(t, m, "enter")
	if cmd == nil {
		t.Fatalf("expected a view-count command")
	}
	if _, ok := cmd().(viewCountMsg); !ok {
		t.Fatalf("command returned wrong message type")
	}
	if svc.viewCalls != 1 {
		t.Fatalf("viewCalls = %d, want 1", svc.viewCalls)
	}
}

func TestRefreshMalformedPayloadIsSilent(t *testing.T) {
	svc := &fakeService{
		wallpapers: testWallpapers(),
		fetchErr:   &api.MalformedResponseError{Err: errors.New("invalid character 'n'")},
	}
	m := newTestModel(t, svc)

	m, cmd := press(t, m, "r")
	if cmd == nil {
		t.Fatalf("expected a refresh command")
	}

	next, _ := m.Update(cmd())
	m = next.(Model)
	if got := m.feed.Active(); len(got) != 0 {
		t.Fatalf("malformed refresh produced notifications: %v", got)
	}
	if m.catalog.Len() != 2 {
		t.Fatalf("catalog len = %d, want seed retained", m.catalog.Len())
	}
}

func TestRefreshTransportFailureNotifies(t *testing.T) {
	svc := &fakeService{
		wallpapers: testWallpapers(),
		fetchErr:   errors.New("connection refused"),
	}
	m := newTestModel(t, svc)

	m, cmd := press(t, m, "r")
	next, _ := m.Update(cmd())
	m = next.(Model)
	if !hasNotification(m, "Refresh failed") {
		t.Fatalf("expected failure notification, got %v", m.feed.Active())
	}
	if m.catalog.Len() != 2 {
		t.Fatalf("catalog len = %d, want seed retained", m.catalog.Len())
	}
}

func TestProfileFilterToggle(t *testing.T) {
	svc := &fakeService{wallpapers: testWallpapers()}
	m := newTestModel(t, svc)

	m, _ = press(t, m, "u", "1")
	if !m.filters["popular"] {
		t.Fatalf("filter not enabled")
	}
	m, _ = press(t, m, "1")
	if m.filters["popular"] {
		t.Fatalf("filter not disabled on second toggle")
	}
}

func TestKeymapDrivesDispatchAndHelp(t *testing.T) {
	svc := &fakeService{wallpapers: testWallpapers()}
	m := newTestModel(t, svc)

	// Handlers consult the model's bindings, not key literals: rebinding
	// refresh moves the action with it.
	m.keys.Refresh = key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "Refresh"))
	if _, cmd := press(t, m, "r"); cmd != nil {
		t.Fatalf("unbound key still triggered a command")
	}
	if _, cmd := press(t, m, "R"); cmd == nil {
		t.Fatalf("rebound refresh key did nothing")
	}

	// The help overlay is generated from the same bindings.
	m.keys = DefaultKeyMap()
	help := m.renderHelp()
	for _, want := range []string{"Toggle filter (profile)", "Cycle theme", "Search titles (gallery)", "shift+tab"} {
		if !strings.Contains(help, want) {
			t.Fatalf("help overlay missing %q", want)
		}
	}
}

func hasNotification(m Model, title string) bool {
	for _, n := range m.feed.Active() {
		if n.Title == title {
			return true
		}
	}
	return false
}
