package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mural/internal/catalog"
	"mural/internal/comments"
	"mural/internal/session"
)

// Message types for async updates.

type tickMsg time.Time

type refreshMsg struct {
	err error
}

type authResultMsg struct {
	register bool
	username string
	err      error
}

type logoutMsg struct {
	err error
}

type rateResultMsg struct {
	id    int
	value int
	avg   float64
	err   error
}

type commentResultMsg struct {
	id      int
	comment comments.Comment
	err     error
}

type downloadResultMsg struct {
	id  int
	url string
	err error
}

type uploadResultMsg struct {
	id    int
	title string
	err   error
}

type viewCountMsg struct {
	id  int
	err error
}

// tickCmd creates a command that ticks at the given interval.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func refreshCmd(ctx context.Context, store *catalog.Store) tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{err: store.Refresh(ctx)}
	}
}

func loginCmd(ctx context.Context, sessions *session.Store, username, password string) tea.Cmd {
	return func() tea.Msg {
		sess, err := sessions.Login(ctx, username, password)
		if err != nil {
			return authResultMsg{register: false, err: err}
		}
		return authResultMsg{register: false, username: sess.User.Username}
	}
}

func registerCmd(ctx context.Context, sessions *session.Store, username, email, password string) tea.Cmd {
	return func() tea.Msg {
		sess, err := sessions.Register(ctx, username, email, password)
		if err != nil {
			return authResultMsg{register: true, err: err}
		}
		return authResultMsg{register: true, username: sess.User.Username}
	}
}

func logoutCmd(ctx context.Context, sessions *session.Store) tea.Cmd {
	return func() tea.Msg {
		return logoutMsg{err: sessions.Logout(ctx)}
	}
}

func rateCmd(ctx context.Context, store *catalog.Store, id, value, userID int) tea.Cmd {
	return func() tea.Msg {
		avg, err := store.Rate(ctx, id, value, userID)
		return rateResultMsg{id: id, value: value, avg: avg, err: err}
	}
}

func commentCmd(ctx context.Context, thread *comments.Thread, id int, text string, sess *session.Session) tea.Cmd {
	return func() tea.Msg {
		posted, err := thread.Post(ctx, id, text, sess)
		return commentResultMsg{id: id, comment: posted, err: err}
	}
}

func downloadCmd(ctx context.Context, store *catalog.Store, id int, url string) tea.Cmd {
	return func() tea.Msg {
		return downloadResultMsg{id: id, url: url, err: store.Download(ctx, id)}
	}
}

func uploadCmd(ctx context.Context, store *catalog.Store, title, imageURL, author string) tea.Cmd {
	return func() tea.Msg {
		id, err := store.Upload(ctx, title, imageURL, author)
		return uploadResultMsg{id: id, title: title, err: err}
	}
}

func recordViewCmd(ctx context.Context, store *catalog.Store, id int) tea.Cmd {
	return func() tea.Msg {
		return viewCountMsg{id: id, err: store.RecordView(ctx, id)}
	}
}
