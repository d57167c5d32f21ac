// Package comments maintains per-wallpaper comment threads.
//
// Threads are append-only and ordered newest first. A comment is added
// optimistically after the remote write succeeds; the thread is never
// re-fetched, reordered, or pruned within a session.
package comments

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"mural/internal/api"
	"mural/internal/session"
)

// ErrEmptyComment is returned when the trimmed comment text is empty.
var ErrEmptyComment = errors.New("comment text is empty")

// Comment is one thread entry. Key is a stable local identifier: the
// server-assigned id when the service echoed one, otherwise a generated
// token so optimistic entries never collide with server ids.
type Comment struct {
	ID        int
	Key       string
	Username  string
	Text      string
	CreatedAt string
}

// Thread stores comment lists keyed by wallpaper id.
type Thread struct {
	mu     sync.RWMutex
	client api.Service
	byWall map[int][]Comment
}

// NewThread builds an empty Thread bound to the given API client.
func NewThread(client api.Service) *Thread {
	return &Thread{
		client: client,
		byWall: make(map[int][]Comment),
	}
}

// Post validates the draft, writes it to the remote service, and on success
// prepends the comment to the wallpaper's thread. Validation failures and
// remote failures leave the thread unchanged so the draft can be retried.
func (t *Thread) Post(ctx context.Context, wallpaperID int, text string, sess *session.Session) (Comment, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Comment{}, ErrEmptyComment
	}
	if sess == nil {
		return Comment{}, session.ErrNoSession
	}

	receipt, err := t.client.Comment(ctx, wallpaperID, sess.User.ID, sess.User.Username, trimmed)
	if err != nil {
		return Comment{}, err
	}

	c := Comment{
		Username:  sess.User.Username,
		Text:      trimmed,
		CreatedAt: time.Now().Format("2006-01-02"),
	}
	if receipt != nil && receipt.ID > 0 {
		c.ID = receipt.ID
		c.Key = strconv.Itoa(receipt.ID)
	} else {
		c.Key = uuid.NewString()
	}
	if receipt != nil && receipt.CreatedAt != "" {
		c.CreatedAt = receipt.CreatedAt
	}

	t.mu.Lock()
	t.byWall[wallpaperID] = append([]Comment{c}, t.byWall[wallpaperID]...)
	t.mu.Unlock()
	return c, nil
}

// For returns a copy of the thread for wallpaperID, newest first.
func (t *Thread) For(wallpaperID int) []Comment {
	t.mu.RLock()
	defer t.mu.RUnlock()
	thread := t.byWall[wallpaperID]
	if len(thread) == 0 {
		return nil
	}
	dup := make([]Comment, len(thread))
	copy(dup, thread)
	return dup
}

// Len reports the thread length for wallpaperID.
func (t *Thread) Len(wallpaperID int) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byWall[wallpaperID])
}
