// Package notify queues transient status messages for the UI.
package notify

import (
	"sync"
	"time"
)

// Severity classifies a notification for rendering.
type Severity int

const (
	Normal Severity = iota
	Destructive
)

// Notification is a transient status message surfaced after an
// asynchronous operation completes.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
	expiresAt   time.Time
}

const defaultTTL = 4 * time.Second

// Feed holds notifications until they expire. Messages are queued, never
// replaced: a burst of completions shows every message.
type Feed struct {
	mu    sync.Mutex
	ttl   time.Duration
	items []Notification
	now   func() time.Time
}

// NewFeed builds a Feed whose notifications live for ttl. A non-positive
// ttl uses the default.
func NewFeed(ttl time.Duration) *Feed {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Feed{ttl: ttl, now: time.Now}
}

// Push appends a notification to the feed.
func (f *Feed) Push(title, description string, severity Severity) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, Notification{
		Title:       title,
		Description: description,
		Severity:    severity,
		expiresAt:   f.now().Add(f.ttl),
	})
}

// Active prunes expired notifications and returns the live ones in arrival
// order.
func (f *Feed) Active() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	live := f.items[:0]
	for _, n := range f.items {
		if n.expiresAt.After(now) {
			live = append(live, n)
		}
	}
	f.items = live

	if len(live) == 0 {
		return nil
	}
	out := make([]Notification, len(live))
	copy(out, live)
	return out
}
