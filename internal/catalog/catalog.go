// Package catalog holds the in-memory wallpaper collection.
//
// Entries are keyed by id with insertion order preserved. Updates replace
// whole entries rather than mutating shared references, so views never
// observe an aliased half-applied change. The remote service owns the data;
// Refresh replaces the collection wholesale, and a failed, empty, or
// unreadable refresh retains what is already cached instead of blanking
// the UI.
package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"mural/internal/api"
)

// Store coordinates access to the cached wallpaper collection.
type Store struct {
	mu          sync.RWMutex
	client      api.Service
	order       []int
	byID        map[int]api.Wallpaper
	lastRefresh time.Time
}

// NewStore builds a Store seeded with the given wallpapers. The seed is shown
// until the first successful refresh.
func NewStore(client api.Service, seed []api.Wallpaper) *Store {
	s := &Store{
		client: client,
		byID:   make(map[int]api.Wallpaper),
	}
	s.replace(seed)
	return s
}

func (s *Store) replace(items []api.Wallpaper) {
	s.order = s.order[:0]
	clear(s.byID)
	for _, w := range items {
		if _, dup := s.byID[w.ID]; !dup {
			s.order = append(s.order, w.ID)
		}
		s.byID[w.ID] = w
	}
}

// Refresh fetches the full collection from the remote service. Transport
// failures return an error and keep the cached collection; an empty or
// undecodable payload is treated as "no update", not an error.
func (s *Store) Refresh(ctx context.Context) error {
	items, err := s.client.FetchWallpapers(ctx)
	if err != nil {
		var malformed *api.MalformedResponseError
		if errors.As(err, &malformed) {
			return nil
		}
		return err
	}
	if len(items) == 0 {
		return nil
	}
	s.mu.Lock()
	s.replace(items)
	s.lastRefresh = time.Now()
	s.mu.Unlock()
	return nil
}

// All returns the collection in original order.
func (s *Store) All() []api.Wallpaper {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]api.Wallpaper, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Get returns the entry for id.
func (s *Store) Get(id int) (api.Wallpaper, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.byID[id]
	return w, ok
}

// Len reports the collection size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// LastRefresh reports when the collection was last replaced from the remote.
func (s *Store) LastRefresh() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRefresh
}

// FilterByTitle returns entries whose title contains query, case-insensitive,
// in original order. An empty query returns the full collection.
func (s *Store) FilterByTitle(query string) []api.Wallpaper {
	all := s.All()
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return all
	}
	out := make([]api.Wallpaper, 0, len(all))
	for _, w := range all {
		if strings.Contains(strings.ToLower(w.Title), needle) {
			out = append(out, w)
		}
	}
	return out
}

// RankByPopularity returns at most limit entries sorted by descending rating.
// Ties keep original collection order.
func (s *Store) RankByPopularity(limit int) []api.Wallpaper {
	ranked := s.All()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating > ranked[j].Rating
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Rate posts a 1-5 star rating for id on behalf of userID. On success the
// cached entry's rating is overwritten with the server-returned aggregate;
// the server average is the source of truth, never a local running mean.
func (s *Store) Rate(ctx context.Context, id, value, userID int) (float64, error) {
	avg, err := s.client.Rate(ctx, id, userID, value)
	if err != nil {
		return 0, err
	}
	s.setRating(id, avg)
	return avg, nil
}

// setRating replaces the entry for id with an updated copy. A rating that
// arrives after the entry left the collection is dropped.
func (s *Store) setRating(id int, avg float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.byID[id]
	if !ok {
		return
	}
	w.Rating = avg
	s.byID[id] = w
}

// Download notifies the remote service of a download event. The local
// download count is left to the next refresh to stay consistent with the
// server counter.
func (s *Store) Download(ctx context.Context, id int) error {
	return s.client.Download(ctx, id)
}

// RecordView bumps the server-side view counter for id.
func (s *Store) RecordView(ctx context.Context, id int) error {
	return s.client.RecordView(ctx, id)
}

// Upload publishes a user-contributed wallpaper and returns its id. The new
// entry appears in the collection on the next refresh.
func (s *Store) Upload(ctx context.Context, title, imageURL, author string) (int, error) {
	return s.client.Upload(ctx, title, imageURL, author)
}
