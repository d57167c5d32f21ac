// Package session holds the authenticated identity and its bearer token.
//
// The active session lives in memory and is mirrored to a durable key-value
// store so it survives restarts. Restore trusts the stored token until it
// fails on use; no local expiry check is performed.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"mural/internal/api"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// ErrNoSession is returned by operations that require an authenticated
// identity when none is active.
var ErrNoSession = errors.New("authentication required")

// Session pairs the authenticated user with its opaque bearer token.
type Session struct {
	User  api.User
	Token string
}

// Store coordinates the in-memory session and its durable mirror.
type Store struct {
	mu      sync.RWMutex
	client  api.Service
	kv      *KV
	current *Session
}

// NewStore builds a Store bound to the given API client and durable store.
func NewStore(client api.Service, kv *KV) *Store {
	return &Store{client: client, kv: kv}
}

// Current returns a copy of the active session, or nil when logged out.
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	dup := *s.current
	return &dup
}

// Restore re-establishes the session persisted by a previous run. A missing
// token or user record simply leaves the store logged out.
func (s *Store) Restore(ctx context.Context) error {
	token, err := s.kv.Get(ctx, keyToken)
	if err != nil {
		return err
	}
	raw, err := s.kv.Get(ctx, keyUser)
	if err != nil {
		return err
	}
	if len(token) == 0 || len(raw) == 0 {
		return nil
	}

	var user api.User
	if err := json.Unmarshal(raw, &user); err != nil {
		// Stored record from an incompatible version; treat as logged out.
		return nil
	}

	s.mu.Lock()
	s.current = &Session{User: user, Token: string(token)}
	s.mu.Unlock()
	return nil
}

// Login authenticates against the remote service and persists the issued
// token and user record. On failure the session state is unchanged.
func (s *Store) Login(ctx context.Context, username, password string) (*Session, error) {
	res, err := s.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, res)
}

// Register creates an account and establishes the returned session.
func (s *Store) Register(ctx context.Context, username, email, password string) (*Session, error) {
	res, err := s.client.Register(ctx, username, email, password)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, res)
}

// establish persists the issued session and only then activates it in
// memory, so a failed write never leaves the UI showing a signed-in user
// whose login was reported as failed.
func (s *Store) establish(ctx context.Context, res *api.AuthResult) (*Session, error) {
	raw, err := json.Marshal(res.User)
	if err != nil {
		return nil, fmt.Errorf("encode user record: %w", err)
	}
	if err := s.kv.Set(ctx, keyToken, []byte(res.Token)); err != nil {
		return nil, err
	}
	if err := s.kv.Set(ctx, keyUser, raw); err != nil {
		return nil, err
	}

	sess := &Session{User: res.User, Token: res.Token}
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	dup := *sess
	return &dup, nil
}

// Logout clears the in-memory session and the durable mirror. It always
// clears memory, even if the durable delete fails.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return s.kv.Clear(ctx)
}
