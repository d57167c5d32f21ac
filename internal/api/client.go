package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Service defines the remote operations mural performs against the auth and
// wallpaper endpoints. It is implemented by *Client and can be faked in tests.
type Service interface {
	FetchWallpapers(ctx context.Context) ([]Wallpaper, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	Register(ctx context.Context, username, email, password string) (*AuthResult, error)
	Rate(ctx context.Context, wallpaperID, userID, rating int) (float64, error)
	Comment(ctx context.Context, wallpaperID, userID int, username, text string) (*CommentReceipt, error)
	Download(ctx context.Context, wallpaperID int) error
	Upload(ctx context.Context, title, imageURL, author string) (int, error)
	RecordView(ctx context.Context, wallpaperID int) error
}

// Ensure Client implements Service at compile time.
var _ Service = (*Client)(nil)

// Client talks to the two wallpaper platform HTTP endpoints.
type Client struct {
	authURL   *url.URL
	wallURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultUserAgent = "mural/0.1"
	requestTimeout   = 10 * time.Second
)

// RemoteError is a non-2xx response whose body carried a service-provided
// error message. The message is surfaced to the user verbatim.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if strings.TrimSpace(e.Message) != "" {
		return e.Message
	}
	return fmt.Sprintf("service returned status %d", e.StatusCode)
}

// MalformedResponseError is a 2xx response whose body could not be decoded.
// Callers that treat an unreadable payload as "no update" rather than a
// failure detect it with errors.As.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return "decode response: " + e.Err.Error()
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// NewClient builds a Client from the two endpoint base URLs.
func NewClient(authURL, wallpaperURL string) (*Client, error) {
	au, err := parseEndpointURL(authURL)
	if err != nil {
		return nil, fmt.Errorf("parse auth_url: %w", err)
	}
	wu, err := parseEndpointURL(wallpaperURL)
	if err != nil {
		return nil, fmt.Errorf("parse wallpaper_url: %w", err)
	}
	return &Client{
		authURL: au,
		wallURL: wu,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchWallpapers retrieves the full wallpaper collection.
func (c *Client) FetchWallpapers(ctx context.Context) ([]Wallpaper, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload wallpaperListResponse
	if err := c.do(ctx, http.MethodGet, c.wallURL, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Wallpapers, nil
}

// Login exchanges credentials for a token and user record.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body := map[string]any{
		"action":   "login",
		"username": username,
		"password": password,
	}
	var payload AuthResult
	if err := c.do(ctx, http.MethodPost, c.authURL, body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Register creates an account and returns the issued token and user record.
func (c *Client) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body := map[string]any{
		"action":   "register",
		"username": username,
		"email":    email,
		"password": password,
	}
	var payload AuthResult
	if err := c.do(ctx, http.MethodPost, c.authURL, body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Rate submits a 1-5 star rating and returns the server-side aggregate
// average. The server is the source of truth for the average.
func (c *Client) Rate(ctx context.Context, wallpaperID, userID, rating int) (float64, error) {
	if c == nil {
		return 0, fmt.Errorf("client is nil")
	}
	if rating < 1 || rating > 5 {
		return 0, fmt.Errorf("rating %d out of range 1-5", rating)
	}
	body := map[string]any{
		"action":       "rate",
		"wallpaper_id": wallpaperID,
		"user_id":      userID,
		"rating":       rating,
	}
	var payload rateResponse
	if err := c.do(ctx, http.MethodPost, c.wallURL, body, &payload); err != nil {
		return 0, err
	}
	return payload.AvgRating, nil
}

// Comment stores a comment and returns the server receipt.
func (c *Client) Comment(ctx context.Context, wallpaperID, userID int, username, text string) (*CommentReceipt, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body := map[string]any{
		"action":       "comment",
		"wallpaper_id": wallpaperID,
		"user_id":      userID,
		"username":     username,
		"comment_text": text,
	}
	var payload CommentReceipt
	if err := c.do(ctx, http.MethodPost, c.wallURL, body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Download notifies the service of a download event. Side effect only.
func (c *Client) Download(ctx context.Context, wallpaperID int) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	body := map[string]any{
		"action":       "download",
		"wallpaper_id": wallpaperID,
	}
	return c.do(ctx, http.MethodPost, c.wallURL, body, nil)
}

// Upload publishes a user-contributed wallpaper and returns its new id.
func (c *Client) Upload(ctx context.Context, title, imageURL, author string) (int, error) {
	if c == nil {
		return 0, fmt.Errorf("client is nil")
	}
	body := map[string]any{
		"action":    "upload",
		"title":     title,
		"image_url": imageURL,
		"author":    author,
	}
	var payload uploadResponse
	if err := c.do(ctx, http.MethodPost, c.wallURL, body, &payload); err != nil {
		return 0, err
	}
	return payload.ID, nil
}

// RecordView increments the server-side view counter. Side effect only.
func (c *Client) RecordView(ctx context.Context, wallpaperID int) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	body := map[string]any{
		"wallpaper_id": wallpaperID,
	}
	return c.do(ctx, http.MethodPut, c.wallURL, body, nil)
}

func (c *Client) do(ctx context.Context, method string, endpoint *url.URL, body any, dest any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		var failure struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		return &RemoteError{StatusCode: resp.StatusCode, Message: failure.Error}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &MalformedResponseError{Err: err}
	}
	return nil
}

func parseEndpointURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("url %q has no host", raw)
	}
	return u, nil
}
