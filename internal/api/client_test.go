package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseEndpointURL(t *testing.T) {
	u, err := parseEndpointURL("example.com/api/wallpapers")
	if err != nil {
		t.Fatalf("parseEndpointURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
	if u.Host != "example.com" {
		t.Fatalf("host = %q, want example.com", u.Host)
	}

	if _, err := parseEndpointURL("   "); err == nil {
		t.Fatalf("parseEndpointURL accepted empty url")
	}
}

func TestClient_AuthActions(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(AuthResult{
			Token: "tok-1",
			User:  User{ID: 7, Username: "ada", Email: "ada@example.com"},
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	res, err := c.Login(ctx, "ada", "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if res.Token != "tok-1" || res.User.ID != 7 {
		t.Fatalf("Login result = %#v, want token tok-1 user 7", res)
	}
	if gotBody["action"] != "login" || gotBody["username"] != "ada" {
		t.Fatalf("Login body = %v, want action=login username=ada", gotBody)
	}

	if _, err := c.Register(ctx, "ada", "ada@example.com", "secret"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if gotBody["action"] != "register" || gotBody["email"] != "ada@example.com" {
		t.Fatalf("Register body = %v, want action=register with email", gotBody)
	}
}

func TestClient_WallpaperActions(t *testing.T) {
	t.Parallel()

	var gotMethod string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotBody = nil
		w.Header().Set("Content-Type", "application/json")

		if r.Method == http.MethodGet {
			_ = json.NewEncoder(w).Encode(wallpaperListResponse{
				Wallpapers: []Wallpaper{{ID: 1, Title: "Cosmic Nebula", Rating: 4.5}},
			})
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		switch gotBody["action"] {
		case "rate":
			_ = json.NewEncoder(w).Encode(rateResponse{Message: "Rating saved", AvgRating: 3.75})
		case "comment":
			_ = json.NewEncoder(w).Encode(CommentReceipt{ID: 12, Message: "Comment added", CreatedAt: "2026-08-28T10:00:00"})
		case "upload":
			_ = json.NewEncoder(w).Encode(uploadResponse{ID: 33})
		default:
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	items, err := c.FetchWallpapers(ctx)
	if err != nil {
		t.Fatalf("FetchWallpapers returned error: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Cosmic Nebula" {
		t.Fatalf("FetchWallpapers = %#v, want 1 item Cosmic Nebula", items)
	}

	avg, err := c.Rate(ctx, 1, 7, 4)
	if err != nil {
		t.Fatalf("Rate returned error: %v", err)
	}
	if avg != 3.75 {
		t.Fatalf("Rate avg = %v, want 3.75", avg)
	}
	if gotBody["wallpaper_id"] != float64(1) || gotBody["rating"] != float64(4) {
		t.Fatalf("Rate body = %v, want wallpaper_id=1 rating=4", gotBody)
	}

	receipt, err := c.Comment(ctx, 1, 7, "ada", "nice")
	if err != nil {
		t.Fatalf("Comment returned error: %v", err)
	}
	if receipt.ID != 12 {
		t.Fatalf("Comment receipt = %#v, want id 12", receipt)
	}
	if gotBody["comment_text"] != "nice" || gotBody["username"] != "ada" {
		t.Fatalf("Comment body = %v, want comment_text=nice username=ada", gotBody)
	}

	if err := c.Download(ctx, 1); err != nil {
		t.Fatalf("Download returned error: %v", err)
	}
	if gotBody["action"] != "download" {
		t.Fatalf("Download body = %v, want action=download", gotBody)
	}

	id, err := c.Upload(ctx, "Dunes", "https://img.example.com/dunes.jpg", "ada")
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if id != 33 {
		t.Fatalf("Upload id = %d, want 33", id)
	}

	if err := c.RecordView(ctx, 1); err != nil {
		t.Fatalf("RecordView returned error: %v", err)
	}
	if gotMethod != http.MethodPut {
		t.Fatalf("RecordView method = %q, want PUT", gotMethod)
	}
}

func TestClient_RateRejectsOutOfRange(t *testing.T) {
	c, err := NewClient("127.0.0.1:1", "127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.Rate(context.Background(), 1, 1, 0); err == nil {
		t.Fatalf("Rate accepted rating 0")
	}
	if _, err := c.Rate(context.Background(), 1, 1, 6); err == nil {
		t.Fatalf("Rate accepted rating 6")
	}
}

func TestClient_RemoteErrorCarriesServiceMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Login(context.Background(), "ada", "wrong")
	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("Login error = %v, want *RemoteError", err)
	}
	if remote.Message != "Invalid credentials" || remote.StatusCode != http.StatusUnauthorized {
		t.Fatalf("RemoteError = %#v, want verbatim service message", remote)
	}
}

func TestClient_DecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchWallpapers(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchWallpapers error = %v, want decode response error", err)
	}

	// An unreadable body is typed so callers can treat it as "no update"
	// instead of a failure.
	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("FetchWallpapers error = %T, want *MalformedResponseError", err)
	}
}
