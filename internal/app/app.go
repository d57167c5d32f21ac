// Package app wires mural's stores together and boots the UI.
package app

import (
	"context"
	"fmt"

	"mural/internal/api"
	"mural/internal/catalog"
	"mural/internal/comments"
	"mural/internal/config"
	"mural/internal/notify"
	"mural/internal/prefs"
	"mural/internal/session"
	"mural/internal/ui"
)

// Options configure the mural application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/mural/prefs.toml
}

// Run boots the mural TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.AuthURL == "" || cfg.WallpaperURL == "" {
		return fmt.Errorf("config must set auth_url and wallpaper_url")
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	client, err := api.NewClient(cfg.AuthURL, cfg.WallpaperURL)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	db, err := session.Open(cfg.SessionDBPath())
	if err != nil {
		return fmt.Errorf("open session db: %w", err)
	}
	defer func() { _ = db.Close() }()

	sessions := session.NewStore(client, session.NewKV(db))
	if err := sessions.Restore(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	// The catalog starts from the built-in samples so there is something
	// to browse before the first refresh lands.
	wallpapers := catalog.NewStore(client, catalog.Samples())

	uiOpts := ui.Options{
		Context:   ctx,
		Sessions:  sessions,
		Catalog:   wallpapers,
		Comments:  comments.NewThread(client),
		Feed:      notify.NewFeed(0),
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Filters:   userPrefs.Filters,
	}
	return ui.Run(uiOpts)
}
