package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"mural/internal/api"
	"mural/internal/notify"
)

// visibleWallpapers returns the wallpapers the current tab shows, in
// display order.
func (m Model) visibleWallpapers() []api.Wallpaper {
	if m.catalog == nil {
		return nil
	}
	switch m.currentTab {
	case TabPopular:
		return m.catalog.RankByPopularity(popularLimit)
	case TabGallery:
		return m.catalog.FilterByTitle(m.searchInput.Value())
	case TabProfile:
		return m.ownWallpapers()
	}
	return nil
}

// ownWallpapers returns the signed-in user's uploads, newest id first.
func (m Model) ownWallpapers() []api.Wallpaper {
	sess := m.sessions.Current()
	if sess == nil {
		return nil
	}
	var own []api.Wallpaper
	for _, w := range m.catalog.All() {
		if w.Author == sess.User.Username {
			own = append(own, w)
		}
	}
	for i, j := 0, len(own)-1; i < j; i, j = i+1, j-1 {
		own[i], own[j] = own[j], own[i]
	}
	return own
}

// handleListKey processes keyboard input for the popular and gallery tabs.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.currentTab == TabGallery && key.Matches(msg, m.keys.Search) {
		m.searchFocused = true
		m.searchInput.Focus()
		return m, nil
	}

	items := m.visibleWallpapers()
	count := len(items)
	if count == 0 {
		return m, nil
	}
	if m.cursor >= count {
		m.cursor = count - 1
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.cursor < count-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = count - 1
	case key.Matches(msg, m.keys.Confirm):
		return m, m.openDetail(items[m.cursor].ID)
	case key.Matches(msg, m.keys.Download):
		w := items[m.cursor]
		return m, downloadCmd(m.ctx, m.catalog, w.ID, w.ImageURL)
	}

	return m, nil
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())

	if footer := m.renderNotifications(); footer != "" {
		b.WriteString("\n")
		b.WriteString(footer)
	}

	return b.String()
}

func (m Model) renderContent() string {
	switch m.currentTab {
	case TabPopular:
		return m.renderList("Popular this week", "Nothing has been rated yet")
	case TabGallery:
		return m.renderGallery()
	case TabProfile:
		return m.renderProfile()
	default:
		return ""
	}
}

func (m Model) renderGallery() string {
	styles := m.theme.Styles()

	var b strings.Builder
	label := styles.MutedText.Render("Search ")
	if m.searchFocused {
		label = styles.AccentText.Render("Search ")
	}
	b.WriteString(label)
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	empty := "No wallpapers yet"
	if strings.TrimSpace(m.searchInput.Value()) != "" {
		empty = "No titles match " + strings.TrimSpace(m.searchInput.Value())
	}
	b.WriteString(m.renderList("Gallery", empty))
	return b.String()
}

// renderList renders the wallpaper rows for the current tab.
func (m Model) renderList(title, emptyMessage string) string {
	styles := m.theme.Styles()
	items := m.visibleWallpapers()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString(styles.FaintText.Render(emptyMessage))
		b.WriteString("\n")
		return b.String()
	}

	for i, w := range items {
		line := m.renderWallpaperRow(w)
		if i == m.cursor {
			line = styles.Selected.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderWallpaperRow(w api.Wallpaper) string {
	badge := ""
	if w.SourceType == api.SourceUserUploaded {
		badge = " [upload]"
	}

	// Pad by rune count: fmt's %-36s pads by bytes and drifts on
	// non-ASCII titles.
	return fmt.Sprintf("%s %s ★%.1f (%d)  ↓%d  %d views%s",
		padRight(truncate(w.Title, 36), 36),
		padRight("by "+w.Author, 14),
		w.Rating, w.RatingCount, w.DownloadCount, w.Views, badge)
}

// renderNotifications renders the active notification stack, oldest first.
func (m Model) renderNotifications() string {
	styles := m.theme.Styles()
	active := m.feed.Active()
	if len(active) == 0 {
		return ""
	}

	lines := make([]string, 0, len(active))
	for _, n := range active {
		text := n.Title
		if n.Description != "" {
			text += "  " + n.Description
		}
		if n.Severity == notify.Destructive {
			lines = append(lines, styles.Danger.Render("• ")+styles.Text.Render(text))
		} else {
			lines = append(lines, styles.Success.Render("• ")+styles.Text.Render(text))
		}
	}
	return strings.Join(lines, "\n")
}
