package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top status bar: logo, tabs, session, refresh age.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{styles.Logo.Render("mural")}

	tabs := []struct {
		tab   Tab
		label string
	}{
		{TabPopular, "Popular"},
		{TabGallery, "Gallery"},
		{TabProfile, "Profile"},
	}
	for _, t := range tabs {
		if t.tab == m.currentTab {
			parts = append(parts, styles.AccentText.Bold(true).Render("["+t.label+"]"))
		} else {
			parts = append(parts, styles.MutedText.Render(" "+t.label+" "))
		}
	}

	if sess := m.sessions.Current(); sess != nil {
		parts = append(parts, styles.Success.Render("@"+sess.User.Username))
	} else {
		parts = append(parts, styles.FaintText.Render("guest"))
	}

	if last := m.catalog.LastRefresh(); !last.IsZero() {
		parts = append(parts, styles.FaintText.Render(
			fmt.Sprintf("%d wallpapers, updated %s", m.catalog.Len(), last.Format("15:04:05"))))
	} else {
		parts = append(parts, styles.Warning.Render("loading catalog..."))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Width(m.width).
		Padding(0, 1).
		Render(strings.Join(parts, "  "))
}

// renderCommandBar renders the context-sensitive key hints line.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	var hints []string
	switch {
	case m.selectedID != 0:
		hints = []string{"1-5 rate", "enter submit", "d download", "c comment", "tab comments", "esc back"}
	case m.currentTab == TabGallery:
		hints = []string{"/ search", "j/k move", "enter open", "d download", "r refresh", "h help"}
	case m.currentTab == TabProfile:
		hints = []string{"i sign in", "n register", "x sign out", "a add wallpaper", "1-4 filters", "h help"}
	default:
		hints = []string{"j/k move", "enter open", "d download", "tab switch", "r refresh", "h help"}
	}

	rendered := make([]string, 0, len(hints))
	for _, hint := range hints {
		key, label, found := strings.Cut(hint, " ")
		if !found {
			continue
		}
		rendered = append(rendered, styles.AccentText.Render(key)+" "+styles.MutedText.Render(label))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Width(m.width).
		Padding(0, 1).
		Render(strings.Join(rendered, "   "))
}
