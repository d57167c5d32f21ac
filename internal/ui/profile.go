package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"mural/internal/notify"
)

// handleProfileKey processes keyboard input for the profile tab.
func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Upload):
		if m.sessions.Current() == nil {
			m.feed.Push("Sign in to upload", "Authentication required", notify.Destructive)
			return m, nil
		}
		m.showUpload = true
		m.uploadFocusIdx = 0
		m.uploadInputs[0].Focus()
		m.uploadInputs[1].Blur()
		return m, nil

	case key.Matches(msg, m.keys.ToggleFilter):
		idx := int(msg.String()[0] - '1')
		if idx < len(filterNames) {
			name := filterNames[idx]
			m.filters[name] = !m.filters[name]
			m.savePrefs()
		}
		return m, nil
	}

	items := m.ownWallpapers()
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
	case key.Matches(msg, m.keys.Confirm):
		return m, m.openDetail(items[m.cursor].ID)
	case key.Matches(msg, m.keys.Download):
		w := items[m.cursor]
		return m, downloadCmd(m.ctx, m.catalog, w.ID, w.ImageURL)
	}

	return m, nil
}

// renderProfile renders the profile tab: session, filter tags, own uploads.
func (m Model) renderProfile() string {
	styles := m.theme.Styles()

	var b strings.Builder

	sess := m.sessions.Current()
	if sess == nil {
		b.WriteString(styles.Text.Bold(true).Render("Not signed in"))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("Press i to sign in or n to create an account."))
		b.WriteString("\n\n")
	} else {
		b.WriteString(styles.Text.Bold(true).Render(sess.User.Username))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(sess.User.Email))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.AccentText.Bold(true).Render("Gallery filters"))
	b.WriteString("\n")
	for i, name := range filterNames {
		mark := "[ ]"
		style := styles.MutedText
		if m.filters[name] {
			mark = "[x]"
			style = styles.Text
		}
		b.WriteString(style.Render(fmt.Sprintf("%d %s %s", i+1, mark, name)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.AccentText.Bold(true).Render("Appearance"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(m.theme.Name + " theme, press T to switch"))
	b.WriteString("\n\n")

	if sess != nil {
		b.WriteString(m.renderList("Your uploads", "Nothing uploaded yet. Press a to add one."))
	}

	return b.String()
}
