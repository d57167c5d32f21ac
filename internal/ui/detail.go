package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/lipgloss"

	"mural/internal/api"
	"mural/internal/notify"
)

// handleDetailKey processes keyboard input while a wallpaper is open.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.commentFocused {
		return m.handleCommentKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.closeDetail()
		return m, nil

	case key.Matches(msg, m.keys.RatingRange):
		m.pendingRating = int(msg.String()[0] - '0')
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m.submitRating()

	case key.Matches(msg, m.keys.Download):
		if w, ok := m.catalog.Get(m.selectedID); ok {
			return m, downloadCmd(m.ctx, m.catalog, w.ID, w.ImageURL)
		}
		return m, nil

	case key.Matches(msg, m.keys.Comment):
		m.detailPane = 1
		m.commentFocused = true
		m.commentInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.SwitchPane):
		m.detailPane = (m.detailPane + 1) % 2
		return m, nil
	}

	return m, nil
}

func (m Model) handleCommentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.commentFocused = false
		m.commentInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.commentFocused = false
		m.commentInput.Blur()
		// Validation lives in the thread; empty drafts and missing
		// sessions come back as errors without touching the network.
		return m, commentCmd(m.ctx, m.comments, m.selectedID, m.commentInput.Value(), m.sessions.Current())
	}

	var cmd tea.Cmd
	m.commentInput, cmd = m.commentInput.Update(msg)
	return m, cmd
}

func (m Model) submitRating() (Model, tea.Cmd) {
	if m.pendingRating == 0 {
		m.feed.Push("Pick a rating first", "Press 1-5 to choose stars", notify.Normal)
		return m, nil
	}
	sess := m.sessions.Current()
	if sess == nil {
		m.feed.Push("Sign in to rate", "Authentication required", notify.Destructive)
		return m, nil
	}
	return m, rateCmd(m.ctx, m.catalog, m.selectedID, m.pendingRating, sess.User.ID)
}

// renderDetail renders the wallpaper detail overlay.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()

	w, ok := m.catalog.Get(m.selectedID)
	if !ok {
		return styles.FaintText.Render("Wallpaper no longer available. Press esc to go back.")
	}

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render(w.Title))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("by " + w.Author))
	if w.SourceType == api.SourceUserUploaded {
		b.WriteString(styles.Badge.Render("  [upload]"))
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(w.ImageURL))
	b.WriteString("\n\n")

	b.WriteString(styles.Star.Render(stars(w.Rating)))
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("  %.2f from %d ratings", w.Rating, w.RatingCount)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("%d downloads, %d views", w.DownloadCount, w.Views)))
	b.WriteString("\n\n")

	if m.detailPane == 0 {
		b.WriteString(m.renderDetailActions(styles))
	} else {
		b.WriteString(m.renderDetailComments(styles))
	}

	if footer := m.renderNotifications(); footer != "" {
		b.WriteString("\n\n")
		b.WriteString(footer)
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 2).
		Render(b.String())

	return m.renderHeader() + "\n" + m.renderCommandBar() + "\n" + frame
}

func (m Model) renderDetailActions(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Rate it"))
	b.WriteString("\n")
	if m.pendingRating > 0 {
		b.WriteString(styles.Star.Render(stars(float64(m.pendingRating))))
		b.WriteString(styles.MutedText.Render("  press enter to submit"))
	} else {
		b.WriteString(styles.FaintText.Render("press 1-5 to choose stars"))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("%d comments on this wallpaper, press tab to read", m.comments.Len(m.selectedID))))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderDetailComments(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Comments"))
	b.WriteString("\n")

	thread := m.comments.For(m.selectedID)
	if len(thread) == 0 {
		b.WriteString(styles.FaintText.Render("No comments yet. Be the first!"))
		b.WriteString("\n")
	}
	for _, c := range thread {
		b.WriteString(styles.Text.Bold(true).Render(c.Username))
		b.WriteString(styles.FaintText.Render("  " + c.CreatedAt))
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(c.Text))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.commentFocused {
		b.WriteString(styles.AccentText.Render("> "))
	} else {
		b.WriteString(styles.MutedText.Render("c "))
	}
	b.WriteString(m.commentInput.View())
	b.WriteString("\n")
	return b.String()
}

// stars renders a five-slot star gauge for an average rating.
func stars(rating float64) string {
	full := int(rating + 0.5)
	if full < 0 {
		full = 0
	}
	if full > 5 {
		full = 5
	}
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
}
