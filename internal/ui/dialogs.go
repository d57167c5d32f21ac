package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/lipgloss"

	"mural/internal/notify"
)

// authFields returns the input indices the current dialog mode shows.
func (m Model) authFields() []int {
	if m.authMode == authRegister {
		return []int{0, 1, 2}
	}
	return []int{0, 2} // login skips the email field
}

func (m *Model) openAuthDialog(mode authMode) {
	if m.sessions.Current() != nil {
		m.feed.Push("Already signed in", "Press x to sign out first", notify.Normal)
		return
	}
	m.authMode = mode
	m.authFocusIdx = 0
	fields := m.authFields()
	for i := range m.authInputs {
		m.authInputs[i].Blur()
	}
	m.authInputs[fields[0]].Focus()
}

func (m *Model) closeAuthDialog() {
	m.authMode = authClosed
	for i := range m.authInputs {
		m.authInputs[i].Reset()
		m.authInputs[i].Blur()
	}
}

// handleAuthKey processes keyboard input while the account dialog is open.
func (m Model) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := m.authFields()

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeAuthDialog()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.cycleAuthFocus(fields, 1)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.cycleAuthFocus(fields, -1)
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m.submitAuth()
	}

	idx := fields[m.authFocusIdx]
	var cmd tea.Cmd
	m.authInputs[idx], cmd = m.authInputs[idx].Update(msg)
	return m, cmd
}

func (m *Model) cycleAuthFocus(fields []int, dir int) {
	m.authInputs[fields[m.authFocusIdx]].Blur()
	m.authFocusIdx = (m.authFocusIdx + dir + len(fields)) % len(fields)
	m.authInputs[fields[m.authFocusIdx]].Focus()
}

func (m Model) submitAuth() (Model, tea.Cmd) {
	username := strings.TrimSpace(m.authInputs[0].Value())
	email := strings.TrimSpace(m.authInputs[1].Value())
	password := m.authInputs[2].Value()

	if username == "" || password == "" {
		m.feed.Push("Missing fields", "Username and password are required", notify.Destructive)
		return m, nil
	}

	if m.authMode == authRegister {
		if email == "" {
			m.feed.Push("Missing fields", "Email is required to register", notify.Destructive)
			return m, nil
		}
		return m, registerCmd(m.ctx, m.sessions, username, email, password)
	}
	return m, loginCmd(m.ctx, m.sessions, username, password)
}

// renderAuthDialog renders the sign in / register modal.
func (m Model) renderAuthDialog() string {
	styles := m.theme.Styles()

	title := "Sign in"
	if m.authMode == authRegister {
		title = "Create account"
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n\n")

	labels := [3]string{"Username", "Email", "Password"}
	for _, idx := range m.authFields() {
		label := styles.MutedText.Render(labels[idx])
		if m.authInputs[idx].Focused() {
			label = styles.AccentText.Render(labels[idx])
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(m.authInputs[idx].View())
		b.WriteString("\n\n")
	}

	b.WriteString(styles.FaintText.Render("enter submit, tab next field, esc cancel"))

	if footer := m.renderNotifications(); footer != "" {
		b.WriteString("\n\n")
		b.WriteString(footer)
	}

	return m.renderModal(b.String())
}

// handleUploadKey processes keyboard input while the upload dialog is open.
func (m Model) handleUploadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.showUpload = false
		for i := range m.uploadInputs {
			m.uploadInputs[i].Blur()
		}
		return m, nil

	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
		m.uploadInputs[m.uploadFocusIdx].Blur()
		m.uploadFocusIdx = (m.uploadFocusIdx + 1) % 2
		m.uploadInputs[m.uploadFocusIdx].Focus()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m.submitUpload()
	}

	var cmd tea.Cmd
	m.uploadInputs[m.uploadFocusIdx], cmd = m.uploadInputs[m.uploadFocusIdx].Update(msg)
	return m, cmd
}

func (m Model) submitUpload() (Model, tea.Cmd) {
	title := strings.TrimSpace(m.uploadInputs[0].Value())
	imageURL := strings.TrimSpace(m.uploadInputs[1].Value())

	if title == "" || imageURL == "" {
		m.feed.Push("Missing fields", "Title and image URL are required", notify.Destructive)
		return m, nil
	}

	sess := m.sessions.Current()
	if sess == nil {
		m.showUpload = false
		m.feed.Push("Sign in to upload", "Authentication required", notify.Destructive)
		return m, nil
	}

	return m, uploadCmd(m.ctx, m.catalog, title, imageURL, sess.User.Username)
}

// renderUploadDialog renders the add-wallpaper modal.
func (m Model) renderUploadDialog() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Add wallpaper"))
	b.WriteString("\n\n")

	labels := [2]string{"Title", "Image URL"}
	for i := range m.uploadInputs {
		label := styles.MutedText.Render(labels[i])
		if m.uploadInputs[i].Focused() {
			label = styles.AccentText.Render(labels[i])
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(m.uploadInputs[i].View())
		b.WriteString("\n\n")
	}

	b.WriteString(styles.FaintText.Render("enter submit, tab next field, esc cancel"))

	if footer := m.renderNotifications(); footer != "" {
		b.WriteString("\n\n")
		b.WriteString(footer)
	}

	return m.renderModal(b.String())
}

// renderModal centers dialog content in the window with a focus border.
func (m Model) renderModal(content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 3).
		Render(content)

	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
