package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type helpSection struct {
	title    string
	bindings []key.Binding
}

// helpSections lays out the help overlay from the active keymap, so the
// overlay always reflects the bindings the handlers dispatch on.
func (m Model) helpSections() []helpSection {
	return []helpSection{
		{
			title: "Navigation",
			bindings: []key.Binding{
				m.keys.Tab, m.keys.ShiftTab,
				m.keys.TabPopular, m.keys.TabGallery, m.keys.TabProfile,
				m.keys.Up, m.keys.Down,
				m.keys.Top, m.keys.Bottom,
				m.keys.Confirm, m.keys.Escape,
			},
		},
		{
			title: "Wallpapers",
			bindings: []key.Binding{
				m.keys.Search,
				m.keys.RatingRange,
				m.keys.Download,
				m.keys.Comment,
				m.keys.SwitchPane,
				m.keys.Refresh,
			},
		},
		{
			title: "Account",
			bindings: []key.Binding{
				m.keys.SignIn, m.keys.Register, m.keys.SignOut,
				m.keys.Upload,
				m.keys.ToggleFilter,
			},
		},
		{
			title: "General",
			bindings: []key.Binding{
				m.keys.CycleTheme,
				m.keys.Help,
				m.keys.Quit,
			},
		},
	}
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	sections := m.helpSections()
	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, binding := range section.bindings {
			h := binding.Help()
			b.WriteString(styles.Star.Render(padRight(h.Key, 10)))
			b.WriteString(styles.Text.Render(h.Desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Press any key to close"))

	return m.renderModal(b.String())
}
