package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Escape     key.Binding
	Refresh    key.Binding

	// Tab switching
	TabPopular key.Binding
	TabGallery key.Binding
	TabProfile key.Binding

	// Navigation
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Confirm key.Binding

	// Gallery actions
	Search key.Binding

	// Detail actions
	Download    key.Binding
	Comment     key.Binding
	SwitchPane  key.Binding
	RatingRange key.Binding

	// Account actions
	SignIn   key.Binding
	Register key.Binding
	SignOut  key.Binding
	Upload   key.Binding

	// Profile actions
	ToggleFilter key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Cycle tabs"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Cycle tabs (reverse)"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh"),
		),

		// Tab switching
		TabPopular: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Popular tab"),
		),
		TabGallery: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "Gallery tab"),
		),
		TabProfile: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "Profile tab"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "Jump to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "Jump to bottom"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),

		// Gallery actions
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search titles (gallery)"),
		),

		// Detail actions
		Download: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Download"),
		),
		Comment: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Write comment (detail)"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Switch pane (detail)"),
		),
		RatingRange: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "Pick rating (detail)"),
		),

		// Account actions
		SignIn: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "Sign in"),
		),
		Register: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Register"),
		),
		SignOut: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Sign out"),
		),
		Upload: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add wallpaper (profile)"),
		),

		// Profile actions
		ToggleFilter: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "Toggle filter (profile)"),
		),
	}
}
