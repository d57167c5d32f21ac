// Package ui provides the Bubble Tea terminal interface for mural.
//
// The interface is a single Model whose fields hold all transient view
// state: the active tab, the list cursor, the selected wallpaper, an
// in-progress star rating, and the open dialog, if any. Every remote
// action runs as a tea.Cmd and reports back through a typed message, so
// the Update function is the only place state changes.
//
// The package is organized into focused modules:
//
//   - app.go: the Model, Update loop, key dispatch, and async result handling
//   - commands.go: tea.Cmd constructors and their message types
//   - list.go: the popular and gallery tabs
//   - detail.go: the wallpaper detail overlay with rating and comments
//   - profile.go: the profile tab with filters and uploads
//   - dialogs.go: the sign in, register, and upload modals
//   - theme.go: color themes and lipgloss styles
package ui
