// Package ui implements the consent dashboard's terminal interface with
// Bubble Tea.
//
// Core abstractions:
//   - View: A screen or modal with its own model, update, view (Elm-style)
//   - OverlayStack: Modal views layered over the current screen
//   - ViewStack: Stack-based navigation (roster → patient detail)
//   - KeybindRegistry / KeyHandler: SPC-leader key sequences with mode hints
//
// Each screen owns its fetch lifecycle: commands carry a request sequence
// number and the parameters they were dispatched with, and loaded messages
// echo them back so a view can discard responses that arrive after the
// filter, page, or search term has moved on.
package ui
