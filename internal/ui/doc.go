// Package ui contains the Bubble Tea program that powers the kaomoji panel.
// The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own navigation, input, rendering,
// and mouse handling.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each message through a typed handler registry so every
//     tea.Msg is handled by a focused function (key presses, mouse events,
//     focus changes, copy results).
//   - Navigation helpers (internal/ui/navigation.go) manage category cycling
//     and grid cursor movement. Filter/input helpers (internal/ui/input.go)
//     keep text entry concerns isolated from the event loop.
//
// State ownership:
//   - Grid state lives in internal/ui/state.List, which tracks items,
//     filtering, and viewport calculations for the active category.
//   - The category order and selection live in internal/navigator; use
//     frequencies live in internal/recents and are written through to the
//     settings store on every change.
//   - The panel rectangle and the drag-resize gesture belong to
//     internal/geometry; View caches a layout snapshot each render so mouse
//     presses can be hit-tested against what is actually on screen.
//
// Clipboard interaction runs asynchronously: activating an item returns a
// tea.Cmd that performs the copy off the update loop and reports back with a
// copyResultMsg. Only a successful copy records a use in the recents
// tracker.
package ui
