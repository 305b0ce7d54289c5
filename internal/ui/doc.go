// Package ui contains the Bubble Tea program that drives the gitmoji picker.
//
// Message flow:
//   - Bubble Tea invokes Model.Update, which routes each message through a
//     typed handler registry. Key presses and window resizes have handlers;
//     anything else is forwarded to the commit title input while it is active.
//   - During the pick stage the key map (input.go) turns a key press into
//     state.Event values. Each event is applied to the state.Session with
//     Step, which owns filtering and the viewport. The model only records the
//     outcome: a confirm moves to the title stage, a cancel quits.
//   - The title stage (title.go) wraps a bubbles textinput. Enter finishes the
//     session, Esc returns to the picker and Ctrl+C abandons it.
//
// Rendering:
//   - The picker is painted by a Renderer from a state.Frame snapshot. The
//     default listRenderer uses Lip Gloss styles from internal/theme and never
//     feeds back into the session.
//
// Harness runs the model headlessly for tests.
package ui
