// Package ui contains the Bubble Tea program that powers the chat client.
// Model is the single owner of all interactive state. Update is the event
// dispatch loop and View is the render pass. View only reads that state,
// except that it scrolls list viewport offsets so the selection stays inside
// the rows the layout leaves for each list.
//
// Message flow:
//   - The Bubble Tea runtime reads the terminal and delivers key presses as
//     tea.KeyMsg. A tea.Tick re-armed on every tickMsg delivers a redraw at
//     least every TickInterval when no key arrives.
//   - Update routes each message through a typed handler registry. Key
//     presses follow a fixed priority: quit (q outside the Input pane, or
//     ctrl+c anywhere), then escape, then the handler for the active pane.
//   - With no pane active, arrow keys move the hovered pane through the
//     adjacency table in internal/pane and enter captures it.
//
// State ownership:
//   - Focus, the channel and user List controllers and the Input editor live
//     in internal/ui/state. Update owns selection, focus and buffer changes;
//     View may only move a list's ViewportOffset.
//   - Channel, user and team snapshots arrive from a backend.Watcher, are
//     stored by the dispatcher in internal/state and replace list items
//     wholesale.
//   - The displayed Conversation and its messages are replaced together when
//     a history fetch succeeds; a failed fetch leaves both untouched.
//
// Provider calls:
//   - Committing a list selection or sending the input buffer runs the
//     provider call through the internal/ui/command bus as a tea.Cmd. The
//     result comes back as a message; responses for a conversation that is
//     no longer pending are dropped.
package ui
