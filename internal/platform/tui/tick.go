// Package tui runs volsnake in the terminal with Bubble Tea.
// It owns the event loop: ticks drive the session, key presses are applied
// as they arrive, and frames are rebuilt only after a redraw request.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
