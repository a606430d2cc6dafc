// Package tui provides the Bubble Tea integration for the tetris
// platform. It handles the terminal UI loop, input mapping, and
// rendering of the game state.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// GravityMsg is sent to trigger an automatic one-row fall.
type GravityMsg time.Time

// gravityCmd returns a Bubble Tea command that sends the next gravity
// message after the given interval.
func gravityCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return GravityMsg(t)
	})
}
