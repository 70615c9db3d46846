// Package tui provides the Bubble Tea integration for the microgame
// platform: the terminal loop, input mapping and session orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick at the configured simulation rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
