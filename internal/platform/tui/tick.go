// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-arcade/internal/engine"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// model that scheduled it, so a tick left over from a finished game never
// drives the next one.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loopIDs atomic.Uint64

func nextLoopID() uint64 {
	return loopIDs.Add(1)
}

// tickCmd schedules the next tick at the clock's deadline. A frame that
// overran its budget ticks again immediately without a backlog.
func tickCmd(clock *engine.Clock, loop uint64) tea.Cmd {
	return tea.Tick(clock.Next(time.Now()), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
