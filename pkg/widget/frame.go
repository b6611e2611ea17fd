package widget

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFPS is the frame rate widgets animate at unless configured
// otherwise.
const DefaultFPS = 30

// FrameMsg advances one widget's animation by a frame. Each message carries
// the owning widget's ID and a tag; messages whose tag no longer matches
// are stale (the animation was stopped or restarted) and are dropped, so a
// torn-down widget never keeps ticking.
type FrameMsg struct {
	id  int
	tag int
	at  time.Time
}

var lastID int64

// nextID returns a process-unique widget ID.
func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// frame schedules the next FrameMsg for the given widget identity.
func frame(id, tag, fps int) tea.Cmd {
	if fps <= 0 {
		fps = DefaultFPS
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{id: id, tag: tag, at: t}
	})
}

// frameDelta computes the time advanced between two frame timestamps,
// falling back to the nominal frame interval when the clock is unusable
// (first frame, or a suspended terminal).
func frameDelta(prev, now time.Time, fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	nominal := time.Second / time.Duration(fps)
	if prev.IsZero() || !now.After(prev) {
		return nominal
	}
	dt := now.Sub(prev)
	// A frame that took absurdly long (debugger, laptop sleep) advances the
	// animation by at most one second to avoid a visual snap.
	if dt > time.Second {
		dt = time.Second
	}
	return dt
}
