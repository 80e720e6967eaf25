package ui

import "habittrainer/internal/interval"

// WatchMode is the screen the watch face is showing, derived from timer state.
type WatchMode int

const (
	ModeIdle WatchMode = iota
	ModeCountdown
	ModeFeedback
)

func (m WatchMode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeCountdown:
		return "Countdown"
	case ModeFeedback:
		return "Feedback"
	default:
		return "Unknown"
	}
}

// modeFor maps a timer snapshot to the mode whose buttons apply.
func modeFor(s interval.State) WatchMode {
	switch {
	case !s.Running:
		return ModeIdle
	case s.SecondsLeft > 0:
		return ModeCountdown
	default:
		return ModeFeedback
	}
}
