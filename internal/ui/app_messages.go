package ui

import "time"

// Button is one of the three device buttons.
type Button int

const (
	ButtonUp Button = iota
	ButtonSelect
	ButtonDown
)

func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "up"
	case ButtonSelect:
		return "select"
	case ButtonDown:
		return "down"
	default:
		return "unknown"
	}
}

// ButtonMsg is sent when a device button is pressed.
type ButtonMsg struct {
	Button Button
}

// ToggleHelpMsg switches between short and full help.
type ToggleHelpMsg struct{}

// tickMsg is the one-second cadence. Gen identifies the tick chain that
// armed it; ticks from a stale chain are dropped.
type tickMsg struct {
	Gen  int
	Time time.Time
}

// hapticDoneMsg reports the end of a vibration.
type hapticDoneMsg struct {
	Err error
}
