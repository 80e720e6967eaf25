package trace

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"habittrainer/internal/interval"
)

// EventType identifies the kind of trace event
type EventType string

const (
	EventCycleStart   EventType = "cycle_start"   // Session started
	EventCycleExpired EventType = "cycle_expired" // Countdown reached zero
	EventFeedback     EventType = "feedback"      // User grew, shrank or held the interval
	EventAutoShrink   EventType = "auto_shrink"   // Overrun limit hit without feedback
)

// Event is a single state machine transition worth tracing
type Event struct {
	Type            EventType
	Timestamp       time.Time
	IntervalSeconds int                 // Interval after the transition
	Overrun         int                 // Seconds past zero when the cycle ended
	Adjustment      interval.Adjustment // What ended the previous cycle
}

// FromResult converts a timer result into an Event.
// Plain countdown ticks and no-ops return ok=false.
func FromResult(res interval.Result, now time.Time) (Event, bool) {
	ev := Event{
		Timestamp:       now,
		IntervalSeconds: res.IntervalSeconds,
		Overrun:         res.Overrun,
		Adjustment:      res.Adjustment,
	}
	switch res.Adjustment {
	case interval.AdjustStarted:
		ev.Type = EventCycleStart
	case interval.AdjustGrew, interval.AdjustShrank, interval.AdjustHeld:
		ev.Type = EventFeedback
	case interval.AdjustMildShrank:
		ev.Type = EventAutoShrink
	default:
		if !res.Notify {
			return Event{}, false
		}
		ev.Type = EventCycleExpired
	}
	return ev, true
}

// NewSessionID generates a random 16-byte session ID as hex string (32 characters)
func NewSessionID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
