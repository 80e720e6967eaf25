package interval

// Adjustment identifies what an operation did to the timer.
type Adjustment string

const (
	AdjustNone       Adjustment = ""            // Operation was a no-op or a plain tick
	AdjustStarted    Adjustment = "started"     // Session began
	AdjustGrew       Adjustment = "grew"        // User asked for a longer interval
	AdjustShrank     Adjustment = "shrank"      // User asked for a shorter interval
	AdjustHeld       Adjustment = "held"        // User kept the interval
	AdjustMildShrank Adjustment = "mild_shrank" // Overrun limit hit without feedback
)

// Restarted reports whether the adjustment began a new countdown cycle.
func (a Adjustment) Restarted() bool {
	return a != AdjustNone
}

// State is a read-only snapshot of the timer.
type State struct {
	Running         bool
	IntervalSeconds int
	SecondsLeft     int
}

// Result is returned by every Timer operation.
type Result struct {
	Text       string
	Notify     bool // countdown just reached zero
	Adjustment Adjustment
	// Overrun is how many seconds past zero the countdown was when a
	// feedback or mild shrink restarted it.
	Overrun int
	State
}
