// Package interval implements the adaptive countdown state machine.
//
// A Timer counts down one interval at a time. Once the countdown reaches zero
// the user answers with feedback (grow, shrink or hold) and the next interval
// starts. Without feedback the countdown keeps running into negative values
// until the overrun limit, where the interval is shrunk mildly on its own.
//
// The Timer never schedules anything; callers invoke Tick once per second
// while it is running.
package interval

import (
	"math"
	"strconv"
)

const (
	// PromptStart is shown before the session is started.
	PromptStart = "Press select to start"
	// PromptFeedback is shown once the countdown has elapsed.
	PromptFeedback = "Up: increase / Select: maintain / Down: decrease"
)

// floorEpsilon absorbs binary rounding so that e.g. 30*1.4 floors to 42.
const floorEpsilon = 1e-9

// Timer is the interval timer state machine. The zero value is not usable;
// construct with New or NewWithTuning.
type Timer struct {
	tuning Tuning

	running         bool
	intervalSeconds int
	secondsLeft     int
}

// New returns a stopped timer using DefaultTuning.
func New() *Timer {
	return &Timer{tuning: DefaultTuning()}
}

// NewWithTuning returns a stopped timer using t.
func NewWithTuning(t Tuning) (*Timer, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Timer{tuning: t}, nil
}

// Tuning returns the constants the timer runs with.
func (t *Timer) Tuning() Tuning {
	return t.tuning
}

// State returns a snapshot of the timer.
func (t *Timer) State() State {
	return State{
		Running:         t.running,
		IntervalSeconds: t.intervalSeconds,
		SecondsLeft:     t.secondsLeft,
	}
}

// Start begins the session. It is a no-op when already running.
func (t *Timer) Start() Result {
	if t.running {
		return t.result(AdjustNone, 0)
	}
	t.running = true
	t.intervalSeconds = t.tuning.StartingInterval
	t.secondsLeft = t.intervalSeconds
	return t.result(AdjustStarted, 0)
}

// Tick advances the countdown by one second. Notify is set on the tick that
// reaches zero. When the overrun limit is passed the interval is shrunk
// mildly and a new countdown begins.
func (t *Timer) Tick() Result {
	if !t.running {
		return t.result(AdjustNone, 0)
	}
	t.secondsLeft--
	if t.secondsLeft == 0 {
		res := t.result(AdjustNone, 0)
		res.Notify = true
		return res
	}
	if t.secondsLeft < -t.tuning.OverrunLimit {
		overrun := -t.secondsLeft
		t.restart(t.shrunk(t.tuning.MildDecreaseFactor))
		return t.result(AdjustMildShrank, overrun)
	}
	return t.result(AdjustNone, 0)
}

// Grow lengthens the interval. Only effective once the countdown elapsed.
func (t *Timer) Grow() Result {
	if !t.expired() {
		return t.result(AdjustNone, 0)
	}
	overrun := -t.secondsLeft
	t.restart(scale(t.intervalSeconds, t.tuning.IncreaseFactor))
	return t.result(AdjustGrew, overrun)
}

// Shrink shortens the interval, never below MinSeconds. Only effective once
// the countdown elapsed.
func (t *Timer) Shrink() Result {
	if !t.expired() {
		return t.result(AdjustNone, 0)
	}
	overrun := -t.secondsLeft
	t.restart(t.shrunk(t.tuning.DecreaseFactor))
	return t.result(AdjustShrank, overrun)
}

// Hold restarts the countdown with the same interval. Only effective once the
// countdown elapsed.
func (t *Timer) Hold() Result {
	if !t.expired() {
		return t.result(AdjustNone, 0)
	}
	overrun := -t.secondsLeft
	t.restart(t.intervalSeconds)
	return t.result(AdjustHeld, overrun)
}

// DisplayText returns the text the screen should show.
func (t *Timer) DisplayText() string {
	switch {
	case !t.running:
		return PromptStart
	case t.secondsLeft > 0:
		return strconv.Itoa(t.secondsLeft) + " seconds left"
	default:
		return PromptFeedback
	}
}

func (t *Timer) expired() bool {
	return t.running && t.secondsLeft <= 0
}

func (t *Timer) restart(seconds int) {
	t.intervalSeconds = seconds
	t.secondsLeft = seconds
}

func (t *Timer) shrunk(factor float64) int {
	return max(scale(t.intervalSeconds, factor), t.tuning.MinSeconds)
}

func (t *Timer) result(adj Adjustment, overrun int) Result {
	return Result{
		Text:       t.DisplayText(),
		Adjustment: adj,
		Overrun:    overrun,
		State:      t.State(),
	}
}

// scale saturates at math.MaxInt instead of overflowing on repeated growth.
func scale(seconds int, factor float64) int {
	v := math.Floor(float64(seconds)*factor + floorEpsilon)
	if v >= math.MaxInt {
		return math.MaxInt
	}
	return int(v)
}
