// Package haptic provides the vibration output used to tell the user that an
// interval has elapsed.
package haptic

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
)

// Pulse is one vibration followed by a pause.
type Pulse struct {
	On  time.Duration
	Off time.Duration
}

// Pattern is a sequence of pulses played back to back.
type Pattern []Pulse

// DoublePulse means "interval elapsed, awaiting feedback".
var DoublePulse = Pattern{
	{On: 100 * time.Millisecond, Off: 100 * time.Millisecond},
	{On: 100 * time.Millisecond},
}

// Modes accepted by New.
const (
	ModeBell = "bell"
	ModeNone = "none"
)

// ErrUnknownMode is returned by New for an unsupported mode.
var ErrUnknownMode = errors.New("unknown haptic mode")

// Vibrator plays a pattern. Implementations block until playback finishes or
// ctx is done.
type Vibrator interface {
	Vibrate(ctx context.Context, p Pattern) error
}

// New returns the Vibrator for mode. Bell output goes to w.
func New(mode string, w io.Writer) (Vibrator, error) {
	switch mode {
	case ModeBell:
		return NewBell(w), nil
	case ModeNone:
		return Nop{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

// ValidMode reports whether New accepts mode.
func ValidMode(mode string) bool {
	return mode == ModeBell || mode == ModeNone
}

// Bell approximates a vibration motor with the terminal bell: one BEL byte per
// pulse.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a Bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Vibrate rings the bell once per pulse and waits out the pattern.
func (b *Bell) Vibrate(ctx context.Context, p Pattern) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, pulse := range p {
		if _, err := io.WriteString(b.w, "\a"); err != nil {
			return fmt.Errorf("haptic: ring bell: %w", err)
		}
		if err := sleep(ctx, pulse.On+pulse.Off); err != nil {
			return fmt.Errorf("haptic: pulse %d/%d: %w", i+1, len(p), err)
		}
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Nop discards every pattern.
type Nop struct{}

// Vibrate implements Vibrator.
func (Nop) Vibrate(context.Context, Pattern) error { return nil }

// Recorder keeps every pattern it is asked to play. Safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	patterns []Pattern
}

// Vibrate records p.
func (r *Recorder) Vibrate(_ context.Context, p Pattern) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patterns = append(r.patterns, p)
	return nil
}

// Patterns returns a copy of the recorded patterns.
func (r *Recorder) Patterns() []Pattern {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Pattern, len(r.patterns))
	copy(out, r.patterns)
	return out
}
