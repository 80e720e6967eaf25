package interval

import (
	"errors"
	"fmt"
)

// ErrInvalidTuning is returned by Tuning.Validate for out-of-range constants.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds the constants that drive interval selection.
type Tuning struct {
	MinSeconds         int     `yaml:"min_seconds"`
	StartingInterval   int     `yaml:"starting_interval"`
	DecreaseFactor     float64 `yaml:"decrease_factor"`
	MildDecreaseFactor float64 `yaml:"mild_decrease_factor"`
	IncreaseFactor     float64 `yaml:"increase_factor"`
	// OverrunLimit is how far past zero the countdown may run before the
	// interval is shrunk automatically.
	OverrunLimit int `yaml:"overrun_limit"`
}

// DefaultTuning returns the canonical constants.
func DefaultTuning() Tuning {
	return Tuning{
		MinSeconds:         15,
		StartingInterval:   30,
		DecreaseFactor:     0.4,
		MildDecreaseFactor: 0.7,
		IncreaseFactor:     1.4,
		OverrunLimit:       10,
	}
}

// Validate reports whether the tuning keeps the machine's invariants.
func (t Tuning) Validate() error {
	switch {
	case t.MinSeconds < 1:
		return fmt.Errorf("%w: min_seconds must be at least 1, got %d", ErrInvalidTuning, t.MinSeconds)
	case t.StartingInterval < t.MinSeconds:
		return fmt.Errorf("%w: starting_interval %d is below min_seconds %d", ErrInvalidTuning, t.StartingInterval, t.MinSeconds)
	case t.DecreaseFactor <= 0 || t.DecreaseFactor >= 1:
		return fmt.Errorf("%w: decrease_factor must be in (0, 1), got %g", ErrInvalidTuning, t.DecreaseFactor)
	case t.MildDecreaseFactor <= 0 || t.MildDecreaseFactor >= 1:
		return fmt.Errorf("%w: mild_decrease_factor must be in (0, 1), got %g", ErrInvalidTuning, t.MildDecreaseFactor)
	case t.IncreaseFactor <= 1:
		return fmt.Errorf("%w: increase_factor must be greater than 1, got %g", ErrInvalidTuning, t.IncreaseFactor)
	case t.OverrunLimit < 0:
		return fmt.Errorf("%w: overrun_limit must not be negative, got %d", ErrInvalidTuning, t.OverrunLimit)
	}
	return nil
}
