package interview

import (
	"log/slog"

	// Packages
	clinic "github.com/mutablelogic/go-clinic"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt sets an option on an interview
type Opt func(*Interview) error

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithMaxTurns sets the maximum number of rounds, which must be at least one
func WithMaxTurns(n uint) Opt {
	return func(i *Interview) error {
		if n == 0 {
			return clinic.ErrBadParameter.With("max turns must be at least one")
		}
		i.maxTurns = n
		return nil
	}
}

// WithWrapUp sets the message sent on behalf of the patient when the turn
// limit is reached, asking the doctor for an assessment. An empty message
// ends the interview at the limit without an assessment.
func WithWrapUp(message string) Opt {
	return func(i *Interview) error {
		i.wrapUp = message
		return nil
	}
}

// WithLogger sets the logger for progress messages
func WithLogger(logger *slog.Logger) Opt {
	return func(i *Interview) error {
		if logger != nil {
			i.logger = logger
		}
		return nil
	}
}

// WithObserver sets a function which is called with each turn
func WithObserver(fn Observer) Opt {
	return func(i *Interview) error {
		i.observer = fn
		return nil
	}
}
