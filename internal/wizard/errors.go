package wizard

import "errors"

var (
	// ErrInvalidTransition indicates the trigger is not configured for
	// the current step.
	ErrInvalidTransition = errors.New("invalid step transition")

	// ErrGuardFailed indicates the transition exists but its completion
	// guard rejected it.
	ErrGuardFailed = errors.New("step guard failed")

	// ErrUnknownStep indicates a step outside the wizard sequence.
	ErrUnknownStep = errors.New("unknown wizard step")
)
