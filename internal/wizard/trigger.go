package wizard

// Trigger represents a navigation action fired against the step machine.
type Trigger string

const (
	// TriggerNext advances one effective position, subject to the
	// current step's completion guard.
	TriggerNext Trigger = "NEXT"

	// TriggerBack moves one effective position backwards, unguarded.
	TriggerBack Trigger = "BACK"
)

// String returns the string representation of the trigger.
func (t Trigger) String() string {
	return string(t)
}
