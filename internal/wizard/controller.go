package wizard

import (
	"context"
	"math"
	"strings"

	"github.com/dpereira/travel-assistant/internal/domain/trip"
)

// Controller holds the wizard position for one travel request and
// applies the navigation rules: Next is gated by the current step's
// completion predicate, Previous is free, and any step may be jumped to
// directly.
type Controller struct {
	req     *trip.Request
	current Step
}

// NewController starts a wizard at the first step for the given request.
func NewController(req *trip.Request) *Controller {
	return &Controller{req: req, current: StepStart}
}

// Current returns the step the wizard is on.
func (c *Controller) Current() Step {
	return c.current
}

// EffectiveSequence returns the step list with conditionally
// inapplicable steps removed. The train details step only applies when
// the chosen transport is the train; the sequence is derived from the
// request on every call rather than kept as mutable state.
func (c *Controller) EffectiveSequence() []Step {
	steps := make([]Step, 0, len(allSteps))
	for _, s := range allSteps {
		if s == StepTrainDetails && c.req.Transport != trip.TransportTrain {
			continue
		}
		steps = append(steps, s)
	}
	return steps
}

// Completed reports whether the completion predicate of a step holds.
// Steps that are pure choices are always complete.
func (c *Controller) Completed(step Step) bool {
	switch step {
	case StepStart:
		return c.req.Traveler.Complete()
	case StepMotive:
		return strings.TrimSpace(c.req.Motive) != ""
	case StepTrainDetails:
		return !c.req.Outbound.Date.IsZero()
	case StepDates:
		if c.req.HasLodging {
			return c.req.Lodging.DatesSet()
		}
		return true
	case StepTransport, StepLodging, StepPreview:
		return true
	default:
		return false
	}
}

// buildMachine assembles a step machine over the current effective
// sequence: Next transitions guarded by completion, Back unguarded.
func (c *Controller) buildMachine(seq []Step) Machine {
	builder := NewBuilder()
	for i, s := range seq {
		step := s
		cfg := builder.Configure(step)
		if i+1 < len(seq) {
			cfg.PermitIf(TriggerNext, seq[i+1], func(ctx context.Context) bool {
				return c.Completed(step)
			})
		}
		if i > 0 {
			cfg.Permit(TriggerBack, seq[i-1])
		}
	}
	return builder.Build(c.position(seq))
}

// position maps the current step into the effective sequence. A current
// step filtered out by a transport change (train details after switching
// away from the train) resolves to the step that follows it.
func (c *Controller) position(seq []Step) Step {
	for _, s := range seq {
		if s == c.current {
			return c.current
		}
	}
	// current was filtered out; fall forward past it
	past := false
	for _, s := range allSteps {
		if s == c.current {
			past = true
			continue
		}
		if !past {
			continue
		}
		for _, e := range seq {
			if e == s {
				return s
			}
		}
	}
	return seq[0]
}

// Next advances one effective position. When the current step is
// incomplete this is a no-op and the step is left unchanged; when the
// wizard is already on the last step it stays there.
func (c *Controller) Next(ctx context.Context) {
	seq := c.EffectiveSequence()
	m := c.buildMachine(seq)
	// Guard failed or already on the last step: stay put.
	if err := m.Fire(ctx, TriggerNext); err != nil {
		return
	}
	c.current = m.Step()
}

// Previous moves one effective position backwards; there is no guard.
func (c *Controller) Previous(ctx context.Context) {
	seq := c.EffectiveSequence()
	m := c.buildMachine(seq)
	if err := m.Fire(ctx, TriggerBack); err != nil {
		return
	}
	c.current = m.Step()
}

// GoTo jumps straight to a step regardless of the completion state of
// the steps in between.
func (c *Controller) GoTo(step Step) error {
	if !step.IsValid() {
		return ErrUnknownStep
	}
	c.current = step
	return nil
}

// StepNumber returns the 1-based position of the current step within
// the effective sequence.
func (c *Controller) StepNumber() int {
	seq := c.EffectiveSequence()
	cur := c.position(seq)
	for i, s := range seq {
		if s == cur {
			return i + 1
		}
	}
	return 1
}

// TotalSteps returns the effective step count, which shrinks by one
// whenever the chosen transport is not the train.
func (c *Controller) TotalSteps() int {
	return len(c.EffectiveSequence())
}

// Progress returns the completion percentage, recomputed from the
// effective sequence so toggling the transport type adjusts it.
func (c *Controller) Progress() int {
	return int(math.Round(float64(c.StepNumber()) / float64(c.TotalSteps()) * 100))
}
