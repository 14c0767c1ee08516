package wizard

import (
	"context"
	"fmt"
)

// GuardFunc evaluates whether a transition should be allowed.
type GuardFunc func(ctx context.Context) bool

// Machine tracks the current step and validates navigation triggers.
type Machine interface {
	// Step returns the current step.
	Step() Step

	// CanFire returns true if the trigger has at least one transition
	// configured in the current step.
	CanFire(trigger Trigger) bool

	// Fire attempts to execute the trigger, moving to the target step if
	// a transition is configured and its guard passes.
	Fire(ctx context.Context, trigger Trigger) error
}

// Builder assembles a configured step machine.
type Builder interface {
	// Configure returns the configuration for the given step.
	Configure(step Step) StepConfiguration

	// Build creates a machine instance positioned at the given step.
	Build(initial Step) Machine
}

// StepConfiguration configures transitions out of a specific step.
type StepConfiguration interface {
	// Permit allows a trigger to move to the target step.
	Permit(trigger Trigger, to Step) StepConfiguration

	// PermitIf allows a trigger to move to the target step when the
	// guard passes.
	PermitIf(trigger Trigger, to Step, guard GuardFunc) StepConfiguration
}

type transition struct {
	to    Step
	guard GuardFunc
}

type stepConfig struct {
	transitions map[Trigger][]transition
}

type machineBuilder struct {
	configurations map[Step]*stepConfig
}

type machine struct {
	current        Step
	configurations map[Step]*stepConfig
}

// NewBuilder creates a new step machine builder.
func NewBuilder() Builder {
	return &machineBuilder{
		configurations: make(map[Step]*stepConfig),
	}
}

func (b *machineBuilder) Configure(step Step) StepConfiguration {
	if !step.IsValid() {
		panic(fmt.Sprintf("invalid step: %s", step))
	}

	config, exists := b.configurations[step]
	if !exists {
		config = &stepConfig{transitions: make(map[Trigger][]transition)}
		b.configurations[step] = config
	}
	return config
}

func (b *machineBuilder) Build(initial Step) Machine {
	if !initial.IsValid() {
		panic(fmt.Sprintf("invalid initial step: %s", initial))
	}

	// Copy configurations so the built machine is immune to further
	// builder mutation.
	configsCopy := make(map[Step]*stepConfig, len(b.configurations))
	for step, config := range b.configurations {
		transitionsCopy := make(map[Trigger][]transition, len(config.transitions))
		for trigger, ts := range config.transitions {
			transitionsCopy[trigger] = append([]transition{}, ts...)
		}
		configsCopy[step] = &stepConfig{transitions: transitionsCopy}
	}

	return &machine{
		current:        initial,
		configurations: configsCopy,
	}
}

func (c *stepConfig) Permit(trigger Trigger, to Step) StepConfiguration {
	return c.PermitIf(trigger, to, nil)
}

func (c *stepConfig) PermitIf(trigger Trigger, to Step, guard GuardFunc) StepConfiguration {
	if !to.IsValid() {
		panic(fmt.Sprintf("invalid target step: %s", to))
	}

	c.transitions[trigger] = append(c.transitions[trigger], transition{
		to:    to,
		guard: guard,
	})
	return c
}

func (m *machine) Step() Step {
	return m.current
}

func (m *machine) CanFire(trigger Trigger) bool {
	config, exists := m.configurations[m.current]
	if !exists {
		return false
	}
	ts, exists := config.transitions[trigger]
	return exists && len(ts) > 0
}

func (m *machine) Fire(ctx context.Context, trigger Trigger) error {
	config, exists := m.configurations[m.current]
	if !exists {
		return fmt.Errorf("%w: cannot fire %s from %s (no configuration)", ErrInvalidTransition, trigger, m.current)
	}

	ts, exists := config.transitions[trigger]
	if !exists || len(ts) == 0 {
		return fmt.Errorf("%w: cannot fire %s from %s", ErrInvalidTransition, trigger, m.current)
	}

	for _, t := range ts {
		if t.guard == nil || t.guard(ctx) {
			m.current = t.to
			return nil
		}
	}

	return fmt.Errorf("%w: %s from %s", ErrGuardFailed, trigger, m.current)
}
