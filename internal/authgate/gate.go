// Package authgate implements the 4-digit access gate in front of the
// wizard. The code comparison uses a non-cryptographic string hash kept
// for compatibility with stored state; this is a convenience barrier,
// not a security boundary.
package authgate

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// State is the persisted gate counters: failed attempt count and, once
// the threshold is hit, the lockout expiry timestamp.
type State struct {
	Attempts     int
	LockoutUntil time.Time // zero when not locked
}

// StateStore persists the gate state across restarts.
type StateStore interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, state State) error
	Reset(ctx context.Context) error
}

// Config holds the gate settings.
type Config struct {
	// Code is the expected 4-digit access code.
	Code string

	// MaxAttempts is the number of cumulative wrong submissions that
	// trigger a lockout.
	MaxAttempts int

	// LockoutDuration is how long the gate stays locked.
	LockoutDuration time.Duration
}

// DefaultConfig returns the stock gate settings:
// five attempts, thirty second lockout.
func DefaultConfig() Config {
	return Config{
		Code:            "1337",
		MaxAttempts:     5,
		LockoutDuration: 30 * time.Second,
	}
}

// Result reports the outcome of one code submission.
type Result struct {
	Authenticated     bool `json:"authenticated"`
	Locked            bool `json:"locked"`
	AttemptsRemaining int  `json:"attempts_remaining"`
	// LockoutSeconds is the countdown until the gate reopens, zero when
	// not locked.
	LockoutSeconds int `json:"lockout_seconds"`
}

// Gate validates access codes and tracks the lockout state through the
// store so it survives restarts.
type Gate struct {
	cfg      Config
	codeHash string
	store    StateStore
	logger   *zap.Logger
	now      func() time.Time
}

// New creates a gate for the configured code.
func New(cfg Config, store StateStore, logger *zap.Logger) *Gate {
	return &Gate{
		cfg:      cfg,
		codeHash: hashCode(cfg.Code),
		store:    store,
		logger:   logger,
		now:      time.Now,
	}
}

// Status returns the current gate state without consuming an attempt.
// An expired lockout is cleared and the counter reset.
func (g *Gate) Status(ctx context.Context) (Result, error) {
	state, err := g.store.Load(ctx)
	if err != nil {
		return Result{}, err
	}

	if !state.LockoutUntil.IsZero() {
		if remaining := state.LockoutUntil.Sub(g.now()); remaining > 0 {
			return Result{
				Locked:         true,
				LockoutSeconds: int(remaining.Seconds() + 0.999),
			}, nil
		}
		// Lockout expired: reset the counter.
		if err := g.store.Reset(ctx); err != nil {
			return Result{}, err
		}
		state = State{}
	}

	return Result{AttemptsRemaining: g.cfg.MaxAttempts - state.Attempts}, nil
}

// Submit checks a 4-digit code. Wrong codes accumulate; hitting the
// attempt threshold locks the gate for the configured duration, and the
// expiry resets the counter to zero.
func (g *Gate) Submit(ctx context.Context, code string) (Result, error) {
	status, err := g.Status(ctx)
	if err != nil {
		return Result{}, err
	}
	if status.Locked {
		return status, nil
	}

	if len(code) != 4 {
		return Result{}, fmt.Errorf("%w: expected 4 digits, got %d", ErrMalformedCode, len(code))
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return Result{}, fmt.Errorf("%w: expected digits only", ErrMalformedCode)
		}
	}

	if hashCode(code) == g.codeHash {
		if err := g.store.Reset(ctx); err != nil {
			return Result{}, err
		}
		g.logger.Info("Access gate opened")
		return Result{Authenticated: true, AttemptsRemaining: g.cfg.MaxAttempts}, nil
	}

	state, err := g.store.Load(ctx)
	if err != nil {
		return Result{}, err
	}
	state.Attempts++

	if state.Attempts >= g.cfg.MaxAttempts {
		state.LockoutUntil = g.now().Add(g.cfg.LockoutDuration)
		if err := g.store.Save(ctx, state); err != nil {
			return Result{}, err
		}
		g.logger.Warn("Access gate locked",
			zap.Int("attempts", state.Attempts),
			zap.Time("until", state.LockoutUntil))
		return Result{
			Locked:         true,
			LockoutSeconds: int(g.cfg.LockoutDuration.Seconds()),
		}, nil
	}

	if err := g.store.Save(ctx, state); err != nil {
		return Result{}, err
	}
	return Result{AttemptsRemaining: g.cfg.MaxAttempts - state.Attempts}, nil
}

// hashCode is a Java-style 31x 32-bit string hash. It is trivially
// reversible for 4-digit inputs and must not be mistaken for a
// credential hash.
func hashCode(code string) string {
	var h int32
	for _, c := range code {
		h = h*31 + int32(c)
	}
	if h < 0 {
		h = -h
	}
	return strconv.Itoa(int(h))
}
