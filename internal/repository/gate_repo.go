package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dpereira/travel-assistant/internal/authgate"
	"go.uber.org/zap"
)

// GateRepository persists the access-gate state. Implements
// authgate.StateStore.
type GateRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewGateRepository creates a new gate repository.
func NewGateRepository(db *sql.DB, logger *zap.Logger) *GateRepository {
	return &GateRepository{db: db, logger: logger}
}

// Load returns the current gate state; a missing row means a fresh gate.
func (r *GateRepository) Load(ctx context.Context) (authgate.State, error) {
	query := `SELECT attempts, lockout_until FROM access_gate WHERE id = 1`

	var state authgate.State
	var lockout sql.NullTime
	err := r.db.QueryRowContext(ctx, query).Scan(&state.Attempts, &lockout)
	if err == sql.ErrNoRows {
		return authgate.State{}, nil
	}
	if err != nil {
		r.logger.Error("Failed to load gate state", zap.Error(err))
		return authgate.State{}, fmt.Errorf("failed to load gate state: %w", err)
	}
	if lockout.Valid {
		state.LockoutUntil = lockout.Time
	}
	return state, nil
}

// Save upserts the gate state row.
func (r *GateRepository) Save(ctx context.Context, state authgate.State) error {
	query := `
		INSERT INTO access_gate (id, attempts, lockout_until, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			attempts = excluded.attempts,
			lockout_until = excluded.lockout_until,
			updated_at = excluded.updated_at
	`

	var lockout interface{}
	if !state.LockoutUntil.IsZero() {
		lockout = state.LockoutUntil
	}

	_, err := r.db.ExecContext(ctx, query, state.Attempts, lockout, time.Now())
	if err != nil {
		r.logger.Error("Failed to save gate state", zap.Error(err))
		return fmt.Errorf("failed to save gate state: %w", err)
	}
	return nil
}

// Reset clears the attempt counter and lockout.
func (r *GateRepository) Reset(ctx context.Context) error {
	return r.Save(ctx, authgate.State{})
}
