package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dpereira/travel-assistant/internal/domain/trip"
	"go.uber.org/zap"
)

// ProfileRepository persists the traveler identity block so it can be
// rehydrated into future sessions. Only the identity fields persist;
// trip-specific data never does.
type ProfileRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *sql.DB, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{db: db, logger: logger}
}

// Save upserts the single traveler profile row.
func (r *ProfileRepository) Save(ctx context.Context, t trip.Traveler) error {
	query := `
		INSERT INTO traveler_profile (
			id, first_name, last_name, employee_id, department,
			cost_center, id_document, tax_id, phone, updated_at
		) VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			employee_id = excluded.employee_id,
			department = excluded.department,
			cost_center = excluded.cost_center,
			id_document = excluded.id_document,
			tax_id = excluded.tax_id,
			phone = excluded.phone,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		t.FirstName, t.LastName, t.EmployeeID, t.Department,
		t.CostCenter, t.IDDocument, t.TaxID, t.Phone, time.Now(),
	)
	if err != nil {
		r.logger.Error("Failed to save traveler profile", zap.Error(err))
		return fmt.Errorf("failed to save traveler profile: %w", err)
	}
	return nil
}

// Load returns the stored traveler profile, or (nil, nil) when none has
// been saved yet.
func (r *ProfileRepository) Load(ctx context.Context) (*trip.Traveler, error) {
	query := `
		SELECT first_name, last_name, employee_id, department,
			cost_center, id_document, tax_id, phone
		FROM traveler_profile
		WHERE id = 1
	`

	var t trip.Traveler
	err := r.db.QueryRowContext(ctx, query).Scan(
		&t.FirstName, &t.LastName, &t.EmployeeID, &t.Department,
		&t.CostCenter, &t.IDDocument, &t.TaxID, &t.Phone,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to load traveler profile", zap.Error(err))
		return nil, fmt.Errorf("failed to load traveler profile: %w", err)
	}
	return &t, nil
}
