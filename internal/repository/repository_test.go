package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/dpereira/travel-assistant/internal/authgate"
	"github.com/dpereira/travel-assistant/internal/domain/trip"
	"github.com/dpereira/travel-assistant/internal/notify"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	schema := `
	CREATE TABLE traveler_profile (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		employee_id TEXT NOT NULL DEFAULT '',
		department TEXT NOT NULL DEFAULT '',
		cost_center TEXT NOT NULL DEFAULT '',
		id_document TEXT NOT NULL DEFAULT '',
		tax_id TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE access_gate (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		attempts INTEGER NOT NULL DEFAULT 0,
		lockout_until DATETIME,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE notifications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err = db.Exec(schema)
	require.NoError(t, err)
	return db
}

func TestGateRepository_RoundTrip(t *testing.T) {
	repo := NewGateRepository(newTestDB(t), zap.NewNop())
	ctx := context.Background()

	// Missing row means a fresh gate.
	state, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, authgate.State{}, state)

	until := time.Now().Add(30 * time.Second).UTC().Truncate(time.Second)
	require.NoError(t, repo.Save(ctx, authgate.State{Attempts: 3, LockoutUntil: until}))

	state, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, state.Attempts)
	assert.True(t, state.LockoutUntil.Equal(until))

	// Upsert overwrites in place.
	require.NoError(t, repo.Save(ctx, authgate.State{Attempts: 4}))
	state, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, state.Attempts)
	assert.True(t, state.LockoutUntil.IsZero())

	require.NoError(t, repo.Reset(ctx))
	state, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, authgate.State{}, state)
}

func TestProfileRepository_RoundTrip(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t), zap.NewNop())
	ctx := context.Background()

	profile, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)

	traveler := trip.Traveler{
		FirstName:  "Ana",
		LastName:   "Silva",
		EmployeeID: "12345",
		Department: "Engenharia",
		CostCenter: "CC-100",
		IDDocument: "98765432",
		Phone:      "912345678",
	}
	require.NoError(t, repo.Save(ctx, traveler))

	profile, err = repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, traveler, *profile)

	// Saving again updates the single row.
	traveler.Department = "Operações"
	require.NoError(t, repo.Save(ctx, traveler))
	profile, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Operações", profile.Department)
}

func TestNotificationRepository_SaveAndRecent(t *testing.T) {
	repo := NewNotificationRepository(newTestDB(t), zap.NewNop())
	ctx := context.Background()

	for i, title := range []string{"primeira", "segunda", "terceira"} {
		id, err := repo.Save(ctx, notify.Notification{
			Type:       notify.TypeInfo,
			Title:      title,
			Message:    "mensagem",
			DurationMS: i * 1000,
		})
		require.NoError(t, err)
		assert.Positive(t, id)
	}

	records, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "terceira", records[0].Title)
	assert.Equal(t, "segunda", records[1].Title)
}
