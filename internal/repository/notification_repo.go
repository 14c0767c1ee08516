package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dpereira/travel-assistant/internal/notify"
	"go.uber.org/zap"
)

// NotificationRecord is one persisted notification row.
type NotificationRecord struct {
	ID         int64       `json:"id"`
	Type       notify.Type `json:"type"`
	Title      string      `json:"title"`
	Message    string      `json:"message"`
	DurationMS int         `json:"duration_ms"`
	CreatedAt  time.Time   `json:"created_at"`
}

// NotificationRepository persists published notifications so the client
// can poll a feed of export progress and outcomes.
type NotificationRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewNotificationRepository creates a new notification repository.
func NewNotificationRepository(db *sql.DB, logger *zap.Logger) *NotificationRepository {
	return &NotificationRepository{db: db, logger: logger}
}

// Save inserts a notification row and returns its ID.
func (r *NotificationRepository) Save(ctx context.Context, n notify.Notification) (int64, error) {
	query := `
		INSERT INTO notifications (type, title, message, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		string(n.Type), n.Title, n.Message, n.DurationMS, time.Now(),
	)
	if err != nil {
		r.logger.Error("Failed to save notification", zap.Error(err))
		return 0, fmt.Errorf("failed to save notification: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return id, nil
}

// Recent returns the most recent notifications, newest first.
func (r *NotificationRepository) Recent(ctx context.Context, limit int) ([]NotificationRecord, error) {
	query := `
		SELECT id, type, title, message, duration_ms, created_at
		FROM notifications
		ORDER BY id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		r.logger.Error("Failed to list notifications", zap.Error(err))
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var records []NotificationRecord
	for rows.Next() {
		var rec NotificationRecord
		var typ string
		if err := rows.Scan(&rec.ID, &typ, &rec.Title, &rec.Message, &rec.DurationMS, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		rec.Type = notify.Type(typ)
		records = append(records, rec)
	}
	return records, rows.Err()
}
