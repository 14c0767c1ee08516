// Package notify defines the notification channel the export pipeline
// reports through. The notifier is an injected dependency rather than a
// swappable global handler, so callers choose where messages go.
package notify

import (
	"context"

	"go.uber.org/zap"
)

// Type classifies a notification.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeInfo    Type = "info"
)

// Notification is one user-visible message. DurationMS of 0 means the
// message persists until replaced.
type Notification struct {
	Type       Type   `json:"type"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	DurationMS int    `json:"duration_ms,omitempty"`
}

// Notifier publishes notifications to whoever is watching.
type Notifier interface {
	Publish(ctx context.Context, n Notification) error
}

// LogNotifier writes notifications to the structured log. Useful as a
// fallback and in tests.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier backed by the logger.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Publish logs the notification at a level matching its type.
func (n *LogNotifier) Publish(_ context.Context, msg Notification) error {
	fields := []zap.Field{
		zap.String("title", msg.Title),
		zap.String("message", msg.Message),
		zap.Int("duration_ms", msg.DurationMS),
	}
	if msg.Type == TypeError {
		n.logger.Error("Notification", fields...)
	} else {
		n.logger.Info("Notification", fields...)
	}
	return nil
}
