package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Store records published notifications.
type Store interface {
	Save(ctx context.Context, n Notification) (int64, error)
}

// StoreNotifier persists every notification and mirrors it to the log,
// so the feed survives the request that produced it.
type StoreNotifier struct {
	store  Store
	logger *zap.Logger
}

// NewStoreNotifier creates a notifier backed by a store.
func NewStoreNotifier(store Store, logger *zap.Logger) *StoreNotifier {
	return &StoreNotifier{store: store, logger: logger}
}

// Publish saves the notification and logs it.
func (n *StoreNotifier) Publish(ctx context.Context, msg Notification) error {
	id, err := n.store.Save(ctx, msg)
	if err != nil {
		n.logger.Error("Failed to persist notification",
			zap.String("title", msg.Title),
			zap.Error(err))
		return fmt.Errorf("persist notification: %w", err)
	}

	n.logger.Info("Notification published",
		zap.Int64("notification_id", id),
		zap.String("type", string(msg.Type)),
		zap.String("title", msg.Title))
	return nil
}
