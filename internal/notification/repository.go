package notification

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationRepository handles DB operations for notification audit records.
type NotificationRepository struct {
	collection *mongo.Collection
}

// NewNotificationRepository creates a new repository for notifications.
func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{collection: db.Collection("seat_notice_runs")}
}

// CreateRun inserts a seat-notification audit record.
func (r *NotificationRepository) CreateRun(ctx context.Context, run *SeatNoticeRun) error {
	_, err := r.collection.InsertOne(ctx, run)
	return err
}
