package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meinhoongagan/slot-booking/models"
)

const notificationCollection = "notifications"

// NotificationRepository keeps provider notifications in MongoDB.
type NotificationRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{
		coll: db.Collection(notificationCollection),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (r *NotificationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("user_created"),
	})
	if err != nil {
		return fmt.Errorf("create notification index: %w", err)
	}
	return nil
}

func (r *NotificationRepository) Submit(ctx context.Context, targetUserID uint, content string) error {
	now := r.now()
	_, err := r.coll.InsertOne(ctx, models.Notification{
		Content:   content,
		UserID:    targetUserID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListByUser returns the newest notifications addressed to userID.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID uint, limit int64) ([]models.Notification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)

	cur, err := r.coll.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find notifications: %w", err)
	}
	defer cur.Close(ctx)

	items := []models.Notification{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode notifications: %w", err)
	}
	return items, nil
}

// MarkRead returns nil, nil when id is malformed or not owned by userID.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string, userID uint) (*models.Notification, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var n models.Notification
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "user": userID},
		bson.M{"$set": bson.M{"read": true, "updatedAt": r.now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&n)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return &n, nil
}
