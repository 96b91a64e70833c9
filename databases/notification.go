package databases

// go generate: mockery --name NotificationDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medremind/med-reminder-api/models"
)

const notificationsCollection = "notifications"

// NotificationDatabase contains the methods to use with the notification
// database. There is deliberately no mark-read operation on this surface:
// the patient feed only ever reads unread records.
type NotificationDatabase interface {
	Insert(ctx context.Context, notification *models.Notification) error
	ListUnreadByPatient(ctx context.Context, patientID string) ([]models.Notification, error)
	Watch(ctx context.Context) (ChangeStreamHelper, error)
}

type notificationDatabase struct {
	db DatabaseHelper
}

// NewNotificationDatabase initializes a new instance of notification database with the provided db connection
func NewNotificationDatabase(db DatabaseHelper) NotificationDatabase {
	return &notificationDatabase{
		db: db,
	}
}

func (n *notificationDatabase) Insert(ctx context.Context, notification *models.Notification) error {
	if notification.ID.IsZero() {
		notification.ID = primitive.NewObjectID()
	}
	if notification.Timestamp == 0 {
		notification.Timestamp = primitive.NewDateTimeFromTime(time.Now())
	}
	_, err := n.db.Collection(notificationsCollection).InsertOne(ctx, notification)
	return err
}

func (n *notificationDatabase) ListUnreadByPatient(ctx context.Context, patientID string) ([]models.Notification, error) {
	filter := bson.M{"patientId": patientID, "read": false}
	opts := options.Find().SetSort(bson.M{"timestamp": -1})

	cursor, err := n.db.Collection(notificationsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (n *notificationDatabase) Watch(ctx context.Context) (ChangeStreamHelper, error) {
	return n.db.Collection(notificationsCollection).Watch(ctx, mongo.Pipeline{})
}
