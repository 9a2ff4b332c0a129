package mongodb

import (
	"context"
	"time"

	"github.com/pridecenter/pride-backend/internal/models"
	"github.com/pridecenter/pride-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BlockedDeviceRepository implements the repositories.BlockedDeviceRepository interface
type BlockedDeviceRepository struct {
	collection *mongo.Collection
}

// NewBlockedDeviceRepository creates a new BlockedDeviceRepository
func NewBlockedDeviceRepository(db *mongo.Database) repositories.BlockedDeviceRepository {
	return &BlockedDeviceRepository{
		collection: db.Collection("blocked_devices"),
	}
}

// IsBlocked checks if a device id exists in the blocked_devices collection.
func (r *BlockedDeviceRepository) IsBlocked(ctx context.Context, deviceID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"deviceId": deviceID}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Add blocks a device. Blocking an already blocked device keeps the first entry.
func (r *BlockedDeviceRepository) Add(ctx context.Context, device *models.BlockedDevice) error {
	if device.CreatedAt.IsZero() {
		device.CreatedAt = time.Now()
	}
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"deviceId": device.DeviceID},
		bson.M{"$setOnInsert": bson.M{
			"deviceId":  device.DeviceID,
			"reason":    device.Reason,
			"excerpt":   device.Excerpt,
			"createdAt": device.CreatedAt,
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

// Remove unblocks a device
func (r *BlockedDeviceRepository) Remove(ctx context.Context, deviceID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"deviceId": deviceID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// FindAll finds all blocked devices, newest first
func (r *BlockedDeviceRepository) FindAll(ctx context.Context) ([]*models.BlockedDevice, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var devices []*models.BlockedDevice
	if err := cursor.All(ctx, &devices); err != nil {
		return nil, err
	}
	if devices == nil {
		devices = []*models.BlockedDevice{}
	}
	return devices, nil
}
