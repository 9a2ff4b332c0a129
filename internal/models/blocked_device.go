package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlockedDevice represents a device refused by moderation
type BlockedDevice struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	DeviceID  string             `bson:"deviceId" json:"deviceId"`
	Reason    string             `bson:"reason,omitempty" json:"reason,omitempty"`
	Excerpt   string             `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
