package models

import (
	"time"

	"github.com/pridecenter/pride-backend/internal/wizard"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmissionRecord is the audit entry written after the REST API accepted
// an event submission.
type SubmissionRecord struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	SessionID   string             `json:"sessionId" bson:"session_id"`
	DeviceID    string             `json:"deviceId,omitempty" bson:"device_id,omitempty"`
	RequestID   string             `json:"requestId,omitempty" bson:"request_id,omitempty"`
	VenueName   string             `json:"venueName" bson:"venue_name"`
	City        string             `json:"city" bson:"city"`
	EventType   string             `json:"eventType" bson:"event_type"`
	Pattern     string             `json:"pattern" bson:"pattern"`
	Payload     wizard.Payload     `json:"payload" bson:"payload"`
	SubmittedAt time.Time          `json:"submittedAt" bson:"submitted_at"`
}

// SubmissionFilter narrows GET /admin/submissions.
type SubmissionFilter struct {
	City  string
	Page  int
	Limit int
}
