package models

import (
	"time"

	"github.com/pridecenter/pride-backend/internal/wizard"
)

// WizardSession is one visitor's in-progress submission.
type WizardSession struct {
	ID        string         `json:"id"`
	DeviceID  string         `json:"deviceId,omitempty"`
	Wizard    *wizard.Wizard `json:"wizard"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// StartWizardRequest is the body of POST /wizard.
type StartWizardRequest struct {
	InitialVenue *wizard.Venue `json:"initial_venue"`
}

// PresentsRequest is the body of POST /wizard/:id/presents.
type PresentsRequest struct {
	Enabled bool `json:"enabled"`
}

// SubmitResponse confirms an accepted submission.
type SubmitResponse struct {
	Message string         `json:"message"`
	Wizard  *wizard.Wizard `json:"wizard"`
}
