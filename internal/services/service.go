package services

import (
	"context"
	"errors"

	"github.com/pridecenter/pride-backend/internal/wizard"
	"github.com/pridecenter/pride-backend/pkg/prideapi"
)

// SubmissionFailedMessage is what visitors see when the REST API rejects or
// cannot be reached for a submission.
const SubmissionFailedMessage = "We couldn't submit your event right now. Please try again."

var (
	ErrSessionNotFound    = errors.New("wizard session not found")
	ErrNotOnReview        = errors.New("the event can only be submitted from the review step")
	ErrSubmissionFailed   = errors.New(SubmissionFailedMessage)
	ErrDeviceBlocked      = errors.New("this device is not allowed to submit events")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidRole        = errors.New("role must be admin or staff")
	ErrLastAdmin          = errors.New("cannot remove the last admin")
	ErrDeviceNotFound     = errors.New("device is not blocked")
)

// CommunityAPI is the remote REST API as seen by the services.
type CommunityAPI interface {
	CreateEventSubmission(ctx context.Context, payload wizard.Payload) error
	ListPublicEvents(ctx context.Context) ([]prideapi.PublicEvent, error)
	ListBands(ctx context.Context) ([]prideapi.Artist, error)
	GetOrganization(ctx context.Context, id string) (*prideapi.Organization, error)
	ListSponsors(ctx context.Context) ([]prideapi.Sponsor, error)
}

var _ CommunityAPI = (*prideapi.Client)(nil)
