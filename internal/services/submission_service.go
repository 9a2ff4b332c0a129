package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pridecenter/pride-backend/internal/models"
	"github.com/pridecenter/pride-backend/internal/repositories"
	"github.com/pridecenter/pride-backend/internal/store"
	"github.com/pridecenter/pride-backend/internal/wizard"
	"github.com/pridecenter/pride-backend/pkg/prideapi"
	"go.uber.org/zap"
)

// SubmissionService drives wizard sessions from creation to submission.
// Operations on one session never run concurrently.
type SubmissionService interface {
	Start(ctx context.Context, deviceID string, initial *wizard.Venue) (*models.WizardSession, error)
	Get(ctx context.Context, id string) (*models.WizardSession, error)
	UpdateDraft(ctx context.Context, id string, patch wizard.Patch) (*models.WizardSession, error)
	Next(ctx context.Context, id string) (*models.WizardSession, error)
	Back(ctx context.Context, id string) (*models.WizardSession, error)
	TogglePresents(ctx context.Context, id string, on bool) (*models.WizardSession, error)
	Submit(ctx context.Context, id, deviceID string) (*models.WizardSession, error)
	Discard(ctx context.Context, id string) error
	History(ctx context.Context, filter models.SubmissionFilter) ([]*models.SubmissionRecord, error)
}

type submissionService struct {
	store      store.WizardStore
	api        CommunityAPI
	reference  ReferenceService
	moderation ModerationService
	audit      repositories.SubmissionRepository
	locks      *keyedLocks
	now        func() time.Time
	logger     *zap.Logger
}

// NewSubmissionService creates a new SubmissionService
func NewSubmissionService(
	wizards store.WizardStore,
	api CommunityAPI,
	reference ReferenceService,
	moderation ModerationService,
	audit repositories.SubmissionRepository,
	logger *zap.Logger,
) SubmissionService {
	return &submissionService{
		store:      wizards,
		api:        api,
		reference:  reference,
		moderation: moderation,
		audit:      audit,
		locks:      newKeyedLocks(),
		now:        time.Now,
		logger:     logger.Named("submission"),
	}
}

// Start opens a session on step 1, pre-filled with initial when given.
func (s *submissionService) Start(ctx context.Context, deviceID string, initial *wizard.Venue) (*models.WizardSession, error) {
	if err := s.moderation.CheckDevice(ctx, deviceID); err != nil {
		return nil, err
	}

	now := s.now()
	session := &models.WizardSession{
		ID:        uuid.NewString(),
		DeviceID:  deviceID,
		Wizard:    wizard.New(initial),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save wizard: %w", err)
	}
	s.logger.Debug("wizard started", zap.String("session_id", session.ID))
	return session, nil
}

func (s *submissionService) Get(ctx context.Context, id string) (*models.WizardSession, error) {
	return s.load(ctx, id)
}

// UpdateDraft applies patch atomically. Fields that are not allowed in the
// current configuration come back as a validation error and nothing changes.
func (s *submissionService) UpdateDraft(ctx context.Context, id string, patch wizard.Patch) (*models.WizardSession, error) {
	return s.mutate(ctx, id, func(session *models.WizardSession) error {
		return session.Wizard.Draft.Apply(patch)
	})
}

// Next advances after validating the current step. On a validation failure
// the session is still saved, carrying the error message, and returned along
// with the error.
func (s *submissionService) Next(ctx context.Context, id string) (*models.WizardSession, error) {
	var stepErr error
	session, err := s.mutate(ctx, id, func(session *models.WizardSession) error {
		stepErr = session.Wizard.Next()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, stepErr
}

func (s *submissionService) Back(ctx context.Context, id string) (*models.WizardSession, error) {
	return s.mutate(ctx, id, func(session *models.WizardSession) error {
		session.Wizard.Back()
		return nil
	})
}

// TogglePresents adds or removes the "<Org> Presents:" banner. Without a
// known organization name the description is left alone.
func (s *submissionService) TogglePresents(ctx context.Context, id string, on bool) (*models.WizardSession, error) {
	org := s.reference.OrganizationName(ctx)
	return s.mutate(ctx, id, func(session *models.WizardSession) error {
		session.Wizard.SetPresents(org, on)
		return nil
	})
}

// Submit sends the composed event to the REST API. Only a wizard on the
// review step whose every step validates is sent. On success the wizard is
// reset; on failure it stays on the review step with the draft intact.
func (s *submissionService) Submit(ctx context.Context, id, deviceID string) (*models.WizardSession, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if deviceID == "" {
		deviceID = session.DeviceID
	}
	if err := s.moderation.CheckDevice(ctx, deviceID); err != nil {
		return nil, err
	}

	w := session.Wizard
	if w.Step != wizard.StepReview {
		return session, ErrNotOnReview
	}
	if _, err := wizard.ValidateAll(&w.Draft); err != nil {
		w.Error = wizard.Message(err)
		if saveErr := s.save(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		return session, err
	}

	payload := wizard.Compose(w.Draft)
	if err := s.moderation.Screen(ctx, deviceID, payload.VenueName, payload.Description); err != nil {
		return session, err
	}

	if err := s.api.CreateEventSubmission(ctx, payload); err != nil {
		s.logger.Warn("event submission failed", zap.String("session_id", id), zap.Error(err))
		w.Error = SubmissionFailedMessage
		if saveErr := s.save(ctx, session); saveErr != nil {
			s.logger.Error("failed to keep draft after submission failure", zap.String("session_id", id), zap.Error(saveErr))
		}
		return session, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	s.record(ctx, session, deviceID, payload)
	w.Reset()
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	s.logger.Info("event submitted", zap.String("session_id", id), zap.String("venue", payload.VenueName))
	return session, nil
}

func (s *submissionService) Discard(ctx context.Context, id string) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	return nil
}

func (s *submissionService) History(ctx context.Context, filter models.SubmissionFilter) ([]*models.SubmissionRecord, error) {
	return s.audit.FindAll(ctx, filter)
}

// record writes the audit entry. The submission already succeeded, so a
// failure here is only logged.
func (s *submissionService) record(ctx context.Context, session *models.WizardSession, deviceID string, payload wizard.Payload) {
	entry := &models.SubmissionRecord{
		SessionID:   session.ID,
		DeviceID:    deviceID,
		RequestID:   prideapi.RequestIDFromContext(ctx),
		VenueName:   payload.VenueName,
		City:        payload.City,
		EventType:   payload.EventType,
		Pattern:     string(payload.RecurrencePattern),
		Payload:     payload,
		SubmittedAt: s.now(),
	}
	if err := s.audit.Create(ctx, entry); err != nil {
		s.logger.Error("failed to record submission", zap.String("session_id", session.ID), zap.Error(err))
	}
}

func (s *submissionService) mutate(ctx context.Context, id string, fn func(*models.WizardSession) error) (*models.WizardSession, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *submissionService) load(ctx context.Context, id string) (*models.WizardSession, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrSessionNotFound
	}
	session, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("load wizard: %w", err)
	}
	if session.Wizard == nil {
		session.Wizard = wizard.New(nil)
	}
	return session, nil
}

func (s *submissionService) save(ctx context.Context, session *models.WizardSession) error {
	session.UpdatedAt = s.now()
	if err := s.store.Save(ctx, session); err != nil {
		return fmt.Errorf("save wizard: %w", err)
	}
	return nil
}
