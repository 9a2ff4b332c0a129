package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/pridecenter/pride-backend/internal/models"
	"github.com/pridecenter/pride-backend/internal/repositories"
	"github.com/pridecenter/pride-backend/internal/utils"
	"go.uber.org/zap"
)

// ModerationService screens submitted prose and keeps the device block list.
type ModerationService interface {
	CheckDevice(ctx context.Context, deviceID string) error
	Screen(ctx context.Context, deviceID string, texts ...string) error
	ListBlocked(ctx context.Context) ([]*models.BlockedDevice, error)
	Unblock(ctx context.Context, deviceID string) error
}

type moderationService struct {
	devices repositories.BlockedDeviceRepository
	filter  *utils.HateSpeechFilter
	logger  *zap.Logger
}

// NewModerationService creates a new ModerationService. extraTerms extend
// utils.DefaultBannedTerms.
func NewModerationService(devices repositories.BlockedDeviceRepository, extraTerms []string, logger *zap.Logger) ModerationService {
	terms := make([]string, 0, len(utils.DefaultBannedTerms)+len(extraTerms))
	terms = append(terms, utils.DefaultBannedTerms...)
	terms = append(terms, extraTerms...)
	return &moderationService{
		devices: devices,
		filter:  utils.NewHateSpeechFilter(terms),
		logger:  logger.Named("moderation"),
	}
}

// CheckDevice returns ErrDeviceBlocked for blocked devices. Requests without
// a device id are never blocked here.
func (s *moderationService) CheckDevice(ctx context.Context, deviceID string) error {
	if deviceID == "" {
		return nil
	}
	blocked, err := s.devices.IsBlocked(ctx, deviceID)
	if err != nil {
		return fmt.Errorf("check device: %w", err)
	}
	if blocked {
		return ErrDeviceBlocked
	}
	return nil
}

// Screen rejects texts containing a banned term and blocks the device that
// sent them.
func (s *moderationService) Screen(ctx context.Context, deviceID string, texts ...string) error {
	term, found := s.filter.Match(texts...)
	if !found {
		return nil
	}
	s.logger.Warn("banned term in submission", zap.String("device_id", deviceID), zap.String("term", term))
	if deviceID != "" {
		err := s.devices.Add(ctx, &models.BlockedDevice{
			DeviceID: deviceID,
			Reason:   "hate speech in event submission",
			Excerpt:  term,
		})
		if err != nil {
			s.logger.Error("failed to block device", zap.String("device_id", deviceID), zap.Error(err))
		}
	}
	return ErrDeviceBlocked
}

func (s *moderationService) ListBlocked(ctx context.Context) ([]*models.BlockedDevice, error) {
	return s.devices.FindAll(ctx)
}

func (s *moderationService) Unblock(ctx context.Context, deviceID string) error {
	if err := s.devices.Remove(ctx, deviceID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrDeviceNotFound
		}
		return err
	}
	s.logger.Info("device unblocked", zap.String("device_id", deviceID))
	return nil
}
