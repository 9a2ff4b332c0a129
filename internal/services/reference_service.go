package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/pridecenter/pride-backend/internal/models"
	"github.com/pridecenter/pride-backend/pkg/prideapi"
	"go.uber.org/zap"
)

// ReferenceService supplies suggestion lists for the wizard screens. None of
// its methods fail: upstream errors are logged and yield empty results.
type ReferenceService interface {
	VenueOptions(ctx context.Context) models.ReferenceOptions
	Artists(ctx context.Context) []prideapi.Artist
	OrganizationName(ctx context.Context) string
}

type referenceService struct {
	api    CommunityAPI
	orgID  string
	logger *zap.Logger

	mu      sync.Mutex
	orgName string
}

// NewReferenceService creates a new ReferenceService
func NewReferenceService(api CommunityAPI, organizationID string, logger *zap.Logger) ReferenceService {
	return &referenceService{api: api, orgID: organizationID, logger: logger.Named("reference")}
}

func (s *referenceService) VenueOptions(ctx context.Context) models.ReferenceOptions {
	events, err := s.api.ListPublicEvents(ctx)
	if err != nil {
		s.logger.Warn("failed to load public events", zap.Error(err))
		return models.ReferenceOptions{Venues: []string{}, Cities: []string{}}
	}

	venues := make([]string, 0, len(events))
	cities := make([]string, 0, len(events))
	for _, e := range events {
		venues = append(venues, e.VenueName)
		cities = append(cities, e.City)
	}
	return models.ReferenceOptions{
		Venues: uniqueSorted(venues),
		Cities: uniqueSorted(cities),
	}
}

func (s *referenceService) Artists(ctx context.Context) []prideapi.Artist {
	bands, err := s.api.ListBands(ctx)
	if err != nil {
		s.logger.Warn("failed to load bands", zap.Error(err))
		return []prideapi.Artist{}
	}
	out := make([]prideapi.Artist, 0, len(bands))
	for _, b := range bands {
		if strings.TrimSpace(b.ID) == "" || strings.TrimSpace(b.Name) == "" {
			continue
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// OrganizationName returns the configured organization's name, or "" when
// it is unknown. A successful lookup is remembered.
func (s *referenceService) OrganizationName(ctx context.Context) string {
	s.mu.Lock()
	cached := s.orgName
	s.mu.Unlock()
	if cached != "" {
		return cached
	}
	if s.orgID == "" {
		return ""
	}

	org, err := s.api.GetOrganization(ctx, s.orgID)
	if err != nil {
		s.logger.Warn("failed to load organization", zap.String("organization_id", s.orgID), zap.Error(err))
		return ""
	}
	name := strings.TrimSpace(org.Name)
	s.mu.Lock()
	s.orgName = name
	s.mu.Unlock()
	return name
}

// uniqueSorted trims, drops blanks and case-insensitive duplicates (keeping
// the first spelling) and sorts the rest.
func uniqueSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
