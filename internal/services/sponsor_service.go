package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pridecenter/pride-backend/internal/models"
	"github.com/pridecenter/pride-backend/internal/utils"
)

var tierRank = map[string]int{
	"platinum": 0,
	"gold":     1,
	"silver":   2,
	"bronze":   3,
}

// SponsorService lists sponsors ready for display.
type SponsorService interface {
	ListSponsors(ctx context.Context) ([]models.SponsorView, error)
}

type sponsorService struct {
	api CommunityAPI
}

func NewSponsorService(api CommunityAPI) SponsorService {
	return &sponsorService{api: api}
}

// ListSponsors orders sponsors by tier (unknown tiers last) then name.
func (s *sponsorService) ListSponsors(ctx context.Context) ([]models.SponsorView, error) {
	sponsors, err := s.api.ListSponsors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sponsors: %w", err)
	}

	views := make([]models.SponsorView, 0, len(sponsors))
	for _, sp := range sponsors {
		views = append(views, models.SponsorView{
			ID:        sp.ID,
			Name:      strings.TrimSpace(sp.Name),
			Tier:      strings.ToLower(strings.TrimSpace(sp.Tier)),
			TierBadge: utils.SponsorTierBadge(sp.Tier),
			Phone:     utils.FormatPhone(sp.Phone),
			Website:   utils.NormalizeURL(sp.Website),
			LogoURL:   utils.NormalizeURL(sp.LogoURL),
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		ri, rj := rank(views[i].Tier), rank(views[j].Tier)
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(views[i].Name) < strings.ToLower(views[j].Name)
	})
	return views, nil
}

func rank(tier string) int {
	if r, ok := tierRank[tier]; ok {
		return r
	}
	return len(tierRank)
}
