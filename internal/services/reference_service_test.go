package services

import (
	"context"
	"errors"
	"testing"

	"github.com/pridecenter/pride-backend/pkg/prideapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestVenueOptions_DedupesAndSorts(t *testing.T) {
	api := &mockCommunityAPI{}
	api.On("ListPublicEvents", mock.Anything).Return([]prideapi.PublicEvent{
		{VenueName: "Velvet Lounge", City: "Chicago"},
		{VenueName: " velvet lounge ", City: "chicago"},
		{VenueName: "", City: " "},
		{VenueName: "Aster Bar", City: "Aurora"},
	}, nil)
	svc := NewReferenceService(api, "", zap.NewNop())

	opts := svc.VenueOptions(context.Background())

	assert.Equal(t, []string{"Aster Bar", "Velvet Lounge"}, opts.Venues)
	assert.Equal(t, []string{"Aurora", "Chicago"}, opts.Cities)
}

func TestReference_DegradesOnErrors(t *testing.T) {
	api := &mockCommunityAPI{}
	api.On("ListPublicEvents", mock.Anything).Return(nil, errors.New("down"))
	api.On("ListBands", mock.Anything).Return(nil, errors.New("down"))
	api.On("GetOrganization", mock.Anything, "42").Return(nil, errors.New("down"))
	svc := NewReferenceService(api, "42", zap.NewNop())
	ctx := context.Background()

	opts := svc.VenueOptions(ctx)
	assert.NotNil(t, opts.Venues)
	assert.Empty(t, opts.Venues)
	assert.NotNil(t, svc.Artists(ctx))
	assert.Empty(t, svc.Artists(ctx))
	assert.Equal(t, "", svc.OrganizationName(ctx))
}

func TestArtists_SortedAndBlankFree(t *testing.T) {
	api := &mockCommunityAPI{}
	api.On("ListBands", mock.Anything).Return([]prideapi.Artist{
		{ID: "2", Name: "velvet Static"},
		{ID: "", Name: "Ghost"},
		{ID: "1", Name: "Aster"},
	}, nil)
	svc := NewReferenceService(api, "", zap.NewNop())

	assert.Equal(t, []prideapi.Artist{{ID: "1", Name: "Aster"}, {ID: "2", Name: "velvet Static"}}, svc.Artists(context.Background()))
}

func TestOrganizationName_NoIDSkipsLookup(t *testing.T) {
	api := &mockCommunityAPI{}
	svc := NewReferenceService(api, "", zap.NewNop())

	assert.Equal(t, "", svc.OrganizationName(context.Background()))
	api.AssertNotCalled(t, "GetOrganization", mock.Anything, mock.Anything)
}
