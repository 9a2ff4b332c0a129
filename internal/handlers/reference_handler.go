package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pridecenter/pride-backend/internal/services"
	"github.com/pridecenter/pride-backend/internal/wizard"
)

// ReferenceHandler serves suggestion lists. It never fails: upstream
// problems surface as empty lists.
type ReferenceHandler struct {
	reference services.ReferenceService
	sponsors  services.SponsorService
}

func NewReferenceHandler(reference services.ReferenceService, sponsors services.SponsorService) *ReferenceHandler {
	return &ReferenceHandler{reference: reference, sponsors: sponsors}
}

// Venues handles GET /reference/venues
func (h *ReferenceHandler) Venues(c *gin.Context) {
	c.JSON(http.StatusOK, h.reference.VenueOptions(c.Request.Context()))
}

// Artists handles GET /reference/artists
func (h *ReferenceHandler) Artists(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"artists": h.reference.Artists(c.Request.Context())})
}

// Organization handles GET /reference/organization
func (h *ReferenceHandler) Organization(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"name": h.reference.OrganizationName(c.Request.Context())})
}

// EventTypes handles GET /reference/event-types
func (h *ReferenceHandler) EventTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"event_types": wizard.EventTypes})
}

// Sponsors handles GET /sponsors
func (h *ReferenceHandler) Sponsors(c *gin.Context) {
	sponsors, err := h.sponsors.ListSponsors(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Sponsors are unavailable right now"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sponsors": sponsors})
}
