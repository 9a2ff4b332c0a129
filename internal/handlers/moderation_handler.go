package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pridecenter/pride-backend/internal/services"
)

// ModerationHandler exposes the blocked device list
type ModerationHandler struct {
	moderation services.ModerationService
}

func NewModerationHandler(moderation services.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderation: moderation}
}

// ListDevices handles GET /admin/devices
func (h *ModerationHandler) ListDevices(c *gin.Context) {
	devices, err := h.moderation.ListBlocked(c.Request.Context())
	if err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"devices": devices})
}

// UnblockDevice handles DELETE /admin/devices/:deviceId
func (h *ModerationHandler) UnblockDevice(c *gin.Context) {
	if err := h.moderation.Unblock(c.Request.Context(), c.Param("deviceId")); err != nil {
		adminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
