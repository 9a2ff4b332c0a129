package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pridecenter/pride-backend/internal/models"
	"github.com/pridecenter/pride-backend/internal/services"
	"github.com/pridecenter/pride-backend/internal/wizard"
)

// wizardError maps a SubmissionService error to its HTTP answer. session may
// be nil; when present it is returned so the client can redraw the wizard.
func wizardError(c *gin.Context, session *models.WizardSession, err error) {
	body := gin.H{"error": err.Error()}
	if session != nil {
		body["session"] = session
	}

	var stepErr *wizard.StepError
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found"})
	case errors.Is(err, services.ErrDeviceBlocked):
		c.JSON(http.StatusForbidden, gin.H{"error": services.ErrDeviceBlocked.Error()})
	case errors.As(err, &stepErr):
		body["error"] = stepErr.Msg
		body["step"] = int(stepErr.Step)
		c.JSON(http.StatusUnprocessableEntity, body)
	case errors.Is(err, wizard.ErrValidation):
		body["error"] = wizard.Message(err)
		if session != nil && session.Wizard != nil {
			body["step"] = int(session.Wizard.Step)
		}
		c.JSON(http.StatusUnprocessableEntity, body)
	case errors.Is(err, services.ErrNotOnReview):
		c.JSON(http.StatusConflict, body)
	case errors.Is(err, services.ErrSubmissionFailed):
		body["error"] = services.SubmissionFailedMessage
		c.JSON(http.StatusBadGateway, body)
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// adminError maps back-office service errors.
func adminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrDeviceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmailTaken), errors.Is(err, services.ErrLastAdmin):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
