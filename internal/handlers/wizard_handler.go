package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pridecenter/pride-backend/internal/middleware"
	"github.com/pridecenter/pride-backend/internal/models"
	"github.com/pridecenter/pride-backend/internal/services"
	"github.com/pridecenter/pride-backend/internal/wizard"
)

// WizardHandler exposes the event-submission wizard
type WizardHandler struct {
	submissions services.SubmissionService
}

// NewWizardHandler creates a new WizardHandler
func NewWizardHandler(submissions services.SubmissionService) *WizardHandler {
	return &WizardHandler{submissions: submissions}
}

// Start handles POST /wizard
func (h *WizardHandler) Start(c *gin.Context) {
	var req models.StartWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.submissions.Start(c.Request.Context(), middleware.DeviceID(c), req.InitialVenue)
	if err != nil {
		wizardError(c, nil, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// Get handles GET /wizard/:id
func (h *WizardHandler) Get(c *gin.Context) {
	session, err := h.submissions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		wizardError(c, nil, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateDraft handles PUT /wizard/:id/draft
func (h *WizardHandler) UpdateDraft(c *gin.Context) {
	var patch wizard.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.submissions.UpdateDraft(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		current, _ := h.submissions.Get(c.Request.Context(), c.Param("id"))
		wizardError(c, current, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Next handles POST /wizard/:id/next
func (h *WizardHandler) Next(c *gin.Context) {
	session, err := h.submissions.Next(c.Request.Context(), c.Param("id"))
	if err != nil {
		wizardError(c, session, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Back handles POST /wizard/:id/back
func (h *WizardHandler) Back(c *gin.Context) {
	session, err := h.submissions.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		wizardError(c, nil, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// TogglePresents handles POST /wizard/:id/presents
func (h *WizardHandler) TogglePresents(c *gin.Context) {
	var req models.PresentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.submissions.TogglePresents(c.Request.Context(), c.Param("id"), req.Enabled)
	if err != nil {
		wizardError(c, nil, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Submit handles POST /wizard/:id/submit
func (h *WizardHandler) Submit(c *gin.Context) {
	session, err := h.submissions.Submit(c.Request.Context(), c.Param("id"), middleware.DeviceID(c))
	if err != nil {
		wizardError(c, session, err)
		return
	}
	c.JSON(http.StatusOK, models.SubmitResponse{
		Message: "Thanks! Your event was submitted for review.",
		Wizard:  session.Wizard,
	})
}

// Discard handles DELETE /wizard/:id
func (h *WizardHandler) Discard(c *gin.Context) {
	if err := h.submissions.Discard(c.Request.Context(), c.Param("id")); err != nil {
		wizardError(c, nil, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSubmissions handles GET /admin/submissions
func (h *WizardHandler) ListSubmissions(c *gin.Context) {
	var query struct {
		City  string `form:"city"`
		Page  int    `form:"page"`
		Limit int    `form:"limit"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records, err := h.submissions.History(c.Request.Context(), models.SubmissionFilter{
		City:  query.City,
		Page:  query.Page,
		Limit: query.Limit,
	})
	if err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": records})
}
