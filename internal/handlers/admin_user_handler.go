package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pridecenter/pride-backend/internal/middleware"
	"github.com/pridecenter/pride-backend/internal/models"
	"github.com/pridecenter/pride-backend/internal/services"
)

// AdminUserHandler handles back-office account management
type AdminUserHandler struct {
	users services.AdminUserService
}

// NewAdminUserHandler creates a new AdminUserHandler
func NewAdminUserHandler(users services.AdminUserService) *AdminUserHandler {
	return &AdminUserHandler{users: users}
}

// List handles GET /admin/users
func (h *AdminUserHandler) List(c *gin.Context) {
	users, err := h.users.ListAdminUsers(c.Request.Context())
	if err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// Create handles POST /admin/users
func (h *AdminUserHandler) Create(c *gin.Context) {
	var req models.CreateAdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.users.CreateAdminUser(c.Request.Context(), &req)
	if err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Get handles GET /admin/users/:id
func (h *AdminUserHandler) Get(c *gin.Context) {
	user, err := h.users.GetAdminUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update handles PUT /admin/users/:id
func (h *AdminUserHandler) Update(c *gin.Context) {
	var req models.UpdateAdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.users.UpdateAdminUser(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /admin/users/:id. Admins cannot delete themselves.
func (h *AdminUserHandler) Delete(c *gin.Context) {
	if session, ok := middleware.CurrentSession(c); ok && session.UserID == c.Param("id") {
		c.JSON(http.StatusConflict, gin.H{"error": "You cannot delete your own account"})
		return
	}
	if err := h.users.DeleteAdminUser(c.Request.Context(), c.Param("id")); err != nil {
		adminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
