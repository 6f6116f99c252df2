package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/humanity/backend/internal/common"
	"github.com/humanity/backend/internal/domain"
	"github.com/humanity/backend/internal/middleware"
	"github.com/humanity/backend/internal/service"
)

// AdminHandler handles administrative user management requests
type AdminHandler struct {
	service service.AdminService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(service service.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListUsers handles GET /api/v1/admin/users
// @Summary List registered users (admin only)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} common.APIResponse
// @Failure 403 {object} common.APIResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := h.service.ListUsers(middleware.GetPrincipal(c), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, users, common.NewMeta(page, limit, total))
}

// UpdateUserRole handles PATCH /api/v1/admin/users/:id
// @Summary Change a user's role (admin only)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body domain.UpdateUserRequest true "New role"
// @Success 200 {object} common.APIResponse
// @Failure 403 {object} common.APIResponse
// @Router /admin/users/{id} [patch]
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	var req domain.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.service.UpdateUserRole(middleware.GetPrincipal(c), c.Param("id"), req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, user, nil)
}

// Dashboard handles GET /api/v1/admin/dashboard
// @Summary Get moderation queue and user counters (admin only)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} common.APIResponse
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context(), middleware.GetPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, stats, nil)
}
