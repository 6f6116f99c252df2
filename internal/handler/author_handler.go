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

// AuthorHandler handles author profile and directory requests
type AuthorHandler struct {
	service service.AuthorService
}

// NewAuthorHandler creates a new AuthorHandler
func NewAuthorHandler(service service.AuthorService) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// CreateProfile handles POST /api/v1/authors/profile
// @Summary Create an author profile and request authorship
// @Description Raises a moderation job; the caller becomes an author on approval
// @Tags authors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.CreateAuthorProfileRequest true "Profile payload"
// @Success 201 {object} common.APIResponse
// @Failure 409 {object} common.APIResponse
// @Router /authors/profile [post]
func (h *AuthorHandler) CreateProfile(c *gin.Context) {
	var req domain.CreateAuthorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.service.CreateProfile(middleware.GetPrincipal(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	common.CreatedResponse(c, resp)
}

// UpdateProfile handles PATCH /api/v1/authors/profile
// @Summary Update the caller's author profile
// @Description Changes apply immediately and raise a review job
// @Tags authors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.UpdateAuthorProfileRequest true "Fields to change"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /authors/profile [patch]
func (h *AuthorHandler) UpdateProfile(c *gin.Context) {
	var req domain.UpdateAuthorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.service.UpdateProfile(middleware.GetPrincipal(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, resp, nil)
}

// GetOwnProfile handles GET /api/v1/authors/profile
// @Summary Get the caller's own author profile
// @Tags authors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /authors/profile [get]
func (h *AuthorHandler) GetOwnProfile(c *gin.Context) {
	profile, err := h.service.GetOwnProfile(middleware.GetPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, profile, nil)
}

// List handles GET /api/v1/authors
// @Summary List the public author directory
// @Tags authors
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} common.APIResponse
// @Router /authors [get]
func (h *AuthorHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	items, total, err := h.service.ListAuthors(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, items, common.NewMeta(page, limit, total))
}

// Get handles GET /api/v1/authors/:id
// @Summary Get an author's public page with approved answers
// @Tags authors
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /authors/{id} [get]
func (h *AuthorHandler) Get(c *gin.Context) {
	detail, err := h.service.GetAuthor(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, detail, nil)
}
