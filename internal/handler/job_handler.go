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

// JobHandler handles moderation queue requests
type JobHandler struct {
	service service.JobService
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(service service.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List handles GET /api/v1/jobs
// @Summary List moderation jobs, newest first (admin only)
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter (pending, approved, rejected)"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} common.APIResponse
// @Failure 403 {object} common.APIResponse
// @Router /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	items, total, err := h.service.List(middleware.GetPrincipal(c), c.Query("status"), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, items, common.NewMeta(page, limit, total))
}

// Get handles GET /api/v1/jobs/:id
// @Summary Get a job with its owner and the entity it concerns (admin only)
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	detail, err := h.service.Get(middleware.GetPrincipal(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, detail, nil)
}

// SetStatus handles PATCH /api/v1/jobs/:id
// @Summary Approve or reject a pending job (admin only)
// @Description Applies the gated entity change atomically with the transition
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body domain.JobStatusRequest true "Target status"
// @Success 200 {object} common.APIResponse
// @Failure 409 {object} common.APIResponse
// @Router /jobs/{id} [patch]
func (h *JobHandler) SetStatus(c *gin.Context) {
	var req domain.JobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	job, err := h.service.SetStatus(middleware.GetPrincipal(c), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, job, nil)
}

// PendingCount handles GET /api/v1/jobs/pending/count
// @Summary Get the number of pending jobs (admin only)
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} common.APIResponse
// @Router /jobs/pending/count [get]
func (h *JobHandler) PendingCount(c *gin.Context) {
	count, err := h.service.PendingCount(c.Request.Context(), middleware.GetPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"count": count}, nil)
}
