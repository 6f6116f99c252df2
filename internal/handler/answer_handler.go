package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/humanity/backend/internal/common"
	"github.com/humanity/backend/internal/domain"
	"github.com/humanity/backend/internal/middleware"
	"github.com/humanity/backend/internal/service"
)

// AnswerHandler handles answer requests
type AnswerHandler struct {
	answers service.AnswerService
	likes   service.LikeService
}

// NewAnswerHandler creates a new AnswerHandler
func NewAnswerHandler(answers service.AnswerService, likes service.LikeService) *AnswerHandler {
	return &AnswerHandler{answers: answers, likes: likes}
}

// Submit handles POST /api/v1/questions/:id/answers
// @Summary Submit an answer to a question (authors only)
// @Description The answer is created pending and goes through moderation
// @Tags answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Param request body domain.SubmitAnswerRequest true "Answer payload"
// @Success 201 {object} common.APIResponse
// @Failure 403 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /questions/{id}/answers [post]
func (h *AnswerHandler) Submit(c *gin.Context) {
	var req domain.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.answers.Submit(middleware.GetPrincipal(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	common.CreatedResponse(c, resp)
}

// ListForQuestion handles GET /api/v1/questions/:id/answers
// @Summary List a question's answers, most liked first
// @Description Public callers see approved answers; moderators may pass all=true
// @Tags answers
// @Produce json
// @Param id path string true "Question ID"
// @Param all query bool false "Include unapproved answers (moderators only)"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /questions/{id}/answers [get]
func (h *AnswerHandler) ListForQuestion(c *gin.Context) {
	includeAll := c.Query("all") == "true"

	items, err := h.answers.ListForQuestion(c.Request.Context(), middleware.GetPrincipal(c), c.Param("id"), includeAll)
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, items, nil)
}

// Get handles GET /api/v1/answers/:id
// @Summary Get a single answer with its question
// @Tags answers
// @Produce json
// @Param id path string true "Answer ID"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /answers/{id} [get]
func (h *AnswerHandler) Get(c *gin.Context) {
	answer, err := h.answers.Get(middleware.GetPrincipal(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, answer, nil)
}

// ListByUser handles GET /api/v1/users/:id/answers
// @Summary List a user's answers with their questions
// @Tags answers
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} common.APIResponse
// @Router /users/{id}/answers [get]
func (h *AnswerHandler) ListByUser(c *gin.Context) {
	items, err := h.answers.ListByUser(middleware.GetPrincipal(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, items, nil)
}

// Like handles POST /api/v1/answers/:id/like
// @Summary Like an answer
// @Tags answers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Answer ID"
// @Success 200 {object} common.APIResponse
// @Failure 409 {object} common.APIResponse
// @Router /answers/{id}/like [post]
func (h *AnswerHandler) Like(c *gin.Context) {
	resp, err := h.likes.Like(middleware.GetPrincipal(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, resp, nil)
}

// Unlike handles DELETE /api/v1/answers/:id/like
// @Summary Remove a like from an answer
// @Tags answers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Answer ID"
// @Success 200 {object} common.APIResponse
// @Failure 409 {object} common.APIResponse
// @Router /answers/{id}/like [delete]
func (h *AnswerHandler) Unlike(c *gin.Context) {
	resp, err := h.likes.Unlike(middleware.GetPrincipal(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, resp, nil)
}

// LikeStatus handles GET /api/v1/answers/:id/like
// @Summary Get an answer's like count and whether the caller liked it
// @Tags answers
// @Produce json
// @Param id path string true "Answer ID"
// @Success 200 {object} common.APIResponse
// @Router /answers/{id}/like [get]
func (h *AnswerHandler) LikeStatus(c *gin.Context) {
	resp, err := h.likes.Status(middleware.GetPrincipal(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, resp, nil)
}
