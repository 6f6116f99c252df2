package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/humanity/backend/internal/common"
	"github.com/humanity/backend/internal/domain"
	"github.com/humanity/backend/internal/middleware"
	"github.com/humanity/backend/internal/service"
)

// QuestionHandler handles question requests
type QuestionHandler struct {
	service service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// List handles GET /api/v1/questions
// @Summary List all questions ordered by number
// @Tags questions
// @Produce json
// @Success 200 {object} common.APIResponse
// @Router /questions [get]
func (h *QuestionHandler) List(c *gin.Context) {
	questions, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, questions, nil)
}

// Get handles GET /api/v1/questions/:id
// @Summary Get a single question
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /questions/{id} [get]
func (h *QuestionHandler) Get(c *gin.Context) {
	question, err := h.service.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	common.SuccessResponse(c, question, nil)
}

// Create handles POST /api/v1/questions
// @Summary Add a question to the catalog (admin only)
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.CreateQuestionRequest true "Question payload"
// @Success 201 {object} common.APIResponse
// @Failure 403 {object} common.APIResponse
// @Failure 409 {object} common.APIResponse
// @Router /questions [post]
func (h *QuestionHandler) Create(c *gin.Context) {
	var req domain.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	question, err := h.service.Create(middleware.GetPrincipal(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	common.CreatedResponse(c, question)
}
