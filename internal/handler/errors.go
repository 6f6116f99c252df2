package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/humanity/backend/internal/common"
)

// respondError maps service errors onto HTTP status codes. Unrecognized
// errors become a 500 without leaking internals into the message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		common.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials", err)
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrExpiredToken):
		common.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token", err)
	case errors.Is(err, common.ErrUnauthorized):
		common.ErrorResponse(c, http.StatusUnauthorized, "Authentication required", err)
	case errors.Is(err, common.ErrForbidden):
		common.ErrorResponse(c, http.StatusForbidden, "Access denied", err)
	case errors.Is(err, common.ErrNotAuthor):
		common.ErrorResponse(c, http.StatusForbidden, "Author access required", err)
	case errors.Is(err, common.ErrNotFound),
		errors.Is(err, common.ErrUserNotFound),
		errors.Is(err, common.ErrQuestionNotFound),
		errors.Is(err, common.ErrAnswerNotFound),
		errors.Is(err, common.ErrProfileNotFound),
		errors.Is(err, common.ErrJobNotFound):
		common.ErrorResponse(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, common.ErrUserAlreadyExists),
		errors.Is(err, common.ErrProfileAlreadyExists),
		errors.Is(err, common.ErrQuestionNumberUsed),
		errors.Is(err, common.ErrAlreadyLiked),
		errors.Is(err, common.ErrNotLiked),
		errors.Is(err, common.ErrJobAlreadyProcessed):
		common.ErrorResponse(c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, common.ErrInvalidJobStatus),
		errors.Is(err, common.ErrInvalidRole),
		errors.Is(err, common.ErrInvalidInput),
		errors.Is(err, common.ErrInvalidLink),
		errors.Is(err, common.ErrTooManyLinks):
		common.ErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
