package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/humanity/backend/internal/handler"
	"github.com/humanity/backend/internal/middleware"
	"github.com/humanity/backend/pkg/jwt"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	questionHandler *handler.QuestionHandler,
	answerHandler *handler.AnswerHandler,
	authorHandler *handler.AuthorHandler,
	jobHandler *handler.JobHandler,
	adminHandler *handler.AdminHandler,
	jwtManager *jwt.Manager,
) {
	api := router.Group("/api/v1")

	requireAuth := middleware.JWTAuth(jwtManager)
	optionalAuth := middleware.OptionalJWTAuth(jwtManager)
	requireAdmin := middleware.RequireAdmin()

	// Authentication
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)
	auth.GET("/me", requireAuth, authHandler.Me)

	// Questions
	questions := api.Group("/questions")
	questions.GET("", questionHandler.List)
	questions.GET("/:id", questionHandler.Get)
	questions.POST("", requireAuth, requireAdmin, questionHandler.Create)

	// Answers nested under questions
	questions.GET("/:id/answers", optionalAuth, answerHandler.ListForQuestion)
	questions.POST("/:id/answers", requireAuth, answerHandler.Submit)

	// Answers
	answers := api.Group("/answers")
	answers.GET("/:id", optionalAuth, answerHandler.Get)
	answers.GET("/:id/like", optionalAuth, answerHandler.LikeStatus)
	answers.POST("/:id/like", requireAuth, answerHandler.Like)
	answers.DELETE("/:id/like", requireAuth, answerHandler.Unlike)

	// User answers
	api.GET("/users/:id/answers", optionalAuth, answerHandler.ListByUser)

	// Authors
	authors := api.Group("/authors")
	authors.GET("", authorHandler.List)
	authors.GET("/profile", requireAuth, authorHandler.GetOwnProfile)
	authors.POST("/profile", requireAuth, authorHandler.CreateProfile)
	authors.PATCH("/profile", requireAuth, authorHandler.UpdateProfile)
	authors.GET("/:id", authorHandler.Get)

	// Moderation queue
	jobs := api.Group("/jobs", requireAuth, requireAdmin)
	jobs.GET("", jobHandler.List)
	jobs.GET("/pending/count", jobHandler.PendingCount)
	jobs.GET("/:id", jobHandler.Get)
	jobs.PATCH("/:id", jobHandler.SetStatus)

	// Administration
	admin := api.Group("/admin", requireAuth, requireAdmin)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users/:id", adminHandler.UpdateUserRole)
	admin.GET("/dashboard", adminHandler.Dashboard)
}
