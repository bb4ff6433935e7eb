package router

import (
	"github.com/labstack/echo/v4"

	"driveyard/internal/adapter/api/handler"
	"driveyard/internal/adapter/api/middleware"
	"driveyard/internal/infrastructure/ratelimit"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, limiter *ratelimit.RateLimiter) {
	reviewHandler := handler.GetReviewHandler()

	reviews := e.Group("/v1/reviews")
	reviews.GET("", reviewHandler.ListReviews)
	reviews.POST("", reviewHandler.SubmitReview, middleware.SubmissionRateLimit(limiter, "submit_review"))

	admin := e.Group("/v1/admin/reviews")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", reviewHandler.ListReviews)
	admin.PATCH("/:id/testimonial", reviewHandler.SetTestimonial)
	admin.DELETE("/:id", reviewHandler.DeleteReview)
}
