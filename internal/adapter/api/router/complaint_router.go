package router

import (
	"github.com/labstack/echo/v4"

	"driveyard/internal/adapter/api/handler"
	"driveyard/internal/adapter/api/middleware"
	"driveyard/internal/infrastructure/ratelimit"
)

func SetupComplaintRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, limiter *ratelimit.RateLimiter) {
	complaintHandler := handler.GetComplaintHandler()

	e.POST("/v1/complaints", complaintHandler.SubmitComplaint, middleware.SubmissionRateLimit(limiter, "submit_complaint"))

	admin := e.Group("/v1/admin/complaints")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", complaintHandler.ListComplaints)
	admin.PATCH("/:id/resolve", complaintHandler.SetResolved)
	admin.DELETE("/:id", complaintHandler.DeleteComplaint)
}
