package router

import (
	"github.com/labstack/echo/v4"

	"driveyard/internal/adapter/api/middleware"
	"driveyard/internal/infrastructure/ratelimit"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, limiter *ratelimit.RateLimiter) {
	SetupListingRouter(e, authMiddleware, adminMiddleware)
	SetupFileRouter(e, authMiddleware, adminMiddleware)
	SetupReviewRouter(e, authMiddleware, adminMiddleware, limiter)
	SetupComplaintRouter(e, authMiddleware, adminMiddleware, limiter)
	SetupSettingsRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
