package router

import (
	"github.com/labstack/echo/v4"

	"driveyard/internal/adapter/api/handler"
	"driveyard/internal/adapter/api/middleware"
)

func SetupSettingsRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	settingsHandler := handler.GetSettingsHandler()

	e.GET("/v1/settings", settingsHandler.GetSettings)

	e.POST("/v1/settings", settingsHandler.UpdateSettings,
		authMiddleware.Authenticate,
		adminMiddleware.AdminOnly,
	)
}
