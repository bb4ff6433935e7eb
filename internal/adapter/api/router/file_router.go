package router

import (
	"github.com/labstack/echo/v4"

	"driveyard/internal/adapter/api/handler"
	"driveyard/internal/adapter/api/middleware"
)

func SetupFileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	fileHandler := handler.GetFileHandler()

	images := e.Group("/v1/admin/images")
	images.Use(authMiddleware.Authenticate)
	images.Use(adminMiddleware.AdminOnly)
	images.POST("", fileHandler.UploadImage)
	images.DELETE("", fileHandler.DeleteImage)
}
