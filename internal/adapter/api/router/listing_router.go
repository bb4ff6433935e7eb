package router

import (
	"github.com/labstack/echo/v4"

	"driveyard/internal/adapter/api/handler"
	"driveyard/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	listingHandler := handler.GetListingHandler()

	listings := e.Group("/v1/listings")
	listings.GET("", listingHandler.ListListings)
	listings.GET("/:id", listingHandler.GetListing)

	admin := e.Group("/v1/admin/listings")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", listingHandler.CreateListing)
	admin.PUT("/:id", listingHandler.UpdateListing)
	admin.DELETE("/:id", listingHandler.DeleteListing)
	admin.POST("/ad-copy", listingHandler.GenerateAdCopy)
}
