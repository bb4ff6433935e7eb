package handler

import (
	"driveyard/internal/usecase"
)

var (
	listingHandler   *ListingHandler
	reviewHandler    *ReviewHandler
	complaintHandler *ComplaintHandler
	settingsHandler  *SettingsHandler
	healthHandler    *HealthHandler
)

func Setup(
	listingUseCase *usecase.ListingUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	complaintUseCase *usecase.ComplaintUseCase,
	settingsUseCase *usecase.ContactSettingsUseCase,
) {
	listingHandler = NewListingHandler(listingUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	complaintHandler = NewComplaintHandler(complaintUseCase)
	settingsHandler = NewSettingsHandler(settingsUseCase)
	healthHandler = NewHealthHandler()
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetComplaintHandler() *ComplaintHandler {
	return complaintHandler
}

func GetSettingsHandler() *SettingsHandler {
	return settingsHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
