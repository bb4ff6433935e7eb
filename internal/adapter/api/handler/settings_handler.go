package handler

import (
	"github.com/labstack/echo/v4"

	"driveyard/internal/usecase"
	"driveyard/pkg/response"
)

type SettingsHandler struct {
	settingsUseCase *usecase.ContactSettingsUseCase
}

func NewSettingsHandler(settingsUseCase *usecase.ContactSettingsUseCase) *SettingsHandler {
	return &SettingsHandler{
		settingsUseCase: settingsUseCase,
	}
}

// Pointer fields so an omitted field is distinguishable from an empty one
type updateSettingsRequest struct {
	WhatsappNumber   *string `json:"whatsapp_number"`
	MessengerID      *string `json:"messenger_id"`
	FacebookPageLink *string `json:"facebook_page_link"`
}

func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsUseCase.GetSettings(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, settings)
}

func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req updateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	settings, err := h.settingsUseCase.UpdateSettings(c.Request().Context(), usecase.UpdateContactSettingsInput{
		WhatsappNumber:   req.WhatsappNumber,
		MessengerID:      req.MessengerID,
		FacebookPageLink: req.FacebookPageLink,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, settings)
}
