package usecase

import (
	"context"

	"driveyard/internal/domain/entity"
	"driveyard/internal/domain/repository"
)

type ContactSettingsUseCase struct {
	settingsRepo repository.ContactSettingsRepository
}

func NewContactSettingsUseCase(settingsRepo repository.ContactSettingsRepository) *ContactSettingsUseCase {
	return &ContactSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// UpdateContactSettingsInput carries a partial update; nil fields keep
// their stored value.
type UpdateContactSettingsInput struct {
	WhatsappNumber   *string
	MessengerID      *string
	FacebookPageLink *string
}

func (uc *ContactSettingsUseCase) GetSettings(ctx context.Context) (*entity.ContactSettings, error) {
	return uc.settingsRepo.Get(ctx)
}

func (uc *ContactSettingsUseCase) UpdateSettings(ctx context.Context, input UpdateContactSettingsInput) (*entity.ContactSettings, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.WhatsappNumber != nil {
		settings.WhatsappNumber = *input.WhatsappNumber
	}
	if input.MessengerID != nil {
		settings.MessengerID = *input.MessengerID
	}
	if input.FacebookPageLink != nil {
		settings.FacebookPageLink = *input.FacebookPageLink
	}

	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
