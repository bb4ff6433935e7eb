package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSettings_EmptyByDefault(t *testing.T) {
	uc := NewContactSettingsUseCase(newFakeSettingsRepo())

	settings, err := uc.GetSettings(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, settings.WhatsappNumber)
	assert.Empty(t, settings.MessengerID)
	assert.Empty(t, settings.FacebookPageLink)
}

func TestUpdateSettings_PartialUpdate(t *testing.T) {
	settingsRepo := newFakeSettingsRepo()
	uc := NewContactSettingsUseCase(settingsRepo)

	whatsapp := "+6281234567890"
	messenger := "driveyard.motors"
	_, err := uc.UpdateSettings(context.Background(), UpdateContactSettingsInput{
		WhatsappNumber: &whatsapp,
		MessengerID:    &messenger,
	})
	assert.NoError(t, err)

	// A later update touching one field keeps the others
	newWhatsapp := "+6289876543210"
	settings, err := uc.UpdateSettings(context.Background(), UpdateContactSettingsInput{
		WhatsappNumber: &newWhatsapp,
	})

	assert.NoError(t, err)
	assert.Equal(t, newWhatsapp, settings.WhatsappNumber)
	assert.Equal(t, messenger, settings.MessengerID)
	assert.False(t, settings.UpdatedAt.IsZero())
}
