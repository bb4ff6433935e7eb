package repository

import (
	"context"

	"driveyard/internal/domain/entity"
)

type ContactSettingsRepository interface {
	Get(ctx context.Context) (*entity.ContactSettings, error)
	Save(ctx context.Context, settings *entity.ContactSettings) error
}
