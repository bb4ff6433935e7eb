package repository

import (
	"context"

	"driveyard/internal/domain/entity"
)

type FileMetadataRepository interface {
	Create(ctx context.Context, metadata *entity.FileMetadata) error
	GetByURL(ctx context.Context, url string) (*entity.FileMetadata, error)
	DeleteByURL(ctx context.Context, url string) error
}
