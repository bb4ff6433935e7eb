package repository

import (
	"context"

	"driveyard/internal/domain/entity"
)

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entity.Complaint) error
	GetByID(ctx context.Context, id string) (*entity.Complaint, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Complaint, int64, error)
	Update(ctx context.Context, complaint *entity.Complaint) error
	Delete(ctx context.Context, id string) error
}
