package service

import (
	"context"

	"driveyard/internal/domain/entity"
)

// AdCopyService produces a sales description from listing attributes.
// Failures surface directly to the caller; there is no retry here.
type AdCopyService interface {
	Generate(ctx context.Context, attrs entity.ListingAttributes) (string, error)
}
