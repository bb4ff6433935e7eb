package usecase

import (
	"context"

	"driveyard/internal/domain/entity"
	"driveyard/internal/domain/repository"
	"driveyard/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
	}
}

type SubmitReviewInput struct {
	Name    string
	Email   string
	Rating  int
	Comment string
}

func (uc *ReviewUseCase) SubmitReview(ctx context.Context, input SubmitReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	review := &entity.Review{
		Name:    input.Name,
		Email:   input.Email,
		Rating:  input.Rating,
		Comment: input.Comment,
		// A review only becomes a testimonial by admin action
		IsTestimonial: false,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (uc *ReviewUseCase) ListReviews(ctx context.Context, testimonialOnly bool, page, limit int) ([]*entity.Review, int64, error) {
	filter := make(map[string]interface{})

	if testimonialOnly {
		filter["isTestimonial"] = true
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.reviewRepo.List(ctx, filter, limit, offset)
}

func (uc *ReviewUseCase) SetTestimonial(ctx context.Context, id string, isTestimonial bool) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	review.IsTestimonial = isTestimonial

	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (uc *ReviewUseCase) DeleteReview(ctx context.Context, id string) error {
	if _, err := uc.reviewRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.reviewRepo.Delete(ctx, id)
}
