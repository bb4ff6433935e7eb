package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"driveyard/internal/usecase"
	"driveyard/pkg/response"
	"driveyard/pkg/utils"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type submitReviewRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required"`
}

type setTestimonialRequest struct {
	IsTestimonial bool `json:"is_testimonial"`
}

func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.SubmitReview(c.Request().Context(), usecase.SubmitReviewInput{
		Name:    req.Name,
		Email:   req.Email,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	testimonialOnly := false
	if testimonialStr := c.QueryParam("testimonial"); testimonialStr != "" {
		testimonialOnly, _ = strconv.ParseBool(testimonialStr)
	}

	pagination := utils.GetPaginationParams(c)

	reviews, total, err := h.reviewUseCase.ListReviews(
		c.Request().Context(),
		testimonialOnly,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reviews, total, pagination.Page, pagination.PageSize)
}

func (h *ReviewHandler) SetTestimonial(c echo.Context) error {
	id := c.Param("id")

	var req setTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.SetTestimonial(c.Request().Context(), id, req.IsTestimonial)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	id := c.Param("id")

	if err := h.reviewUseCase.DeleteReview(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Review deleted successfully",
	})
}
