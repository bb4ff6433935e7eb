package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"driveyard/internal/usecase"
	"driveyard/pkg/response"
	"driveyard/pkg/utils"
)

type ComplaintHandler struct {
	complaintUseCase *usecase.ComplaintUseCase
}

func NewComplaintHandler(complaintUseCase *usecase.ComplaintUseCase) *ComplaintHandler {
	return &ComplaintHandler{
		complaintUseCase: complaintUseCase,
	}
}

type submitComplaintRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Details string `json:"details" validate:"required,min=10"`
}

type setResolvedRequest struct {
	IsResolved bool `json:"is_resolved"`
}

func (h *ComplaintHandler) SubmitComplaint(c echo.Context) error {
	var req submitComplaintRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	complaint, err := h.complaintUseCase.SubmitComplaint(c.Request().Context(), usecase.SubmitComplaintInput{
		Name:    req.Name,
		Email:   req.Email,
		Details: req.Details,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, complaint)
}

func (h *ComplaintHandler) ListComplaints(c echo.Context) error {
	var resolved *bool
	if resolvedStr := c.QueryParam("resolved"); resolvedStr != "" {
		value, err := strconv.ParseBool(resolvedStr)
		if err == nil {
			resolved = &value
		}
	}

	pagination := utils.GetPaginationParams(c)

	complaints, total, err := h.complaintUseCase.ListComplaints(
		c.Request().Context(),
		resolved,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, complaints, total, pagination.Page, pagination.PageSize)
}

func (h *ComplaintHandler) SetResolved(c echo.Context) error {
	id := c.Param("id")

	var req setResolvedRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	complaint, err := h.complaintUseCase.SetResolved(c.Request().Context(), id, req.IsResolved)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, complaint)
}

func (h *ComplaintHandler) DeleteComplaint(c echo.Context) error {
	id := c.Param("id")

	if err := h.complaintUseCase.DeleteComplaint(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Complaint deleted successfully",
	})
}
