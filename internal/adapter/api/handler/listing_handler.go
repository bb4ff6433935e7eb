package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"driveyard/internal/domain/entity"
	"driveyard/internal/usecase"
	"driveyard/pkg/response"
	"driveyard/pkg/utils"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

type listingRequest struct {
	Make        string   `json:"make" validate:"required"`
	Model       string   `json:"model" validate:"required"`
	Year        int      `json:"year" validate:"required,gte=1900"`
	Price       float64  `json:"price" validate:"gte=0"`
	Mileage     float64  `json:"mileage" validate:"gte=0"`
	Condition   string   `json:"condition" validate:"required,oneof=new used-excellent used-good used-fair"`
	Features    []string `json:"features"`
	Images      []string `json:"images" validate:"required,min=1"`
	Description string   `json:"description" validate:"required,min=10,max=2000"`
	Sold        bool     `json:"sold"`
}

type adCopyRequest struct {
	Make      string   `json:"make" validate:"required"`
	Model     string   `json:"model" validate:"required"`
	Year      int      `json:"year" validate:"required,gte=1900"`
	Price     float64  `json:"price" validate:"gte=0"`
	Mileage   float64  `json:"mileage" validate:"gte=0"`
	Condition string   `json:"condition" validate:"required,oneof=new used-excellent used-good used-fair"`
	Features  []string `json:"features"`
}

func (r listingRequest) toInput() usecase.ListingInput {
	return usecase.ListingInput{
		Make:        r.Make,
		Model:       r.Model,
		Year:        r.Year,
		Price:       r.Price,
		Mileage:     r.Mileage,
		Condition:   r.Condition,
		Features:    r.Features,
		Images:      r.Images,
		Description: r.Description,
		Sold:        r.Sold,
	}
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.CreateListing(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, listing)
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	id := c.Param("id")

	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.UpdateListing(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	id := c.Param("id")

	listing, err := h.listingUseCase.GetListingByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) ListListings(c echo.Context) error {
	condition := c.QueryParam("condition")
	sort := c.QueryParam("sort")

	var sold *bool
	if soldStr := c.QueryParam("sold"); soldStr != "" {
		value, err := strconv.ParseBool(soldStr)
		if err == nil {
			sold = &value
		}
	}

	var minPrice, maxPrice float64
	if minPriceStr := c.QueryParam("min_price"); minPriceStr != "" {
		minPrice, _ = strconv.ParseFloat(minPriceStr, 64)
	}
	if maxPriceStr := c.QueryParam("max_price"); maxPriceStr != "" {
		maxPrice, _ = strconv.ParseFloat(maxPriceStr, 64)
	}

	pagination := utils.GetPaginationParams(c)

	listings, total, err := h.listingUseCase.ListListings(
		c.Request().Context(),
		condition,
		sold,
		minPrice,
		maxPrice,
		sort,
		pagination.Page,
		pagination.PageSize,
	)

	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, listings, total, pagination.Page, pagination.PageSize)
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	id := c.Param("id")

	result, err := h.listingUseCase.DeleteListing(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *ListingHandler) GenerateAdCopy(c echo.Context) error {
	var req adCopyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	adCopy, err := h.listingUseCase.GenerateAdCopy(c.Request().Context(), entity.ListingAttributes{
		Make:      req.Make,
		Model:     req.Model,
		Year:      req.Year,
		Price:     req.Price,
		Mileage:   req.Mileage,
		Condition: req.Condition,
		Features:  req.Features,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"ad_copy": adCopy,
	})
}
