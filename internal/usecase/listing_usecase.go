package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"driveyard/internal/domain/entity"
	"driveyard/internal/domain/repository"
	"driveyard/internal/domain/service"
	"driveyard/pkg/errors"
	"driveyard/pkg/logger"
)

// PathResolver maps a public image URL to its storage object path.
// Unresolved URLs are skipped, never treated as fatal.
type PathResolver interface {
	Resolve(url string) (string, bool)
}

// ListingUseCase keeps listing records and their backing image objects
// consistent across create, update and delete.
type ListingUseCase struct {
	listingRepo repository.ListingRepository
	storage     service.FileStorageService
	resolver    PathResolver
	adCopy      service.AdCopyService
	maxImages   int
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	storage service.FileStorageService,
	resolver PathResolver,
	adCopy service.AdCopyService,
	maxImages int,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		storage:     storage,
		resolver:    resolver,
		adCopy:      adCopy,
		maxImages:   maxImages,
	}
}

type ListingInput struct {
	Make        string   `json:"make"`
	Model       string   `json:"model"`
	Year        int      `json:"year"`
	Price       float64  `json:"price"`
	Mileage     float64  `json:"mileage"`
	Condition   string   `json:"condition"`
	Features    []string `json:"features"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	Sold        bool     `json:"sold"`
}

// DeleteListingResult carries the non-fatal warnings collected while
// cleaning up a listing's stored images.
type DeleteListingResult struct {
	ID            string   `json:"id"`
	RemovedImages int      `json:"removed_images"`
	Warnings      []string `json:"warnings,omitempty"`
}

// DeleteImageResult reports whether a storage object was actually
// removed; a non-storage URL is dropped without any storage call.
type DeleteImageResult struct {
	URL        string `json:"url"`
	ObjectName string `json:"object_name,omitempty"`
	Deleted    bool   `json:"deleted"`
}

func (uc *ListingUseCase) CreateListing(ctx context.Context, input ListingInput) (*entity.Listing, error) {
	images, features, err := uc.normalize(input)
	if err != nil {
		return nil, err
	}

	listing := &entity.Listing{
		Make:        input.Make,
		Model:       input.Model,
		Year:        input.Year,
		Price:       input.Price,
		Mileage:     input.Mileage,
		Condition:   input.Condition,
		Features:    features,
		Images:      images,
		Description: input.Description,
		Sold:        input.Sold,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (uc *ListingUseCase) UpdateListing(ctx context.Context, id string, input ListingInput) (*entity.Listing, error) {
	images, features, err := uc.normalize(input)
	if err != nil {
		return nil, err
	}

	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Images dropped from the list are NOT deleted from storage here;
	// removing a stored object is the explicit DeleteImage operation.
	listing.Make = input.Make
	listing.Model = input.Model
	listing.Year = input.Year
	listing.Price = input.Price
	listing.Mileage = input.Mileage
	listing.Condition = input.Condition
	listing.Features = features
	listing.Images = images
	listing.Description = input.Description
	listing.Sold = input.Sold
	listing.UpdatedAt = time.Now()

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (uc *ListingUseCase) GetListingByID(ctx context.Context, id string) (*entity.Listing, error) {
	return uc.listingRepo.GetByID(ctx, id)
}

func (uc *ListingUseCase) ListListings(ctx context.Context, condition string, sold *bool, minPrice, maxPrice float64, sort string, page, limit int) ([]*entity.Listing, int64, error) {
	filter := make(map[string]interface{})

	if condition != "" {
		filter["condition"] = condition
	}

	if sold != nil {
		filter["sold"] = *sold
	}

	if minPrice > 0 {
		filter["min_price"] = minPrice
	}

	if maxPrice > 0 {
		filter["max_price"] = maxPrice
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.listingRepo.List(ctx, filter, sort, limit, offset)
}

// DeleteImage removes a single stored image object. The URL is typically
// part of an in-progress admin form, so no listing record is touched.
func (uc *ListingUseCase) DeleteImage(ctx context.Context, url string) (*DeleteImageResult, error) {
	objectName, ok := uc.resolver.Resolve(url)
	if !ok {
		// External URL: nothing stored on our side, just drop it
		logger.Debug("DeleteImage: URL not storage backed, skipping: %s", url)
		return &DeleteImageResult{URL: url, Deleted: false}, nil
	}

	if err := uc.storage.DeleteObject(ctx, objectName); err != nil {
		return nil, errors.Internal("Failed to delete image from storage", err)
	}

	return &DeleteImageResult{URL: url, ObjectName: objectName, Deleted: true}, nil
}

// DeleteListing removes the record and all of its storage-backed images.
// Image cleanup is best effort: failures become warnings on the result,
// only a failed record delete aborts the operation.
func (uc *ListingUseCase) DeleteListing(ctx context.Context, id string) (*DeleteListingResult, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &DeleteListingResult{ID: id}

	var objectNames []string
	for _, url := range listing.Images {
		objectName, ok := uc.resolver.Resolve(url)
		if !ok {
			logger.Warn("DeleteListing %s: cannot resolve image URL, skipping: %s", id, url)
			result.Warnings = append(result.Warnings, fmt.Sprintf("image URL not storage backed, skipped: %s", url))
			continue
		}
		objectNames = append(objectNames, objectName)
	}

	if len(objectNames) > 0 {
		failed := uc.storage.DeleteObjects(ctx, objectNames)
		for objectName, delErr := range failed {
			logger.Warn("DeleteListing %s: failed to delete stored image %s: %v", id, objectName, delErr)
			result.Warnings = append(result.Warnings, fmt.Sprintf("failed to delete stored image: %s", objectName))
		}
		result.RemovedImages = len(objectNames) - len(failed)
	}

	// The record delete is the one step that must succeed. An orphaned
	// file is recoverable; an undeletable record is not.
	if err := uc.listingRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return result, nil
}

func (uc *ListingUseCase) GenerateAdCopy(ctx context.Context, attrs entity.ListingAttributes) (string, error) {
	if err := validateCondition(attrs.Condition); err != nil {
		return "", err
	}

	adCopy, err := uc.adCopy.Generate(ctx, attrs)
	if err != nil {
		return "", errors.Internal("Failed to generate ad copy", err)
	}

	return adCopy, nil
}

// normalize filters blank image URLs and feature strings and checks the
// listing invariants. No write happens when it fails.
func (uc *ListingUseCase) normalize(input ListingInput) (images []string, features []string, err error) {
	for _, url := range input.Images {
		if trimmed := strings.TrimSpace(url); trimmed != "" {
			images = append(images, trimmed)
		}
	}

	if len(images) == 0 {
		return nil, nil, errors.BadRequest("At least one image is required", nil)
	}
	if len(images) > uc.maxImages {
		return nil, nil, errors.BadRequest(fmt.Sprintf("A listing may have at most %d images", uc.maxImages), nil)
	}

	if input.Year < 1900 || input.Year > time.Now().Year()+1 {
		return nil, nil, errors.BadRequest("Year is out of range", nil)
	}

	if err := validateCondition(input.Condition); err != nil {
		return nil, nil, err
	}

	if len(input.Description) < 10 || len(input.Description) > 2000 {
		return nil, nil, errors.BadRequest("Description must be between 10 and 2000 characters", nil)
	}

	for _, feature := range input.Features {
		if trimmed := strings.TrimSpace(feature); trimmed != "" {
			features = append(features, trimmed)
		}
	}

	return images, features, nil
}

func validateCondition(condition string) error {
	switch condition {
	case entity.ConditionNew, entity.ConditionUsedExcellent, entity.ConditionUsedGood, entity.ConditionUsedFair:
		return nil
	}
	return errors.BadRequest("Invalid condition", nil)
}
