package handler

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"driveyard/internal/domain/entity"
	"driveyard/internal/domain/repository"
	"driveyard/internal/domain/service"
	"driveyard/internal/usecase"
	"driveyard/pkg/errors"
	"driveyard/pkg/logger"
	"driveyard/pkg/response"
)

const imageFolder = "car-images"

type FileHandler struct {
	fileService      service.FileStorageService
	fileMetadataRepo repository.FileMetadataRepository
	listingUseCase   *usecase.ListingUseCase
	maxFileSize      int64
}

func NewFileHandler(fileService service.FileStorageService, fileMetadataRepo repository.FileMetadataRepository, listingUseCase *usecase.ListingUseCase) *FileHandler {
	return &FileHandler{
		fileService:      fileService,
		fileMetadataRepo: fileMetadataRepo,
		listingUseCase:   listingUseCase,
		maxFileSize:      5 * 1024 * 1024,
	}
}

var fileHandler *FileHandler

func SetupFileHandler(fileService service.FileStorageService, fileMetadataRepo repository.FileMetadataRepository, listingUseCase *usecase.ListingUseCase) {
	fileHandler = NewFileHandler(fileService, fileMetadataRepo, listingUseCase)
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

type deleteImageRequest struct {
	URL string `json:"url" validate:"required"`
}

func (h *FileHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	fileType := file.Header.Get("Content-Type")
	if !isAllowedImageType(fileType) {
		return response.Error(c, errors.BadRequest("File type not supported", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	result, err := h.fileService.UploadFile(c.Request().Context(), src, fileType, imageFolder)
	if err != nil {
		logger.Error("Error from storage client: %v", err)
		return response.Error(c, errors.Internal("Failed to upload file", err))
	}

	userID := getUserIDFromContext(c)

	fileID := uuid.New().String()
	metadata := &entity.FileMetadata{
		ID:         fileID,
		URL:        result.URL,
		ObjectName: result.ObjectName,
		UploadedBy: userID,
		Filename:   file.Filename,
		FileType:   fileType,
		FileSize:   result.Size,
		CreatedAt:  time.Now(),
	}

	// Bookkeeping only; the upload already succeeded
	if err := h.fileMetadataRepo.Create(c.Request().Context(), metadata); err != nil {
		logger.Error("Failed to save file metadata: %v", err)
	}

	return response.Created(c, map[string]interface{}{
		"id":       fileID,
		"url":      result.URL,
		"filename": file.Filename,
		"size":     result.Size,
	})
}

func (h *FileHandler) DeleteImage(c echo.Context) error {
	var req deleteImageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.listingUseCase.DeleteImage(c.Request().Context(), req.URL)
	if err != nil {
		return response.Error(c, err)
	}

	if result.Deleted {
		if err := h.fileMetadataRepo.DeleteByURL(c.Request().Context(), req.URL); err != nil {
			logger.Warn("Failed to delete file metadata for %s: %v", req.URL, err)
		}
	}

	return response.Success(c, result)
}

func getUserIDFromContext(c echo.Context) string {
	if uid, ok := c.Get("uid").(string); ok {
		return uid
	}
	return ""
}

func isAllowedImageType(fileType string) bool {
	allowedTypes := []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/webp",
		"image/gif",
	}

	for _, allowedType := range allowedTypes {
		if fileType == allowedType {
			return true
		}
	}

	return false
}
