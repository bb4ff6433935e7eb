package service

import (
	"context"
	"io"
)

type UploadResult struct {
	URL        string
	ObjectName string
	Size       int64
}

type FileStorageService interface {
	UploadFile(ctx context.Context, file io.Reader, fileType, folder string) (*UploadResult, error)
	DeleteObject(ctx context.Context, objectName string) error
	// DeleteObjects removes every named object, continuing past individual
	// failures. The returned map holds the error per failed object.
	DeleteObjects(ctx context.Context, objectNames []string) map[string]error
	PublicURL(objectName string) string
	Close() error
}
