package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"driveyard/internal/domain/service"
)

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
	projectID  string
}

func NewCloudStorageClient(ctx context.Context, bucketName, projectID string, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
		projectID:  projectID,
	}, nil
}

func (c *CloudStorageClient) UploadFile(ctx context.Context, file io.Reader, fileType, folder string) (*service.UploadResult, error) {
	objectName := fmt.Sprintf("%s/%s-%s", folder, uuid.New().String(), time.Now().Format("20060102150405"))

	switch fileType {
	case "image/jpeg", "image/jpg":
		objectName += ".jpg"
	case "image/png":
		objectName += ".png"
	case "image/webp":
		objectName += ".webp"
	case "image/gif":
		objectName += ".gif"
	default:
		return nil, fmt.Errorf("unsupported file type: %s", fileType)
	}

	obj := c.client.Bucket(c.bucketName).Object(objectName)
	wc := obj.NewWriter(ctx)
	wc.ContentType = fileType
	wc.CacheControl = "public, max-age=86400"

	size, err := io.Copy(wc, file)
	if err != nil {
		return nil, fmt.Errorf("failed to copy file to GCS: %v", err)
	}

	if err := wc.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %v", err)
	}

	// Listing images are always publicly readable
	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return nil, fmt.Errorf("failed to set ACL: %v", err)
	}

	return &service.UploadResult{
		URL:        c.PublicURL(objectName),
		ObjectName: objectName,
		Size:       size,
	}, nil
}

func (c *CloudStorageClient) DeleteObject(ctx context.Context, objectName string) error {
	obj := c.client.Bucket(c.bucketName).Object(objectName)
	if err := obj.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete object %s: %v", objectName, err)
	}
	return nil
}

func (c *CloudStorageClient) DeleteObjects(ctx context.Context, objectNames []string) map[string]error {
	failed := make(map[string]error)
	for _, name := range objectNames {
		if err := c.DeleteObject(ctx, name); err != nil {
			failed[name] = err
		}
	}
	return failed
}

func (c *CloudStorageClient) PublicURL(objectName string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName)
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
