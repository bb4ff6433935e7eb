package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"driveyard/internal/domain/entity"
	"driveyard/internal/domain/repository"
	"driveyard/pkg/errors"
)

type firestoreFileMetadataRepository struct {
	client *firestore.Client
}

func NewFirestoreFileMetadataRepository(client *firestore.Client) repository.FileMetadataRepository {
	return &firestoreFileMetadataRepository{
		client: client,
	}
}

func (r *firestoreFileMetadataRepository) Create(ctx context.Context, metadata *entity.FileMetadata) error {
	if metadata.CreatedAt.IsZero() {
		metadata.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("file_metadata").Doc(metadata.ID).Set(ctx, metadata)
	if err != nil {
		return errors.Internal("Failed to create file metadata", err)
	}

	return nil
}

func (r *firestoreFileMetadataRepository) GetByURL(ctx context.Context, url string) (*entity.FileMetadata, error) {
	iter := r.client.Collection("file_metadata").Where("url", "==", url).Limit(1).Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("File metadata", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query file metadata", err)
	}

	var metadata entity.FileMetadata
	if err := doc.DataTo(&metadata); err != nil {
		return nil, errors.Internal("Failed to parse file metadata", err)
	}

	return &metadata, nil
}

func (r *firestoreFileMetadataRepository) DeleteByURL(ctx context.Context, url string) error {
	metadata, err := r.GetByURL(ctx, url)
	if err != nil {
		return err
	}

	_, err = r.client.Collection("file_metadata").Doc(metadata.ID).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete file metadata", err)
	}

	return nil
}
