package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"driveyard/internal/domain/entity"
	"driveyard/internal/domain/repository"
	"driveyard/pkg/errors"
)

type firestoreComplaintRepository struct {
	client *firestore.Client
}

func NewFirestoreComplaintRepository(client *firestore.Client) repository.ComplaintRepository {
	return &firestoreComplaintRepository{
		client: client,
	}
}

func (r *firestoreComplaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	if complaint.ID == "" {
		doc := r.client.Collection("complaints").NewDoc()
		complaint.ID = doc.ID
	}

	now := time.Now()
	if complaint.CreatedAt.IsZero() {
		complaint.CreatedAt = now
	}
	complaint.UpdatedAt = now

	_, err := r.client.Collection("complaints").Doc(complaint.ID).Set(ctx, complaint)
	if err != nil {
		return errors.Internal("Failed to create complaint", err)
	}

	return nil
}

func (r *firestoreComplaintRepository) GetByID(ctx context.Context, id string) (*entity.Complaint, error) {
	doc, err := r.client.Collection("complaints").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Complaint", err)
		}
		return nil, errors.Internal("Failed to get complaint", err)
	}

	var complaint entity.Complaint
	if err := doc.DataTo(&complaint); err != nil {
		return nil, errors.Internal("Failed to parse complaint data", err)
	}

	return &complaint, nil
}

func (r *firestoreComplaintRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Complaint, int64, error) {
	query := r.client.Collection("complaints").Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count complaints", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var complaints []*entity.Complaint

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate complaints", err)
		}
		var complaint entity.Complaint
		if err := doc.DataTo(&complaint); err != nil {
			return nil, 0, errors.Internal("Failed to parse complaint data", err)
		}
		complaints = append(complaints, &complaint)
	}

	return complaints, total, nil
}

func (r *firestoreComplaintRepository) Update(ctx context.Context, complaint *entity.Complaint) error {
	complaint.UpdatedAt = time.Now()

	_, err := r.client.Collection("complaints").Doc(complaint.ID).Set(ctx, complaint)
	if err != nil {
		return errors.Internal("Failed to update complaint", err)
	}

	return nil
}

func (r *firestoreComplaintRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("complaints").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete complaint", err)
	}

	return nil
}
