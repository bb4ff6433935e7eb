package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"driveyard/internal/domain/entity"
	"driveyard/internal/domain/repository"
	"driveyard/pkg/errors"
)

// The contact settings singleton lives in a fixed document.
const contactSettingsDoc = "contact"

type firestoreContactSettingsRepository struct {
	client *firestore.Client
}

func NewFirestoreContactSettingsRepository(client *firestore.Client) repository.ContactSettingsRepository {
	return &firestoreContactSettingsRepository{
		client: client,
	}
}

func (r *firestoreContactSettingsRepository) Get(ctx context.Context) (*entity.ContactSettings, error) {
	doc, err := r.client.Collection("settings").Doc(contactSettingsDoc).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			// No settings written yet: the public page renders empty contacts
			return &entity.ContactSettings{}, nil
		}
		return nil, errors.Internal("Failed to get contact settings", err)
	}

	var settings entity.ContactSettings
	if err := doc.DataTo(&settings); err != nil {
		return nil, errors.Internal("Failed to parse contact settings", err)
	}

	return &settings, nil
}

func (r *firestoreContactSettingsRepository) Save(ctx context.Context, settings *entity.ContactSettings) error {
	settings.UpdatedAt = time.Now()

	_, err := r.client.Collection("settings").Doc(contactSettingsDoc).Set(ctx, settings)
	if err != nil {
		return errors.Internal("Failed to save contact settings", err)
	}

	return nil
}
