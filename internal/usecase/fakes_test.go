package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"driveyard/internal/domain/entity"
	"driveyard/internal/domain/service"
	"driveyard/pkg/errors"
)

// In-memory repository and service stand-ins used across the usecase tests.

type fakeListingRepo struct {
	listings  map[string]*entity.Listing
	nextID    int
	createErr error
	deleteErr error
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[string]*entity.Listing)}
}

func (r *fakeListingRepo) Create(ctx context.Context, listing *entity.Listing) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	listing.ID = fmt.Sprintf("listing-%d", r.nextID)
	r.listings[listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	listing, ok := r.listings[id]
	if !ok {
		return nil, errors.NotFound("Listing", nil)
	}
	return listing, nil
}

func (r *fakeListingRepo) List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Listing, int64, error) {
	var matched []*entity.Listing
	for _, listing := range r.listings {
		if condition, ok := filter["condition"]; ok && listing.Condition != condition {
			continue
		}
		if sold, ok := filter["sold"]; ok && listing.Sold != sold {
			continue
		}
		if minPrice, ok := filter["min_price"]; ok && listing.Price < minPrice.(float64) {
			continue
		}
		if maxPrice, ok := filter["max_price"]; ok && listing.Price > maxPrice.(float64) {
			continue
		}
		matched = append(matched, listing)
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (r *fakeListingRepo) Update(ctx context.Context, listing *entity.Listing) error {
	if _, ok := r.listings[listing.ID]; !ok {
		return errors.NotFound("Listing", nil)
	}
	r.listings[listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.listings[id]; !ok {
		return errors.NotFound("Listing", nil)
	}
	delete(r.listings, id)
	return nil
}

type fakeStorage struct {
	deleted         []string
	deleteObjectErr error
	// failObjects marks object names whose bulk delete should fail
	failObjects map[string]error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{failObjects: make(map[string]error)}
}

func (s *fakeStorage) UploadFile(ctx context.Context, file io.Reader, fileType, folder string) (*service.UploadResult, error) {
	return &service.UploadResult{
		URL:        "https://storage.googleapis.com/driveyard-media/" + folder + "/uploaded.jpg",
		ObjectName: folder + "/uploaded.jpg",
		Size:       1024,
	}, nil
}

func (s *fakeStorage) DeleteObject(ctx context.Context, objectName string) error {
	if s.deleteObjectErr != nil {
		return s.deleteObjectErr
	}
	s.deleted = append(s.deleted, objectName)
	return nil
}

func (s *fakeStorage) DeleteObjects(ctx context.Context, objectNames []string) map[string]error {
	failed := make(map[string]error)
	for _, objectName := range objectNames {
		if err, ok := s.failObjects[objectName]; ok {
			failed[objectName] = err
			continue
		}
		s.deleted = append(s.deleted, objectName)
	}
	return failed
}

func (s *fakeStorage) PublicURL(objectName string) string {
	return "https://storage.googleapis.com/driveyard-media/" + objectName
}

func (s *fakeStorage) Close() error {
	return nil
}

type fakeAdCopy struct {
	text string
	err  error
}

func (g *fakeAdCopy) Generate(ctx context.Context, attrs entity.ListingAttributes) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.text, nil
}

type fakeReviewRepo struct {
	reviews map[string]*entity.Review
	nextID  int
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*entity.Review)}
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	r.nextID++
	review.ID = fmt.Sprintf("review-%d", r.nextID)
	review.CreatedAt = time.Now()
	r.reviews[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	review, ok := r.reviews[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	return review, nil
}

func (r *fakeReviewRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Review, int64, error) {
	var matched []*entity.Review
	for _, review := range r.reviews {
		if testimonial, ok := filter["isTestimonial"]; ok && review.IsTestimonial != testimonial {
			continue
		}
		matched = append(matched, review)
	}
	return matched, int64(len(matched)), nil
}

func (r *fakeReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	if _, ok := r.reviews[review.ID]; !ok {
		return errors.NotFound("Review", nil)
	}
	r.reviews[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.reviews[id]; !ok {
		return errors.NotFound("Review", nil)
	}
	delete(r.reviews, id)
	return nil
}

type fakeComplaintRepo struct {
	complaints map[string]*entity.Complaint
	nextID     int
}

func newFakeComplaintRepo() *fakeComplaintRepo {
	return &fakeComplaintRepo{complaints: make(map[string]*entity.Complaint)}
}

func (r *fakeComplaintRepo) Create(ctx context.Context, complaint *entity.Complaint) error {
	r.nextID++
	complaint.ID = fmt.Sprintf("complaint-%d", r.nextID)
	complaint.CreatedAt = time.Now()
	r.complaints[complaint.ID] = complaint
	return nil
}

func (r *fakeComplaintRepo) GetByID(ctx context.Context, id string) (*entity.Complaint, error) {
	complaint, ok := r.complaints[id]
	if !ok {
		return nil, errors.NotFound("Complaint", nil)
	}
	return complaint, nil
}

func (r *fakeComplaintRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Complaint, int64, error) {
	var matched []*entity.Complaint
	for _, complaint := range r.complaints {
		if resolved, ok := filter["isResolved"]; ok && complaint.IsResolved != resolved {
			continue
		}
		matched = append(matched, complaint)
	}
	return matched, int64(len(matched)), nil
}

func (r *fakeComplaintRepo) Update(ctx context.Context, complaint *entity.Complaint) error {
	if _, ok := r.complaints[complaint.ID]; !ok {
		return errors.NotFound("Complaint", nil)
	}
	r.complaints[complaint.ID] = complaint
	return nil
}

func (r *fakeComplaintRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.complaints[id]; !ok {
		return errors.NotFound("Complaint", nil)
	}
	delete(r.complaints, id)
	return nil
}

type fakeMailer struct {
	sent    []sentMail
	sendErr error
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type fakeSettingsRepo struct {
	settings *entity.ContactSettings
	saveErr  error
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: &entity.ContactSettings{}}
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*entity.ContactSettings, error) {
	return r.settings, nil
}

func (r *fakeSettingsRepo) Save(ctx context.Context, settings *entity.ContactSettings) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	settings.UpdatedAt = time.Now()
	r.settings = settings
	return nil
}
