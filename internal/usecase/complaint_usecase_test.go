package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"driveyard/pkg/errors"
)

func TestSubmitComplaint(t *testing.T) {
	complaintRepo := newFakeComplaintRepo()
	mailer := &fakeMailer{}
	uc := NewComplaintUseCase(complaintRepo, mailer, "complaints@driveyard.test")

	complaint, err := uc.SubmitComplaint(context.Background(), SubmitComplaintInput{
		Name:    "Rudi",
		Email:   "rudi@example.com",
		Details: "The car I reserved was sold before my appointment.",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, complaint.ID)
	assert.False(t, complaint.IsResolved)

	assert.Len(t, mailer.sent, 1)
	assert.Equal(t, "complaints@driveyard.test", mailer.sent[0].to)
	assert.Contains(t, mailer.sent[0].subject, "Rudi")
}

func TestSubmitComplaint_MailFailureDoesNotFail(t *testing.T) {
	complaintRepo := newFakeComplaintRepo()
	mailer := &fakeMailer{sendErr: fmt.Errorf("smtp timeout")}
	uc := NewComplaintUseCase(complaintRepo, mailer, "complaints@driveyard.test")

	complaint, err := uc.SubmitComplaint(context.Background(), SubmitComplaintInput{
		Name:    "Rudi",
		Email:   "rudi@example.com",
		Details: "No callback after a week.",
	})

	assert.NoError(t, err)
	assert.Len(t, complaintRepo.complaints, 1)
	assert.NotEmpty(t, complaint.ID)
}

func TestSubmitComplaint_WithoutMailer(t *testing.T) {
	uc := NewComplaintUseCase(newFakeComplaintRepo(), nil, "")

	_, err := uc.SubmitComplaint(context.Background(), SubmitComplaintInput{
		Name:    "Rudi",
		Email:   "rudi@example.com",
		Details: "No callback after a week.",
	})

	assert.NoError(t, err)
}

func TestListComplaints_ByResolved(t *testing.T) {
	complaintRepo := newFakeComplaintRepo()
	uc := NewComplaintUseCase(complaintRepo, nil, "")

	first, err := uc.SubmitComplaint(context.Background(), SubmitComplaintInput{Name: "A", Email: "a@example.com", Details: "one"})
	assert.NoError(t, err)
	_, err = uc.SubmitComplaint(context.Background(), SubmitComplaintInput{Name: "B", Email: "b@example.com", Details: "two"})
	assert.NoError(t, err)

	_, err = uc.SetResolved(context.Background(), first.ID, true)
	assert.NoError(t, err)

	resolved := true
	complaints, total, err := uc.ListComplaints(context.Background(), &resolved, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, complaints, 1)
	assert.Equal(t, first.ID, complaints[0].ID)

	_, total, err = uc.ListComplaints(context.Background(), nil, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestSetResolved_NotFound(t *testing.T) {
	uc := NewComplaintUseCase(newFakeComplaintRepo(), nil, "")

	_, err := uc.SetResolved(context.Background(), "missing", true)

	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestDeleteComplaint(t *testing.T) {
	complaintRepo := newFakeComplaintRepo()
	uc := NewComplaintUseCase(complaintRepo, nil, "")

	complaint, err := uc.SubmitComplaint(context.Background(), SubmitComplaintInput{Name: "A", Email: "a@example.com", Details: "one"})
	assert.NoError(t, err)

	assert.NoError(t, uc.DeleteComplaint(context.Background(), complaint.ID))
	assert.Empty(t, complaintRepo.complaints)

	err = uc.DeleteComplaint(context.Background(), complaint.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
