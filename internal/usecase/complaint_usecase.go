package usecase

import (
	"context"
	"fmt"

	"driveyard/internal/domain/entity"
	"driveyard/internal/domain/repository"
	"driveyard/internal/domain/service"
	"driveyard/pkg/logger"
)

type ComplaintUseCase struct {
	complaintRepo repository.ComplaintRepository
	mailer        service.MailerService
	notifyAddress string
}

func NewComplaintUseCase(complaintRepo repository.ComplaintRepository, mailer service.MailerService, notifyAddress string) *ComplaintUseCase {
	return &ComplaintUseCase{
		complaintRepo: complaintRepo,
		mailer:        mailer,
		notifyAddress: notifyAddress,
	}
}

type SubmitComplaintInput struct {
	Name    string
	Email   string
	Details string
}

func (uc *ComplaintUseCase) SubmitComplaint(ctx context.Context, input SubmitComplaintInput) (*entity.Complaint, error) {
	complaint := &entity.Complaint{
		Name:       input.Name,
		Email:      input.Email,
		Details:    input.Details,
		IsResolved: false,
	}

	if err := uc.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}

	// Notify the dealership inbox; a mail failure never fails the submission
	if uc.mailer != nil && uc.notifyAddress != "" {
		subject := fmt.Sprintf("New complaint from %s", complaint.Name)
		body := fmt.Sprintf("From: %s <%s>\n\n%s", complaint.Name, complaint.Email, complaint.Details)
		if err := uc.mailer.Send(uc.notifyAddress, subject, body); err != nil {
			logger.Warn("Failed to send complaint notification for %s: %v", complaint.ID, err)
		}
	}

	return complaint, nil
}

func (uc *ComplaintUseCase) ListComplaints(ctx context.Context, resolved *bool, page, limit int) ([]*entity.Complaint, int64, error) {
	filter := make(map[string]interface{})

	if resolved != nil {
		filter["isResolved"] = *resolved
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.complaintRepo.List(ctx, filter, limit, offset)
}

func (uc *ComplaintUseCase) SetResolved(ctx context.Context, id string, isResolved bool) (*entity.Complaint, error) {
	complaint, err := uc.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	complaint.IsResolved = isResolved

	if err := uc.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, err
	}

	return complaint, nil
}

func (uc *ComplaintUseCase) DeleteComplaint(ctx context.Context, id string) error {
	if _, err := uc.complaintRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.complaintRepo.Delete(ctx, id)
}
