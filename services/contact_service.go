package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"mcp-playground/idgen"
	"mcp-playground/models"
	"mcp-playground/query"
	"mcp-playground/repositories"
	"mcp-playground/validation"
)

const contactThankYou = "Thank you for your message! We'll get back to you within 24 hours."

type ContactService interface {
	SubmitMessage(ctx context.Context, req models.CreateContactMessageRequest) (*models.ContactReceipt, error)
	ListMessages(ctx context.Context, params models.ContactListParams) (query.Result[models.ContactMessage], error)
	UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (*models.ContactMessage, error)
}

type contactService struct {
	messageRepo repositories.ContactMessageRepository
	logger      *slog.Logger
}

func NewContactService(messageRepo repositories.ContactMessageRepository, logger *slog.Logger) ContactService {
	return &contactService{
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (s *contactService) SubmitMessage(ctx context.Context, req models.CreateContactMessageRequest) (*models.ContactReceipt, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if err := validation.Validate(req); err != nil {
		return nil, contactValidationError(err)
	}

	id, err := idgen.Generate("msg")
	if err != nil {
		return nil, err
	}

	msg := &models.ContactMessage{
		ID:        id,
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    models.ContactStatusNew,
		CreatedAt: now(),
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	s.logger.Info("New contact message received",
		"id", msg.ID,
		"name", msg.Name,
		"email", msg.Email,
		"subject", msg.Subject,
	)

	return &models.ContactReceipt{ID: msg.ID, Message: contactThankYou}, nil
}

// contactValidationError rewrites validator failures into the messages shown
// on the contact form.
func contactValidationError(err error) error {
	var ve models.ErrorValidation
	if !errors.As(err, &ve) {
		return err
	}
	switch {
	case ve.Rule == "required":
		ve.Message = "All fields are required: name, email, subject, message"
	case ve.Field == "email":
		ve.Message = "Please provide a valid email address"
	case ve.Field == "message" && ve.Rule == "min":
		ve.Message = "Message must be at least 10 characters long"
	case ve.Field == "message" && ve.Rule == "max":
		ve.Message = "Message must be less than 5000 characters"
	}
	return ve
}

func (s *contactService) ListMessages(ctx context.Context, params models.ContactListParams) (query.Result[models.ContactMessage], error) {
	msgs, err := s.messageRepo.List(ctx)
	if err != nil {
		return query.Result[models.ContactMessage]{}, err
	}
	return query.ContactMessages(msgs, query.ContactQuery{
		Status: models.ContactStatus(params.Status),
		Window: query.ParseWindow(params.Limit, params.Offset),
	}), nil
}

// UpdateStatus rejects an unknown status before looking the message up.
func (s *contactService) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) (*models.ContactMessage, error) {
	if !status.Valid() {
		return nil, models.ErrorValidation{
			Message: "Invalid status. Must be one of: new, read, replied",
			Field:   "status",
			Rule:    "oneof",
		}
	}

	msg, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	msg.Status = status
	if err := s.messageRepo.Update(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
