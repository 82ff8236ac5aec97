package services

import (
	"context"

	"github.com/google/uuid"

	"carlink/internal/models/db_models"
	"carlink/internal/repositories"
	"carlink/pkg/utils"
)

type MessageServiceInterface interface {
	SendMessage(ctx context.Context, caller CallerContext, recipientID uuid.UUID, bookingID *uuid.UUID, body string) (*db_models.Message, error)
	ListConversation(ctx context.Context, caller CallerContext, otherID uuid.UUID, page, pageSize int) ([]db_models.Message, error)
}

type MessageService struct {
	messageRepo repositories.MessageRepository
	accountRepo repositories.AccountRepository
	notifier    NotificationPublisher
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	accountRepo repositories.AccountRepository,
	notifier NotificationPublisher,
) MessageServiceInterface {
	return &MessageService{
		messageRepo: messageRepo,
		accountRepo: accountRepo,
		notifier:    notifier,
	}
}

func (s *MessageService) SendMessage(ctx context.Context, caller CallerContext, recipientID uuid.UUID, bookingID *uuid.UUID, body string) (*db_models.Message, error) {
	if body == "" {
		return nil, utils.ErrInvalidInput
	}

	recipient, err := s.accountRepo.FindById(ctx, recipientID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if recipient == nil {
		return nil, utils.ErrAccountNotFound
	}

	message := &db_models.Message{
		SenderID:    caller.UserID,
		RecipientID: recipientID,
		BookingID:   bookingID,
		Body:        body,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.notifier.Publish(recipientID, "new_message", map[string]any{
		"message_id": message.ID.String(),
		"sender_id":  caller.UserID.String(),
	})

	return message, nil
}

func (s *MessageService) ListConversation(ctx context.Context, caller CallerContext, otherID uuid.UUID, page, pageSize int) ([]db_models.Message, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	messages, err := s.messageRepo.ListConversation(ctx, caller.UserID, otherID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return messages, nil
}
