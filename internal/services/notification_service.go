package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carlink/internal/models/db_models"
	"carlink/internal/repositories"
	"carlink/pkg/utils"
)

// NotificationPublisher fans out events to users. Publishing is
// fire-and-forget: callers never wait on it and a delivery failure never
// fails the operation that raised the event.
type NotificationPublisher interface {
	Publish(userID uuid.UUID, kind string, payload map[string]any)
}

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

func (s *NotificationService) Publish(userID uuid.UUID, kind string, payload map[string]any) {
	go func() {
		body, err := json.Marshal(payload)
		if err != nil {
			log.Printf("notification payload marshal failed: %v", err)
			return
		}

		notification := &db_models.Notification{
			UserID:  userID,
			Kind:    kind,
			Payload: body,
		}
		if err := s.notificationRepo.Create(context.Background(), notification); err != nil {
			log.Printf("notification write failed for user %s: %v", userID, err)
		}
	}()
}

func (s *NotificationService) ListForUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Notification, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	notifications, err := s.notificationRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return notifications, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	err := s.notificationRepo.MarkRead(ctx, notificationID, userID, time.Now().Unix())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrNotificationNotFound
	}
	if err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
