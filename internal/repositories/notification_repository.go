package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carlink/internal/models/db_models"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *db_models.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Notification, error)
	// MarkRead stamps readAt on the notification, scoped to its owner.
	MarkRead(ctx context.Context, id, userID uuid.UUID, readAt int64) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *db_models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Notification, error) {
	var notifications []db_models.Notification
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID, readAt int64) error {
	res := r.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read_at", readAt)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
