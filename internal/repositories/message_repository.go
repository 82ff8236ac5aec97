package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carlink/internal/models/db_models"
)

type MessageRepository interface {
	Create(ctx context.Context, message *db_models.Message) error
	ListConversation(ctx context.Context, a, b uuid.UUID, page, pageSize int) ([]db_models.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *db_models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) ListConversation(ctx context.Context, a, b uuid.UUID, page, pageSize int) ([]db_models.Message, error) {
	var messages []db_models.Message
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)", a, b, b, a).
		Order("created_at ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
