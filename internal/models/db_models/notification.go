package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  uuid.UUID `gorm:"index"`
	Kind    string    `gorm:"size:32"`
	Payload datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	ReadAt  *int64
}
