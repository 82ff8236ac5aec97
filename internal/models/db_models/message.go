package db_models

import "github.com/google/uuid"

type Message struct {
	BaseModel
	SenderID    uuid.UUID  `gorm:"index"`
	RecipientID uuid.UUID  `gorm:"index"`
	BookingID   *uuid.UUID `gorm:"index"`
	Body        string

	Sender    Account `gorm:"foreignKey:SenderID"`
	Recipient Account `gorm:"foreignKey:RecipientID"`
}
