package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DisputeStatus string

const (
	DisputeStatusOpen        DisputeStatus = "OPEN"
	DisputeStatusUnderReview DisputeStatus = "UNDER_REVIEW"
	DisputeStatusResolved    DisputeStatus = "RESOLVED"
	DisputeStatusRejected    DisputeStatus = "REJECTED"
)

func (s DisputeStatus) IsClosed() bool {
	return s == DisputeStatusResolved || s == DisputeStatusRejected
}

type Dispute struct {
	BaseModel
	BookingID uuid.UUID  `gorm:"uniqueIndex"`
	PaymentID *uuid.UUID `gorm:"index"`
	UserID    uuid.UUID  `gorm:"index"`
	Reason    string
	Status    DisputeStatus `gorm:"size:16;index"`

	Booking Booking  `gorm:"foreignKey:BookingID"`
	Payment *Payment `gorm:"foreignKey:PaymentID"`
}

type AdminActionType string

const (
	AdminActionResolved AdminActionType = "RESOLVED"
	AdminActionRejected AdminActionType = "REJECTED"
)

// AdminAction is the append-only audit trail of privileged decisions.
type AdminAction struct {
	BaseModel
	AdminID    uuid.UUID       `gorm:"index"`
	TargetType string          `gorm:"size:32"`
	TargetID   uuid.UUID       `gorm:"index"`
	ActionType AdminActionType `gorm:"size:16"`
	Notes      string
	Metadata   datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
