package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusOnHold    PaymentStatus = "ON_HOLD"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

type PaymentTransactionType string

const (
	TxnTypeCapture        PaymentTransactionType = "CAPTURE"
	TxnTypeHold           PaymentTransactionType = "HOLD"
	TxnTypeRefund         PaymentTransactionType = "REFUND"
	TxnTypePlatformToHost PaymentTransactionType = "PLATFORM_TO_HOST"
)

type Payment struct {
	BaseModel
	BookingID   uuid.UUID `gorm:"uniqueIndex"`
	PayerID     uuid.UUID `gorm:"index"`
	RecipientID uuid.UUID `gorm:"index"`

	AmountMinor int64
	Currency    string `gorm:"size:3"`
	Method      string
	Type        string
	Status      PaymentStatus `gorm:"size:16;index"`

	// Share settled to the host on release, minor units.
	HostEarningsMinor int64

	// Provider-side capture reference, assigned when the payment completes.
	TransactionID string `gorm:"index"`

	Booking      Booking              `gorm:"foreignKey:BookingID"`
	Transactions []PaymentTransaction `gorm:"foreignKey:PaymentID"`
}

// PaymentTransaction is an append-only ledger row. It is never updated or
// deleted; the Payment status is the last known state, the ledger is how it
// got there.
type PaymentTransaction struct {
	BaseModel
	PaymentID   uuid.UUID              `gorm:"index"`
	Type        PaymentTransactionType `gorm:"size:32;index"`
	AmountMinor int64
	Status      string         `gorm:"size:16"`
	Metadata    datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
