package db_models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending          BookingStatus = "PENDING"
	BookingStatusConfirmed        BookingStatus = "CONFIRMED"
	BookingStatusRejected         BookingStatus = "REJECTED"
	BookingStatusCancelledByGuest BookingStatus = "CANCELLED_BY_GUEST"
	BookingStatusCancelledByHost  BookingStatus = "CANCELLED_BY_HOST"
	BookingStatusCancelledByAdmin BookingStatus = "CANCELLED_BY_ADMIN"
	BookingStatusCompleted        BookingStatus = "COMPLETED"
)

// IsTerminal reports whether no further transition may leave the status.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingStatusRejected,
		BookingStatusCancelledByGuest,
		BookingStatusCancelledByHost,
		BookingStatusCancelledByAdmin,
		BookingStatusCompleted:
		return true
	}
	return false
}

// ActiveBookingStatuses are the statuses that block a car's availability.
var ActiveBookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
}

type Booking struct {
	BaseModel
	CarID   uuid.UUID `gorm:"index"`
	GuestID uuid.UUID `gorm:"index"`
	HostID  uuid.UUID `gorm:"index"`

	// Date-only range, [StartDate, EndDate)
	StartDate time.Time
	EndDate   time.Time

	TotalPriceMinor int64
	Currency        string `gorm:"size:3"`
	WithDriver      bool
	PickupLocation  string
	DropoffLocation string
	Status          BookingStatus `gorm:"size:32;index"`

	Car   Car     `gorm:"foreignKey:CarID"`
	Guest Account `gorm:"foreignKey:GuestID"`
	Host  Account `gorm:"foreignKey:HostID"`
}
