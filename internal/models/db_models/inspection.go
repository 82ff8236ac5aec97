package db_models

import "github.com/google/uuid"

type InspectionKind string

const (
	InspectionKindPickup  InspectionKind = "PICKUP"
	InspectionKindDropoff InspectionKind = "DROPOFF"
)

type Inspection struct {
	BaseModel
	BookingID   uuid.UUID      `gorm:"index"`
	InspectorID uuid.UUID
	Kind        InspectionKind `gorm:"size:16;index"`
	Approved    bool
	Notes       string

	Booking Booking `gorm:"foreignKey:BookingID"`
}
