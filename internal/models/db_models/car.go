package db_models

import "github.com/google/uuid"

type CarMake struct {
	BaseModel
	Name   string `gorm:"unique"`
	Models []CarModel
}

type CarModel struct {
	BaseModel
	CarMakeID uuid.UUID `gorm:"index"`
	Name      string
}

type Car struct {
	BaseModel
	HostID     uuid.UUID `gorm:"index"`
	CarMakeID  uuid.UUID
	CarModelID uuid.UUID
	Year       int
	Plate      string `gorm:"unique"`

	DailyRateMinor      int64
	Currency            string `gorm:"size:3"`
	WithDriverAvailable bool
	City                string `gorm:"index"`
	Address             string
	Active              bool `gorm:"default:true"`

	Host     Account  `gorm:"foreignKey:HostID"`
	CarMake  CarMake  `gorm:"foreignKey:CarMakeID"`
	CarModel CarModel `gorm:"foreignKey:CarModelID"`
}
