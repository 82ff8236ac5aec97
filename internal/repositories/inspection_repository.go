package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carlink/internal/models/db_models"
)

type InspectionRepository interface {
	Create(ctx context.Context, inspection *db_models.Inspection) error
	FindDropoffByBookingId(ctx context.Context, bookingID uuid.UUID) (*db_models.Inspection, error)
	ListByBookingId(ctx context.Context, bookingID uuid.UUID) ([]db_models.Inspection, error)
}

type inspectionRepository struct {
	db *gorm.DB
}

func NewInspectionRepository(db *gorm.DB) InspectionRepository {
	return &inspectionRepository{db: db}
}

func (r *inspectionRepository) Create(ctx context.Context, inspection *db_models.Inspection) error {
	return r.db.WithContext(ctx).Create(inspection).Error
}

func (r *inspectionRepository) FindDropoffByBookingId(ctx context.Context, bookingID uuid.UUID) (*db_models.Inspection, error) {
	var inspection db_models.Inspection
	err := r.db.WithContext(ctx).
		Where("booking_id = ? AND kind = ?", bookingID, db_models.InspectionKindDropoff).
		Order("created_at DESC").
		First(&inspection).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inspection, nil
}

func (r *inspectionRepository) ListByBookingId(ctx context.Context, bookingID uuid.UUID) ([]db_models.Inspection, error) {
	var inspections []db_models.Inspection
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&inspections).Error
	if err != nil {
		return nil, err
	}
	return inspections, nil
}
