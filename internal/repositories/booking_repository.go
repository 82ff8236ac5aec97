package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carlink/internal/models/db_models"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *db_models.Booking) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.BookingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error

	// HasOverlapping reports whether the car has a PENDING or CONFIRMED
	// booking intersecting [start, end].
	HasOverlapping(ctx context.Context, carID uuid.UUID, start, end time.Time) (bool, error)

	ListByGuest(ctx context.Context, guestID uuid.UUID, page, pageSize int) ([]db_models.Booking, error)
	ListByHost(ctx context.Context, hostID uuid.UUID, page, pageSize int) ([]db_models.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *db_models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &booking, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.BookingStatus) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete is the administrative escape hatch only; the normal lifecycle never
// removes a booking row.
func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Booking{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *bookingRepository) HasOverlapping(ctx context.Context, carID uuid.UUID, start, end time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("car_id = ?", carID).
		Where("status IN ?", db_models.ActiveBookingStatuses).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *bookingRepository) ListByGuest(ctx context.Context, guestID uuid.UUID, page, pageSize int) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("guest_id = ?", guestID).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ListByHost(ctx context.Context, hostID uuid.UUID, page, pageSize int) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("host_id = ?", hostID).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
