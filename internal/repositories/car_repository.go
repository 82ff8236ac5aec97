package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carlink/internal/models/db_models"
)

// CarSearchFilter narrows a public car search. Start/End are optional; when
// both are set the query excludes cars with an overlapping active booking.
type CarSearchFilter struct {
	City     string
	Start    *time.Time
	End      *time.Time
	Page     int
	PageSize int
}

type CarRepository interface {
	Create(ctx context.Context, car *db_models.Car) error
	Update(ctx context.Context, car *db_models.Car) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Car, error)
	Search(ctx context.Context, filter CarSearchFilter) ([]db_models.Car, error)

	CreateMake(ctx context.Context, make *db_models.CarMake) error
	CreateModel(ctx context.Context, model *db_models.CarModel) error
	ListMakes(ctx context.Context) ([]db_models.CarMake, error)
}

type carRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, car *db_models.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

func (r *carRepository) Update(ctx context.Context, car *db_models.Car) error {
	result := r.db.WithContext(ctx).Save(car)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *carRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Car, error) {
	var car db_models.Car
	err := r.db.WithContext(ctx).
		Preload("CarMake").
		Preload("CarModel").
		First(&car, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &car, nil
}

func (r *carRepository) Search(ctx context.Context, filter CarSearchFilter) ([]db_models.Car, error) {
	var cars []db_models.Car

	query := r.db.WithContext(ctx).
		Preload("CarMake").
		Preload("CarModel").
		Where("active = ?", true)

	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}

	if filter.Start != nil && filter.End != nil {
		// A car is out when any PENDING/CONFIRMED booking intersects the
		// requested range: existing.start <= reqEnd AND existing.end >= reqStart.
		booked := r.db.Model(&db_models.Booking{}).
			Select("car_id").
			Where("status IN ?", db_models.ActiveBookingStatuses).
			Where("start_date <= ? AND end_date >= ?", *filter.End, *filter.Start)
		query = query.Where("id NOT IN (?)", booked)
	}

	offset := (filter.Page - 1) * filter.PageSize
	err := query.
		Offset(offset).
		Limit(filter.PageSize).
		Find(&cars).Error
	if err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *carRepository) CreateMake(ctx context.Context, make *db_models.CarMake) error {
	return r.db.WithContext(ctx).Create(make).Error
}

func (r *carRepository) CreateModel(ctx context.Context, model *db_models.CarModel) error {
	return r.db.WithContext(ctx).Create(model).Error
}

func (r *carRepository) ListMakes(ctx context.Context) ([]db_models.CarMake, error) {
	var makes []db_models.CarMake
	err := r.db.WithContext(ctx).
		Preload("Models").
		Find(&makes).Error
	if err != nil {
		return nil, err
	}
	return makes, nil
}
