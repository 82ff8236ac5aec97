package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"carlink/internal/models/db_models"
	"carlink/internal/models/response_models"
	"carlink/internal/repositories"
	"carlink/pkg/utils"
)

type CarSearchInput struct {
	City     string
	Start    *time.Time
	End      *time.Time
	Page     int
	PageSize int
}

// UpdateCarInput carries the mutable listing fields; nil means "leave as is".
type UpdateCarInput struct {
	DailyRateMinor      *int64
	WithDriverAvailable *bool
	City                *string
	Address             *string
	Active              *bool
}

type CarServiceInterface interface {
	CreateCar(ctx context.Context, caller CallerContext, car *db_models.Car) (*db_models.Car, error)
	UpdateCar(ctx context.Context, caller CallerContext, carID uuid.UUID, input UpdateCarInput) (*db_models.Car, error)
	GetCar(ctx context.Context, id uuid.UUID, start, end *time.Time) (*response_models.CarResponse, error)

	// SearchCars lists active cars; with a date range it drops cars holding
	// an overlapping PENDING/CONFIRMED booking and annotates each result
	// with the quote for that exact range.
	SearchCars(ctx context.Context, input CarSearchInput) ([]response_models.CarResponse, error)

	CreateMake(ctx context.Context, caller CallerContext, name string) (*db_models.CarMake, error)
	CreateModel(ctx context.Context, caller CallerContext, makeID uuid.UUID, name string) (*db_models.CarModel, error)
	ListMakes(ctx context.Context) ([]db_models.CarMake, error)
}

type CarService struct {
	carRepo repositories.CarRepository
}

func NewCarService(carRepo repositories.CarRepository) CarServiceInterface {
	return &CarService{carRepo: carRepo}
}

func (s *CarService) CreateCar(ctx context.Context, caller CallerContext, car *db_models.Car) (*db_models.Car, error) {
	if !Can(caller.Role, ResourceCar, ActionWrite) {
		return nil, utils.ErrPermissionDenied
	}

	// Hosts always list under their own account; admins must name the host.
	if caller.Role == db_models.RoleHost {
		car.HostID = caller.UserID
	}
	if car.HostID == uuid.Nil {
		return nil, utils.ErrInvalidInput
	}

	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return car, nil
}

func (s *CarService) UpdateCar(ctx context.Context, caller CallerContext, carID uuid.UUID, input UpdateCarInput) (*db_models.Car, error) {
	existing, err := s.carRepo.FindById(ctx, carID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrCarNotFound
	}
	if existing.HostID != caller.UserID && !IsAdminRole(caller.Role) {
		return nil, utils.ErrPermissionDenied
	}

	if input.DailyRateMinor != nil {
		existing.DailyRateMinor = *input.DailyRateMinor
	}
	if input.WithDriverAvailable != nil {
		existing.WithDriverAvailable = *input.WithDriverAvailable
	}
	if input.City != nil {
		existing.City = *input.City
	}
	if input.Address != nil {
		existing.Address = *input.Address
	}
	if input.Active != nil {
		existing.Active = *input.Active
	}

	if err := s.carRepo.Update(ctx, existing); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return existing, nil
}

func (s *CarService) GetCar(ctx context.Context, id uuid.UUID, start, end *time.Time) (*response_models.CarResponse, error) {
	car, err := s.carRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if car == nil {
		return nil, utils.ErrCarNotFound
	}

	resp := toCarResponse(car, start, end)
	return &resp, nil
}

func (s *CarService) SearchCars(ctx context.Context, input CarSearchInput) ([]response_models.CarResponse, error) {
	if input.Page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if input.PageSize < 1 || input.PageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	if (input.Start == nil) != (input.End == nil) {
		return nil, utils.ErrInvalidDateRange
	}
	if input.Start != nil && !input.Start.Before(*input.End) {
		return nil, utils.ErrInvalidDateRange
	}

	cars, err := s.carRepo.Search(ctx, repositories.CarSearchFilter{
		City:     input.City,
		Start:    input.Start,
		End:      input.End,
		Page:     input.Page,
		PageSize: input.PageSize,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	results := make([]response_models.CarResponse, 0, len(cars))
	for i := range cars {
		results = append(results, toCarResponse(&cars[i], input.Start, input.End))
	}
	return results, nil
}

func toCarResponse(car *db_models.Car, start, end *time.Time) response_models.CarResponse {
	resp := response_models.CarResponse{
		ID:                  car.ID.String(),
		HostID:              car.HostID.String(),
		Make:                car.CarMake.Name,
		Model:               car.CarModel.Name,
		Year:                car.Year,
		DailyRateMinor:      car.DailyRateMinor,
		Currency:            car.Currency,
		WithDriverAvailable: car.WithDriverAvailable,
		City:                car.City,
		Address:             car.Address,
	}

	if start != nil && end != nil {
		quote := ComputeQuote(car.DailyRateMinor, *start, *end)
		resp.Quote = &response_models.QuoteResponse{
			Days:             quote.Days,
			CarPriceMinor:    quote.CarPriceMinor,
			PlatformFeeMinor: quote.PlatformFeeMinor,
			BaseTotalMinor:   quote.BaseTotalMinor,
			TaxMinor:         quote.TaxMinor,
			TotalPriceMinor:  quote.TotalPriceMinor,
		}
	}

	return resp
}

func (s *CarService) CreateMake(ctx context.Context, caller CallerContext, name string) (*db_models.CarMake, error) {
	if !IsAdminRole(caller.Role) {
		return nil, utils.ErrPermissionDenied
	}
	if name == "" {
		return nil, utils.ErrInvalidInput
	}

	carMake := &db_models.CarMake{Name: name}
	if err := s.carRepo.CreateMake(ctx, carMake); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return carMake, nil
}

func (s *CarService) CreateModel(ctx context.Context, caller CallerContext, makeID uuid.UUID, name string) (*db_models.CarModel, error) {
	if !IsAdminRole(caller.Role) {
		return nil, utils.ErrPermissionDenied
	}
	if name == "" {
		return nil, utils.ErrInvalidInput
	}

	carModel := &db_models.CarModel{CarMakeID: makeID, Name: name}
	if err := s.carRepo.CreateModel(ctx, carModel); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return carModel, nil
}

func (s *CarService) ListMakes(ctx context.Context) ([]db_models.CarMake, error) {
	makes, err := s.carRepo.ListMakes(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return makes, nil
}
