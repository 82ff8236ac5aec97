package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"carlink/internal/models/db_models"
	"carlink/internal/repositories"
	"carlink/pkg/utils"
)

type CreateBookingInput struct {
	CarID           uuid.UUID
	StartDate       time.Time
	EndDate         time.Time
	WithDriver      bool
	PickupLocation  string
	DropoffLocation string
}

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, caller CallerContext, input CreateBookingInput) (*db_models.Booking, error)
	ChangeBookingStatus(ctx context.Context, caller CallerContext, bookingID uuid.UUID, target db_models.BookingStatus) (*db_models.Booking, error)
	GetBooking(ctx context.Context, caller CallerContext, bookingID uuid.UUID) (*db_models.Booking, error)
	ListMyBookings(ctx context.Context, caller CallerContext, page, pageSize int) ([]db_models.Booking, error)
	DeleteBooking(ctx context.Context, caller CallerContext, bookingID uuid.UUID) error
}

type BookingService struct {
	bookingRepo repositories.BookingRepository
	carRepo     repositories.CarRepository
	notifier    NotificationPublisher
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	carRepo repositories.CarRepository,
	notifier NotificationPublisher,
) BookingServiceInterface {
	return &BookingService{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		notifier:    notifier,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, caller CallerContext, input CreateBookingInput) (*db_models.Booking, error) {
	if !input.StartDate.Before(input.EndDate) {
		return nil, utils.ErrInvalidDateRange
	}

	car, err := s.carRepo.FindById(ctx, input.CarID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if car == nil {
		return nil, utils.ErrCarNotFound
	}

	overlapping, err := s.bookingRepo.HasOverlapping(ctx, car.ID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if overlapping {
		return nil, utils.ErrBookingOverlap
	}

	quote := ComputeQuote(car.DailyRateMinor, input.StartDate, input.EndDate)

	booking := &db_models.Booking{
		CarID:           car.ID,
		GuestID:         caller.UserID,
		HostID:          car.HostID,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		TotalPriceMinor: quote.TotalPriceMinor,
		Currency:        car.Currency,
		WithDriver:      input.WithDriver,
		PickupLocation:  input.PickupLocation,
		DropoffLocation: input.DropoffLocation,
		Status:          db_models.BookingStatusPending,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.notifier.Publish(car.HostID, "booking_requested", map[string]any{
		"booking_id": booking.ID.String(),
		"car_id":     car.ID.String(),
	})

	return booking, nil
}

// allowedTransition checks the caller and source status for the requested
// target. Terminal statuses are immutable; even admins cannot move out of
// them.
func allowedTransition(booking *db_models.Booking, target db_models.BookingStatus, caller CallerContext) error {
	if booking.Status.IsTerminal() {
		return utils.ErrBookingFinalized
	}

	isHost := caller.UserID == booking.HostID
	isGuest := caller.UserID == booking.GuestID

	switch target {
	case db_models.BookingStatusConfirmed, db_models.BookingStatusRejected:
		if !isHost {
			return utils.ErrPermissionDenied
		}
		if booking.Status != db_models.BookingStatusPending {
			return utils.ErrTransitionNotAllowed
		}

	case db_models.BookingStatusCancelledByGuest:
		if !isGuest {
			return utils.ErrPermissionDenied
		}

	case db_models.BookingStatusCancelledByHost:
		if !isHost {
			return utils.ErrPermissionDenied
		}

	case db_models.BookingStatusCompleted:
		if !isHost {
			return utils.ErrPermissionDenied
		}
		if booking.Status != db_models.BookingStatusConfirmed {
			return utils.ErrTransitionNotAllowed
		}

	case db_models.BookingStatusCancelledByAdmin:
		if !IsAdminRole(caller.Role) {
			return utils.ErrPermissionDenied
		}

	default:
		return utils.ErrTransitionNotAllowed
	}

	return nil
}

func (s *BookingService) ChangeBookingStatus(ctx context.Context, caller CallerContext, bookingID uuid.UUID, target db_models.BookingStatus) (*db_models.Booking, error) {
	booking, err := s.bookingRepo.FindById(ctx, bookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}

	if err := allowedTransition(booking, target, caller); err != nil {
		return nil, err
	}

	// Single atomic status write; payment and dispute side effects are
	// triggered by their own explicit calls, never cascaded from here.
	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, target); err != nil {
		return nil, utils.ErrDatabaseError
	}
	booking.Status = target

	s.notifier.Publish(booking.GuestID, "booking_status_changed", map[string]any{
		"booking_id": booking.ID.String(),
		"status":     string(target),
	})

	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, caller CallerContext, bookingID uuid.UUID) (*db_models.Booking, error) {
	booking, err := s.bookingRepo.FindById(ctx, bookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}

	if caller.UserID != booking.GuestID && caller.UserID != booking.HostID && !IsAdminRole(caller.Role) {
		return nil, utils.ErrPermissionDenied
	}

	return booking, nil
}

func (s *BookingService) ListMyBookings(ctx context.Context, caller CallerContext, page, pageSize int) ([]db_models.Booking, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	if caller.Role == db_models.RoleHost {
		bookings, err := s.bookingRepo.ListByHost(ctx, caller.UserID, page, pageSize)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		return bookings, nil
	}

	bookings, err := s.bookingRepo.ListByGuest(ctx, caller.UserID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return bookings, nil
}

// DeleteBooking is the administrative escape hatch; the normal lifecycle only
// ever moves a booking to a terminal status.
func (s *BookingService) DeleteBooking(ctx context.Context, caller CallerContext, bookingID uuid.UUID) error {
	if !IsAdminRole(caller.Role) {
		return utils.ErrPermissionDenied
	}

	booking, err := s.bookingRepo.FindById(ctx, bookingID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if booking == nil {
		return utils.ErrBookingNotFound
	}

	log.Printf("admin %s deleting booking %s", caller.UserID, bookingID)
	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
