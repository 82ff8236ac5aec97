package services

import (
	"context"

	"github.com/google/uuid"

	"carlink/internal/models/db_models"
	"carlink/internal/repositories"
	"carlink/pkg/utils"
)

type InspectionServiceInterface interface {
	RecordInspection(ctx context.Context, caller CallerContext, bookingID uuid.UUID, kind db_models.InspectionKind, approved bool, notes string) (*db_models.Inspection, error)
	ListForBooking(ctx context.Context, caller CallerContext, bookingID uuid.UUID) ([]db_models.Inspection, error)
}

type InspectionService struct {
	inspectionRepo repositories.InspectionRepository
	bookingRepo    repositories.BookingRepository
}

func NewInspectionService(
	inspectionRepo repositories.InspectionRepository,
	bookingRepo repositories.BookingRepository,
) InspectionServiceInterface {
	return &InspectionService{
		inspectionRepo: inspectionRepo,
		bookingRepo:    bookingRepo,
	}
}

func (s *InspectionService) RecordInspection(ctx context.Context, caller CallerContext, bookingID uuid.UUID, kind db_models.InspectionKind, approved bool, notes string) (*db_models.Inspection, error) {
	booking, err := s.bookingRepo.FindById(ctx, bookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}

	// Hosts record inspections for their own bookings; admins may override.
	if caller.UserID != booking.HostID && !IsAdminRole(caller.Role) {
		return nil, utils.ErrPermissionDenied
	}

	inspection := &db_models.Inspection{
		BookingID:   bookingID,
		InspectorID: caller.UserID,
		Kind:        kind,
		Approved:    approved,
		Notes:       notes,
	}
	if err := s.inspectionRepo.Create(ctx, inspection); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return inspection, nil
}

func (s *InspectionService) ListForBooking(ctx context.Context, caller CallerContext, bookingID uuid.UUID) ([]db_models.Inspection, error) {
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

	inspections, err := s.inspectionRepo.ListByBookingId(ctx, bookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return inspections, nil
}
