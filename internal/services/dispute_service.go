package services

import (
	"context"

	"github.com/google/uuid"

	"carlink/internal/models/db_models"
	"carlink/internal/repositories"
	"carlink/pkg/utils"
)

type DisputeServiceInterface interface {
	// CreateDispute opens a dispute for a booking and freezes the linked
	// payment in the same commit. At most one dispute may ever exist per
	// booking, and an approved drop-off inspection rules disputing out.
	CreateDispute(ctx context.Context, caller CallerContext, bookingID uuid.UUID, reason string, paymentID *uuid.UUID) (*db_models.Dispute, error)

	MarkUnderReview(ctx context.Context, caller CallerContext, disputeID uuid.UUID) (*db_models.Dispute, error)
	ResolveDispute(ctx context.Context, caller CallerContext, disputeID uuid.UUID, refundAmountMinor int64, notes string) (*db_models.Dispute, error)
	RejectDispute(ctx context.Context, caller CallerContext, disputeID uuid.UUID) (*db_models.Dispute, error)

	GetDispute(ctx context.Context, disputeID uuid.UUID) (*db_models.Dispute, error)
	ListByStatus(ctx context.Context, caller CallerContext, status db_models.DisputeStatus, page, pageSize int) ([]db_models.Dispute, error)
}

type DisputeService struct {
	disputeRepo    repositories.DisputeRepository
	bookingRepo    repositories.BookingRepository
	paymentRepo    repositories.PaymentRepository
	inspectionRepo repositories.InspectionRepository
	notifier       NotificationPublisher
}

func NewDisputeService(
	disputeRepo repositories.DisputeRepository,
	bookingRepo repositories.BookingRepository,
	paymentRepo repositories.PaymentRepository,
	inspectionRepo repositories.InspectionRepository,
	notifier NotificationPublisher,
) DisputeServiceInterface {
	return &DisputeService{
		disputeRepo:    disputeRepo,
		bookingRepo:    bookingRepo,
		paymentRepo:    paymentRepo,
		inspectionRepo: inspectionRepo,
		notifier:       notifier,
	}
}

func (s *DisputeService) CreateDispute(ctx context.Context, caller CallerContext, bookingID uuid.UUID, reason string, paymentID *uuid.UUID) (*db_models.Dispute, error) {
	if reason == "" {
		return nil, utils.ErrInvalidInput
	}

	booking, err := s.bookingRepo.FindById(ctx, bookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}

	existing, err := s.disputeRepo.FindByBookingId(ctx, bookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrDisputeExists
	}

	// An approved drop-off closes the window for disputing; a missing
	// drop-off record does not.
	dropoff, err := s.inspectionRepo.FindDropoffByBookingId(ctx, bookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if dropoff != nil && dropoff.Approved {
		return nil, utils.ErrDropoffApproved
	}

	linkedPaymentID := paymentID
	if linkedPaymentID == nil {
		payment, err := s.paymentRepo.FindByBookingId(ctx, bookingID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if payment != nil {
			linkedPaymentID = &payment.ID
		}
	}

	dispute := &db_models.Dispute{
		BookingID: bookingID,
		PaymentID: linkedPaymentID,
		UserID:    caller.UserID,
		Reason:    reason,
		Status:    db_models.DisputeStatusOpen,
	}

	if err := s.disputeRepo.CreateWithHoldTx(ctx, dispute, linkedPaymentID); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.notifier.Publish(booking.HostID, "dispute_opened", map[string]any{
		"booking_id": bookingID.String(),
		"dispute_id": dispute.ID.String(),
	})

	return dispute, nil
}

func (s *DisputeService) MarkUnderReview(ctx context.Context, caller CallerContext, disputeID uuid.UUID) (*db_models.Dispute, error) {
	if !IsAdminRole(caller.Role) {
		return nil, utils.ErrPermissionDenied
	}

	dispute, err := s.disputeRepo.FindById(ctx, disputeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if dispute == nil {
		return nil, utils.ErrDisputeNotFound
	}
	if dispute.Status.IsClosed() {
		return nil, utils.ErrDisputeClosed
	}

	// Pure status update, no payment side effect.
	if err := s.disputeRepo.UpdateStatus(ctx, disputeID, db_models.DisputeStatusUnderReview); err != nil {
		return nil, utils.ErrDatabaseError
	}
	dispute.Status = db_models.DisputeStatusUnderReview
	return dispute, nil
}

func (s *DisputeService) ResolveDispute(ctx context.Context, caller CallerContext, disputeID uuid.UUID, refundAmountMinor int64, notes string) (*db_models.Dispute, error) {
	if !IsAdminRole(caller.Role) {
		return nil, utils.ErrPermissionDenied
	}
	if refundAmountMinor < 0 {
		return nil, utils.ErrInvalidInput
	}

	dispute, err := s.disputeRepo.FindById(ctx, disputeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if dispute == nil {
		return nil, utils.ErrDisputeNotFound
	}
	if dispute.Status.IsClosed() {
		return nil, utils.ErrDisputeClosed
	}

	// Exactly one ledger branch per resolution: refund the guest, or
	// release the hold in the host's favor.
	outcome := repositories.OutcomeNone
	if dispute.PaymentID != nil {
		if refundAmountMinor > 0 {
			outcome = repositories.OutcomeRefund
		} else {
			outcome = repositories.OutcomeRelease
		}
	}

	action := &db_models.AdminAction{
		AdminID:    caller.UserID,
		TargetType: "dispute",
		TargetID:   disputeID,
		ActionType: db_models.AdminActionResolved,
		Notes:      notes,
	}

	err = s.disputeRepo.SettleTx(ctx, disputeID, db_models.DisputeStatusResolved,
		dispute.PaymentID, outcome, refundAmountMinor, action)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	dispute.Status = db_models.DisputeStatusResolved

	s.notifier.Publish(dispute.UserID, "dispute_resolved", map[string]any{
		"dispute_id":          disputeID.String(),
		"refund_amount_minor": refundAmountMinor,
	})

	return dispute, nil
}

func (s *DisputeService) RejectDispute(ctx context.Context, caller CallerContext, disputeID uuid.UUID) (*db_models.Dispute, error) {
	if !IsAdminRole(caller.Role) {
		return nil, utils.ErrPermissionDenied
	}

	dispute, err := s.disputeRepo.FindById(ctx, disputeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if dispute == nil {
		return nil, utils.ErrDisputeNotFound
	}
	if dispute.Status.IsClosed() {
		return nil, utils.ErrDisputeClosed
	}

	// Rejection always releases a held payment back to the host path.
	outcome := repositories.OutcomeNone
	if dispute.PaymentID != nil {
		outcome = repositories.OutcomeRelease
	}

	action := &db_models.AdminAction{
		AdminID:    caller.UserID,
		TargetType: "dispute",
		TargetID:   disputeID,
		ActionType: db_models.AdminActionRejected,
	}

	err = s.disputeRepo.SettleTx(ctx, disputeID, db_models.DisputeStatusRejected,
		dispute.PaymentID, outcome, 0, action)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	dispute.Status = db_models.DisputeStatusRejected

	s.notifier.Publish(dispute.UserID, "dispute_rejected", map[string]any{
		"dispute_id": disputeID.String(),
	})

	return dispute, nil
}

func (s *DisputeService) GetDispute(ctx context.Context, disputeID uuid.UUID) (*db_models.Dispute, error) {
	dispute, err := s.disputeRepo.FindById(ctx, disputeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if dispute == nil {
		return nil, utils.ErrDisputeNotFound
	}
	return dispute, nil
}

func (s *DisputeService) ListByStatus(ctx context.Context, caller CallerContext, status db_models.DisputeStatus, page, pageSize int) ([]db_models.Dispute, error) {
	if !IsAdminRole(caller.Role) {
		return nil, utils.ErrPermissionDenied
	}
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	disputes, err := s.disputeRepo.ListByStatus(ctx, status, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return disputes, nil
}
