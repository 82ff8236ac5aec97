package services

import (
	"context"

	"github.com/google/uuid"

	"carlink/internal/models/db_models"
	"carlink/internal/repositories"
	"carlink/pkg/utils"
)

type CreatePaymentInput struct {
	BookingID   uuid.UUID
	AmountMinor int64
	Currency    string
	Method      string
	Type        string
}

type PaymentService interface {
	CreatePayment(ctx context.Context, caller CallerContext, input CreatePaymentInput) (*db_models.Payment, error)

	// CompletePayment captures the booking's payment: status COMPLETED, a
	// generated capture reference and a CAPTURE ledger row, one commit.
	// Deliberately not idempotent: a second call appends a second CAPTURE row.
	CompletePayment(ctx context.Context, bookingID uuid.UUID) (*db_models.Payment, *db_models.PaymentTransaction, error)

	ReleaseToHost(ctx context.Context, caller CallerContext, bookingID, hostID uuid.UUID) error
	Refund(ctx context.Context, caller CallerContext, bookingID uuid.UUID, refundAmountMinor int64, reason string) error

	GetPayment(ctx context.Context, id uuid.UUID) (*db_models.Payment, error)
	GetPaymentByBooking(ctx context.Context, bookingID uuid.UUID) (*db_models.Payment, error)
	ListPayments(ctx context.Context, caller CallerContext, filter repositories.PaymentListFilter) ([]db_models.Payment, error)
	ListTransactions(ctx context.Context, paymentID uuid.UUID) ([]db_models.PaymentTransaction, error)
}

type paymentService struct {
	paymentRepo repositories.PaymentRepository
	bookingRepo repositories.BookingRepository
	notifier    NotificationPublisher
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	bookingRepo repositories.BookingRepository,
	notifier NotificationPublisher,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		notifier:    notifier,
	}
}

func (s *paymentService) CreatePayment(ctx context.Context, caller CallerContext, input CreatePaymentInput) (*db_models.Payment, error) {
	booking, err := s.bookingRepo.FindById(ctx, input.BookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}

	existing, err := s.paymentRepo.FindByBookingId(ctx, booking.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrPaymentExists
	}

	payment := &db_models.Payment{
		BookingID:   booking.ID,
		PayerID:     booking.GuestID,
		RecipientID: booking.HostID,
		AmountMinor: input.AmountMinor,
		Currency:    input.Currency,
		Method:      input.Method,
		Type:        input.Type,
		Status:      db_models.PaymentStatusPending,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return payment, nil
}

func (s *paymentService) CompletePayment(ctx context.Context, bookingID uuid.UUID) (*db_models.Payment, *db_models.PaymentTransaction, error) {
	payment, err := s.paymentRepo.FindByBookingId(ctx, bookingID)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	if payment == nil {
		return nil, nil, utils.ErrPaymentNotFound
	}

	transactionID := uuid.New().String()
	ledger, err := s.paymentRepo.CompleteTx(ctx, payment.ID, transactionID)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}

	payment.Status = db_models.PaymentStatusCompleted
	payment.TransactionID = transactionID

	s.notifier.Publish(payment.RecipientID, "payment_completed", map[string]any{
		"booking_id": bookingID.String(),
		"payment_id": payment.ID.String(),
	})

	return payment, ledger, nil
}

func (s *paymentService) ReleaseToHost(ctx context.Context, caller CallerContext, bookingID, hostID uuid.UUID) error {
	// Role gate runs before any repository write is attempted.
	if !CanSettlePayments(caller.Role) {
		return utils.ErrPermissionDenied
	}

	payment, err := s.paymentRepo.FindByBookingId(ctx, bookingID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if payment == nil {
		return utils.ErrPaymentNotFound
	}

	// A refunded payment must never be settled to the host afterwards.
	if payment.Status == db_models.PaymentStatusRefunded {
		return utils.ErrPaymentRefunded
	}

	platformFee := utils.PercentMinor(payment.AmountMinor, utils.PlatformFeeBps)
	hostEarnings := payment.AmountMinor - platformFee

	if err := s.paymentRepo.ReleaseToHostTx(ctx, payment.ID, hostID, hostEarnings); err != nil {
		return utils.ErrDatabaseError
	}

	s.notifier.Publish(hostID, "payout_released", map[string]any{
		"booking_id":          bookingID.String(),
		"host_earnings_minor": hostEarnings,
	})
	return nil
}

func (s *paymentService) Refund(ctx context.Context, caller CallerContext, bookingID uuid.UUID, refundAmountMinor int64, reason string) error {
	if !CanSettlePayments(caller.Role) {
		return utils.ErrPermissionDenied
	}
	if refundAmountMinor <= 0 {
		return utils.ErrInvalidInput
	}

	payment, err := s.paymentRepo.FindByBookingId(ctx, bookingID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if payment == nil {
		return utils.ErrPaymentNotFound
	}

	if payment.Status == db_models.PaymentStatusRefunded {
		return utils.ErrPaymentRefunded
	}

	if err := s.paymentRepo.RefundTx(ctx, payment.ID, refundAmountMinor, reason); err != nil {
		return utils.ErrDatabaseError
	}

	s.notifier.Publish(payment.PayerID, "payment_refunded", map[string]any{
		"booking_id":          bookingID.String(),
		"refund_amount_minor": refundAmountMinor,
	})
	return nil
}

func (s *paymentService) GetPayment(ctx context.Context, id uuid.UUID) (*db_models.Payment, error) {
	payment, err := s.paymentRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if payment == nil {
		return nil, utils.ErrPaymentNotFound
	}
	return payment, nil
}

func (s *paymentService) GetPaymentByBooking(ctx context.Context, bookingID uuid.UUID) (*db_models.Payment, error) {
	payment, err := s.paymentRepo.FindByBookingId(ctx, bookingID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if payment == nil {
		return nil, utils.ErrPaymentNotFound
	}
	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, caller CallerContext, filter repositories.PaymentListFilter) ([]db_models.Payment, error) {
	if filter.Page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	// Hosts only ever see payments where they are the recipient, whatever
	// filter they send.
	if caller.Role == db_models.RoleHost {
		recipient := caller.UserID
		filter.RecipientID = &recipient
	}

	payments, err := s.paymentRepo.List(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return payments, nil
}

func (s *paymentService) ListTransactions(ctx context.Context, paymentID uuid.UUID) ([]db_models.PaymentTransaction, error) {
	txns, err := s.paymentRepo.ListTransactions(ctx, paymentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return txns, nil
}
