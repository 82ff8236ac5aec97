package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carlink/internal/models/db_models"
)

// PaymentListFilter drives the paginated payment listing. RecipientID is
// force-injected by the service layer for host callers so a host only ever
// sees payments where it is the recipient.
type PaymentListFilter struct {
	BookingID   *uuid.UUID
	PayerID     *uuid.UUID
	RecipientID *uuid.UUID
	Status      *db_models.PaymentStatus
	Page        int
	PageSize    int
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *db_models.Payment) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Payment, error)
	FindByBookingId(ctx context.Context, bookingID uuid.UUID) (*db_models.Payment, error)
	List(ctx context.Context, filter PaymentListFilter) ([]db_models.Payment, error)
	ListTransactions(ctx context.Context, paymentID uuid.UUID) ([]db_models.PaymentTransaction, error)

	// CompleteTx marks the payment COMPLETED, stamps the capture reference and
	// appends the CAPTURE ledger row in one commit.
	CompleteTx(ctx context.Context, paymentID uuid.UUID, transactionID string) (*db_models.PaymentTransaction, error)

	// ReleaseToHostTx settles hostEarningsMinor to the host: payment goes
	// COMPLETED, a PLATFORM_TO_HOST ledger row is appended and the host
	// account's cumulative earnings are incremented, all in one commit.
	ReleaseToHostTx(ctx context.Context, paymentID, hostID uuid.UUID, hostEarningsMinor int64) error

	// RefundTx marks the payment REFUNDED and appends the REFUND ledger row
	// in one commit.
	RefundTx(ctx context.Context, paymentID uuid.UUID, refundAmountMinor int64, reason string) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *db_models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Payment, error) {
	var payment db_models.Payment
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByBookingId(ctx context.Context, bookingID uuid.UUID) (*db_models.Payment, error) {
	var payment db_models.Payment
	err := r.db.WithContext(ctx).First(&payment, "booking_id = ?", bookingID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) List(ctx context.Context, filter PaymentListFilter) ([]db_models.Payment, error) {
	var payments []db_models.Payment

	query := r.db.WithContext(ctx).Model(&db_models.Payment{})
	if filter.BookingID != nil {
		query = query.Where("booking_id = ?", *filter.BookingID)
	}
	if filter.PayerID != nil {
		query = query.Where("payer_id = ?", *filter.PayerID)
	}
	if filter.RecipientID != nil {
		query = query.Where("recipient_id = ?", *filter.RecipientID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	offset := (filter.Page - 1) * filter.PageSize
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) ListTransactions(ctx context.Context, paymentID uuid.UUID) ([]db_models.PaymentTransaction, error) {
	var txns []db_models.PaymentTransaction
	err := r.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		Order("created_at ASC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *paymentRepository) CompleteTx(ctx context.Context, paymentID uuid.UUID, transactionID string) (*db_models.PaymentTransaction, error) {
	var ledger *db_models.PaymentTransaction

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var payment db_models.Payment
		if err := tx.First(&payment, "id = ?", paymentID).Error; err != nil {
			return err
		}

		if err := tx.Model(&payment).Updates(map[string]interface{}{
			"status":         db_models.PaymentStatusCompleted,
			"transaction_id": transactionID,
		}).Error; err != nil {
			return err
		}

		row := db_models.PaymentTransaction{
			PaymentID:   payment.ID,
			Type:        db_models.TxnTypeCapture,
			AmountMinor: payment.AmountMinor,
			Status:      string(db_models.PaymentStatusCompleted),
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		ledger = &row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

func (r *paymentRepository) ReleaseToHostTx(ctx context.Context, paymentID, hostID uuid.UUID, hostEarningsMinor int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db_models.Payment{}).
			Where("id = ?", paymentID).
			Updates(map[string]interface{}{
				"status":              db_models.PaymentStatusCompleted,
				"host_earnings_minor": hostEarningsMinor,
			}).Error; err != nil {
			return err
		}

		row := db_models.PaymentTransaction{
			PaymentID:   paymentID,
			Type:        db_models.TxnTypePlatformToHost,
			AmountMinor: hostEarningsMinor,
			Status:      string(db_models.PaymentStatusCompleted),
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		return tx.Model(&db_models.Account{}).
			Where("id = ?", hostID).
			Update("earnings_minor", gorm.Expr("earnings_minor + ?", hostEarningsMinor)).Error
	})
}

func (r *paymentRepository) RefundTx(ctx context.Context, paymentID uuid.UUID, refundAmountMinor int64, reason string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db_models.Payment{}).
			Where("id = ?", paymentID).
			Updates(map[string]interface{}{
				"status": db_models.PaymentStatusRefunded,
				"method": "REFUND",
				"type":   "REFUND",
			}).Error; err != nil {
			return err
		}

		row := db_models.PaymentTransaction{
			PaymentID:   paymentID,
			Type:        db_models.TxnTypeRefund,
			AmountMinor: refundAmountMinor,
			Status:      string(db_models.PaymentStatusCompleted),
		}
		if reason != "" {
			if meta, err := json.Marshal(map[string]string{"reason": reason}); err == nil {
				row.Metadata = meta
			}
		}
		return tx.Create(&row).Error
	})
}
