package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carlink/internal/models/db_models"
)

// SettlementOutcome is the single ledger effect a dispute decision carries.
// The service decides the branch; the repository only applies it atomically.
type SettlementOutcome string

const (
	// OutcomeRefund refunds the guest: payment REFUNDED + REFUND ledger row.
	OutcomeRefund SettlementOutcome = "REFUND"
	// OutcomeRelease releases the hold to the host: payment COMPLETED + a
	// zero-amount HOLD ledger row.
	OutcomeRelease SettlementOutcome = "RELEASE"
	// OutcomeNone applies when no payment is linked to the dispute.
	OutcomeNone SettlementOutcome = "NONE"
)

type DisputeRepository interface {
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Dispute, error)
	FindByBookingId(ctx context.Context, bookingID uuid.UUID) (*db_models.Dispute, error)
	ListByStatus(ctx context.Context, status db_models.DisputeStatus, page, pageSize int) ([]db_models.Dispute, error)

	// CreateWithHoldTx persists the dispute and, when a payment is linked,
	// freezes it: payment ON_HOLD plus a zero-amount HOLD ledger row. One
	// commit; a failure leaves neither the dispute nor the hold behind.
	CreateWithHoldTx(ctx context.Context, dispute *db_models.Dispute, paymentID *uuid.UUID) error

	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.DisputeStatus) error

	// SettleTx closes the dispute: status update, exactly one ledger outcome
	// and the AdminAction audit row, all in one commit.
	SettleTx(ctx context.Context, disputeID uuid.UUID, status db_models.DisputeStatus,
		paymentID *uuid.UUID, outcome SettlementOutcome, refundAmountMinor int64,
		action *db_models.AdminAction) error
}

type disputeRepository struct {
	db *gorm.DB
}

func NewDisputeRepository(db *gorm.DB) DisputeRepository {
	return &disputeRepository{db: db}
}

func (r *disputeRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Dispute, error) {
	var dispute db_models.Dispute
	err := r.db.WithContext(ctx).First(&dispute, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dispute, nil
}

func (r *disputeRepository) FindByBookingId(ctx context.Context, bookingID uuid.UUID) (*db_models.Dispute, error) {
	var dispute db_models.Dispute
	err := r.db.WithContext(ctx).First(&dispute, "booking_id = ?", bookingID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dispute, nil
}

func (r *disputeRepository) ListByStatus(ctx context.Context, status db_models.DisputeStatus, page, pageSize int) ([]db_models.Dispute, error) {
	var disputes []db_models.Dispute
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&disputes).Error
	if err != nil {
		return nil, err
	}
	return disputes, nil
}

func (r *disputeRepository) CreateWithHoldTx(ctx context.Context, dispute *db_models.Dispute, paymentID *uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dispute).Error; err != nil {
			return err
		}

		if paymentID == nil {
			return nil
		}

		if err := tx.Model(&db_models.Payment{}).
			Where("id = ?", *paymentID).
			Update("status", db_models.PaymentStatusOnHold).Error; err != nil {
			return err
		}

		hold := db_models.PaymentTransaction{
			PaymentID:   *paymentID,
			Type:        db_models.TxnTypeHold,
			AmountMinor: 0,
			Status:      string(db_models.PaymentStatusOnHold),
		}
		return tx.Create(&hold).Error
	})
}

func (r *disputeRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.DisputeStatus) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.Dispute{}).
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

func (r *disputeRepository) SettleTx(ctx context.Context, disputeID uuid.UUID, status db_models.DisputeStatus,
	paymentID *uuid.UUID, outcome SettlementOutcome, refundAmountMinor int64,
	action *db_models.AdminAction) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db_models.Dispute{}).
			Where("id = ?", disputeID).
			Update("status", status).Error; err != nil {
			return err
		}

		switch outcome {
		case OutcomeRefund:
			if err := tx.Model(&db_models.Payment{}).
				Where("id = ?", *paymentID).
				Update("status", db_models.PaymentStatusRefunded).Error; err != nil {
				return err
			}
			row := db_models.PaymentTransaction{
				PaymentID:   *paymentID,
				Type:        db_models.TxnTypeRefund,
				AmountMinor: refundAmountMinor,
				Status:      string(db_models.PaymentStatusCompleted),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}

		case OutcomeRelease:
			if err := tx.Model(&db_models.Payment{}).
				Where("id = ?", *paymentID).
				Update("status", db_models.PaymentStatusCompleted).Error; err != nil {
				return err
			}
			row := db_models.PaymentTransaction{
				PaymentID:   *paymentID,
				Type:        db_models.TxnTypeHold,
				AmountMinor: 0,
				Status:      string(db_models.PaymentStatusCompleted),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}

		case OutcomeNone:
			// no linked payment, nothing to settle
		}

		return tx.Create(action).Error
	})
}
