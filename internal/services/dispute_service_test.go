package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carlink/internal/models/db_models"
	"carlink/internal/repositories"
	"carlink/pkg/utils"
)

type disputeFixture struct {
	disputeRepo    *fakeDisputeRepo
	bookingRepo    *fakeBookingRepo
	paymentRepo    *fakePaymentRepo
	inspectionRepo *fakeInspectionRepo
	notifier       *fakeNotifier
	service        DisputeServiceInterface

	hostID  uuid.UUID
	guestID uuid.UUID
	booking *db_models.Booking
}

func newDisputeFixture() *disputeFixture {
	f := &disputeFixture{
		disputeRepo:    newFakeDisputeRepo(),
		bookingRepo:    newFakeBookingRepo(),
		paymentRepo:    newFakePaymentRepo(),
		inspectionRepo: &fakeInspectionRepo{},
		notifier:       &fakeNotifier{},
		hostID:         uuid.New(),
		guestID:        uuid.New(),
	}
	f.booking = f.bookingRepo.add(&db_models.Booking{
		GuestID:   f.guestID,
		HostID:    f.hostID,
		StartDate: date(2026, time.March, 10),
		EndDate:   date(2026, time.March, 13),
		Status:    db_models.BookingStatusCompleted,
	})
	f.service = NewDisputeService(f.disputeRepo, f.bookingRepo, f.paymentRepo, f.inspectionRepo, f.notifier)
	return f
}

func (f *disputeFixture) guest() CallerContext {
	return CallerContext{UserID: f.guestID, Role: db_models.RoleGuest}
}

func (f *disputeFixture) addPayment() *db_models.Payment {
	return f.paymentRepo.add(&db_models.Payment{
		BookingID:   f.booking.ID,
		PayerID:     f.guestID,
		RecipientID: f.hostID,
		AmountMinor: 37950,
		Status:      db_models.PaymentStatusCompleted,
	})
}

func (f *disputeFixture) addDispute(status db_models.DisputeStatus, paymentID *uuid.UUID) *db_models.Dispute {
	return f.disputeRepo.add(&db_models.Dispute{
		BookingID: f.booking.ID,
		PaymentID: paymentID,
		UserID:    f.guestID,
		Reason:    "car damaged",
		Status:    status,
	})
}

func TestCreateDispute_OpensAndHoldsPayment(t *testing.T) {
	f := newDisputeFixture()
	payment := f.addPayment()

	dispute, err := f.service.CreateDispute(context.Background(), f.guest(), f.booking.ID, "car damaged", nil)

	require.NoError(t, err)
	assert.Equal(t, db_models.DisputeStatusOpen, dispute.Status)
	require.NotNil(t, dispute.PaymentID)
	assert.Equal(t, payment.ID, *dispute.PaymentID)

	// Payment linked implicitly via the booking, hold created in the same call.
	require.Len(t, f.disputeRepo.holdsCreated, 1)
	require.NotNil(t, f.disputeRepo.holdsCreated[0])
	assert.Equal(t, payment.ID, *f.disputeRepo.holdsCreated[0])

	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, f.hostID, f.notifier.events[0].userID)
	assert.Equal(t, "dispute_opened", f.notifier.events[0].kind)
}

func TestCreateDispute_NoPaymentStillOpens(t *testing.T) {
	f := newDisputeFixture()

	dispute, err := f.service.CreateDispute(context.Background(), f.guest(), f.booking.ID, "no show", nil)

	require.NoError(t, err)
	assert.Nil(t, dispute.PaymentID)
	require.Len(t, f.disputeRepo.holdsCreated, 1)
	assert.Nil(t, f.disputeRepo.holdsCreated[0])
}

func TestCreateDispute_ReasonRequired(t *testing.T) {
	f := newDisputeFixture()

	_, err := f.service.CreateDispute(context.Background(), f.guest(), f.booking.ID, "", nil)

	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	assert.Empty(t, f.disputeRepo.disputes)
}

func TestCreateDispute_OnePerBooking(t *testing.T) {
	f := newDisputeFixture()
	f.addDispute(db_models.DisputeStatusResolved, nil)

	_, err := f.service.CreateDispute(context.Background(), f.guest(), f.booking.ID, "second try", nil)

	assert.ErrorIs(t, err, utils.ErrDisputeExists)
	assert.Empty(t, f.disputeRepo.holdsCreated)
}

func TestCreateDispute_ApprovedDropoffBlocks(t *testing.T) {
	f := newDisputeFixture()
	f.inspectionRepo.inspections = append(f.inspectionRepo.inspections, &db_models.Inspection{
		BookingID: f.booking.ID,
		Kind:      db_models.InspectionKindDropoff,
		Approved:  true,
	})

	_, err := f.service.CreateDispute(context.Background(), f.guest(), f.booking.ID, "car damaged", nil)

	assert.ErrorIs(t, err, utils.ErrDropoffApproved)
}

func TestCreateDispute_UnapprovedDropoffDoesNotBlock(t *testing.T) {
	f := newDisputeFixture()
	f.inspectionRepo.inspections = append(f.inspectionRepo.inspections, &db_models.Inspection{
		BookingID: f.booking.ID,
		Kind:      db_models.InspectionKindDropoff,
		Approved:  false,
	})

	_, err := f.service.CreateDispute(context.Background(), f.guest(), f.booking.ID, "car damaged", nil)

	assert.NoError(t, err)
}

func TestMarkUnderReview_AdminOnlyNoLedgerWrite(t *testing.T) {
	f := newDisputeFixture()
	dispute := f.addDispute(db_models.DisputeStatusOpen, nil)

	_, err := f.service.MarkUnderReview(context.Background(), f.guest(), dispute.ID)
	assert.ErrorIs(t, err, utils.ErrPermissionDenied)

	updated, err := f.service.MarkUnderReview(context.Background(), admin(), dispute.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.DisputeStatusUnderReview, updated.Status)
	assert.Empty(t, f.disputeRepo.settleCalls)
	assert.Empty(t, f.paymentRepo.ledger)
}

func TestMarkUnderReview_ClosedDispute(t *testing.T) {
	f := newDisputeFixture()
	dispute := f.addDispute(db_models.DisputeStatusRejected, nil)

	_, err := f.service.MarkUnderReview(context.Background(), admin(), dispute.ID)

	assert.ErrorIs(t, err, utils.ErrDisputeClosed)
}

func TestResolveDispute_RefundBranch(t *testing.T) {
	f := newDisputeFixture()
	payment := f.addPayment()
	dispute := f.addDispute(db_models.DisputeStatusUnderReview, &payment.ID)
	caller := admin()

	updated, err := f.service.ResolveDispute(context.Background(), caller, dispute.ID, 20000, "partial refund for damage")

	require.NoError(t, err)
	assert.Equal(t, db_models.DisputeStatusResolved, updated.Status)

	require.Len(t, f.disputeRepo.settleCalls, 1)
	call := f.disputeRepo.settleCalls[0]
	assert.Equal(t, repositories.OutcomeRefund, call.outcome)
	assert.Equal(t, int64(20000), call.refundAmountMinor)
	assert.Equal(t, db_models.DisputeStatusResolved, call.status)

	require.NotNil(t, call.action)
	assert.Equal(t, caller.UserID, call.action.AdminID)
	assert.Equal(t, db_models.AdminActionResolved, call.action.ActionType)
	assert.Equal(t, "partial refund for damage", call.action.Notes)
}

func TestResolveDispute_ZeroRefundReleasesInstead(t *testing.T) {
	f := newDisputeFixture()
	payment := f.addPayment()
	dispute := f.addDispute(db_models.DisputeStatusUnderReview, &payment.ID)

	_, err := f.service.ResolveDispute(context.Background(), admin(), dispute.ID, 0, "no fault found")

	require.NoError(t, err)
	require.Len(t, f.disputeRepo.settleCalls, 1)
	assert.Equal(t, repositories.OutcomeRelease, f.disputeRepo.settleCalls[0].outcome)
}

func TestResolveDispute_NoLinkedPayment(t *testing.T) {
	f := newDisputeFixture()
	dispute := f.addDispute(db_models.DisputeStatusOpen, nil)

	_, err := f.service.ResolveDispute(context.Background(), admin(), dispute.ID, 0, "")

	require.NoError(t, err)
	require.Len(t, f.disputeRepo.settleCalls, 1)
	assert.Equal(t, repositories.OutcomeNone, f.disputeRepo.settleCalls[0].outcome)
}

func TestResolveDispute_NegativeRefund(t *testing.T) {
	f := newDisputeFixture()
	dispute := f.addDispute(db_models.DisputeStatusOpen, nil)

	_, err := f.service.ResolveDispute(context.Background(), admin(), dispute.ID, -1, "")

	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestResolveDispute_ClosedDispute(t *testing.T) {
	f := newDisputeFixture()
	dispute := f.addDispute(db_models.DisputeStatusResolved, nil)

	_, err := f.service.ResolveDispute(context.Background(), admin(), dispute.ID, 0, "")

	assert.ErrorIs(t, err, utils.ErrDisputeClosed)
	assert.Empty(t, f.disputeRepo.settleCalls)
}

func TestRejectDispute_ReleasesHeldPayment(t *testing.T) {
	f := newDisputeFixture()
	payment := f.addPayment()
	payment.Status = db_models.PaymentStatusOnHold
	dispute := f.addDispute(db_models.DisputeStatusUnderReview, &payment.ID)
	caller := admin()

	updated, err := f.service.RejectDispute(context.Background(), caller, dispute.ID)

	require.NoError(t, err)
	assert.Equal(t, db_models.DisputeStatusRejected, updated.Status)

	require.Len(t, f.disputeRepo.settleCalls, 1)
	call := f.disputeRepo.settleCalls[0]
	assert.Equal(t, repositories.OutcomeRelease, call.outcome)
	assert.Equal(t, db_models.DisputeStatusRejected, call.status)

	require.NotNil(t, call.action)
	assert.Equal(t, db_models.AdminActionRejected, call.action.ActionType)
}

func TestRejectDispute_NonAdmin(t *testing.T) {
	f := newDisputeFixture()
	dispute := f.addDispute(db_models.DisputeStatusOpen, nil)
	support := CallerContext{UserID: uuid.New(), Role: db_models.RoleSupport}

	_, err := f.service.RejectDispute(context.Background(), support, dispute.ID)

	assert.ErrorIs(t, err, utils.ErrPermissionDenied)
	assert.Empty(t, f.disputeRepo.settleCalls)
}

func TestListByStatus_AdminOnly(t *testing.T) {
	f := newDisputeFixture()
	f.addDispute(db_models.DisputeStatusOpen, nil)

	_, err := f.service.ListByStatus(context.Background(), f.guest(), db_models.DisputeStatusOpen, 1, 20)
	assert.ErrorIs(t, err, utils.ErrPermissionDenied)

	disputes, err := f.service.ListByStatus(context.Background(), admin(), db_models.DisputeStatusOpen, 1, 20)
	require.NoError(t, err)
	assert.Len(t, disputes, 1)
}
