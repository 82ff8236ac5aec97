package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"carlink/internal/models/db_models"
	"carlink/internal/repositories"
)

// In-memory fakes for the repository interfaces. Each fake records the
// mutating calls it receives so tests can assert what was (and was not)
// written.

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*db_models.Booking
	overlap  bool

	created       []*db_models.Booking
	statusUpdates map[uuid.UUID]db_models.BookingStatus
	deleted       []uuid.UUID
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings:      make(map[uuid.UUID]*db_models.Booking),
		statusUpdates: make(map[uuid.UUID]db_models.BookingStatus),
	}
}

func (f *fakeBookingRepo) add(booking *db_models.Booking) *db_models.Booking {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	f.bookings[booking.ID] = booking
	return booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *db_models.Booking) error {
	f.add(booking)
	f.created = append(f.created, booking)
	return nil
}

func (f *fakeBookingRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status db_models.BookingStatus) error {
	f.statusUpdates[id] = status
	if b, ok := f.bookings[id]; ok {
		b.Status = status
	}
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.bookings, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeBookingRepo) HasOverlapping(_ context.Context, _ uuid.UUID, _, _ time.Time) (bool, error) {
	return f.overlap, nil
}

func (f *fakeBookingRepo) ListByGuest(_ context.Context, guestID uuid.UUID, _, _ int) ([]db_models.Booking, error) {
	var out []db_models.Booking
	for _, b := range f.bookings {
		if b.GuestID == guestID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByHost(_ context.Context, hostID uuid.UUID, _, _ int) ([]db_models.Booking, error) {
	var out []db_models.Booking
	for _, b := range f.bookings {
		if b.HostID == hostID {
			out = append(out, *b)
		}
	}
	return out, nil
}

var _ repositories.BookingRepository = (*fakeBookingRepo)(nil)

type fakeCarRepo struct {
	cars  map[uuid.UUID]*db_models.Car
	makes []db_models.CarMake

	created []*db_models.Car
	updated []*db_models.Car
}

func newFakeCarRepo() *fakeCarRepo {
	return &fakeCarRepo{cars: make(map[uuid.UUID]*db_models.Car)}
}

func (f *fakeCarRepo) add(car *db_models.Car) *db_models.Car {
	if car.ID == uuid.Nil {
		car.ID = uuid.New()
	}
	f.cars[car.ID] = car
	return car
}

func (f *fakeCarRepo) Create(_ context.Context, car *db_models.Car) error {
	f.add(car)
	f.created = append(f.created, car)
	return nil
}

func (f *fakeCarRepo) Update(_ context.Context, car *db_models.Car) error {
	f.cars[car.ID] = car
	f.updated = append(f.updated, car)
	return nil
}

func (f *fakeCarRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Car, error) {
	return f.cars[id], nil
}

func (f *fakeCarRepo) Search(_ context.Context, _ repositories.CarSearchFilter) ([]db_models.Car, error) {
	var out []db_models.Car
	for _, c := range f.cars {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCarRepo) CreateMake(_ context.Context, carMake *db_models.CarMake) error {
	if carMake.ID == uuid.Nil {
		carMake.ID = uuid.New()
	}
	f.makes = append(f.makes, *carMake)
	return nil
}

func (f *fakeCarRepo) CreateModel(_ context.Context, model *db_models.CarModel) error {
	if model.ID == uuid.Nil {
		model.ID = uuid.New()
	}
	return nil
}

func (f *fakeCarRepo) ListMakes(_ context.Context) ([]db_models.CarMake, error) {
	return f.makes, nil
}

var _ repositories.CarRepository = (*fakeCarRepo)(nil)

// ledgerWrite records one CompleteTx / ReleaseToHostTx / RefundTx call.
type ledgerWrite struct {
	kind              string
	paymentID         uuid.UUID
	transactionID     string
	hostID            uuid.UUID
	hostEarningsMinor int64
	refundAmountMinor int64
	reason            string
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*db_models.Payment

	created    []*db_models.Payment
	ledger     []ledgerWrite
	lastFilter repositories.PaymentListFilter
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]*db_models.Payment)}
}

func (f *fakePaymentRepo) add(payment *db_models.Payment) *db_models.Payment {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	f.payments[payment.ID] = payment
	return payment
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *db_models.Payment) error {
	f.add(payment)
	f.created = append(f.created, payment)
	return nil
}

func (f *fakePaymentRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Payment, error) {
	return f.payments[id], nil
}

func (f *fakePaymentRepo) FindByBookingId(_ context.Context, bookingID uuid.UUID) (*db_models.Payment, error) {
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) List(_ context.Context, filter repositories.PaymentListFilter) ([]db_models.Payment, error) {
	f.lastFilter = filter
	var out []db_models.Payment
	for _, p := range f.payments {
		if filter.RecipientID != nil && p.RecipientID != *filter.RecipientID {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePaymentRepo) ListTransactions(_ context.Context, _ uuid.UUID) ([]db_models.PaymentTransaction, error) {
	return nil, nil
}

func (f *fakePaymentRepo) CompleteTx(_ context.Context, paymentID uuid.UUID, transactionID string) (*db_models.PaymentTransaction, error) {
	f.ledger = append(f.ledger, ledgerWrite{kind: "CAPTURE", paymentID: paymentID, transactionID: transactionID})
	p := f.payments[paymentID]
	p.Status = db_models.PaymentStatusCompleted
	p.TransactionID = transactionID
	return &db_models.PaymentTransaction{
		PaymentID:   paymentID,
		Type:        db_models.TxnTypeCapture,
		AmountMinor: p.AmountMinor,
		Status:      string(db_models.PaymentStatusCompleted),
	}, nil
}

func (f *fakePaymentRepo) ReleaseToHostTx(_ context.Context, paymentID, hostID uuid.UUID, hostEarningsMinor int64) error {
	f.ledger = append(f.ledger, ledgerWrite{
		kind:              "PLATFORM_TO_HOST",
		paymentID:         paymentID,
		hostID:            hostID,
		hostEarningsMinor: hostEarningsMinor,
	})
	p := f.payments[paymentID]
	p.Status = db_models.PaymentStatusCompleted
	p.HostEarningsMinor = hostEarningsMinor
	return nil
}

func (f *fakePaymentRepo) RefundTx(_ context.Context, paymentID uuid.UUID, refundAmountMinor int64, reason string) error {
	f.ledger = append(f.ledger, ledgerWrite{
		kind:              "REFUND",
		paymentID:         paymentID,
		refundAmountMinor: refundAmountMinor,
		reason:            reason,
	})
	f.payments[paymentID].Status = db_models.PaymentStatusRefunded
	return nil
}

var _ repositories.PaymentRepository = (*fakePaymentRepo)(nil)

// settleCall records one SettleTx invocation.
type settleCall struct {
	disputeID         uuid.UUID
	status            db_models.DisputeStatus
	paymentID         *uuid.UUID
	outcome           repositories.SettlementOutcome
	refundAmountMinor int64
	action            *db_models.AdminAction
}

type fakeDisputeRepo struct {
	disputes map[uuid.UUID]*db_models.Dispute

	holdsCreated  []*uuid.UUID
	statusUpdates map[uuid.UUID]db_models.DisputeStatus
	settleCalls   []settleCall
}

func newFakeDisputeRepo() *fakeDisputeRepo {
	return &fakeDisputeRepo{
		disputes:      make(map[uuid.UUID]*db_models.Dispute),
		statusUpdates: make(map[uuid.UUID]db_models.DisputeStatus),
	}
}

func (f *fakeDisputeRepo) add(dispute *db_models.Dispute) *db_models.Dispute {
	if dispute.ID == uuid.Nil {
		dispute.ID = uuid.New()
	}
	f.disputes[dispute.ID] = dispute
	return dispute
}

func (f *fakeDisputeRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Dispute, error) {
	return f.disputes[id], nil
}

func (f *fakeDisputeRepo) FindByBookingId(_ context.Context, bookingID uuid.UUID) (*db_models.Dispute, error) {
	for _, d := range f.disputes {
		if d.BookingID == bookingID {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDisputeRepo) ListByStatus(_ context.Context, status db_models.DisputeStatus, _, _ int) ([]db_models.Dispute, error) {
	var out []db_models.Dispute
	for _, d := range f.disputes {
		if d.Status == status {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDisputeRepo) CreateWithHoldTx(_ context.Context, dispute *db_models.Dispute, paymentID *uuid.UUID) error {
	f.add(dispute)
	f.holdsCreated = append(f.holdsCreated, paymentID)
	return nil
}

func (f *fakeDisputeRepo) UpdateStatus(_ context.Context, id uuid.UUID, status db_models.DisputeStatus) error {
	f.statusUpdates[id] = status
	if d, ok := f.disputes[id]; ok {
		d.Status = status
	}
	return nil
}

func (f *fakeDisputeRepo) SettleTx(_ context.Context, disputeID uuid.UUID, status db_models.DisputeStatus,
	paymentID *uuid.UUID, outcome repositories.SettlementOutcome, refundAmountMinor int64,
	action *db_models.AdminAction) error {
	f.settleCalls = append(f.settleCalls, settleCall{
		disputeID:         disputeID,
		status:            status,
		paymentID:         paymentID,
		outcome:           outcome,
		refundAmountMinor: refundAmountMinor,
		action:            action,
	})
	if d, ok := f.disputes[disputeID]; ok {
		d.Status = status
	}
	return nil
}

var _ repositories.DisputeRepository = (*fakeDisputeRepo)(nil)

type fakeInspectionRepo struct {
	inspections []*db_models.Inspection
}

func (f *fakeInspectionRepo) Create(_ context.Context, inspection *db_models.Inspection) error {
	if inspection.ID == uuid.Nil {
		inspection.ID = uuid.New()
	}
	f.inspections = append(f.inspections, inspection)
	return nil
}

func (f *fakeInspectionRepo) FindDropoffByBookingId(_ context.Context, bookingID uuid.UUID) (*db_models.Inspection, error) {
	for _, i := range f.inspections {
		if i.BookingID == bookingID && i.Kind == db_models.InspectionKindDropoff {
			return i, nil
		}
	}
	return nil, nil
}

func (f *fakeInspectionRepo) ListByBookingId(_ context.Context, bookingID uuid.UUID) ([]db_models.Inspection, error) {
	var out []db_models.Inspection
	for _, i := range f.inspections {
		if i.BookingID == bookingID {
			out = append(out, *i)
		}
	}
	return out, nil
}

var _ repositories.InspectionRepository = (*fakeInspectionRepo)(nil)

// publishedEvent records one Publish call; the fake is synchronous so tests
// can assert on it directly.
type publishedEvent struct {
	userID  uuid.UUID
	kind    string
	payload map[string]any
}

type fakeNotifier struct {
	events []publishedEvent
}

func (f *fakeNotifier) Publish(userID uuid.UUID, kind string, payload map[string]any) {
	f.events = append(f.events, publishedEvent{userID: userID, kind: kind, payload: payload})
}

var _ NotificationPublisher = (*fakeNotifier)(nil)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
