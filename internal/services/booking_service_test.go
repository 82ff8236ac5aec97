package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carlink/internal/models/db_models"
	"carlink/pkg/utils"
)

type bookingFixture struct {
	bookingRepo *fakeBookingRepo
	carRepo     *fakeCarRepo
	notifier    *fakeNotifier
	service     BookingServiceInterface

	hostID  uuid.UUID
	guestID uuid.UUID
	car     *db_models.Car
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		bookingRepo: newFakeBookingRepo(),
		carRepo:     newFakeCarRepo(),
		notifier:    &fakeNotifier{},
		hostID:      uuid.New(),
		guestID:     uuid.New(),
	}
	f.car = f.carRepo.add(&db_models.Car{
		HostID:         f.hostID,
		DailyRateMinor: 10000,
		Currency:       "USD",
		City:           "Austin",
	})
	f.service = NewBookingService(f.bookingRepo, f.carRepo, f.notifier)
	return f
}

func (f *bookingFixture) guest() CallerContext {
	return CallerContext{UserID: f.guestID, Role: db_models.RoleGuest}
}

func (f *bookingFixture) host() CallerContext {
	return CallerContext{UserID: f.hostID, Role: db_models.RoleHost}
}

func (f *bookingFixture) addBooking(status db_models.BookingStatus) *db_models.Booking {
	return f.bookingRepo.add(&db_models.Booking{
		CarID:     f.car.ID,
		GuestID:   f.guestID,
		HostID:    f.hostID,
		StartDate: date(2026, time.March, 10),
		EndDate:   date(2026, time.March, 13),
		Status:    status,
	})
}

func TestCreateBooking_PendingWithQuotedTotal(t *testing.T) {
	f := newBookingFixture()

	booking, err := f.service.CreateBooking(context.Background(), f.guest(), CreateBookingInput{
		CarID:     f.car.ID,
		StartDate: date(2026, time.March, 10),
		EndDate:   date(2026, time.March, 13),
	})

	require.NoError(t, err)
	assert.Equal(t, db_models.BookingStatusPending, booking.Status)
	assert.Equal(t, f.guestID, booking.GuestID)
	assert.Equal(t, f.hostID, booking.HostID)
	// 3 days at 10000 plus 10% fee plus 15% tax.
	assert.Equal(t, int64(37950), booking.TotalPriceMinor)
	assert.Equal(t, "USD", booking.Currency)

	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, f.hostID, f.notifier.events[0].userID)
	assert.Equal(t, "booking_requested", f.notifier.events[0].kind)
}

func TestCreateBooking_InvalidRange(t *testing.T) {
	f := newBookingFixture()

	_, err := f.service.CreateBooking(context.Background(), f.guest(), CreateBookingInput{
		CarID:     f.car.ID,
		StartDate: date(2026, time.March, 13),
		EndDate:   date(2026, time.March, 10),
	})

	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)
	assert.Empty(t, f.bookingRepo.created)
}

func TestCreateBooking_UnknownCar(t *testing.T) {
	f := newBookingFixture()

	_, err := f.service.CreateBooking(context.Background(), f.guest(), CreateBookingInput{
		CarID:     uuid.New(),
		StartDate: date(2026, time.March, 10),
		EndDate:   date(2026, time.March, 13),
	})

	assert.ErrorIs(t, err, utils.ErrCarNotFound)
}

func TestCreateBooking_OverlapRejected(t *testing.T) {
	f := newBookingFixture()
	f.bookingRepo.overlap = true

	_, err := f.service.CreateBooking(context.Background(), f.guest(), CreateBookingInput{
		CarID:     f.car.ID,
		StartDate: date(2026, time.March, 10),
		EndDate:   date(2026, time.March, 13),
	})

	assert.ErrorIs(t, err, utils.ErrBookingOverlap)
	assert.Empty(t, f.bookingRepo.created)
	assert.Empty(t, f.notifier.events)
}

func TestChangeBookingStatus_HostConfirmsPending(t *testing.T) {
	f := newBookingFixture()
	booking := f.addBooking(db_models.BookingStatusPending)

	updated, err := f.service.ChangeBookingStatus(context.Background(), f.host(), booking.ID, db_models.BookingStatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, db_models.BookingStatusConfirmed, updated.Status)
	assert.Equal(t, db_models.BookingStatusConfirmed, f.bookingRepo.statusUpdates[booking.ID])

	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, f.guestID, f.notifier.events[0].userID)
}

func TestChangeBookingStatus_GuestCannotConfirm(t *testing.T) {
	f := newBookingFixture()
	booking := f.addBooking(db_models.BookingStatusPending)

	_, err := f.service.ChangeBookingStatus(context.Background(), f.guest(), booking.ID, db_models.BookingStatusConfirmed)

	assert.ErrorIs(t, err, utils.ErrPermissionDenied)
	assert.Empty(t, f.bookingRepo.statusUpdates)
}

func TestChangeBookingStatus_ConfirmRequiresPending(t *testing.T) {
	f := newBookingFixture()
	booking := f.addBooking(db_models.BookingStatusConfirmed)

	_, err := f.service.ChangeBookingStatus(context.Background(), f.host(), booking.ID, db_models.BookingStatusConfirmed)

	assert.ErrorIs(t, err, utils.ErrTransitionNotAllowed)
}

func TestChangeBookingStatus_GuestCancels(t *testing.T) {
	f := newBookingFixture()
	booking := f.addBooking(db_models.BookingStatusConfirmed)

	updated, err := f.service.ChangeBookingStatus(context.Background(), f.guest(), booking.ID, db_models.BookingStatusCancelledByGuest)

	require.NoError(t, err)
	assert.Equal(t, db_models.BookingStatusCancelledByGuest, updated.Status)
}

func TestChangeBookingStatus_CompleteRequiresConfirmed(t *testing.T) {
	f := newBookingFixture()
	booking := f.addBooking(db_models.BookingStatusPending)

	_, err := f.service.ChangeBookingStatus(context.Background(), f.host(), booking.ID, db_models.BookingStatusCompleted)

	assert.ErrorIs(t, err, utils.ErrTransitionNotAllowed)
}

func TestChangeBookingStatus_TerminalIsImmutable(t *testing.T) {
	f := newBookingFixture()
	admin := CallerContext{UserID: uuid.New(), Role: db_models.RoleAdmin}

	terminal := []db_models.BookingStatus{
		db_models.BookingStatusRejected,
		db_models.BookingStatusCancelledByGuest,
		db_models.BookingStatusCancelledByHost,
		db_models.BookingStatusCancelledByAdmin,
		db_models.BookingStatusCompleted,
	}

	for _, status := range terminal {
		booking := f.addBooking(status)

		_, err := f.service.ChangeBookingStatus(context.Background(), admin, booking.ID, db_models.BookingStatusConfirmed)
		assert.ErrorIs(t, err, utils.ErrBookingFinalized, "from %s", status)

		_, err = f.service.ChangeBookingStatus(context.Background(), admin, booking.ID, db_models.BookingStatusCancelledByAdmin)
		assert.ErrorIs(t, err, utils.ErrBookingFinalized, "from %s", status)
	}
	assert.Empty(t, f.bookingRepo.statusUpdates)
}

func TestChangeBookingStatus_AdminForceCancel(t *testing.T) {
	f := newBookingFixture()
	booking := f.addBooking(db_models.BookingStatusConfirmed)
	admin := CallerContext{UserID: uuid.New(), Role: db_models.RoleAdmin}

	updated, err := f.service.ChangeBookingStatus(context.Background(), admin, booking.ID, db_models.BookingStatusCancelledByAdmin)

	require.NoError(t, err)
	assert.Equal(t, db_models.BookingStatusCancelledByAdmin, updated.Status)
}

func TestChangeBookingStatus_SupportCannotForceCancel(t *testing.T) {
	f := newBookingFixture()
	booking := f.addBooking(db_models.BookingStatusConfirmed)
	support := CallerContext{UserID: uuid.New(), Role: db_models.RoleSupport}

	_, err := f.service.ChangeBookingStatus(context.Background(), support, booking.ID, db_models.BookingStatusCancelledByAdmin)

	assert.ErrorIs(t, err, utils.ErrPermissionDenied)
}

func TestGetBooking_ParticipantsAndAdminOnly(t *testing.T) {
	f := newBookingFixture()
	booking := f.addBooking(db_models.BookingStatusPending)

	_, err := f.service.GetBooking(context.Background(), f.guest(), booking.ID)
	assert.NoError(t, err)

	_, err = f.service.GetBooking(context.Background(), f.host(), booking.ID)
	assert.NoError(t, err)

	admin := CallerContext{UserID: uuid.New(), Role: db_models.RoleAdmin}
	_, err = f.service.GetBooking(context.Background(), admin, booking.ID)
	assert.NoError(t, err)

	stranger := CallerContext{UserID: uuid.New(), Role: db_models.RoleGuest}
	_, err = f.service.GetBooking(context.Background(), stranger, booking.ID)
	assert.ErrorIs(t, err, utils.ErrPermissionDenied)
}

func TestListMyBookings_Pagination(t *testing.T) {
	f := newBookingFixture()

	_, err := f.service.ListMyBookings(context.Background(), f.guest(), 0, 10)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)

	_, err = f.service.ListMyBookings(context.Background(), f.guest(), 1, 101)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
}

func TestDeleteBooking_AdminOnly(t *testing.T) {
	f := newBookingFixture()
	booking := f.addBooking(db_models.BookingStatusPending)

	err := f.service.DeleteBooking(context.Background(), f.host(), booking.ID)
	assert.ErrorIs(t, err, utils.ErrPermissionDenied)
	assert.Empty(t, f.bookingRepo.deleted)

	admin := CallerContext{UserID: uuid.New(), Role: db_models.RoleAdmin}
	err = f.service.DeleteBooking(context.Background(), admin, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{booking.ID}, f.bookingRepo.deleted)
}
