package usecase

import (
	"context"
	"strings"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPaymentServiceForTest(t *testing.T) (PaymentService, BookingService, *repository.Repository, *fakeMailer) {
	t.Helper()
	repo := newTestRepository()
	mail := &fakeMailer{}
	config := testConfig()
	paySvc := NewPaymentService(repo, config, mail, zap.NewNop())
	bookSvc := NewBookingService(repo, config, mail, zap.NewNop())
	return paySvc, bookSvc, repo, mail
}

// seedAdvanceBooking creates a pending advance booking with a 1000 total:
// 5 nights x 100 per night x 2 rooms.
func seedAdvanceBooking(t *testing.T, bookSvc BookingService, repo *repository.Repository) string {
	t.Helper()
	room := seedRoom(t, repo, 100)

	req := validCreateRequest(room.ID.String())
	req.BookingType = "advance"
	req.CheckOutDate = "2026-10-15"

	created, err := bookSvc.CreateBooking(context.Background(), uuid.New(), req)
	require.NoError(t, err)
	require.Equal(t, 1000.0, created.Booking.TotalBalance)
	return created.BookingID
}

func TestRecordPaymentBelowAdvanceRejected(t *testing.T) {
	paySvc, bookSvc, repo, _ := newPaymentServiceForTest(t)
	bookingID := seedAdvanceBooking(t, bookSvc, repo)

	// 30% of 1000 is 300; 200 does not reach it
	_, err := paySvc.RecordPayment(context.Background(), &request.RecordPaymentRequest{
		BookingID:     bookingID,
		PaymentMethod: "paypal",
		Amount:        200,
	})
	assert.ErrorIs(t, err, ErrInsufficientAdvancePayment)
}

func TestRecordPaymentConfirmsAtAdvanceThreshold(t *testing.T) {
	paySvc, bookSvc, repo, mail := newPaymentServiceForTest(t)
	bookingID := seedAdvanceBooking(t, bookSvc, repo)

	result, err := paySvc.RecordPayment(context.Background(), &request.RecordPaymentRequest{
		BookingID:     bookingID,
		PaymentMethod: "paypal",
		Amount:        300,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusConfirmed, result.Booking.Status)
	assert.Equal(t, 300.0, result.Booking.PaidAmount)
	assert.Equal(t, 700.0, result.Booking.DueAmount)
	assert.Equal(t, entity.PaymentStatusSuccess, result.Payment.Status)
	assert.True(t, strings.HasPrefix(result.Payment.TransactionID, "TRANSACTION-"))

	// Confirmation occupies the room and sends the email
	booking, err := repo.Booking.FindByBookingID(context.Background(), bookingID)
	require.NoError(t, err)
	room, err := repo.Room.FindByID(context.Background(), booking.RoomID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoomStatusOccupied, room.Status)
	assert.Equal(t, []string{bookingID}, mail.sent)
}

func TestRecordPaymentAccumulates(t *testing.T) {
	paySvc, bookSvc, repo, mail := newPaymentServiceForTest(t)
	bookingID := seedAdvanceBooking(t, bookSvc, repo)

	_, err := paySvc.RecordPayment(context.Background(), &request.RecordPaymentRequest{
		BookingID:     bookingID,
		PaymentMethod: "paypal",
		Amount:        300,
	})
	require.NoError(t, err)

	result, err := paySvc.RecordPayment(context.Background(), &request.RecordPaymentRequest{
		BookingID:     bookingID,
		PaymentMethod: "netbanking",
		Amount:        700,
	})
	require.NoError(t, err)

	assert.Equal(t, 1000.0, result.Booking.PaidAmount)
	assert.Zero(t, result.Booking.DueAmount)
	assert.Equal(t, entity.PaymentStatusSuccess, result.Payment.Status)

	// Only the confirming payment sends the email
	assert.Len(t, mail.sent, 1)

	payments, err := paySvc.ListPayments(context.Background(), bookingID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}

func TestRecordPaymentStandardConfirmsOnAnyAmount(t *testing.T) {
	paySvc, bookSvc, repo, _ := newPaymentServiceForTest(t)
	room := seedRoom(t, repo, 100)

	created, err := bookSvc.CreateBooking(context.Background(), uuid.New(), validCreateRequest(room.ID.String()))
	require.NoError(t, err)

	result, err := paySvc.RecordPayment(context.Background(), &request.RecordPaymentRequest{
		BookingID:     created.BookingID,
		PaymentMethod: "cashfree",
		Amount:        50,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, result.Booking.Status)
	assert.Equal(t, entity.PaymentStatusSuccess, result.Payment.Status)
}

func TestRecordPaymentTerminalStatesRejected(t *testing.T) {
	paySvc, bookSvc, repo, _ := newPaymentServiceForTest(t)
	room := seedRoom(t, repo, 100)

	created, err := bookSvc.CreateBooking(context.Background(), uuid.New(), validCreateRequest(room.ID.String()))
	require.NoError(t, err)

	_, err = bookSvc.CancelBooking(context.Background(), created.BookingID)
	require.NoError(t, err)

	_, err = paySvc.RecordPayment(context.Background(), &request.RecordPaymentRequest{
		BookingID:     created.BookingID,
		PaymentMethod: "paypal",
		Amount:        100,
	})
	assert.ErrorIs(t, err, ErrBookingNotPayable)
}

func TestRecordPaymentUnknownBooking(t *testing.T) {
	paySvc, _, _, _ := newPaymentServiceForTest(t)

	_, err := paySvc.RecordPayment(context.Background(), &request.RecordPaymentRequest{
		BookingID:     uuid.New().String(),
		PaymentMethod: "paypal",
		Amount:        100,
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

// vanishingBookingRepo simulates the booking row being deleted between the
// initial read and the payment update.
type vanishingBookingRepo struct {
	repository.BookingRepository
}

func (v *vanishingBookingRepo) ApplyPayment(_ context.Context, _ uuid.UUID, _ float64) (*entity.Booking, error) {
	return nil, nil
}

func TestRecordPaymentBookingVanishesMidFlight(t *testing.T) {
	paySvc, bookSvc, repo, _ := newPaymentServiceForTest(t)
	bookingID := seedAdvanceBooking(t, bookSvc, repo)

	repo.Booking = &vanishingBookingRepo{BookingRepository: repo.Booking}

	_, err := paySvc.RecordPayment(context.Background(), &request.RecordPaymentRequest{
		BookingID:     bookingID,
		PaymentMethod: "paypal",
		Amount:        300,
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestPaymentMethodCRUD(t *testing.T) {
	paySvc, _, _, _ := newPaymentServiceForTest(t)
	ctx := context.Background()

	created, err := paySvc.CreatePaymentMethod(ctx, &request.PaymentMethodRequest{
		Name:     "paypal",
		IsActive: true,
	})
	require.NoError(t, err)

	methods, err := paySvc.GetPaymentMethods(ctx)
	require.NoError(t, err)
	assert.Len(t, methods, 1)

	updated, err := paySvc.UpdatePaymentMethod(ctx, created.ID, &request.PaymentMethodRequest{
		Name:     "paypal",
		IsActive: false,
	})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	// Deactivated methods drop out of the public listing but not the admin one
	active, err := paySvc.GetActivePaymentMethods(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
	all, err := paySvc.GetPaymentMethods(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, paySvc.DeletePaymentMethod(ctx, created.ID))

	err = paySvc.DeletePaymentMethod(ctx, created.ID)
	assert.ErrorIs(t, err, ErrPaymentMethodNotFound)
}
