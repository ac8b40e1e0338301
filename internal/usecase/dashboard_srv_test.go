package usecase

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetReservations(t *testing.T) {
	repo := newTestRepository()
	mail := &fakeMailer{}
	config := testConfig()
	bookSvc := NewBookingService(repo, config, mail, zap.NewNop())
	dashSvc := NewDashboardService(repo, zap.NewNop())

	room := seedRoom(t, repo, 100)
	created, err := bookSvc.CreateBooking(context.Background(), uuid.New(), validCreateRequest(room.ID.String()))
	require.NoError(t, err)

	result, err := dashSvc.GetReservations(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)

	reservation := result.Data[0]
	assert.Equal(t, created.BookingID, reservation.BookingID)
	assert.Equal(t, "Deluxe", reservation.RoomType)
	assert.Equal(t, "Jane Roe", reservation.GuestName)
	assert.Equal(t, string(entity.PaymentStatusPending), reservation.PaymentStatus)
	assert.Equal(t, []string{"101"}, reservation.AllocatedRooms)
	assert.Equal(t, int64(1), result.Pagination.Total)
}

func TestGetTotals(t *testing.T) {
	repo := newTestRepository()
	mail := &fakeMailer{}
	config := testConfig()
	bookSvc := NewBookingService(repo, config, mail, zap.NewNop())
	paySvc := NewPaymentService(repo, config, mail, zap.NewNop())
	dashSvc := NewDashboardService(repo, zap.NewNop())

	room := seedRoom(t, repo, 100)
	created, err := bookSvc.CreateBooking(context.Background(), uuid.New(), validCreateRequest(room.ID.String()))
	require.NoError(t, err)

	// A confirming payment today counts toward takings
	_, err = paySvc.RecordPayment(context.Background(), &request.RecordPaymentRequest{
		BookingID:     created.BookingID,
		PaymentMethod: "paypal",
		Amount:        600,
	})
	require.NoError(t, err)

	totals, err := dashSvc.GetTotals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), totals.TotalBookings)
	assert.Equal(t, int64(1), totals.TotalCustomers)
	assert.Equal(t, 600.0, totals.TodaysTakings)
}

func TestGetDueBookings(t *testing.T) {
	repo := newTestRepository()
	mail := &fakeMailer{}
	config := testConfig()
	bookSvc := NewBookingService(repo, config, mail, zap.NewNop())
	dashSvc := NewDashboardService(repo, zap.NewNop())

	room := seedRoom(t, repo, 100)
	created, err := bookSvc.CreateBooking(context.Background(), uuid.New(), validCreateRequest(room.ID.String()))
	require.NoError(t, err)

	result, err := dashSvc.GetDueBookings(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, created.BookingID, result.Data[0].BookingID)
	assert.Equal(t, 600.0, result.Data[0].DueAmount)

	// Settle the balance; the listing empties out
	_, err = repo.Booking.ApplyPayment(context.Background(), mustParse(t, created.Booking.ID), 600)
	require.NoError(t, err)

	result, err = dashSvc.GetDueBookings(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Data)
}

func TestGetDueBookingsPagination(t *testing.T) {
	repo := newTestRepository()
	config := testConfig()
	bookSvc := NewBookingService(repo, config, &fakeMailer{}, zap.NewNop())
	dashSvc := NewDashboardService(repo, zap.NewNop())

	room := seedRoom(t, repo, 100)
	stays := [][2]string{
		{"2026-10-01", "2026-10-04"},
		{"2026-10-04", "2026-10-07"},
		{"2026-10-07", "2026-10-10"},
	}
	for _, stay := range stays {
		req := validCreateRequest(room.ID.String())
		req.CheckInDate = stay[0]
		req.CheckOutDate = stay[1]
		_, err := bookSvc.CreateBooking(context.Background(), uuid.New(), req)
		require.NoError(t, err)
	}

	// The total spans all due bookings, not just the returned page.
	page, err := dashSvc.GetDueBookings(context.Background(), &request.PaginatedRequest{Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, int64(3), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}

func TestSumSuccessfulSinceExcludesOlderPayments(t *testing.T) {
	repo := newTestRepository()
	fake := repo.Payment.(*fakePaymentRepo)
	fake.payments = append(fake.payments,
		&entity.Payment{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now().Add(-48 * time.Hour)},
			Amount:     500,
			Status:     entity.PaymentStatusSuccess,
		},
		&entity.Payment{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			Amount:     200,
			Status:     entity.PaymentStatusSuccess,
		},
		&entity.Payment{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			Amount:     100,
			Status:     entity.PaymentStatusPending,
		},
	)

	dashSvc := NewDashboardService(repo, zap.NewNop())
	totals, err := dashSvc.GetTotals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200.0, totals.TodaysTakings)
}
