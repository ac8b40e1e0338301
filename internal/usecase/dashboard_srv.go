package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type DashboardService interface {
	GetReservations(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error)
	GetTotals(ctx context.Context) (*response.DashboardTotalsResponse, error)
	GetDueBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.DueBookingResponse], error)
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDashboardService(
	repo *repository.Repository,
	log *zap.Logger,
) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log.With(zap.String("service", "dashboard")),
	}
}

func (s *dashboardService) GetReservations(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get bookings",
			zap.Error(err),
			zap.Int("page", req.Page),
		)
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	reservations := make([]response.ReservationResponse, len(bookings))
	for i, booking := range bookings {
		reservations[i] = s.buildReservation(ctx, booking)
	}

	return response.NewPaginatedResponse(reservations, req.Page, req.PerPage, total), nil
}

// buildReservation enriches one booking with its room-type name and a
// deterministic allocation of available rooms of that type, first N in room
// number order up to the booked quantity.
func (s *dashboardService) buildReservation(ctx context.Context, booking *entity.Booking) response.ReservationResponse {
	roomTypeName := ""
	var allocated []string

	room, err := s.repo.Room.FindByID(ctx, booking.RoomID)
	if err != nil || room == nil {
		s.log.Warn("Failed to get room for reservation view",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
		)
	} else {
		roomType, err := s.repo.RoomType.FindByID(ctx, room.RoomTypeID)
		if err == nil && roomType != nil {
			roomTypeName = roomType.TypeName
		}

		available, err := s.repo.Room.FindAvailableByType(ctx, room.RoomTypeID, booking.RoomQuantity)
		if err != nil {
			s.log.Warn("Failed to get available rooms for reservation view",
				zap.Error(err),
				zap.String("booking_id", booking.BookingID),
			)
		}
		for _, r := range available {
			allocated = append(allocated, r.RoomNumber)
		}
	}

	paymentStatus := string(entity.PaymentStatusPending)
	if booking.Status == entity.BookingStatusConfirmed || booking.Status == entity.BookingStatusCheckedOut {
		paymentStatus = string(entity.PaymentStatusSuccess)
	}

	return response.ReservationResponse{
		BookingID:       booking.BookingID,
		GuestName:       booking.Guest.Name,
		GuestEmail:      booking.Guest.Email,
		RoomType:        roomTypeName,
		RoomQuantity:    booking.RoomQuantity,
		AllocatedRooms:  allocated,
		CheckInDate:     booking.CheckInDate.Format(utils.DateLayout),
		CheckOutDate:    booking.CheckOutDate.Format(utils.DateLayout),
		Status:          string(booking.Status),
		PaymentMethod:   string(booking.PaymentMethod),
		PaymentStatus:   paymentStatus,
		BookingType:     string(booking.BookingType),
		TotalAmount:     booking.TotalBalance,
		PaidAmount:      booking.PaidAmount,
		DueAmount:       booking.DueAmount,
		DiscountApplied: booking.DiscountCoupon != nil,
	}
}

func (s *dashboardService) GetTotals(ctx context.Context) (*response.DashboardTotalsResponse, error) {
	totalBookings, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	totalCustomers, err := s.repo.Booking.CountDistinctGuests(ctx)
	if err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}

	// Today's takings: successful payments since local midnight.
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	takings, err := s.repo.Payment.SumSuccessfulSince(ctx, midnight)
	if err != nil {
		return nil, fmt.Errorf("sum today's payments: %w", err)
	}

	return &response.DashboardTotalsResponse{
		TotalBookings:  totalBookings,
		TotalCustomers: totalCustomers,
		TodaysTakings:  takings,
	}, nil
}

func (s *dashboardService) GetDueBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.DueBookingResponse], error) {
	bookings, err := s.repo.Booking.FindWithDue(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get due bookings",
			zap.Error(err),
		)
		return nil, fmt.Errorf("get due bookings: %w", err)
	}

	total, err := s.repo.Booking.CountWithDue(ctx)
	if err != nil {
		return nil, fmt.Errorf("count due bookings: %w", err)
	}

	dues := make([]response.DueBookingResponse, len(bookings))
	for i, b := range bookings {
		dues[i] = response.DueBookingResponse{
			BookingID:    b.BookingID,
			GuestName:    b.Guest.Name,
			GuestEmail:   b.Guest.Email,
			CheckInDate:  b.CheckInDate.Format(utils.DateLayout),
			CheckOutDate: b.CheckOutDate.Format(utils.DateLayout),
			TotalBalance: b.TotalBalance,
			PaidAmount:   b.PaidAmount,
			DueAmount:    b.DueAmount,
			Status:       string(b.Status),
		}
	}

	return response.NewPaginatedResponse(dues, req.Page, req.PerPage, total), nil
}
