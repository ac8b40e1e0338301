package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/mailer"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.UpdateBookingResponse, error)
	Checkout(ctx context.Context, req *request.CheckoutRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	config *utils.Config
	mail   mailer.Mailer
	log    *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:   repo,
		config: config,
		mail:   mail,
		log:    log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	checkIn, err := utils.ParseDate(req.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("parse check-in date: %w", err)
	}
	checkOut, err := utils.ParseDate(req.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("parse check-out date: %w", err)
	}
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidStay
	}

	roomID, err := utils.ParseUUID(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("parse room id: %w", err)
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		s.log.Error("Failed to get room",
			zap.Error(err),
			zap.String("room_id", req.RoomID),
		)
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if room.Status == entity.RoomStatusMaintenance {
		return nil, ErrRoomUnavailable
	}

	// Availability pre-check. The insert below re-checks inside the write, so
	// this only exists to fail fast with a clear error.
	overlapping, err := s.repo.Booking.CountOverlapping(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("count overlapping bookings: %w", err)
	}
	if overlapping > 0 {
		return nil, ErrRoomUnavailable
	}

	nights := Nights(checkIn, checkOut)
	subtotal := Subtotal(nights, room.TotalPrice, req.RoomQuantity)

	var discount float64
	var couponCode *string
	if req.DiscountCoupon != "" {
		discount, err = redeemCoupon(ctx, s.repo.Coupon, req.DiscountCoupon, subtotal, time.Now())
		if err != nil {
			return nil, err
		}
		couponCode = &req.DiscountCoupon
	}

	total := Total(subtotal, discount)

	if req.BookingType == string(entity.BookingTypeAdvance) && req.PaidAmount > 0 {
		advance := AdvanceAmount(total, s.config.Booking.AdvancePaymentPercent)
		if req.PaidAmount < advance {
			return nil, ErrInsufficientAdvancePayment
		}
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID: utils.GenerateBookingID(),
		UserID:    userID,
		Guest: entity.GuestDetails{
			Name:  req.GuestDetails.Name,
			Email: req.GuestDetails.Email,
			Phone: req.GuestDetails.Phone,
			Address: entity.GuestAddress{
				Street:  req.GuestDetails.Address.Street,
				City:    req.GuestDetails.Address.City,
				State:   req.GuestDetails.Address.State,
				ZipCode: req.GuestDetails.Address.ZipCode,
				Country: req.GuestDetails.Address.Country,
			},
		},
		RoomID:         roomID,
		RoomQuantity:   req.RoomQuantity,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		PaymentMethod:  entity.PaymentMethodType(req.PaymentMethod),
		BookingType:    entity.BookingType(req.BookingType),
		DiscountCoupon: couponCode,
		TotalBalance:   total,
		PaidAmount:     req.PaidAmount,
		DueAmount:      math.Round(total - req.PaidAmount),
		Status:         entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrBookingOverlap) {
			return nil, ErrRoomUnavailable
		}
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("room_id", req.RoomID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if err := s.repo.Room.Reserve(ctx, roomID, booking.ID); err != nil {
		s.log.Warn("Failed to add booking to room reservation list",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
		)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.BookingID),
		zap.String("room_id", req.RoomID),
		zap.Float64("total_balance", total),
	)

	// Standard bookings settle at the hotel, so the confirmation email goes
	// out immediately. Advance and last-minute bookings are confirmed by the
	// payment flow, which sends the email on confirmation.
	if booking.BookingType == entity.BookingTypeStandard {
		s.sendConfirmationEmail(ctx, booking, room)
	}

	return &response.CreateBookingResponse{
		BookingID: booking.BookingID,
		Message:   "Booking created successfully",
		Booking:   response.BookingToResponse(booking),
	}, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	result := response.BookingToResponse(booking)

	payments, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		s.log.Warn("Failed to get payments for booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
	}
	for _, p := range payments {
		result.Payments = append(result.Payments, response.PaymentToResponse(p))
	}

	return &result, nil
}

// cancelWindow returns how long after creation a booking stays cancellable.
// Advance bookings get a longer window since money is already committed.
func (s *bookingService) cancelWindow(bookingType entity.BookingType) time.Duration {
	hours := s.config.Booking.CancelWindowHours
	if bookingType == entity.BookingTypeAdvance {
		hours = s.config.Booking.AdvanceCancelWindowHours
	}
	return time.Duration(hours) * time.Hour
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	if !booking.CanCancel() {
		return nil, ErrBookingNotCancellable
	}

	if time.Since(booking.CreatedAt) > s.cancelWindow(booking.BookingType) {
		return nil, ErrCancellationWindowExpired
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	booking.Status = entity.BookingStatusCancelled

	s.releaseRoom(ctx, booking)

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
	)

	result := response.BookingToResponse(booking)
	return &result, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.UpdateBookingResponse, error) {
	booking, err := s.repo.Booking.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	if booking.Status == entity.BookingStatusCancelled || booking.Status == entity.BookingStatusCheckedOut {
		return nil, ErrBookingNotUpdatable
	}

	updateWindow := time.Duration(s.config.Booking.UpdateWindowHours) * time.Hour
	if time.Since(booking.CreatedAt) > updateWindow {
		return nil, ErrUpdateWindowExpired
	}

	if req.CheckInDate != "" {
		checkIn, err := utils.ParseDate(req.CheckInDate)
		if err != nil {
			return nil, fmt.Errorf("parse check-in date: %w", err)
		}
		booking.CheckInDate = checkIn
	}
	if req.CheckOutDate != "" {
		checkOut, err := utils.ParseDate(req.CheckOutDate)
		if err != nil {
			return nil, fmt.Errorf("parse check-out date: %w", err)
		}
		booking.CheckOutDate = checkOut
	}
	if !booking.CheckOutDate.After(booking.CheckInDate) {
		return nil, ErrInvalidStay
	}
	if req.BookingType != "" {
		booking.BookingType = entity.BookingType(req.BookingType)
	}

	room, err := s.repo.Room.FindByID(ctx, booking.RoomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	// Reprice the stay. The coupon discount is recomputed against the new
	// subtotal without consuming another use.
	nights := Nights(booking.CheckInDate, booking.CheckOutDate)
	subtotal := Subtotal(nights, room.TotalPrice, booking.RoomQuantity)

	var discount float64
	if booking.DiscountCoupon != nil {
		coupon, err := s.repo.Coupon.FindByCode(ctx, *booking.DiscountCoupon)
		if err != nil {
			return nil, fmt.Errorf("find coupon: %w", err)
		}
		if coupon != nil {
			discount = Discount(subtotal, coupon)
		}
	}

	booking.TotalBalance = Total(subtotal, discount)

	// Shrinking the stay can leave the guest overpaid. The excess is surfaced
	// to the caller for a manual refund; it never goes negative on the record.
	var excess float64
	if booking.PaidAmount > booking.TotalBalance {
		excess = booking.PaidAmount - booking.TotalBalance
		booking.PaidAmount = booking.TotalBalance
	}
	booking.DueAmount = math.Round(booking.TotalBalance - booking.PaidAmount)

	// A changed stay needs reconfirmation through the payment flow.
	booking.Status = entity.BookingStatusPending
	booking.UpdatedAt = time.Now()

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.log.Info("Booking updated",
		zap.String("booking_id", bookingID),
		zap.Float64("total_balance", booking.TotalBalance),
		zap.Float64("excess_amount", excess),
	)

	message := "Booking updated successfully"
	if excess > 0 {
		message = fmt.Sprintf("Booking updated successfully. An excess payment of %.0f will be refunded", excess)
	}

	return &response.UpdateBookingResponse{
		Booking:      response.BookingToResponse(booking),
		ExcessAmount: excess,
		Message:      message,
	}, nil
}

func (s *bookingService) Checkout(ctx context.Context, req *request.CheckoutRequest) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByBookingID(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	if booking.Status != entity.BookingStatusConfirmed {
		return nil, ErrBookingNotConfirmed
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCheckedOut); err != nil {
		s.log.Error("Failed to check out booking",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
		)
		return nil, fmt.Errorf("checkout booking: %w", err)
	}
	booking.Status = entity.BookingStatusCheckedOut

	s.releaseRoom(ctx, booking)

	s.log.Info("Booking checked out",
		zap.String("booking_id", req.BookingID),
	)

	result := response.BookingToResponse(booking)
	return &result, nil
}

// releaseRoom removes the booking from the room's reservation list and frees
// the room if the booking had occupied it. Failures are logged, not returned:
// the booking state change already committed.
func (s *bookingService) releaseRoom(ctx context.Context, booking *entity.Booking) {
	if err := s.repo.Room.Unreserve(ctx, booking.RoomID, booking.ID); err != nil {
		s.log.Warn("Failed to remove booking from room reservation list",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
		)
	}

	room, err := s.repo.Room.FindByID(ctx, booking.RoomID)
	if err != nil || room == nil {
		s.log.Warn("Failed to get room for release",
			zap.Error(err),
			zap.String("room_id", booking.RoomID.String()),
		)
		return
	}
	if room.Status == entity.RoomStatusOccupied {
		if err := s.repo.Room.UpdateStatus(ctx, room.ID, entity.RoomStatusAvailable); err != nil {
			s.log.Warn("Failed to release room",
				zap.Error(err),
				zap.String("room_id", room.ID.String()),
			)
		}
	}
}

func (s *bookingService) sendConfirmationEmail(ctx context.Context, booking *entity.Booking, room *entity.Room) {
	roomType, err := s.repo.RoomType.FindByID(ctx, room.RoomTypeID)
	if err != nil {
		s.log.Warn("Failed to get room type for confirmation email",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
		)
	}

	if err := s.mail.SendBookingConfirmation(booking, room, roomType, booking.Guest.Email, s.config.Booking.AdminEmail); err != nil {
		s.log.Warn("Failed to send booking confirmation email",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
		)
	}
}
