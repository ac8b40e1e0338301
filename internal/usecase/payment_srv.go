package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/mailer"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentService interface {
	RecordPayment(ctx context.Context, req *request.RecordPaymentRequest) (*response.PaymentResultResponse, error)
	ListPayments(ctx context.Context, bookingID string) ([]response.PaymentResponse, error)
	ListAllPayments(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PaymentResponse], error)

	CreatePaymentMethod(ctx context.Context, req *request.PaymentMethodRequest) (*response.PaymentMethodResponse, error)
	GetActivePaymentMethods(ctx context.Context) ([]response.PaymentMethodResponse, error)
	GetPaymentMethods(ctx context.Context) ([]response.PaymentMethodResponse, error)
	UpdatePaymentMethod(ctx context.Context, id string, req *request.PaymentMethodRequest) (*response.PaymentMethodResponse, error)
	DeletePaymentMethod(ctx context.Context, id string) error
}

type paymentService struct {
	repo   *repository.Repository
	config *utils.Config
	mail   mailer.Mailer
	log    *zap.Logger
}

func NewPaymentService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	log *zap.Logger,
) PaymentService {
	return &paymentService{
		repo:   repo,
		config: config,
		mail:   mail,
		log:    log.With(zap.String("service", "payment")),
	}
}

// RecordPayment applies a payment to a booking and moves the booking to
// confirmed once the required amount is in. The required amount depends on
// the booking type: standard bookings confirm on any payment, the others
// must reach the configured advance share of the total first.
func (s *paymentService) RecordPayment(ctx context.Context, req *request.RecordPaymentRequest) (*response.PaymentResultResponse, error) {
	booking, err := s.repo.Booking.FindByBookingID(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	if booking.Status == entity.BookingStatusCancelled || booking.Status == entity.BookingStatusCheckedOut {
		return nil, ErrBookingNotPayable
	}

	advance := AdvanceAmount(booking.TotalBalance, s.config.Booking.AdvancePaymentPercent)
	if booking.BookingType != entity.BookingTypeStandard &&
		booking.PaidAmount < advance &&
		booking.PaidAmount+req.Amount < advance {
		return nil, ErrInsufficientAdvancePayment
	}

	wasPending := booking.Status == entity.BookingStatusPending

	updated, err := s.repo.Booking.ApplyPayment(ctx, booking.ID, req.Amount)
	if err != nil {
		s.log.Error("Failed to apply payment",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
			zap.Float64("amount", req.Amount),
		)
		return nil, fmt.Errorf("apply payment: %w", err)
	}
	if updated == nil {
		// The booking row disappeared between the read and the update.
		return nil, ErrBookingNotFound
	}

	confirmed := booking.BookingType == entity.BookingTypeStandard || updated.PaidAmount >= advance
	if wasPending && confirmed {
		if err := s.repo.Booking.UpdateStatus(ctx, updated.ID, entity.BookingStatusConfirmed); err != nil {
			s.log.Error("Failed to confirm booking",
				zap.Error(err),
				zap.String("booking_id", req.BookingID),
			)
			return nil, fmt.Errorf("confirm booking: %w", err)
		}
		updated.Status = entity.BookingStatusConfirmed

		s.occupyRoom(ctx, updated)
		s.sendConfirmationEmail(ctx, updated)
	}

	// The payment record mirrors the booking state: a payment that leaves the
	// booking unconfirmed stays Pending until confirmation.
	status := entity.PaymentStatusPending
	if updated.Status == entity.BookingStatusConfirmed {
		status = entity.PaymentStatusSuccess
	}

	payment := &entity.Payment{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: time.Now(),
		},
		BookingID:     updated.ID,
		Method:        entity.PaymentMethodType(req.PaymentMethod),
		Amount:        req.Amount,
		Status:        status,
		TransactionID: utils.GenerateTransactionID(),
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Error("Failed to create payment record",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
		)
		return nil, fmt.Errorf("create payment record: %w", err)
	}

	s.log.Info("Payment recorded",
		zap.String("booking_id", req.BookingID),
		zap.String("transaction_id", payment.TransactionID),
		zap.Float64("amount", req.Amount),
		zap.String("status", string(status)),
	)

	message := "Payment recorded successfully"
	if wasPending && confirmed {
		message = "Payment recorded and booking confirmed"
	}

	return &response.PaymentResultResponse{
		Booking: response.BookingToResponse(updated),
		Payment: response.PaymentToResponse(payment),
		Message: message,
	}, nil
}

func (s *paymentService) ListPayments(ctx context.Context, bookingID string) ([]response.PaymentResponse, error) {
	booking, err := s.repo.Booking.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	payments, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("find payments: %w", err)
	}

	results := make([]response.PaymentResponse, len(payments))
	for i, p := range payments {
		results[i] = response.PaymentToResponse(p)
	}
	return results, nil
}

func (s *paymentService) ListAllPayments(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.PaymentResponse], error) {
	payments, err := s.repo.Payment.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list payments",
			zap.Error(err),
			zap.Int("page", req.Page),
		)
		return nil, fmt.Errorf("list payments: %w", err)
	}

	total, err := s.repo.Payment.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count payments: %w", err)
	}

	results := make([]response.PaymentResponse, len(payments))
	for i, p := range payments {
		results[i] = response.PaymentToResponse(p)
	}
	return response.NewPaginatedResponse(results, req.Page, req.PerPage, total), nil
}

func (s *paymentService) occupyRoom(ctx context.Context, booking *entity.Booking) {
	if err := s.repo.Room.UpdateStatus(ctx, booking.RoomID, entity.RoomStatusOccupied); err != nil {
		s.log.Warn("Failed to mark room occupied",
			zap.Error(err),
			zap.String("room_id", booking.RoomID.String()),
		)
	}
}

func (s *paymentService) sendConfirmationEmail(ctx context.Context, booking *entity.Booking) {
	room, err := s.repo.Room.FindByID(ctx, booking.RoomID)
	if err != nil || room == nil {
		s.log.Warn("Failed to get room for confirmation email",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
		)
		return
	}

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

// ==================== PAYMENT METHODS ====================

func (s *paymentService) CreatePaymentMethod(ctx context.Context, req *request.PaymentMethodRequest) (*response.PaymentMethodResponse, error) {
	now := time.Now()
	paymentMethod := &entity.PaymentMethod{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		IsActive: req.IsActive,
	}

	if err := s.repo.PaymentMethod.Create(ctx, paymentMethod); err != nil {
		s.log.Error("Failed to create payment method",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create payment method: %w", err)
	}

	result := response.PaymentMethodToResponse(paymentMethod)
	return &result, nil
}

// GetActivePaymentMethods is the public listing: inactive methods stay hidden.
func (s *paymentService) GetActivePaymentMethods(ctx context.Context) ([]response.PaymentMethodResponse, error) {
	paymentMethods, err := s.repo.PaymentMethod.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("find active payment methods: %w", err)
	}

	results := make([]response.PaymentMethodResponse, len(paymentMethods))
	for i, pm := range paymentMethods {
		results[i] = response.PaymentMethodToResponse(pm)
	}
	return results, nil
}

func (s *paymentService) GetPaymentMethods(ctx context.Context) ([]response.PaymentMethodResponse, error) {
	paymentMethods, err := s.repo.PaymentMethod.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find payment methods: %w", err)
	}

	results := make([]response.PaymentMethodResponse, len(paymentMethods))
	for i, pm := range paymentMethods {
		results[i] = response.PaymentMethodToResponse(pm)
	}
	return results, nil
}

func (s *paymentService) UpdatePaymentMethod(ctx context.Context, id string, req *request.PaymentMethodRequest) (*response.PaymentMethodResponse, error) {
	methodID, err := utils.ParseUUID(id)
	if err != nil {
		return nil, fmt.Errorf("parse payment method id: %w", err)
	}

	paymentMethod, err := s.repo.PaymentMethod.FindByID(ctx, methodID)
	if err != nil {
		return nil, fmt.Errorf("find payment method: %w", err)
	}
	if paymentMethod == nil {
		return nil, ErrPaymentMethodNotFound
	}

	paymentMethod.Name = req.Name
	paymentMethod.IsActive = req.IsActive
	paymentMethod.UpdatedAt = time.Now()

	if err := s.repo.PaymentMethod.Update(ctx, paymentMethod); err != nil {
		s.log.Error("Failed to update payment method",
			zap.Error(err),
			zap.String("id", id),
		)
		return nil, fmt.Errorf("update payment method: %w", err)
	}

	result := response.PaymentMethodToResponse(paymentMethod)
	return &result, nil
}

func (s *paymentService) DeletePaymentMethod(ctx context.Context, id string) error {
	methodID, err := utils.ParseUUID(id)
	if err != nil {
		return fmt.Errorf("parse payment method id: %w", err)
	}

	paymentMethod, err := s.repo.PaymentMethod.FindByID(ctx, methodID)
	if err != nil {
		return fmt.Errorf("find payment method: %w", err)
	}
	if paymentMethod == nil {
		return ErrPaymentMethodNotFound
	}

	if err := s.repo.PaymentMethod.Delete(ctx, methodID); err != nil {
		s.log.Error("Failed to delete payment method",
			zap.Error(err),
			zap.String("id", id),
		)
		return fmt.Errorf("delete payment method: %w", err)
	}

	return nil
}
