package usecase

import (
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/mailer"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Booking   BookingService
	Payment   PaymentService
	Coupon    CouponService
	Room      RoomService
	Dashboard DashboardService
}

func NewService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, log *zap.Logger) *Service {
	return &Service{
		Booking:   NewBookingService(repo, config, mail, log),
		Payment:   NewPaymentService(repo, config, mail, log),
		Coupon:    NewCouponService(repo, log),
		Room:      NewRoomService(repo, log),
		Dashboard: NewDashboardService(repo, log),
	}
}
