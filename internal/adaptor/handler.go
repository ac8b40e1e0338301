package adaptor

import (
	"hotel-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Booking   *BookingHandler
	Payment   *PaymentHandler
	Room      *RoomHandler
	Coupon    *CouponHandler
	Dashboard *DashboardHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking:   NewBookingHandler(service.Booking, log),
		Payment:   NewPaymentHandler(service.Payment, log),
		Room:      NewRoomHandler(service.Room, log),
		Coupon:    NewCouponHandler(service.Coupon, log),
		Dashboard: NewDashboardHandler(service.Dashboard, log),
	}
}
