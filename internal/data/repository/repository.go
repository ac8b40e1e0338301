package repository

import (
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User          UserRepository
	Session       SessionRepository
	RoomType      RoomTypeRepository
	Room          RoomRepository
	Coupon        CouponRepository
	PaymentMethod PaymentMethodRepository
	Booking       BookingRepository
	Payment       PaymentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:          NewUserRepository(db, log),
		Session:       NewSessionRepository(db, log),
		RoomType:      NewRoomTypeRepository(db, log),
		Room:          NewRoomRepository(db, log),
		Coupon:        NewCouponRepository(db, log),
		PaymentMethod: NewPaymentMethodRepository(db, log),
		Booking:       NewBookingRepository(db, log),
		Payment:       NewPaymentRepository(db, log),
	}
}
