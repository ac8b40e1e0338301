package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedOut BookingStatus = "checkedout"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

type BookingType string

const (
	BookingTypeStandard   BookingType = "standard"
	BookingTypeAdvance    BookingType = "advance"
	BookingTypeLastMinute BookingType = "last-minute"
)

type PaymentMethodType string

const (
	PaymentMethodPaypal     PaymentMethodType = "paypal"
	PaymentMethodCashfree   PaymentMethodType = "cashfree"
	PaymentMethodNetbanking PaymentMethodType = "netbanking"
)

// GuestAddress is part of the guest snapshot captured at booking time.
type GuestAddress struct {
	Street  string `db:"street"`
	City    string `db:"city"`
	State   string `db:"state"`
	ZipCode string `db:"zip_code"`
	Country string `db:"country"`
}

// GuestDetails is the guest snapshot. It is frozen at booking time and does
// not follow later changes to the account profile.
type GuestDetails struct {
	Name    string       `db:"guest_name"`
	Email   string       `db:"guest_email"`
	Phone   string       `db:"guest_phone"`
	Address GuestAddress `db:""`
}

type Booking struct {
	Base
	BookingID      string            `db:"booking_id"` // human-facing identifier, distinct from the row key
	UserID         uuid.UUID         `db:"user_id"`
	Guest          GuestDetails      `db:""`
	RoomID         uuid.UUID         `db:"room_id"`
	RoomQuantity   int               `db:"room_quantity"`
	CheckInDate    time.Time         `db:"check_in_date"`
	CheckOutDate   time.Time         `db:"check_out_date"`
	PaymentMethod  PaymentMethodType `db:"payment_method"`
	BookingType    BookingType       `db:"booking_type"`
	DiscountCoupon *string           `db:"discount_coupon"`
	TotalBalance   float64           `db:"total_balance"`
	PaidAmount     float64           `db:"paid_amount"`
	DueAmount      float64           `db:"due_amount"`
	Status         BookingStatus     `db:"status"`
}

// CanCancel reports whether the booking is still in a cancellable state.
// No transition leaves cancelled or checkedout.
func (b *Booking) CanCancel() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}
