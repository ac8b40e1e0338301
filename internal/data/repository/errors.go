package repository

import "errors"

var (
	// ErrBookingOverlap is returned when the conditional insert found a
	// non-cancelled booking overlapping the requested dates.
	ErrBookingOverlap = errors.New("room already booked for the requested dates")

	// ErrCouponExhausted is returned when the atomic redeem found the usage
	// limit already reached.
	ErrCouponExhausted = errors.New("coupon usage limit reached")
)
