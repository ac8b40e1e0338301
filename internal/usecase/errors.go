package usecase

import "errors"

// Domain errors returned by the services. Handlers map these onto HTTP
// status codes with errors.Is.
var (
	ErrRoomNotFound          = errors.New("room not found")
	ErrRoomTypeNotFound      = errors.New("room type not found")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrNoRoomsAvailable      = errors.New("no rooms available matching the criteria")

	ErrRoomUnavailable = errors.New("room is not available for the selected dates")
	ErrInvalidStay     = errors.New("check-out date must be after check-in date")

	ErrCouponNotFound    = errors.New("invalid coupon code")
	ErrCouponExpired     = errors.New("coupon is not valid for the current date")
	ErrCouponMinPurchase = errors.New("booking amount is below the coupon minimum purchase")
	ErrCouponUsageLimit  = errors.New("coupon usage limit has been reached")

	ErrCancellationWindowExpired  = errors.New("cancellation window has expired")
	ErrUpdateWindowExpired        = errors.New("update window has expired")
	ErrBookingNotCancellable      = errors.New("booking can no longer be cancelled")
	ErrBookingNotUpdatable        = errors.New("booking can no longer be updated")
	ErrBookingNotPayable          = errors.New("booking can no longer accept payments")
	ErrBookingNotConfirmed        = errors.New("booking is not confirmed")
	ErrInsufficientAdvancePayment = errors.New("payment amount is below the required advance")
)
