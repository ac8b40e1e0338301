package usecase

import (
	"math"
	"time"

	"hotel-booking/internal/data/entity"
)

// Nights counts billable nights for a stay. Partial nights round up, so a
// same-day stay still bills one night when the times differ.
func Nights(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()
	if hours <= 0 {
		return 0
	}
	return int(math.Ceil(hours / 24))
}

// Subtotal is the undiscounted stay price: nights x nightly rate x rooms.
func Subtotal(nights int, pricePerNight float64, roomQuantity int) float64 {
	return float64(nights) * pricePerNight * float64(roomQuantity)
}

// Discount computes the coupon reduction for a subtotal: the percentage
// amount rounded to the nearest unit, capped at the coupon's maximum.
func Discount(subtotal float64, coupon *entity.Coupon) float64 {
	discount := math.Round(subtotal * coupon.DiscountPercentage / 100)
	if discount > coupon.MaxDiscountAmount {
		return coupon.MaxDiscountAmount
	}
	return discount
}

// Total finalizes the booking balance: subtotal minus discount, rounded to
// the nearest unit so paid and due amounts always sum back to it.
func Total(subtotal, discount float64) float64 {
	return math.Round(subtotal - discount)
}

// AdvanceAmount is the minimum upfront payment for an advance booking,
// rounded to the nearest unit.
func AdvanceAmount(total, percent float64) float64 {
	return math.Round(total * percent / 100)
}

// NightlyTotal is the tax-inclusive nightly rate stored on the room.
func NightlyTotal(pricePerNight, taxPercent float64) float64 {
	return pricePerNight + pricePerNight*taxPercent/100
}
