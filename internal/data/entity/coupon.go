package entity

import "time"

// Coupon usage is counted, never decremented: a redeemed coupon stays redeemed
// even if the booking that consumed it is later cancelled.
type Coupon struct {
	Base
	Code               string    `db:"code"`
	Description        string    `db:"description"`
	StartDate          time.Time `db:"start_date"`
	EndDate            time.Time `db:"end_date"`
	DiscountPercentage float64   `db:"discount_percentage"`
	MaxDiscountAmount  float64   `db:"max_discount_amount"`
	MinPurchaseAmount  float64   `db:"min_purchase_amount"`
	UsageLimit         int       `db:"usage_limit"`
	UsedCount          int       `db:"used_count"`
	IsActive           bool      `db:"is_active"`
}
