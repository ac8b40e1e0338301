package response

import (
	"hotel-booking/internal/data/entity"
)

type CouponResponse struct {
	ID                 string  `json:"id"`
	Code               string  `json:"code"`
	Description        string  `json:"description"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	DiscountPercentage float64 `json:"discount_percentage"`
	MaxDiscountAmount  float64 `json:"max_discount_amount"`
	MinPurchaseAmount  float64 `json:"min_purchase_amount"`
	UsageLimit         int     `json:"usage_limit"`
	UsedCount          int     `json:"used_count"`
	IsActive           bool    `json:"is_active"`
}

func CouponToResponse(c *entity.Coupon) CouponResponse {
	return CouponResponse{
		ID:                 c.ID.String(),
		Code:               c.Code,
		Description:        c.Description,
		StartDate:          c.StartDate.Format("2006-01-02"),
		EndDate:            c.EndDate.Format("2006-01-02"),
		DiscountPercentage: c.DiscountPercentage,
		MaxDiscountAmount:  c.MaxDiscountAmount,
		MinPurchaseAmount:  c.MinPurchaseAmount,
		UsageLimit:         c.UsageLimit,
		UsedCount:          c.UsedCount,
		IsActive:           c.IsActive,
	}
}
