package request

type CreateCouponRequest struct {
	Code               string  `json:"code" validate:"required,min=3,max=30"`
	Description        string  `json:"description" validate:"required"`
	StartDate          string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate            string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	DiscountPercentage float64 `json:"discount_percentage" validate:"required,gt=0,lte=100"`
	MaxDiscountAmount  float64 `json:"max_discount_amount" validate:"required,gt=0"`
	MinPurchaseAmount  float64 `json:"min_purchase_amount" validate:"gte=0"`
	UsageLimit         int     `json:"usage_limit" validate:"omitempty,min=1"`
}
