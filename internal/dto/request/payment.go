package request

type RecordPaymentRequest struct {
	BookingID     string  `json:"booking_id" validate:"required"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=paypal cashfree netbanking"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
}

type PaymentMethodRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	IsActive bool   `json:"is_active"`
}
