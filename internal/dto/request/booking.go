package request

type GuestAddress struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zip_code" validate:"required"`
	Country string `json:"country" validate:"required"`
}

type GuestDetails struct {
	Name    string       `json:"name" validate:"required"`
	Email   string       `json:"email" validate:"required,email"`
	Phone   string       `json:"phone" validate:"required"`
	Address GuestAddress `json:"address" validate:"required"`
}

type CreateBookingRequest struct {
	GuestDetails   GuestDetails `json:"guest_details" validate:"required"`
	RoomID         string       `json:"room_id" validate:"required,uuid4"`
	RoomQuantity   int          `json:"room_quantity" validate:"required,min=1"`
	CheckInDate    string       `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate   string       `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	PaymentMethod  string       `json:"payment_method" validate:"required,oneof=paypal cashfree netbanking"`
	BookingType    string       `json:"booking_type" validate:"required,oneof=standard advance last-minute"`
	DiscountCoupon string       `json:"discount_coupon,omitempty"`
	PaidAmount     float64      `json:"paid_amount,omitempty" validate:"omitempty,gte=0"`
}

type UpdateBookingRequest struct {
	CheckInDate  string `json:"check_in_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	BookingType  string `json:"booking_type,omitempty" validate:"omitempty,oneof=standard advance last-minute"`
}

type CheckoutRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
}
