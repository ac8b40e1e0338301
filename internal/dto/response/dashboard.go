package response

// ReservationResponse is the admin view of one booking with room-type detail
// and a deterministic allocation of available rooms of that type.
type ReservationResponse struct {
	BookingID      string   `json:"booking_id"`
	GuestName      string   `json:"guest_name"`
	GuestEmail     string   `json:"guest_email"`
	RoomType       string   `json:"room_type"`
	RoomQuantity   int      `json:"room_quantity"`
	AllocatedRooms []string `json:"allocated_rooms"`
	CheckInDate    string   `json:"check_in_date"`
	CheckOutDate   string   `json:"check_out_date"`
	Status         string   `json:"status"`
	PaymentMethod  string   `json:"payment_method"`
	PaymentStatus  string   `json:"payment_status"`
	BookingType    string   `json:"booking_type"`
	TotalAmount    float64  `json:"total_amount"`
	PaidAmount     float64  `json:"paid_amount"`
	DueAmount      float64  `json:"due_amount"`
	DiscountApplied bool    `json:"discount_applied"`
}

type DashboardTotalsResponse struct {
	TotalBookings  int64   `json:"total_bookings"`
	TotalCustomers int64   `json:"total_customers"`
	TodaysTakings  float64 `json:"todays_takings"`
}

// DueBookingResponse is one line of the outstanding-balance listing.
type DueBookingResponse struct {
	BookingID    string  `json:"booking_id"`
	GuestName    string  `json:"guest_name"`
	GuestEmail   string  `json:"guest_email"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	TotalBalance float64 `json:"total_balance"`
	PaidAmount   float64 `json:"paid_amount"`
	DueAmount    float64 `json:"due_amount"`
	Status       string  `json:"status"`
}
