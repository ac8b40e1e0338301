package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type GuestAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

type GuestDetails struct {
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	Phone   string       `json:"phone"`
	Address GuestAddress `json:"address"`
}

type BookingResponse struct {
	ID             string               `json:"id"`
	BookingID      string               `json:"booking_id"`
	UserID         string               `json:"user_id"`
	Guest          GuestDetails         `json:"guest_details"`
	RoomID         string               `json:"room_id"`
	RoomQuantity   int                  `json:"room_quantity"`
	CheckInDate    string               `json:"check_in_date"`
	CheckOutDate   string               `json:"check_out_date"`
	PaymentMethod  string               `json:"payment_method"`
	BookingType    string               `json:"booking_type"`
	DiscountCoupon *string              `json:"discount_coupon,omitempty"`
	TotalBalance   float64              `json:"total_balance"`
	PaidAmount     float64              `json:"paid_amount"`
	DueAmount      float64              `json:"due_amount"`
	Status         entity.BookingStatus `json:"status"`
	Payments       []PaymentResponse    `json:"payments,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

type CreateBookingResponse struct {
	BookingID string  `json:"booking_id"`
	Message   string  `json:"message"`
	Booking   BookingResponse `json:"booking"`
}

type UpdateBookingResponse struct {
	Booking      BookingResponse `json:"booking"`
	ExcessAmount float64         `json:"excess_amount,omitempty"`
	Message      string          `json:"message"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID.String(),
		BookingID: b.BookingID,
		UserID:    b.UserID.String(),
		Guest: GuestDetails{
			Name:  b.Guest.Name,
			Email: b.Guest.Email,
			Phone: b.Guest.Phone,
			Address: GuestAddress{
				Street:  b.Guest.Address.Street,
				City:    b.Guest.Address.City,
				State:   b.Guest.Address.State,
				ZipCode: b.Guest.Address.ZipCode,
				Country: b.Guest.Address.Country,
			},
		},
		RoomID:         b.RoomID.String(),
		RoomQuantity:   b.RoomQuantity,
		CheckInDate:    b.CheckInDate.Format("2006-01-02"),
		CheckOutDate:   b.CheckOutDate.Format("2006-01-02"),
		PaymentMethod:  string(b.PaymentMethod),
		BookingType:    string(b.BookingType),
		DiscountCoupon: b.DiscountCoupon,
		TotalBalance:   b.TotalBalance,
		PaidAmount:     b.PaidAmount,
		DueAmount:      b.DueAmount,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
	}
}
