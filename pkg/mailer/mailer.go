package mailer

import (
	"fmt"
	"strings"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer sends booking confirmations. Callers treat delivery as best-effort:
// a failed send must never fail the booking or payment that triggered it.
type Mailer interface {
	SendBookingConfirmation(booking *entity.Booking, room *entity.Room, roomType *entity.RoomType, userEmail, adminEmail string) error
}

type smtpMailer struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func NewSMTPMailer(config utils.EmailConfig, log *zap.Logger) Mailer {
	return &smtpMailer{
		config: config,
		log:    log.With(zap.String("component", "mailer")),
	}
}

func (m *smtpMailer) SendBookingConfirmation(booking *entity.Booking, room *entity.Room, roomType *entity.RoomType, userEmail, adminEmail string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", userEmail)
	if adminEmail != "" {
		msg.SetHeader("Cc", adminEmail)
	}
	msg.SetHeader("Subject", "Your Booking Confirmation - "+booking.BookingID)
	msg.SetBody("text/html", buildConfirmationBody(booking, room, roomType))

	dialer := gomail.NewDialer(m.config.Host, m.config.Port, m.config.User, m.config.Password)

	if err := dialer.DialAndSend(msg); err != nil {
		m.log.Error("Failed to send booking confirmation email",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
		)
		return fmt.Errorf("send booking confirmation for %s: %w", booking.BookingID, err)
	}

	m.log.Info("Booking confirmation email sent",
		zap.String("booking_id", booking.BookingID),
	)
	return nil
}

func buildConfirmationBody(booking *entity.Booking, room *entity.Room, roomType *entity.RoomType) string {
	nights := int(booking.CheckOutDate.Sub(booking.CheckInDate).Hours() / 24)

	var b strings.Builder
	b.WriteString("<h1>Booking Confirmation</h1>")
	fmt.Fprintf(&b, "<p>Dear %s,</p>", booking.Guest.Name)
	b.WriteString("<p>Thank you for choosing our hotel. We're pleased to confirm your booking.</p>")

	b.WriteString("<h2>Booking Details</h2>")
	fmt.Fprintf(&b, "<p><strong>Booking ID:</strong> %s</p>", booking.BookingID)
	fmt.Fprintf(&b, "<p><strong>Check-In Date:</strong> %s (%s)</p>",
		booking.CheckInDate.Format("2006-01-02"), booking.CheckInDate.Weekday())
	fmt.Fprintf(&b, "<p><strong>Check-Out Date:</strong> %s (%s)</p>",
		booking.CheckOutDate.Format("2006-01-02"), booking.CheckOutDate.Weekday())
	fmt.Fprintf(&b, "<p><strong>Number of Nights:</strong> %d</p>", nights)

	b.WriteString("<h3>Room Details:</h3>")
	fmt.Fprintf(&b, "<p><strong>Room Number:</strong> %s</p>", room.RoomNumber)
	if roomType != nil {
		fmt.Fprintf(&b, "<p><strong>Room Type:</strong> %s</p>", roomType.TypeName)
	}
	fmt.Fprintf(&b, "<p><strong>Bed Type:</strong> %s</p>", room.BedType)
	fmt.Fprintf(&b, "<p><strong>Capacity:</strong> %d adults, %d children</p>",
		room.CapacityAdults, room.CapacityChildren)
	fmt.Fprintf(&b, "<p><strong>Facilities:</strong> %s</p>", strings.Join(room.Facilities, ", "))

	b.WriteString("<h2>Payment Information</h2>")
	fmt.Fprintf(&b, "<p><strong>Total Amount:</strong> $%.0f</p>", booking.TotalBalance)
	if booking.BookingType == entity.BookingTypeAdvance {
		fmt.Fprintf(&b, "<p><strong>Amount Paid:</strong> $%.0f</p>", booking.PaidAmount)
		fmt.Fprintf(&b, "<p><strong>Remaining Due Amount:</strong> $%.0f</p>", booking.DueAmount)
	} else {
		fmt.Fprintf(&b, "<p><strong>Amount to Pay at Hotel:</strong> $%.0f</p>", booking.DueAmount)
	}
	if booking.DiscountCoupon != nil {
		fmt.Fprintf(&b, "<p><strong>Discount Coupon Applied:</strong> %s</p>", *booking.DiscountCoupon)
	}

	b.WriteString("<h2>Guest Information</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", booking.Guest.Name)
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", booking.Guest.Email)
	fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", booking.Guest.Phone)
	fmt.Fprintf(&b, "<p><strong>Address:</strong> %s, %s, %s, %s, %s</p>",
		booking.Guest.Address.Street, booking.Guest.Address.City,
		booking.Guest.Address.State, booking.Guest.Address.ZipCode,
		booking.Guest.Address.Country)

	b.WriteString("<h2>Additional Information</h2>")
	b.WriteString("<p>Check-in time: After 3:00 PM</p>")
	b.WriteString("<p>Check-out time: Before 11:00 AM</p>")
	b.WriteString("<p>If you need to modify or cancel your reservation, please contact our reservations team at least 24 hours prior to your check-in date.</p>")
	b.WriteString("<p>Best regards,<br>The Reservations Team</p>")

	return b.String()
}
