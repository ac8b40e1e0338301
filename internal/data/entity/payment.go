package entity

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusSuccess PaymentStatus = "Success"
	PaymentStatusFailed  PaymentStatus = "Failed"
)

// Payment is one payment event against a booking. A booking may accumulate
// several partial payments. Records are immutable once written.
type Payment struct {
	BaseSimple
	BookingID     uuid.UUID         `db:"booking_id"`
	Method        PaymentMethodType `db:"method"`
	Amount        float64           `db:"amount"`
	Status        PaymentStatus     `db:"status"`
	TransactionID string            `db:"transaction_id"`
}
