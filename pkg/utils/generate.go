package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== BOOKING ID ====================

// GenerateBookingID creates the human-facing booking identifier. UUID-backed
// so it stays collision-free across workers, separate from the row primary key.
func GenerateBookingID() string {
	return uuid.New().String()
}

// ==================== TRANSACTION ID ====================

// GenerateTransactionID creates a unique transaction reference for a payment record.
// Format: TRANSACTION-<uuid>
func GenerateTransactionID() string {
	return fmt.Sprintf("TRANSACTION-%s", uuid.New().String())
}
