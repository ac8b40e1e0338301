package entity

// PaymentMethod is a staff-managed payment channel (paypal, cashfree, ...).
type PaymentMethod struct {
	Base
	Name     string `db:"name"`
	IsActive bool   `db:"is_active"`
}
