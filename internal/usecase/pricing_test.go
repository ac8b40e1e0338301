package usecase

import (
	"testing"
	"time"

	"hotel-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"three nights", "2026-03-10", "2026-03-13", 3},
		{"single night", "2026-03-10", "2026-03-11", 1},
		{"same day", "2026-03-10", "2026-03-10", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(date(tt.checkIn), date(tt.checkOut)))
		})
	}
}

func TestNightsPartialDayRoundsUp(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 11, 11, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, Nights(checkIn, checkOut))
}

func TestSubtotal(t *testing.T) {
	// 3 nights x 100 per night x 2 rooms
	assert.Equal(t, 600.0, Subtotal(3, 100, 2))
}

func TestDiscount(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		coupon   entity.Coupon
		want     float64
	}{
		{
			name:     "percentage below cap",
			subtotal: 600,
			coupon:   entity.Coupon{DiscountPercentage: 10, MaxDiscountAmount: 100},
			want:     60,
		},
		{
			name:     "capped at maximum",
			subtotal: 600,
			coupon:   entity.Coupon{DiscountPercentage: 10, MaxDiscountAmount: 50},
			want:     50,
		},
		{
			name:     "rounds to nearest unit",
			subtotal: 333,
			coupon:   entity.Coupon{DiscountPercentage: 10, MaxDiscountAmount: 100},
			want:     33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Discount(tt.subtotal, &tt.coupon))
		})
	}
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 550.0, Total(600, 50))
	assert.Equal(t, 635.0, Total(634.5, 0))
	assert.Equal(t, 600.0, Total(600.25, 0))
}

func TestAdvanceAmount(t *testing.T) {
	assert.Equal(t, 300.0, AdvanceAmount(1000, 30))
	assert.Equal(t, 150.0, AdvanceAmount(1000, 15))
	assert.Equal(t, 100.0, AdvanceAmount(333, 30))
}

func TestNightlyTotal(t *testing.T) {
	assert.Equal(t, 110.0, NightlyTotal(100, 10))
	assert.Equal(t, 100.0, NightlyTotal(100, 0))
}
