package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateAndGetCoupon(t *testing.T) {
	repo := newTestRepository()
	svc := NewCouponService(repo, zap.NewNop())

	created, err := svc.CreateCoupon(context.Background(), &request.CreateCouponRequest{
		Code:               "SUMMER20",
		Description:        "Summer promotion",
		StartDate:          "2026-06-01",
		EndDate:            "2026-08-31",
		DiscountPercentage: 20,
		MaxDiscountAmount:  200,
		MinPurchaseAmount:  500,
		UsageLimit:         100,
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.Zero(t, created.UsedCount)

	fetched, err := svc.GetCouponByCode(context.Background(), "SUMMER20")
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)

	_, err = svc.GetCouponByCode(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrCouponNotFound)
}

func TestCreateCouponAssignsDistinctIDs(t *testing.T) {
	repo := newTestRepository()
	svc := NewCouponService(repo, zap.NewNop())

	first, err := svc.CreateCoupon(context.Background(), &request.CreateCouponRequest{
		Code:               "FIRST",
		StartDate:          "2026-01-01",
		EndDate:            "2026-12-31",
		DiscountPercentage: 10,
		MaxDiscountAmount:  100,
		UsageLimit:         10,
	})
	require.NoError(t, err)
	second, err := svc.CreateCoupon(context.Background(), &request.CreateCouponRequest{
		Code:               "SECOND",
		StartDate:          "2026-01-01",
		EndDate:            "2026-12-31",
		DiscountPercentage: 15,
		MaxDiscountAmount:  150,
		UsageLimit:         10,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil.String(), first.ID)
	assert.NotEqual(t, uuid.Nil.String(), second.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotZero(t, repo.Coupon.(*fakeCouponRepo).coupons["FIRST"].CreatedAt)
}

func TestRedeemCouponCountsUsage(t *testing.T) {
	repo := newTestRepository()
	svc := NewCouponService(repo, zap.NewNop())

	_, err := svc.CreateCoupon(context.Background(), &request.CreateCouponRequest{
		Code:               "TWICE",
		Description:        "Two uses only",
		StartDate:          "2026-01-01",
		EndDate:            "2026-12-31",
		DiscountPercentage: 10,
		MaxDiscountAmount:  100,
		UsageLimit:         2,
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		discount, err := redeemCoupon(context.Background(), repo.Coupon, "TWICE", 600, date("2026-06-15"))
		require.NoError(t, err)
		assert.Equal(t, 60.0, discount)
	}

	// Third try hits the limit
	_, err = redeemCoupon(context.Background(), repo.Coupon, "TWICE", 600, date("2026-06-15"))
	assert.ErrorIs(t, err, ErrCouponUsageLimit)

	fetched, err := svc.GetCouponByCode(context.Background(), "TWICE")
	require.NoError(t, err)
	assert.Equal(t, 2, fetched.UsedCount)
}
