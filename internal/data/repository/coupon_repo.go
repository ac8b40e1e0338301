package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) error
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)
	Redeem(ctx context.Context, code string) error
}

type couponRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCouponRepository(db database.PgxIface, log *zap.Logger) CouponRepository {
	return &couponRepository{
		db:  db,
		log: log.With(zap.String("repository", "coupon")),
	}
}

func (r *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	query := `
		INSERT INTO coupons (id, code, description, start_date, end_date,
		                     discount_percentage, max_discount_amount, min_purchase_amount,
		                     usage_limit, used_count, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		coupon.ID,
		coupon.Code,
		coupon.Description,
		coupon.StartDate,
		coupon.EndDate,
		coupon.DiscountPercentage,
		coupon.MaxDiscountAmount,
		coupon.MinPurchaseAmount,
		coupon.UsageLimit,
		coupon.UsedCount,
		coupon.IsActive,
		coupon.CreatedAt,
		coupon.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create coupon",
			zap.Error(err),
			zap.String("code", coupon.Code),
		)
		return fmt.Errorf("create coupon %s: %w", coupon.Code, err)
	}

	return nil
}

func (r *couponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	query := `
		SELECT id, code, description, start_date, end_date,
		       discount_percentage, max_discount_amount, min_purchase_amount,
		       usage_limit, used_count, is_active, created_at, updated_at
		FROM coupons
		WHERE code = $1
	`

	var coupon entity.Coupon
	err := r.db.QueryRow(ctx, query, code).Scan(
		&coupon.ID,
		&coupon.Code,
		&coupon.Description,
		&coupon.StartDate,
		&coupon.EndDate,
		&coupon.DiscountPercentage,
		&coupon.MaxDiscountAmount,
		&coupon.MinPurchaseAmount,
		&coupon.UsageLimit,
		&coupon.UsedCount,
		&coupon.IsActive,
		&coupon.CreatedAt,
		&coupon.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find coupon by code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find coupon by code %s: %w", code, err)
	}

	return &coupon, nil
}

// Redeem increments used_count only while the usage limit holds. The guard
// lives in the UPDATE itself, so two concurrent redemptions of the last slot
// cannot both succeed.
func (r *couponRepository) Redeem(ctx context.Context, code string) error {
	query := `
		UPDATE coupons
		SET used_count = used_count + 1, updated_at = NOW()
		WHERE code = $1 AND is_active = true AND used_count < usage_limit
	`

	result, err := r.db.Exec(ctx, query, code)
	if err != nil {
		r.log.Error("Failed to redeem coupon",
			zap.Error(err),
			zap.String("code", code),
		)
		return fmt.Errorf("redeem coupon %s: %w", code, err)
	}

	if result.RowsAffected() == 0 {
		return ErrCouponExhausted
	}

	return nil
}
