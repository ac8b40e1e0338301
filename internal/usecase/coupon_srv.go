package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type CouponService interface {
	CreateCoupon(ctx context.Context, req *request.CreateCouponRequest) (*response.CouponResponse, error)
	GetCouponByCode(ctx context.Context, code string) (*response.CouponResponse, error)
}

type couponService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCouponService(
	repo *repository.Repository,
	log *zap.Logger,
) CouponService {
	return &couponService{
		repo: repo,
		log:  log.With(zap.String("service", "coupon")),
	}
}

func (s *couponService) CreateCoupon(ctx context.Context, req *request.CreateCouponRequest) (*response.CouponResponse, error) {
	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parse start date: %w", err)
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("parse end date: %w", err)
	}

	now := time.Now()
	coupon := &entity.Coupon{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:               req.Code,
		Description:        req.Description,
		StartDate:          startDate,
		EndDate:            endDate,
		DiscountPercentage: req.DiscountPercentage,
		MaxDiscountAmount:  req.MaxDiscountAmount,
		MinPurchaseAmount:  req.MinPurchaseAmount,
		UsageLimit:         req.UsageLimit,
		IsActive:           true,
	}

	if err := s.repo.Coupon.Create(ctx, coupon); err != nil {
		s.log.Error("Failed to create coupon",
			zap.Error(err),
			zap.String("code", req.Code),
		)
		return nil, fmt.Errorf("create coupon: %w", err)
	}

	s.log.Info("Coupon created",
		zap.String("code", coupon.Code),
		zap.Float64("discount_percentage", coupon.DiscountPercentage),
	)

	result := response.CouponToResponse(coupon)
	return &result, nil
}

func (s *couponService) GetCouponByCode(ctx context.Context, code string) (*response.CouponResponse, error) {
	coupon, err := s.repo.Coupon.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("find coupon: %w", err)
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}

	result := response.CouponToResponse(coupon)
	return &result, nil
}

// redeemCoupon runs the coupon checks in order and, if all pass, consumes one
// use atomically. Check order matters: existence, then date window, then
// minimum purchase, then usage limit. It returns the discount applied to the
// subtotal.
func redeemCoupon(ctx context.Context, repo repository.CouponRepository, code string, subtotal float64, now time.Time) (float64, error) {
	coupon, err := repo.FindByCode(ctx, code)
	if err != nil {
		return 0, fmt.Errorf("find coupon %s: %w", code, err)
	}
	if coupon == nil || !coupon.IsActive {
		return 0, ErrCouponNotFound
	}

	if now.Before(coupon.StartDate) || now.After(coupon.EndDate) {
		return 0, ErrCouponExpired
	}

	if subtotal < coupon.MinPurchaseAmount {
		return 0, ErrCouponMinPurchase
	}

	if coupon.UsedCount >= coupon.UsageLimit {
		return 0, ErrCouponUsageLimit
	}

	// The read above can race a concurrent redemption, so the increment is
	// conditional on the limit still holding.
	if err := repo.Redeem(ctx, code); err != nil {
		if errors.Is(err, repository.ErrCouponExhausted) {
			return 0, ErrCouponUsageLimit
		}
		return 0, fmt.Errorf("redeem coupon %s: %w", code, err)
	}

	return Discount(subtotal, coupon), nil
}
