package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCoupon(
	r chi.Router,
	couponHandler *adaptor.CouponHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/coupons", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// POST /api/coupons - Create coupon
		r.Post("/", couponHandler.CreateCoupon)

		// GET /api/coupons/{code} - Inspect coupon state
		r.Get("/{code}", couponHandler.GetCoupon)
	})
}
