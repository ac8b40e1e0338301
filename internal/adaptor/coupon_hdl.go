package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CouponHandler struct {
	service usecase.CouponService
	log     *zap.Logger
}

func NewCouponHandler(service usecase.CouponService, log *zap.Logger) *CouponHandler {
	return &CouponHandler{
		service: service,
		log:     log.With(zap.String("handler", "coupon")),
	}
}

// CreateCoupon handles POST /api/coupons (admin)
func (h *CouponHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	coupon, err := h.service.CreateCoupon(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create coupon")
		return
	}

	utils.ResponseCreated(w, "success", coupon)
}

// GetCoupon handles GET /api/coupons/{code} (admin)
func (h *CouponHandler) GetCoupon(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		utils.ResponseBadRequest(w, "Coupon code is required", nil)
		return
	}

	coupon, err := h.service.GetCouponByCode(r.Context(), code)
	if err != nil {
		handleServiceError(h.log, w, err, "get coupon")
		return
	}

	utils.ResponseSuccess(w, "success", coupon)
}
