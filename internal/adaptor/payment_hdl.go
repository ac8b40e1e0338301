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

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// RecordPayment handles POST /api/payment (protected)
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req request.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.RecordPayment(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "record payment")
		return
	}

	utils.ResponseSuccess(w, result.Message, result)
}

// ListPayments handles GET /api/payment/{bookingId} (protected)
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	payments, err := h.service.ListPayments(r.Context(), bookingID)
	if err != nil {
		handleServiceError(h.log, w, err, "list payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}

// ListAllPayments handles GET /api/payments (admin)
func (h *PaymentHandler) ListAllPayments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	payments, err := h.service.ListAllPayments(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list all payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}

// CreatePaymentMethod handles POST /api/payment-methods (admin)
func (h *PaymentHandler) CreatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req request.PaymentMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	paymentMethod, err := h.service.CreatePaymentMethod(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create payment method")
		return
	}

	utils.ResponseCreated(w, "success", paymentMethod)
}

// GetPaymentMethods handles GET /api/payment-methods (public, active only)
func (h *PaymentHandler) GetPaymentMethods(w http.ResponseWriter, r *http.Request) {
	paymentMethods, err := h.service.GetActivePaymentMethods(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get payment methods")
		return
	}

	utils.ResponseSuccess(w, "success", paymentMethods)
}

// GetAllPaymentMethods handles GET /api/admin/payment-methods (admin)
func (h *PaymentHandler) GetAllPaymentMethods(w http.ResponseWriter, r *http.Request) {
	paymentMethods, err := h.service.GetPaymentMethods(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get all payment methods")
		return
	}

	utils.ResponseSuccess(w, "success", paymentMethods)
}

// UpdatePaymentMethod handles PUT /api/payment-methods/{id} (admin)
func (h *PaymentHandler) UpdatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.PaymentMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	paymentMethod, err := h.service.UpdatePaymentMethod(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update payment method")
		return
	}

	utils.ResponseSuccess(w, "success", paymentMethod)
}

// DeletePaymentMethod handles DELETE /api/payment-methods/{id} (admin)
func (h *PaymentHandler) DeletePaymentMethod(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeletePaymentMethod(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete payment method")
		return
	}

	utils.ResponseSuccess(w, "Payment method deleted successfully", nil)
}
