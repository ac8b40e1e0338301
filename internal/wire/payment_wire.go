package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/payment - Record a payment against a booking
		r.Post("/api/payment", paymentHandler.RecordPayment)

		// GET /api/payment/{bookingId} - List payments for a booking
		r.Get("/api/payment/{bookingId}", paymentHandler.ListPayments)
	})

	// ==================== PUBLIC ROUTES ====================
	// GET /api/payment-methods - List available payment methods
	r.Get("/api/payment-methods", paymentHandler.GetPaymentMethods)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/payments - Full payment ledger
		r.Get("/api/payments", paymentHandler.ListAllPayments)
	})

	r.Route("/api/admin/payment-methods", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/payment-methods - List all methods, inactive included
		r.Get("/", paymentHandler.GetAllPaymentMethods)

		// POST /api/admin/payment-methods - Create payment method
		r.Post("/", paymentHandler.CreatePaymentMethod)

		// PUT /api/admin/payment-methods/{id} - Update payment method
		r.Put("/{id}", paymentHandler.UpdatePaymentMethod)

		// DELETE /api/admin/payment-methods/{id} - Remove payment method
		r.Delete("/{id}", paymentHandler.DeletePaymentMethod)
	})
}
