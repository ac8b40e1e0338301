package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/booking - Create new booking
		r.Post("/api/booking", bookingHandler.CreateBooking)

		// GET /api/booking/{id} - View booking with payment history
		r.Get("/api/booking/{id}", bookingHandler.GetBooking)

		// DELETE /api/cancel-booking/{id} - Cancel a booking within its window
		r.Delete("/api/cancel-booking/{id}", bookingHandler.CancelBooking)

		// PUT /api/update-booking/{id} - Change stay dates or booking type
		r.Put("/api/update-booking/{id}", bookingHandler.UpdateBooking)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// POST /api/checkout - Check out a confirmed booking (admin)
		r.Post("/api/checkout", bookingHandler.Checkout)
	})
}
