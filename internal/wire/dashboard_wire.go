package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDashboard(
	r chi.Router,
	dashboardHandler *adaptor.DashboardHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/reservations - Reservation list with room allocation
		r.Get("/reservations", dashboardHandler.GetReservations)

		// GET /api/admin/totals - Booking, customer and takings totals
		r.Get("/totals", dashboardHandler.GetTotals)

		// GET /api/admin/due-bookings - Bookings with outstanding balance
		r.Get("/due-bookings", dashboardHandler.GetDueBookings)
	})
}
