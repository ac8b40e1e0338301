package adaptor

import (
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log.With(zap.String("handler", "dashboard")),
	}
}

func paginationFromQuery(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}

// GetReservations handles GET /api/admin/reservations (admin)
func (h *DashboardHandler) GetReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.service.GetReservations(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(h.log, w, err, "get reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// GetTotals handles GET /api/admin/totals (admin)
func (h *DashboardHandler) GetTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.service.GetTotals(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get totals")
		return
	}

	utils.ResponseSuccess(w, "success", totals)
}

// GetDueBookings handles GET /api/admin/due-bookings (admin)
func (h *DashboardHandler) GetDueBookings(w http.ResponseWriter, r *http.Request) {
	dues, err := h.service.GetDueBookings(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(h.log, w, err, "get due bookings")
		return
	}

	utils.ResponseSuccess(w, "success", dues)
}
