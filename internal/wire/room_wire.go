package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/rooms/filter - Search available rooms by capacity and bed type
	r.Get("/api/rooms/filter", roomHandler.FilterRooms)

	// GET /api/room-types - List room types
	r.Get("/api/room-types", roomHandler.GetRoomTypes)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// POST /api/room-types - Create room type
		r.Post("/api/room-types", roomHandler.CreateRoomType)

		// POST /api/rooms - Create room
		r.Post("/api/rooms", roomHandler.CreateRoom)

		// PUT /api/rooms/{id} - Update room details or status
		r.Put("/api/rooms/{id}", roomHandler.UpdateRoom)
	})
}
