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

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// CreateRoomType handles POST /api/room-types (admin)
func (h *RoomHandler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	roomType, err := h.service.CreateRoomType(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create room type")
		return
	}

	utils.ResponseCreated(w, "success", roomType)
}

// GetRoomTypes handles GET /api/room-types (public)
func (h *RoomHandler) GetRoomTypes(w http.ResponseWriter, r *http.Request) {
	roomTypes, err := h.service.GetRoomTypes(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get room types")
		return
	}

	utils.ResponseSuccess(w, "success", roomTypes)
}

// CreateRoom handles POST /api/rooms (admin)
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create room")
		return
	}

	utils.ResponseCreated(w, "success", room)
}

// UpdateRoom handles PUT /api/rooms/{id} (admin)
func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// FilterRooms handles GET /api/rooms/filter (public)
// Query parameters: adults, children, bed_type
func (h *RoomHandler) FilterRooms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.FilterRoomsRequest{
		Adults:   utils.ParseInt(query.Get("adults"), 0),
		Children: utils.ParseInt(query.Get("children"), 0),
		BedType:  query.Get("bed_type"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	rooms, err := h.service.FilterRooms(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "filter rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}
