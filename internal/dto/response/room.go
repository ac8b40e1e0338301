package response

import (
	"hotel-booking/internal/data/entity"
)

type RoomResponse struct {
	ID               string            `json:"id"`
	RoomTypeID       string            `json:"room_type_id"`
	RoomNumber       string            `json:"room_number"`
	Floor            string            `json:"floor"`
	Facilities       []string          `json:"facilities"`
	BedType          string            `json:"bed_type"`
	CapacityAdults   int               `json:"capacity_adults"`
	CapacityChildren int               `json:"capacity_children"`
	PricePerNight    float64           `json:"price_per_night"`
	Tax              float64           `json:"tax"`
	TotalPrice       float64           `json:"total_price"`
	Status           entity.RoomStatus `json:"status"`
}

type RoomTypeResponse struct {
	ID          string   `json:"id"`
	TypeName    string   `json:"type_name"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:               room.ID.String(),
		RoomTypeID:       room.RoomTypeID.String(),
		RoomNumber:       room.RoomNumber,
		Floor:            room.Floor,
		Facilities:       room.Facilities,
		BedType:          string(room.BedType),
		CapacityAdults:   room.CapacityAdults,
		CapacityChildren: room.CapacityChildren,
		PricePerNight:    room.PricePerNight,
		Tax:              room.Tax,
		TotalPrice:       room.TotalPrice,
		Status:           room.Status,
	}
}

func RoomTypeToResponse(rt *entity.RoomType) RoomTypeResponse {
	return RoomTypeResponse{
		ID:          rt.ID.String(),
		TypeName:    rt.TypeName,
		Description: rt.Description,
		Amenities:   rt.Amenities,
	}
}
