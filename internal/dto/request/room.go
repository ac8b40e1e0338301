package request

type CreateRoomTypeRequest struct {
	TypeName    string   `json:"type_name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Amenities   []string `json:"amenities" validate:"required,min=1,dive,required"`
}

type CreateRoomRequest struct {
	RoomTypeID       string   `json:"room_type_id" validate:"required,uuid4"`
	RoomNumber       string   `json:"room_number" validate:"required"`
	Floor            string   `json:"floor" validate:"required"`
	Facilities       []string `json:"facilities" validate:"required,min=1,dive,required"`
	BedType          string   `json:"bed_type" validate:"required,oneof=single double queen king other"`
	CapacityAdults   int      `json:"capacity_adults" validate:"required,min=1"`
	CapacityChildren int      `json:"capacity_children" validate:"gte=0"`
	PricePerNight    float64  `json:"price_per_night" validate:"required,gt=0"`
	Tax              float64  `json:"tax" validate:"gte=0"`
}

type UpdateRoomRequest struct {
	Floor            string   `json:"floor,omitempty"`
	Facilities       []string `json:"facilities,omitempty" validate:"omitempty,min=1,dive,required"`
	BedType          string   `json:"bed_type,omitempty" validate:"omitempty,oneof=single double queen king other"`
	CapacityAdults   int      `json:"capacity_adults,omitempty" validate:"omitempty,min=1"`
	CapacityChildren int      `json:"capacity_children,omitempty" validate:"omitempty,gte=0"`
	PricePerNight    float64  `json:"price_per_night,omitempty" validate:"omitempty,gt=0"`
	Tax              float64  `json:"tax,omitempty" validate:"omitempty,gte=0"`
	Status           string   `json:"status,omitempty" validate:"omitempty,oneof=available occupied under-maintenance"`
}

// FilterRoomsRequest comes from query parameters on the public availability search.
type FilterRoomsRequest struct {
	Adults   int    `json:"adults" validate:"required,min=1"`
	Children int    `json:"children" validate:"gte=0"`
	BedType  string `json:"bed_type" validate:"required,oneof=single double queen king other"`
}
