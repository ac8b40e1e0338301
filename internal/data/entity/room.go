package entity

import "github.com/google/uuid"

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "under-maintenance"
)

type BedType string

const (
	BedTypeSingle BedType = "single"
	BedTypeDouble BedType = "double"
	BedTypeQueen  BedType = "queen"
	BedTypeKing   BedType = "king"
	BedTypeOther  BedType = "other"
)

type Room struct {
	Base
	RoomTypeID       uuid.UUID  `db:"room_type_id"`
	RoomNumber       string     `db:"room_number"`
	Floor            string     `db:"floor"`
	Facilities       []string   `db:"facilities"`
	BedType          BedType    `db:"bed_type"`
	CapacityAdults   int        `db:"capacity_adults"`
	CapacityChildren int        `db:"capacity_children"`
	PricePerNight    float64    `db:"price_per_night"`
	Tax              float64    `db:"tax"` // percent
	TotalPrice       float64    `db:"total_price"` // price_per_night + tax, derived on write
	Status           RoomStatus `db:"status"`
}
