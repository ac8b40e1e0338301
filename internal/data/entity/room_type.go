package entity

type RoomType struct {
	Base
	TypeName    string   `db:"type_name"`
	Description string   `db:"description"`
	Amenities   []string `db:"amenities"`
}
