package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindAvailableByType(ctx context.Context, roomTypeID uuid.UUID, limit int) ([]*entity.Room, error)
	FilterAvailable(ctx context.Context, adults, children int, bedType entity.BedType) ([]*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RoomStatus) error

	// Reservation list (reservation is not occupancy: a room is reserved at
	// booking creation and flips to occupied only on payment confirmation)
	Reserve(ctx context.Context, roomID, bookingID uuid.UUID) error
	Unreserve(ctx context.Context, roomID, bookingID uuid.UUID) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

const roomColumns = `
	id, room_type_id, room_number, floor, facilities, bed_type,
	capacity_adults, capacity_children, price_per_night, tax, total_price,
	status, created_at, updated_at
`

func scanRoom(row pgx.Row) (*entity.Room, error) {
	var room entity.Room
	err := row.Scan(
		&room.ID,
		&room.RoomTypeID,
		&room.RoomNumber,
		&room.Floor,
		&room.Facilities,
		&room.BedType,
		&room.CapacityAdults,
		&room.CapacityChildren,
		&room.PricePerNight,
		&room.Tax,
		&room.TotalPrice,
		&room.Status,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (` + roomColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.RoomTypeID,
		room.RoomNumber,
		room.Floor,
		room.Facilities,
		room.BedType,
		room.CapacityAdults,
		room.CapacityChildren,
		room.PricePerNight,
		room.Tax,
		room.TotalPrice,
		room.Status,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("room_number", room.RoomNumber),
		)
		return fmt.Errorf("create room %s: %w", room.RoomNumber, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	room, err := scanRoom(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return room, nil
}

func (r *roomRepository) FindAvailableByType(ctx context.Context, roomTypeID uuid.UUID, limit int) ([]*entity.Room, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM rooms
		WHERE room_type_id = $1 AND status = 'available'
		ORDER BY room_number
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, roomTypeID, limit)
	if err != nil {
		r.log.Error("Failed to find available rooms by type",
			zap.Error(err),
			zap.String("room_type_id", roomTypeID.String()),
		)
		return nil, fmt.Errorf("find available rooms by type %s: %w", roomTypeID.String(), err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}

func (r *roomRepository) FilterAvailable(ctx context.Context, adults, children int, bedType entity.BedType) ([]*entity.Room, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM rooms
		WHERE capacity_adults >= $1
		  AND capacity_children >= $2
		  AND bed_type = $3
		  AND status = 'available'
		ORDER BY total_price
	`

	rows, err := r.db.Query(ctx, query, adults, children, bedType)
	if err != nil {
		r.log.Error("Failed to filter available rooms",
			zap.Error(err),
			zap.Int("adults", adults),
			zap.Int("children", children),
			zap.String("bed_type", string(bedType)),
		)
		return nil, fmt.Errorf("filter available rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET room_type_id = $2, room_number = $3, floor = $4, facilities = $5,
		    bed_type = $6, capacity_adults = $7, capacity_children = $8,
		    price_per_night = $9, tax = $10, total_price = $11, status = $12,
		    updated_at = $13
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.RoomTypeID,
		room.RoomNumber,
		room.Floor,
		room.Facilities,
		room.BedType,
		room.CapacityAdults,
		room.CapacityChildren,
		room.PricePerNight,
		room.Tax,
		room.TotalPrice,
		room.Status,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
		)
		return fmt.Errorf("update room %s: %w", room.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", room.ID.String())
	}

	return nil
}

func (r *roomRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RoomStatus) error {
	query := `UPDATE rooms SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update room status",
			zap.Error(err),
			zap.String("room_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update room %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", id.String())
	}

	return nil
}

func (r *roomRepository) Reserve(ctx context.Context, roomID, bookingID uuid.UUID) error {
	query := `
		INSERT INTO room_bookings (room_id, booking_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, roomID, bookingID)
	if err != nil {
		r.log.Error("Failed to reserve room",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("reserve room %s for booking %s: %w", roomID.String(), bookingID.String(), err)
	}

	return nil
}

func (r *roomRepository) Unreserve(ctx context.Context, roomID, bookingID uuid.UUID) error {
	query := `DELETE FROM room_bookings WHERE room_id = $1 AND booking_id = $2`

	_, err := r.db.Exec(ctx, query, roomID, bookingID)
	if err != nil {
		r.log.Error("Failed to release room reservation",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("release room %s for booking %s: %w", roomID.String(), bookingID.String(), err)
	}

	return nil
}
