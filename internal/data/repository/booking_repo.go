package repository

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, booking *entity.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error

	// Business queries
	CountOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (int64, error)
	ApplyPayment(ctx context.Context, id uuid.UUID, amount float64) (*entity.Booking, error)
	CountDistinctGuests(ctx context.Context) (int64, error)
	FindWithDue(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	CountWithDue(ctx context.Context) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `
	id, booking_id, user_id, guest_name, guest_email, guest_phone,
	guest_street, guest_city, guest_state, guest_zip_code, guest_country,
	room_id, room_quantity, check_in_date, check_out_date,
	payment_method, booking_type, discount_coupon,
	total_balance, paid_amount, due_amount, status, created_at, updated_at
`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.BookingID,
		&b.UserID,
		&b.Guest.Name,
		&b.Guest.Email,
		&b.Guest.Phone,
		&b.Guest.Address.Street,
		&b.Guest.Address.City,
		&b.Guest.Address.State,
		&b.Guest.Address.ZipCode,
		&b.Guest.Address.Country,
		&b.RoomID,
		&b.RoomQuantity,
		&b.CheckInDate,
		&b.CheckOutDate,
		&b.PaymentMethod,
		&b.BookingType,
		&b.DiscountCoupon,
		&b.TotalBalance,
		&b.PaidAmount,
		&b.DueAmount,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts the booking only if no non-cancelled booking overlaps the
// requested dates for the same room. The overlap re-check inside the INSERT
// closes the race between the availability check and the write: two
// concurrent requests cannot both insert.
func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		       $16, $17, $18, $19, $20, $21, $22, $23, $24
		WHERE NOT EXISTS (
			SELECT 1 FROM bookings
			WHERE room_id = $12
			  AND status <> 'cancelled'
			  AND check_in_date < $15
			  AND check_out_date > $14
		)
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.BookingID,
		booking.UserID,
		booking.Guest.Name,
		booking.Guest.Email,
		booking.Guest.Phone,
		booking.Guest.Address.Street,
		booking.Guest.Address.City,
		booking.Guest.Address.State,
		booking.Guest.Address.ZipCode,
		booking.Guest.Address.Country,
		booking.RoomID,
		booking.RoomQuantity,
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.PaymentMethod,
		booking.BookingType,
		booking.DiscountCoupon,
		booking.TotalBalance,
		booking.PaidAmount,
		booking.DueAmount,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
			zap.String("room_id", booking.RoomID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrBookingOverlap
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, bookingID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("find booking by booking ID %s: %w", bookingID, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err))
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET check_in_date = $2, check_out_date = $3, booking_type = $4,
		    total_balance = $5, paid_amount = $6, due_amount = $7,
		    status = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.BookingType,
		booking.TotalBalance,
		booking.PaidAmount,
		booking.DueAmount,
		booking.Status,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	return nil
}

// CountOverlapping counts non-cancelled bookings for the room whose stay
// overlaps [checkIn, checkOut) under half-open semantics: a booking ending
// exactly when another begins does not overlap.
func (r *bookingRepository) CountOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE room_id = $1
		  AND status <> 'cancelled'
		  AND check_in_date < $3
		  AND check_out_date > $2
	`

	var count int64
	err := r.db.QueryRow(ctx, query, roomID, checkIn, checkOut).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count overlapping bookings",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return 0, fmt.Errorf("count overlapping bookings for room %s: %w", roomID.String(), err)
	}

	return count, nil
}

// ApplyPayment accumulates the amount into paid_amount and recomputes
// due_amount in a single statement, so concurrent payments against the same
// booking cannot lose an increment. Returns the updated booking.
func (r *bookingRepository) ApplyPayment(ctx context.Context, id uuid.UUID, amount float64) (*entity.Booking, error) {
	query := `
		UPDATE bookings
		SET paid_amount = paid_amount + $2,
		    due_amount = ROUND(total_balance - (paid_amount + $2)),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + bookingColumns

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id, amount))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to apply payment",
			zap.Error(err),
			zap.String("id", id.String()),
			zap.Float64("amount", amount),
		)
		return nil, fmt.Errorf("apply payment to booking %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) CountDistinctGuests(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(DISTINCT user_id) FROM bookings`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count distinct guests", zap.Error(err))
		return 0, fmt.Errorf("count distinct guests: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) FindWithDue(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE due_amount > 0 AND status <> 'cancelled'
		ORDER BY check_in_date DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings with due amount", zap.Error(err))
		return nil, fmt.Errorf("find bookings with due amount: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountWithDue(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings WHERE due_amount > 0 AND status <> 'cancelled'`,
	).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings with due amount", zap.Error(err))
		return 0, fmt.Errorf("count bookings with due amount: %w", err)
	}

	return count, nil
}
