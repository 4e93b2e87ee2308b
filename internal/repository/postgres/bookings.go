package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ostrenko/cinebook/internal/domain"
	"github.com/ostrenko/cinebook/internal/repository"
)

type BookingRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *BookingRepo) With(db DB) *BookingRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *BookingRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// BookSeat claims one seat with a conditional update and records the
// booking. The status guard makes the claim atomic: when two requests
// race for the same seat, exactly one UPDATE reports an affected row.
// Callers must run this inside a transaction so a failed seat in a batch
// rolls back the seats claimed before it.
//
// Returns:
//   - error: repository.ErrSeatTaken if the seat is not available.
func (r *BookingRepo) BookSeat(
	ctx context.Context,
	showtimeID int64,
	seat domain.SeatID,
	userID string,
	bookingID uuid.UUID,
) error {
	const op = "postgres.BookingRepo.BookSeat"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE showtime_seats
        	SET status = 'booked', booked_by = $4
      	 WHERE showtime_id = $1
        	AND seat_row = $2
        	AND seat_col = $3
        	AND status = 'available'`,
		showtimeID, seat.Row, seat.Col, userID,
	)
	if err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrSeatTaken)
	}

	if _, err := db.Exec(ctx,
		`INSERT INTO bookings(id, showtime_id, seat_label, user_id)
       	 VALUES ($1, $2, $3, $4)`,
		bookingID, showtimeID, seat.String(), userID,
	); err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return nil
}

// Get retrieves a booking confirmation by its ID.
//
// Returns:
//   - error: repository.ErrNotFound if the booking is not found.
func (r *BookingRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	const op = "postgres.BookingRepo.Get"

	db := r.handle()

	var b domain.Booking
	err := db.QueryRow(ctx,
		`SELECT id, showtime_id, seat_label, user_id, created_at
       	 FROM bookings WHERE id = $1`,
		id,
	).Scan(&b.ID, &b.ShowtimeID, &b.SeatLabel, &b.UserID, &b.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &b, nil
}

// CountByShowtime counts bookings referencing a showtime. The scheduler
// uses it to block deletion of showtimes with active bookings.
func (r *BookingRepo) CountByShowtime(ctx context.Context, showtimeID int64) (int64, error) {
	const op = "postgres.BookingRepo.CountByShowtime"

	db := r.handle()

	var n int64
	err := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings WHERE showtime_id = $1`,
		showtimeID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return n, nil
}
