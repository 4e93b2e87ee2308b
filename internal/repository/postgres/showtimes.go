package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ostrenko/cinebook/internal/domain"
	"github.com/ostrenko/cinebook/internal/repository"
)

type ShowtimeRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ShowtimeRepo) With(db DB) *ShowtimeRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ShowtimeRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Create inserts a showtime and returns its generated ID. The seat grid
// dimensions are frozen into the row at this point.
func (r *ShowtimeRepo) Create(ctx context.Context, s domain.Showtime) (int64, error) {
	const op = "postgres.ShowtimeRepo.Create"

	db := r.handle()

	var id int64
	if err := db.QueryRow(ctx,
		`INSERT INTO showtimes(movie_id, theater_id, price, starts_at, ends_at, seat_rows, seat_cols)
       	 VALUES ($1, $2, $3, $4, $5, $6, $7)
     	 RETURNING id`,
		s.MovieID, s.TheaterID, s.Price, s.Starts, s.Ends, s.SeatRows, s.SeatCols,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return id, nil
}

// InitSeats materializes the full seat grid for a showtime, every seat
// available. Returns the number of seats created, which must equal
// rows * cols.
func (r *ShowtimeRepo) InitSeats(ctx context.Context, showtimeID int64, rows, cols int) (int64, error) {
	const op = "postgres.ShowtimeRepo.InitSeats"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`INSERT INTO showtime_seats(showtime_id, seat_row, seat_col, status)
       	 SELECT $1, r, c, 'available'
         FROM generate_series(1, $2::int) r, generate_series(1, $3::int) c
     	 ON CONFLICT DO NOTHING`,
		showtimeID, rows, cols,
	)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return tag.RowsAffected(), nil
}

// Get retrieves a showtime with its theater name resolved.
//
// Returns:
//   - error: repository.ErrNotFound if the showtime is not found.
func (r *ShowtimeRepo) Get(ctx context.Context, id int64) (*domain.Showtime, error) {
	const op = "postgres.ShowtimeRepo.Get"

	db := r.handle()

	var s domain.Showtime
	err := db.QueryRow(ctx,
		`SELECT s.id, s.movie_id, s.theater_id, t.name, s.price, s.starts_at, s.ends_at, s.seat_rows, s.seat_cols
       	 FROM showtimes s
       	 JOIN theaters t ON t.id = s.theater_id
      	 WHERE s.id = $1`,
		id,
	).Scan(
		&s.ID, &s.MovieID, &s.TheaterID, &s.TheaterName,
		&s.Price, &s.Starts, &s.Ends, &s.SeatRows, &s.SeatCols,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &s, nil
}

func (r *ShowtimeRepo) List(ctx context.Context) ([]domain.Showtime, error) {
	const op = "postgres.ShowtimeRepo.List"

	return r.list(ctx, op,
		`SELECT s.id, s.movie_id, s.theater_id, t.name, s.price, s.starts_at, s.ends_at, s.seat_rows, s.seat_cols
       	 FROM showtimes s
       	 JOIN theaters t ON t.id = s.theater_id
      	 ORDER BY s.starts_at`,
	)
}

func (r *ShowtimeRepo) ListByTheater(ctx context.Context, theaterName string) ([]domain.Showtime, error) {
	const op = "postgres.ShowtimeRepo.ListByTheater"

	return r.list(ctx, op,
		`SELECT s.id, s.movie_id, s.theater_id, t.name, s.price, s.starts_at, s.ends_at, s.seat_rows, s.seat_cols
       	 FROM showtimes s
       	 JOIN theaters t ON t.id = s.theater_id
      	 WHERE t.name = $1
      	 ORDER BY s.starts_at`,
		theaterName,
	)
}

func (r *ShowtimeRepo) list(ctx context.Context, op, sql string, args ...any) ([]domain.Showtime, error) {
	db := r.handle()

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Showtime
	for rows.Next() {
		var s domain.Showtime
		if err := rows.Scan(
			&s.ID, &s.MovieID, &s.TheaterID, &s.TheaterName,
			&s.Price, &s.Starts, &s.Ends, &s.SeatRows, &s.SeatCols,
		); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}

		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// Update overwrites the mutable fields of a showtime. Seat grid
// dimensions are deliberately not part of the statement.
//
// Returns:
//   - error: repository.ErrNotFound if the showtime is not found.
func (r *ShowtimeRepo) Update(ctx context.Context, s domain.Showtime) error {
	const op = "postgres.ShowtimeRepo.Update"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE showtimes
        	SET movie_id = $2, theater_id = $3, price = $4, starts_at = $5, ends_at = $6
      	 WHERE id = $1`,
		s.ID, s.MovieID, s.TheaterID, s.Price, s.Starts, s.Ends,
	)
	if err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}

// Delete removes a showtime and, via cascade, its seat grid. Booking
// rows are untouched; the service layer blocks deletion while any exist.
//
// Returns:
//   - error: repository.ErrNotFound if the showtime is not found.
func (r *ShowtimeRepo) Delete(ctx context.Context, id int64) error {
	const op = "postgres.ShowtimeRepo.Delete"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM showtimes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}

// FindOverlapping returns the intervals of showtimes in the given theater
// that intersect [starts, ends). The comparison is strict, so a showtime
// ending exactly at `starts` (or starting exactly at `ends`) is not a
// conflict. excludeID skips the showtime being updated; pass 0 on create.
func (r *ShowtimeRepo) FindOverlapping(
	ctx context.Context,
	theaterID int64,
	starts, ends time.Time,
	excludeID int64,
) ([]domain.ShowInterval, error) {
	const op = "postgres.ShowtimeRepo.FindOverlapping"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, starts_at, ends_at
       	 FROM showtimes
      	 WHERE theater_id = $1
        	AND starts_at < $3
        	AND ends_at > $2
        	AND ($4 = 0 OR id <> $4)
      	 ORDER BY starts_at`,
		theaterID, starts, ends, excludeID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.ShowInterval
	for rows.Next() {
		var iv domain.ShowInterval
		if err := rows.Scan(&iv.ShowtimeID, &iv.Starts, &iv.Ends); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}

		out = append(out, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// Seats returns the stored seat grid of a showtime in row-major order.
func (r *ShowtimeRepo) Seats(ctx context.Context, showtimeID int64) ([]domain.Seat, error) {
	const op = "postgres.ShowtimeRepo.Seats"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT seat_row, seat_col, status, COALESCE(booked_by, '')
       	 FROM showtime_seats
      	 WHERE showtime_id = $1
      	 ORDER BY seat_row, seat_col`,
		showtimeID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Seat
	for rows.Next() {
		var s domain.Seat
		var status string

		if err := rows.Scan(&s.Row, &s.Col, &status, &s.BookedBy); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}

		s.Status = domain.SeatStatus(status)
		s.Label = domain.SeatID{Row: s.Row, Col: s.Col}.String()
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}
