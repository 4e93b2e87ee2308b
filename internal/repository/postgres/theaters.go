package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ostrenko/cinebook/internal/domain"
	"github.com/ostrenko/cinebook/internal/repository"
)

type TheaterRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *TheaterRepo) With(db DB) *TheaterRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *TheaterRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Create inserts a theater and returns its generated ID.
//
// Returns:
//   - error: repository.ErrConflict if a theater with the same name exists.
func (r *TheaterRepo) Create(ctx context.Context, name string, rows, cols int) (int64, error) {
	const op = "postgres.TheaterRepo.Create"

	db := r.handle()

	var id int64
	if err := db.QueryRow(ctx,
		`INSERT INTO theaters(name, seat_rows, seat_cols)
       	 VALUES ($1, $2, $3)
     	 RETURNING id`,
		name, rows, cols,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return id, nil
}

func (r *TheaterRepo) Get(ctx context.Context, id int64) (*domain.Theater, error) {
	const op = "postgres.TheaterRepo.Get"

	db := r.handle()

	var t domain.Theater
	err := db.QueryRow(ctx,
		`SELECT id, name, seat_rows, seat_cols
       	 FROM theaters WHERE id = $1`,
		id,
	).Scan(&t.ID, &t.Name, &t.Rows, &t.Columns)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &t, nil
}

func (r *TheaterRepo) GetByName(ctx context.Context, name string) (*domain.Theater, error) {
	const op = "postgres.TheaterRepo.GetByName"

	db := r.handle()

	var t domain.Theater
	err := db.QueryRow(ctx,
		`SELECT id, name, seat_rows, seat_cols
       	 FROM theaters WHERE name = $1`,
		name,
	).Scan(&t.ID, &t.Name, &t.Rows, &t.Columns)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &t, nil
}

func (r *TheaterRepo) List(ctx context.Context) ([]domain.Theater, error) {
	const op = "postgres.TheaterRepo.List"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, name, seat_rows, seat_cols
		 FROM theaters
		 ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Theater
	for rows.Next() {
		var t domain.Theater
		if err := rows.Scan(&t.ID, &t.Name, &t.Rows, &t.Columns); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}

		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// Count returns the number of theater rows. Used by the bootstrap step
// to decide whether seeding is needed.
func (r *TheaterRepo) Count(ctx context.Context) (int64, error) {
	const op = "postgres.TheaterRepo.Count"

	db := r.handle()

	var n int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM theaters`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return n, nil
}

// Delete removes a theater.
//
// Returns:
//   - error: repository.ErrNotFound if the theater is not found.
//   - error: repository.ErrConflict if showtimes still reference it.
func (r *TheaterRepo) Delete(ctx context.Context, id int64) error {
	const op = "postgres.TheaterRepo.Delete"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM theaters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}
