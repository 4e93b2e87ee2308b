package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ostrenko/cinebook/internal/domain"
	"github.com/ostrenko/cinebook/internal/repository"
)

type MovieRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *MovieRepo) With(db DB) *MovieRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *MovieRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Create inserts a movie and returns its generated ID.
//
// Returns:
//   - error: repository.ErrConflict if a movie with the same title exists.
func (r *MovieRepo) Create(ctx context.Context, m domain.Movie) (int64, error) {
	const op = "postgres.MovieRepo.Create"

	db := r.handle()

	var id int64
	if err := db.QueryRow(ctx,
		`INSERT INTO movies(title, genre, duration_min, rating, release_year)
       	 VALUES ($1, $2, $3, $4, $5)
     	 RETURNING id`,
		m.Title, m.Genre, m.DurationMin, m.Rating, m.ReleaseYear,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return id, nil
}

// Get retrieves a movie by its ID.
//
// Returns:
//   - error: repository.ErrNotFound if the movie is not found.
func (r *MovieRepo) Get(ctx context.Context, id int64) (*domain.Movie, error) {
	const op = "postgres.MovieRepo.Get"

	db := r.handle()

	var m domain.Movie
	err := db.QueryRow(ctx,
		`SELECT id, title, genre, duration_min, rating, release_year
       	 FROM movies WHERE id = $1`,
		id,
	).Scan(&m.ID, &m.Title, &m.Genre, &m.DurationMin, &m.Rating, &m.ReleaseYear)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &m, nil
}

// GetByTitle retrieves a movie by its unique title.
//
// Returns:
//   - error: repository.ErrNotFound if the movie is not found.
func (r *MovieRepo) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	const op = "postgres.MovieRepo.GetByTitle"

	db := r.handle()

	var m domain.Movie
	err := db.QueryRow(ctx,
		`SELECT id, title, genre, duration_min, rating, release_year
       	 FROM movies WHERE title = $1`,
		title,
	).Scan(&m.ID, &m.Title, &m.Genre, &m.DurationMin, &m.Rating, &m.ReleaseYear)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &m, nil
}

func (r *MovieRepo) List(ctx context.Context) ([]domain.Movie, error) {
	const op = "postgres.MovieRepo.List"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, title, genre, duration_min, rating, release_year
		 FROM movies
		 ORDER BY title`,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Movie
	for rows.Next() {
		var m domain.Movie
		if err := rows.Scan(
			&m.ID, &m.Title, &m.Genre, &m.DurationMin, &m.Rating, &m.ReleaseYear,
		); err != nil {
			return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
		}

		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// Update overwrites a movie row. The caller merges partial fields first.
//
// Returns:
//   - error: repository.ErrNotFound if the movie is not found.
//   - error: repository.ErrConflict if the new title is already taken.
func (r *MovieRepo) Update(ctx context.Context, m domain.Movie) error {
	const op = "postgres.MovieRepo.Update"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE movies
        	SET title = $2, genre = $3, duration_min = $4, rating = $5, release_year = $6
      	 WHERE id = $1`,
		m.ID, m.Title, m.Genre, m.DurationMin, m.Rating, m.ReleaseYear,
	)
	if err != nil {
		return fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}

// DeleteByTitle removes a movie and returns the removed record. Showtimes
// referencing the movie are removed by the ON DELETE CASCADE constraint.
//
// Returns:
//   - error: repository.ErrNotFound if the movie is not found.
func (r *MovieRepo) DeleteByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	const op = "postgres.MovieRepo.DeleteByTitle"

	db := r.handle()

	var m domain.Movie
	err := db.QueryRow(ctx,
		`DELETE FROM movies
      	 WHERE title = $1
     	 RETURNING id, title, genre, duration_min, rating, release_year`,
		title,
	).Scan(&m.ID, &m.Title, &m.Genre, &m.DurationMin, &m.Rating, &m.ReleaseYear)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return &m, nil
}
