package movies

import (
	"context"
	"errors"
	"fmt"

	"github.com/ostrenko/cinebook/internal/domain"
	"github.com/ostrenko/cinebook/internal/repository"
	postgresrepo "github.com/ostrenko/cinebook/internal/repository/postgres"
	"github.com/ostrenko/cinebook/internal/uow"
)

type Service struct {
	store *postgresrepo.Store
	uow   *uow.UoW
}

func New(store *postgresrepo.Store) *Service {
	return &Service{
		store: store,
		uow:   uow.NewUoW(store),
	}
}

// UpdateParams carries the optional fields of a partial movie update.
// Nil means "leave unchanged".
type UpdateParams struct {
	Title       *string
	Genre       *string
	DurationMin *int
	Rating      *float64
	ReleaseYear *int
}

// Create registers a movie.
//
// Returns:
//   - error: movies.ErrMovieExists if the title is already registered.
func (s *Service) Create(ctx context.Context, m domain.Movie) (*domain.Movie, error) {
	const op = "service.movies.Create"

	if err := validate(m); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		id, err := s.store.Movies().With(tx).Create(ctx, m)
		if err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return fmt.Errorf("%s: %w", op, ErrMovieExists)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		m.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// GetByTitle retrieves a movie by its unique title.
//
// Returns:
//   - error: movies.ErrMovieNotFound if no such title is registered.
func (s *Service) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	const op = "service.movies.GetByTitle"

	m, err := s.store.Movies().GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrMovieNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Movie, error) {
	const op = "service.movies.List"

	out, err := s.store.Movies().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Update merges the provided fields over the stored record.
//
// Returns:
//   - error: movies.ErrMovieNotFound if no such title is registered.
//   - error: movies.ErrMovieExists if renaming onto a taken title.
func (s *Service) Update(ctx context.Context, title string, p UpdateParams) (*domain.Movie, error) {
	const op = "service.movies.Update"

	var out *domain.Movie

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		m, err := s.store.Movies().With(tx).GetByTitle(ctx, title)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrMovieNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		if p.Title != nil {
			m.Title = *p.Title
		}
		if p.Genre != nil {
			m.Genre = *p.Genre
		}
		if p.DurationMin != nil {
			m.DurationMin = *p.DurationMin
		}
		if p.Rating != nil {
			m.Rating = *p.Rating
		}
		if p.ReleaseYear != nil {
			m.ReleaseYear = *p.ReleaseYear
		}

		if err := validate(*m); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if err := s.store.Movies().With(tx).Update(ctx, *m); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return fmt.Errorf("%s: %w", op, ErrMovieExists)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Delete removes a movie by title and returns the removed record.
// Dependent showtimes are removed by the storage cascade.
//
// Returns:
//   - error: movies.ErrMovieNotFound if no such title is registered.
func (s *Service) Delete(ctx context.Context, title string) (*domain.Movie, error) {
	const op = "service.movies.Delete"

	var out *domain.Movie

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		m, err := s.store.Movies().With(tx).DeleteByTitle(ctx, title)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrMovieNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func validate(m domain.Movie) error {
	switch {
	case m.Title == "":
		return &ValidationError{Msg: "title must not be empty"}
	case m.DurationMin < 1 || m.DurationMin > 1000:
		return &ValidationError{Msg: "duration must be between 1 and 1000 minutes"}
	case m.Rating <= 0 || m.Rating > 10:
		return &ValidationError{Msg: "rating must be greater than 0 and at most 10"}
	case m.ReleaseYear < 1888 || m.ReleaseYear > 2100:
		return &ValidationError{Msg: "release year must be between 1888 and 2100"}
	}

	return nil
}
