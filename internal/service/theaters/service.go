package theaters

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

// Create registers a theater.
//
// Returns:
//   - error: theaters.ErrTheaterExists if the name is taken.
//   - error: theaters.ErrBadDimensions if rows/columns are out of range.
func (s *Service) Create(ctx context.Context, name string, rows, cols int) (*domain.Theater, error) {
	const op = "service.theaters.Create"

	if rows < 1 || rows > 100 || cols < 1 || cols > domain.MaxSeatColumns {
		return nil, fmt.Errorf("%s: %w", op, ErrBadDimensions)
	}

	var out domain.Theater

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		id, err := s.store.Theaters().With(tx).Create(ctx, name, rows, cols)
		if err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return fmt.Errorf("%s: %w", op, ErrTheaterExists)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		out = domain.Theater{ID: id, Name: name, Rows: rows, Columns: cols}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// Get retrieves a theater by ID.
//
// Returns:
//   - error: theaters.ErrTheaterNotFound if unknown.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Theater, error) {
	const op = "service.theaters.Get"

	t, err := s.store.Theaters().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrTheaterNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return t, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Theater, error) {
	const op = "service.theaters.List"

	out, err := s.store.Theaters().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Delete removes a theater. Deletion is blocked while any showtime is
// scheduled in it, so schedules are never destroyed implicitly.
//
// Returns:
//   - error: theaters.ErrTheaterNotFound if unknown.
//   - error: theaters.ErrTheaterHasShowtimes if showtimes reference it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "service.theaters.Delete"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		t, err := s.store.Theaters().With(tx).Get(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrTheaterNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		shows, err := s.store.Showtimes().With(tx).ListByTheater(ctx, t.Name)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if len(shows) > 0 {
			return fmt.Errorf("%s: %w", op, ErrTheaterHasShowtimes)
		}

		if err := s.store.Theaters().With(tx).Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return fmt.Errorf("%s: %w", op, ErrTheaterHasShowtimes)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		return nil
	})
}

// Bootstrap seeds the default theaters when the registry is empty. It is
// idempotent and safe to call on every process start.
func (s *Service) Bootstrap(ctx context.Context) error {
	const op = "service.theaters.Bootstrap"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		n, err := s.store.Theaters().With(tx).Count(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if n > 0 {
			return nil
		}

		names := []string{"Theater 1", "Theater 2", "Theater 3", "Theater 4", "Sample Theater"}
		for _, name := range names {
			if _, err := s.store.Theaters().With(tx).Create(ctx, name, 10, 8); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}

		return nil
	})
}
