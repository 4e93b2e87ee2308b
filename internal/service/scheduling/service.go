package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ostrenko/cinebook/internal/domain"
	"github.com/ostrenko/cinebook/internal/monitoring"
	"github.com/ostrenko/cinebook/internal/repository"
	postgresrepo "github.com/ostrenko/cinebook/internal/repository/postgres"
	redisrepo "github.com/ostrenko/cinebook/internal/repository/redis"
	"github.com/ostrenko/cinebook/internal/uow"
)

type Service struct {
	store  *postgresrepo.Store
	pubsub *redisrepo.ShowtimesPubSub
	uow    *uow.UoW
}

func New(store *postgresrepo.Store, pubsub *redisrepo.ShowtimesPubSub) *Service {
	return &Service{
		store:  store,
		pubsub: pubsub,
		uow:    uow.NewUoW(store),
	}
}

type CreateParams struct {
	MovieID     int64
	TheaterName string
	Price       decimal.Decimal
	Starts      time.Time
	Ends        time.Time
}

// UpdateParams carries the optional fields of a partial showtime update.
// Nil means "leave unchanged".
type UpdateParams struct {
	MovieID     *int64
	TheaterName *string
	Price       *decimal.Decimal
	Starts      *time.Time
	Ends        *time.Time
}

// Create schedules a showtime. The seat grid is generated in the same
// transaction, sized from the theater at this moment; later theater
// edits never resize it. Timestamps are normalized to UTC before any
// comparison or storage.
//
// Returns:
//   - error: scheduling.ErrMovieNotFound / ErrTheaterNotFound for bad refs.
//   - error: scheduling.ErrInvalidTimeRange / ErrInvalidPrice on bad input.
//   - error: *scheduling.OverlapError listing the conflicting intervals.
func (s *Service) Create(ctx context.Context, p CreateParams) (*domain.Showtime, error) {
	const op = "service.scheduling.Create"

	starts, ends := p.Starts.UTC(), p.Ends.UTC()

	if !starts.Before(ends) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidTimeRange)
	}
	if p.Price.Sign() <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidPrice)
	}

	var out domain.Showtime

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if _, err := s.store.Movies().With(tx).Get(ctx, p.MovieID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrMovieNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		th, err := s.store.Theaters().With(tx).GetByName(ctx, p.TheaterName)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrTheaterNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		conflicts, err := s.store.Showtimes().With(tx).
			FindOverlapping(ctx, th.ID, starts, ends, 0)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if len(conflicts) > 0 {
			monitoring.RecordSchedulingConflict()
			return fmt.Errorf("%s: %w", op, &OverlapError{Theater: th.Name, Conflicts: conflicts})
		}

		st := domain.Showtime{
			MovieID:     p.MovieID,
			TheaterID:   th.ID,
			TheaterName: th.Name,
			Price:       p.Price,
			Starts:      starts,
			Ends:        ends,
			SeatRows:    th.Rows,
			SeatCols:    th.Columns,
		}

		id, err := s.store.Showtimes().With(tx).Create(ctx, st)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		created, err := s.store.Showtimes().With(tx).InitSeats(ctx, id, th.Rows, th.Columns)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if created != int64(th.Rows)*int64(th.Columns) {
			return fmt.Errorf("%s: seat grid incomplete: got %d of %d seats",
				op, created, th.Rows*th.Columns)
		}

		st.ID = id
		out = st

		after(func(ctx context.Context) {
			monitoring.RecordShowtimeCreated()
			if s.pubsub != nil {
				_ = s.pubsub.PublishShowtimeChanged(ctx, id)
			}
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// Update merges the provided fields over the stored showtime. Moving the
// showtime in time or to another theater re-runs overlap detection with
// the showtime itself excluded. The seat grid keeps its creation-time
// dimensions, even when the theater changes.
func (s *Service) Update(ctx context.Context, id int64, p UpdateParams) (*domain.Showtime, error) {
	const op = "service.scheduling.Update"

	var out domain.Showtime

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		cur, err := s.store.Showtimes().With(tx).Get(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrShowtimeNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		if p.MovieID != nil && *p.MovieID != cur.MovieID {
			if _, err := s.store.Movies().With(tx).Get(ctx, *p.MovieID); err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("%s: %w", op, ErrMovieNotFound)
				}
				return fmt.Errorf("%s: %w", op, err)
			}
			cur.MovieID = *p.MovieID
		}

		scheduleChanged := false

		if p.TheaterName != nil && *p.TheaterName != cur.TheaterName {
			th, err := s.store.Theaters().With(tx).GetByName(ctx, *p.TheaterName)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("%s: %w", op, ErrTheaterNotFound)
				}
				return fmt.Errorf("%s: %w", op, err)
			}
			cur.TheaterID = th.ID
			cur.TheaterName = th.Name
			scheduleChanged = true
		}

		if p.Starts != nil {
			cur.Starts = p.Starts.UTC()
			scheduleChanged = true
		}
		if p.Ends != nil {
			cur.Ends = p.Ends.UTC()
			scheduleChanged = true
		}
		if !cur.Starts.Before(cur.Ends) {
			return fmt.Errorf("%s: %w", op, ErrInvalidTimeRange)
		}

		if p.Price != nil {
			if p.Price.Sign() <= 0 {
				return fmt.Errorf("%s: %w", op, ErrInvalidPrice)
			}
			cur.Price = *p.Price
		}

		if scheduleChanged {
			conflicts, err := s.store.Showtimes().With(tx).
				FindOverlapping(ctx, cur.TheaterID, cur.Starts, cur.Ends, cur.ID)
			if err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			if len(conflicts) > 0 {
				monitoring.RecordSchedulingConflict()
				return fmt.Errorf("%s: %w", op, &OverlapError{Theater: cur.TheaterName, Conflicts: conflicts})
			}
		}

		if err := s.store.Showtimes().With(tx).Update(ctx, *cur); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		out = *cur

		after(func(ctx context.Context) {
			if s.pubsub != nil {
				_ = s.pubsub.PublishShowtimeChanged(ctx, id)
			}
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// Remove deletes a showtime. Deletion is blocked while bookings
// reference it, so confirmations are never orphaned silently.
//
// Returns:
//   - error: scheduling.ErrShowtimeNotFound if unknown.
//   - error: scheduling.ErrShowtimeHasBookings if bookings exist.
func (s *Service) Remove(ctx context.Context, id int64) error {
	const op = "service.scheduling.Remove"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if _, err := s.store.Showtimes().With(tx).Get(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrShowtimeNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		n, err := s.store.Bookings().With(tx).CountByShowtime(ctx, id)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if n > 0 {
			return fmt.Errorf("%s: %w", op, ErrShowtimeHasBookings)
		}

		if err := s.store.Showtimes().With(tx).Delete(ctx, id); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			if s.pubsub != nil {
				_ = s.pubsub.PublishShowtimeChanged(ctx, id)
			}
		})

		return nil
	})
}

// Get retrieves a showtime by ID.
//
// Returns:
//   - error: scheduling.ErrShowtimeNotFound if unknown.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Showtime, error) {
	const op = "service.scheduling.Get"

	st, err := s.store.Showtimes().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrShowtimeNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return st, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Showtime, error) {
	const op = "service.scheduling.List"

	out, err := s.store.Showtimes().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// ListByTheater returns the showtimes scheduled in a theater.
//
// Returns:
//   - error: scheduling.ErrTheaterNotFound if the theater is unknown.
func (s *Service) ListByTheater(ctx context.Context, theaterName string) ([]domain.Showtime, error) {
	const op = "service.scheduling.ListByTheater"

	if _, err := s.store.Theaters().GetByName(ctx, theaterName); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrTheaterNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out, err := s.store.Showtimes().ListByTheater(ctx, theaterName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// SeatMatrix returns a showtime together with its assembled seat grid.
// Grid shape comes from the dimensions frozen at creation time.
//
// Returns:
//   - error: scheduling.ErrShowtimeNotFound if unknown.
func (s *Service) SeatMatrix(ctx context.Context, id int64) (*domain.Showtime, domain.SeatMatrix, error) {
	const op = "service.scheduling.SeatMatrix"

	st, err := s.store.Showtimes().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrShowtimeNotFound)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	seats, err := s.store.Showtimes().Seats(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return st, domain.AssembleSeatMatrix(st.SeatRows, st.SeatCols, seats), nil
}
