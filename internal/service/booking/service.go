package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ostrenko/cinebook/internal/domain"
	"github.com/ostrenko/cinebook/internal/monitoring"
	"github.com/ostrenko/cinebook/internal/repository"
	postgresrepo "github.com/ostrenko/cinebook/internal/repository/postgres"
	redisrepo "github.com/ostrenko/cinebook/internal/repository/redis"
	"github.com/ostrenko/cinebook/internal/uow"
)

type Config struct {
	MaxSeatsPerRequest int
}

type Service struct {
	store   *postgresrepo.Store
	pubsub  *redisrepo.ShowtimesPubSub
	limiter *redisrepo.SlidingWindowLimiter
	uow     *uow.UoW
	cfg     Config
}

func New(
	store *postgresrepo.Store,
	pubsub *redisrepo.ShowtimesPubSub,
	limiter *redisrepo.SlidingWindowLimiter,
	cfg Config,
) *Service {
	if cfg.MaxSeatsPerRequest <= 0 {
		cfg.MaxSeatsPerRequest = 10
	}

	return &Service{
		store:   store,
		pubsub:  pubsub,
		limiter: limiter,
		uow:     uow.NewUoW(store),
		cfg:     cfg,
	}
}

// Book claims the requested seats of a showtime for a user. The batch is
// all-or-nothing: every seat is claimed with a conditional update inside
// one transaction, and the first seat that is invalid or already taken
// rolls the whole batch back. Under concurrent requests for the same
// seat, exactly one caller gets it.
//
// Returns:
//   - []uuid.UUID: one confirmation ID per booked seat, in request order.
//   - error: booking.ErrShowtimeNotFound if the showtime is unknown.
//   - error: *booking.SeatInvalidError if a label is malformed or out of
//     range for the showtime's grid.
//   - error: *booking.SeatTakenError if a seat already has an occupant.
//   - error: *booking.RateLimitedError when the caller is over quota.
func (s *Service) Book(
	ctx context.Context,
	showtimeID int64,
	seatLabels []string,
	userID string,
	rlKey string,
) ([]uuid.UUID, error) {
	const op = "service.booking.Book"

	if len(seatLabels) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoSeatsRequested)
	}
	if len(seatLabels) > s.cfg.MaxSeatsPerRequest {
		return nil, fmt.Errorf("%s: %w", op, &TooManySeatsError{
			Requested: len(seatLabels),
			Max:       s.cfg.MaxSeatsPerRequest,
		})
	}

	if s.limiter != nil && rlKey != "" {
		ok, _, retry, err := s.limiter.Allow(ctx, rlKey)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if !ok {
			return nil, fmt.Errorf("%s: %w", op, &RateLimitedError{RetryAfter: retry})
		}
	}

	var ids []uuid.UUID

	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		st, err := s.store.Showtimes().With(tx).Get(ctx, showtimeID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrShowtimeNotFound)
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		for _, label := range seatLabels {
			seat, err := domain.ParseSeatID(label)
			if err != nil || !seat.InBounds(st.SeatRows, st.SeatCols) {
				return fmt.Errorf("%s: %w", op, &SeatInvalidError{
					Label: label,
					Rows:  st.SeatRows,
					Cols:  st.SeatCols,
				})
			}

			bookingID := uuid.New()
			if err := s.store.Bookings().With(tx).
				BookSeat(ctx, showtimeID, seat, userID, bookingID); err != nil {
				if errors.Is(err, repository.ErrSeatTaken) {
					return fmt.Errorf("%s: %w", op, &SeatTakenError{Label: seat.String()})
				}
				return fmt.Errorf("%s: %w", op, err)
			}

			ids = append(ids, bookingID)
		}

		after(func(ctx context.Context) {
			if s.pubsub != nil {
				_ = s.pubsub.PublishShowtimeChanged(ctx, showtimeID)
			}
		})

		return nil
	})
	if err != nil {
		monitoring.RecordBooking("rejected", len(seatLabels))
		return nil, err
	}

	monitoring.RecordBooking("confirmed", len(ids))

	return ids, nil
}

// Get retrieves a booking confirmation.
//
// Returns:
//   - error: booking.ErrBookingNotFound if unknown.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	const op = "service.booking.Get"

	b, err := s.store.Bookings().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrBookingNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}
