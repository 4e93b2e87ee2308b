package scheduling

import (
	"errors"
	"fmt"

	"github.com/ostrenko/cinebook/internal/domain"
)

var (
	ErrShowtimeNotFound    = errors.New("showtime not found")
	ErrMovieNotFound       = errors.New("movie not found")
	ErrTheaterNotFound     = errors.New("theater not found")
	ErrShowtimeHasBookings = errors.New("showtime has active bookings")
	ErrInvalidTimeRange    = errors.New("end time must be after start time")
	ErrInvalidPrice        = errors.New("price must be positive")
)

// OverlapError rejects a create/update whose interval intersects already
// scheduled showtimes in the same theater. Conflicts lists every
// colliding interval so clients can pick a free slot.
type OverlapError struct {
	Theater   string
	Conflicts []domain.ShowInterval
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf(
		"showtime overlaps %d existing showtime(s) in theater %q",
		len(e.Conflicts), e.Theater,
	)
}
