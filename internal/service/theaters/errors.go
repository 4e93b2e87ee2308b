package theaters

import "errors"

var (
	ErrTheaterNotFound     = errors.New("theater not found")
	ErrTheaterExists       = errors.New("theater already exists")
	ErrTheaterHasShowtimes = errors.New("theater has scheduled showtimes")
	ErrBadDimensions       = errors.New("bad seat grid dimensions")
)
