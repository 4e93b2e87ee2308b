package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrShowtimeNotFound = errors.New("showtime not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNoSeatsRequested = errors.New("no seats requested")
)

// SeatTakenError is returned when a requested seat already has an
// occupant; the whole request the seat was part of is rolled back.
type SeatTakenError struct {
	Label string
}

func (e *SeatTakenError) Error() string {
	return fmt.Sprintf("seat %s is already booked", e.Label)
}

// SeatInvalidError is returned when a seat label does not parse or does
// not exist in the showtime's grid.
type SeatInvalidError struct {
	Label string
	Rows  int
	Cols  int
}

func (e *SeatInvalidError) Error() string {
	return fmt.Sprintf("seat %q is not valid for a %dx%d seat map", e.Label, e.Rows, e.Cols)
}

type TooManySeatsError struct {
	Requested int
	Max       int
}

func (e *TooManySeatsError) Error() string {
	return fmt.Sprintf("cannot book %d seats in one request (max %d)", e.Requested, e.Max)
}

type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited, retry in %s", e.RetryAfter)
}
