package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatBooked    SeatStatus = "booked"
)

type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	DurationMin int     `json:"duration"`
	Rating      float64 `json:"rating"`
	ReleaseYear int     `json:"releaseYear"`
}

type Theater struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
}

// Showtime carries the seat grid dimensions captured at creation time.
// They never change afterwards, even if the theater record does.
type Showtime struct {
	ID          int64
	MovieID     int64
	TheaterID   int64
	TheaterName string
	Price       decimal.Decimal
	Starts      time.Time
	Ends        time.Time
	SeatRows    int
	SeatCols    int
}

type Seat struct {
	Label    string     `json:"seatId"`
	Row      int        `json:"row"`
	Col      int        `json:"col"`
	Status   SeatStatus `json:"status"`
	BookedBy string     `json:"bookedBy,omitempty"`
}

// SeatMatrix is the full grid of a showtime, one slice per row.
type SeatMatrix [][]Seat

type Booking struct {
	ID         uuid.UUID `json:"id"`
	ShowtimeID int64     `json:"showtimeId"`
	SeatLabel  string    `json:"seatId"`
	UserID     string    `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ShowInterval identifies a scheduled slot that collided with a
// requested one.
type ShowInterval struct {
	ShowtimeID int64     `json:"showtimeId"`
	Starts     time.Time `json:"startTime"`
	Ends       time.Time `json:"endTime"`
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Intervals that only share an endpoint do not
// overlap, so back-to-back showtimes in one theater are legal.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
