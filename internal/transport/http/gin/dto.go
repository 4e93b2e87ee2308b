package httpgin

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ostrenko/cinebook/internal/domain"
)

type CreateMovieRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Genre       string  `json:"genre" binding:"required,max=100"`
	Duration    int     `json:"duration" binding:"required,min=1,max=1000"`
	Rating      float64 `json:"rating" binding:"required,gt=0,lte=10"`
	ReleaseYear int     `json:"releaseYear" binding:"required,min=1888,max=2100"`
}

type UpdateMovieRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1,max=255"`
	Genre       *string  `json:"genre" binding:"omitempty,min=1,max=100"`
	Duration    *int     `json:"duration" binding:"omitempty,min=1,max=1000"`
	Rating      *float64 `json:"rating" binding:"omitempty,gt=0,lte=10"`
	ReleaseYear *int     `json:"releaseYear" binding:"omitempty,min=1888,max=2100"`
}

type CreateTheaterRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Rows    int    `json:"rows" binding:"required,min=1,max=100"`
	Columns int    `json:"columns" binding:"required,min=1,max=26"`
}

type CreateShowtimeRequest struct {
	MovieID   int64           `json:"movieId" binding:"required"`
	Theater   string          `json:"theater" binding:"required"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	StartTime string          `json:"startTime" binding:"required"`
	EndTime   string          `json:"endTime" binding:"required"`
}

type UpdateShowtimeRequest struct {
	MovieID   *int64           `json:"movieId"`
	Theater   *string          `json:"theater"`
	Price     *decimal.Decimal `json:"price"`
	StartTime *string          `json:"startTime"`
	EndTime   *string          `json:"endTime"`
}

type CreateBookingRequest struct {
	ShowtimeID int64    `json:"showtimeId" binding:"required"`
	Seats      []string `json:"seats" binding:"required,min=1,dive,required"`
	UserID     string   `json:"userId" binding:"required"`
}

// ShowtimeResponse is the projection every scheduler operation returns:
// timestamps rendered as RFC3339 UTC so a created showtime reads back
// with the exact instants it was created with.
type ShowtimeResponse struct {
	ID        int64           `json:"id"`
	MovieID   int64           `json:"movieId"`
	Theater   string          `json:"theater"`
	Price     decimal.Decimal `json:"price"`
	StartTime string          `json:"startTime"`
	EndTime   string          `json:"endTime"`
}

func toShowtimeResponse(s *domain.Showtime) ShowtimeResponse {
	return ShowtimeResponse{
		ID:        s.ID,
		MovieID:   s.MovieID,
		Theater:   s.TheaterName,
		Price:     s.Price,
		StartTime: s.Starts.UTC().Format(time.RFC3339),
		EndTime:   s.Ends.UTC().Format(time.RFC3339),
	}
}

type SeatMatrixResponse struct {
	ShowtimeResponse
	SeatMatrix domain.SeatMatrix `json:"seatMatrix"`
}

type CreateBookingResponse struct {
	BookingIDs []string `json:"bookingIds"`
}

type ConflictInterval struct {
	ShowtimeID int64  `json:"showtimeId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

type ErrorResponse struct {
	Error     string             `json:"error"`
	Seat      string             `json:"seat,omitempty"`
	Conflicts []ConflictInterval `json:"conflicts,omitempty"`
}

// parseRFC3339 truncates to whole seconds: responses format with
// time.RFC3339, so anything finer would not survive a round trip.
func parseRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.Truncate(time.Second), nil
}
