package httpgin

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ostrenko/cinebook/internal/domain"
	"github.com/ostrenko/cinebook/internal/service/booking"
	"github.com/ostrenko/cinebook/internal/service/movies"
	"github.com/ostrenko/cinebook/internal/service/scheduling"
	"github.com/ostrenko/cinebook/internal/service/theaters"
)

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondErr(c, err)

	var body ErrorResponse
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestRespondErr_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"movie not found", movies.ErrMovieNotFound, http.StatusNotFound},
		{"movie exists", movies.ErrMovieExists, http.StatusConflict},
		{"movie validation", &movies.ValidationError{Msg: "rating out of range"}, http.StatusBadRequest},
		{"theater not found", theaters.ErrTheaterNotFound, http.StatusNotFound},
		{"theater exists", theaters.ErrTheaterExists, http.StatusConflict},
		{"theater has showtimes", theaters.ErrTheaterHasShowtimes, http.StatusConflict},
		{"bad dimensions", theaters.ErrBadDimensions, http.StatusBadRequest},
		{"showtime not found", scheduling.ErrShowtimeNotFound, http.StatusNotFound},
		{"showtime has bookings", scheduling.ErrShowtimeHasBookings, http.StatusConflict},
		{"bad time range", scheduling.ErrInvalidTimeRange, http.StatusBadRequest},
		{"bad price", scheduling.ErrInvalidPrice, http.StatusBadRequest},
		{"booking not found", booking.ErrBookingNotFound, http.StatusNotFound},
		{"no seats", booking.ErrNoSeatsRequested, http.StatusBadRequest},
		{"too many seats", &booking.TooManySeatsError{Requested: 11, Max: 10}, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := respond(t, tc.err)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestRespondErr_WrappedErrors(t *testing.T) {
	// Services wrap sentinels with an op prefix; mapping must still hit.
	err := fmt.Errorf("service.movies.GetByTitle: %w", movies.ErrMovieNotFound)
	w, body := respond(t, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "movie not found", body.Error)
}

func TestRespondErr_Overlap(t *testing.T) {
	starts := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	err := fmt.Errorf("service.scheduling.Create: %w", &scheduling.OverlapError{
		Theater: "Theater 1",
		Conflicts: []domain.ShowInterval{
			{ShowtimeID: 7, Starts: starts, Ends: starts.Add(2 * time.Hour)},
		},
	})

	w, body := respond(t, err)

	assert.Equal(t, http.StatusConflict, w.Code)
	require.Len(t, body.Conflicts, 1)
	assert.Equal(t, int64(7), body.Conflicts[0].ShowtimeID)
	assert.Equal(t, "2025-06-01T18:00:00Z", body.Conflicts[0].StartTime)
	assert.Equal(t, "2025-06-01T20:00:00Z", body.Conflicts[0].EndTime)
}

func TestRespondErr_SeatTaken(t *testing.T) {
	w, body := respond(t, fmt.Errorf("service.booking.Book: %w", &booking.SeatTakenError{Label: "3C"}))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "3C", body.Seat)
}

func TestRespondErr_SeatInvalid(t *testing.T) {
	w, body := respond(t, &booking.SeatInvalidError{Label: "9Z", Rows: 2, Cols: 2})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "9Z", body.Seat)
}

func TestRespondErr_RateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/bookings", nil)

	respondErr(c, &booking.RateLimitedError{RetryAfter: 42 * time.Second})

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "42", w.Header().Get("Retry-After"))
}

func TestParseInt64Param(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	v, ok := parseInt64Param(c, "id")
	require.True(t, ok)
	assert.Equal(t, int64(42), v)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Params = gin.Params{{Key: "id", Value: "abc"}}

	_, ok = parseInt64Param(c2, "id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w2.Code)
}

func TestParseRFC3339_TruncatesSubSecond(t *testing.T) {
	got, err := parseRFC3339("2025-06-01T18:00:00.750Z")
	require.NoError(t, err)

	want := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	assert.True(t, got.Equal(want))

	// What goes in comes back out byte-identical.
	s := &domain.Showtime{Starts: got, Ends: got.Add(2 * time.Hour)}
	assert.Equal(t, "2025-06-01T18:00:00Z", toShowtimeResponse(s).StartTime)
}

func TestToShowtimeResponse_UTC(t *testing.T) {
	kyiv := time.FixedZone("EEST", 3*60*60)
	s := &domain.Showtime{
		ID:          1,
		MovieID:     2,
		TheaterName: "Sample Theater",
		Starts:      time.Date(2025, 6, 1, 21, 0, 0, 0, kyiv),
		Ends:        time.Date(2025, 6, 1, 23, 0, 0, 0, kyiv),
	}

	resp := toShowtimeResponse(s)

	assert.Equal(t, "2025-06-01T18:00:00Z", resp.StartTime)
	assert.Equal(t, "2025-06-01T20:00:00Z", resp.EndTime)
}
