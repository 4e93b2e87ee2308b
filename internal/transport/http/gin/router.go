package httpgin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ostrenko/cinebook/internal/domain"
	redisrepo "github.com/ostrenko/cinebook/internal/repository/redis"
	"github.com/ostrenko/cinebook/internal/service"
	"github.com/ostrenko/cinebook/internal/service/booking"
	"github.com/ostrenko/cinebook/internal/service/movies"
	"github.com/ostrenko/cinebook/internal/service/scheduling"
	"github.com/ostrenko/cinebook/internal/service/theaters"
)

func NewRouter(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health + metrics
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	mv := r.Group("/movies")
	{
		mv.POST("", handleCreateMovie(svcs))
		mv.GET("", handleListMovies(svcs))
		mv.GET("/:title", handleGetMovie(svcs))
		mv.PATCH("/:title", handleUpdateMovie(svcs))
		mv.DELETE("/:title", handleDeleteMovie(svcs))
	}

	th := r.Group("/theaters")
	{
		th.POST("", handleCreateTheater(svcs))
		th.GET("", handleListTheaters(svcs))
		th.GET("/:id", handleGetTheater(svcs))
		th.DELETE("/:id", handleDeleteTheater(svcs))
	}

	st := r.Group("/showtimes")
	{
		st.POST("", handleCreateShowtime(svcs))
		st.GET("", handleListShowtimes(svcs))
		st.GET("/:id", handleGetShowtime(svcs))
		st.PATCH("/:id", handleUpdateShowtime(svcs))
		st.DELETE("/:id", handleDeleteShowtime(svcs))
		st.GET("/:id/seats", handleGetSeatMatrix(svcs))
	}

	bk := r.Group("/bookings")
	{
		bk.POST("", handleCreateBooking(svcs, idem))
		bk.GET("/:id", handleGetBooking(svcs))
	}

	return r
}

// --- Handlers with Swagger annotations ---

// @Summary  Add movie
// @Param    req body  CreateMovieRequest true "payload"
// @Success  201 {object} domain.Movie
// @Failure  400 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse "title already registered"
// @Router   /movies [post]
func handleCreateMovie(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateMovieRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		m, err := svcs.Movies.Create(c.Request.Context(), domain.Movie{
			Title:       req.Title,
			Genre:       req.Genre,
			DurationMin: req.Duration,
			Rating:      req.Rating,
			ReleaseYear: req.ReleaseYear,
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, m)
	}
}

// @Summary  List movies
// @Success  200 {array} domain.Movie
// @Router   /movies [get]
func handleListMovies(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svcs.Movies.List(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithETag(c, http.StatusOK, list)
	}
}

// @Summary  Get movie by title
// @Param    title  path  string  true  "Movie title"
// @Success  200 {object} domain.Movie
// @Failure  404 {object} ErrorResponse
// @Router   /movies/{title} [get]
func handleGetMovie(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, err := svcs.Movies.GetByTitle(c.Request.Context(), c.Param("title"))
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithETag(c, http.StatusOK, m)
	}
}

// @Summary  Update movie
// @Param    title  path  string  true  "Movie title"
// @Param    req    body  UpdateMovieRequest true "fields to change"
// @Success  200 {object} domain.Movie
// @Failure  404 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse "new title already taken"
// @Router   /movies/{title} [patch]
func handleUpdateMovie(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateMovieRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		m, err := svcs.Movies.Update(c.Request.Context(), c.Param("title"), movies.UpdateParams{
			Title:       req.Title,
			Genre:       req.Genre,
			DurationMin: req.Duration,
			Rating:      req.Rating,
			ReleaseYear: req.ReleaseYear,
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

// @Summary  Delete movie
// @Param    title  path  string  true  "Movie title"
// @Success  200 {object} domain.Movie "the removed record"
// @Failure  404 {object} ErrorResponse
// @Router   /movies/{title} [delete]
func handleDeleteMovie(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, err := svcs.Movies.Delete(c.Request.Context(), c.Param("title"))
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

// @Summary  Create theater
// @Param    req body  CreateTheaterRequest true "payload"
// @Success  201 {object} domain.Theater
// @Failure  409 {object} ErrorResponse "name already registered"
// @Router   /theaters [post]
func handleCreateTheater(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateTheaterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		t, err := svcs.Theaters.Create(c.Request.Context(), req.Name, req.Rows, req.Columns)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, t)
	}
}

// @Summary  List theaters
// @Success  200 {array} domain.Theater
// @Router   /theaters [get]
func handleListTheaters(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svcs.Theaters.List(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithETag(c, http.StatusOK, list)
	}
}

// @Summary  Get theater
// @Param    id  path  int  true  "Theater ID"
// @Success  200 {object} domain.Theater
// @Failure  404 {object} ErrorResponse
// @Router   /theaters/{id} [get]
func handleGetTheater(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		t, err := svcs.Theaters.Get(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithETag(c, http.StatusOK, t)
	}
}

// @Summary  Delete theater
// @Param    id  path  int  true  "Theater ID"
// @Success  204
// @Failure  404 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse "theater still has showtimes"
// @Router   /theaters/{id} [delete]
func handleDeleteTheater(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		if err := svcs.Theaters.Delete(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  Schedule showtime
// @Param    req body  CreateShowtimeRequest true "payload"
// @Success  201 {object} ShowtimeResponse
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse "movie or theater unknown"
// @Failure  409 {object} ErrorResponse "overlaps existing showtimes"
// @Router   /showtimes [post]
func handleCreateShowtime(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateShowtimeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		starts, err := parseRFC3339(req.StartTime)
		if err != nil {
			badRequest(c, "invalid startTime (RFC3339)")
			return
		}
		ends, err := parseRFC3339(req.EndTime)
		if err != nil {
			badRequest(c, "invalid endTime (RFC3339)")
			return
		}
		s, err := svcs.Scheduling.Create(c.Request.Context(), scheduling.CreateParams{
			MovieID:     req.MovieID,
			TheaterName: req.Theater,
			Price:       req.Price,
			Starts:      starts,
			Ends:        ends,
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, toShowtimeResponse(s))
	}
}

// @Summary  List showtimes
// @Param    theater  query  string  false  "filter by theater name"
// @Success  200 {array} ShowtimeResponse
// @Failure  404 {object} ErrorResponse "unknown theater in filter"
// @Router   /showtimes [get]
func handleListShowtimes(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			list []domain.Showtime
			err  error
		)
		if theater := c.Query("theater"); theater != "" {
			list, err = svcs.Scheduling.ListByTheater(c.Request.Context(), theater)
		} else {
			list, err = svcs.Scheduling.List(c.Request.Context())
		}
		if err != nil {
			respondErr(c, err)
			return
		}
		out := make([]ShowtimeResponse, 0, len(list))
		for i := range list {
			out = append(out, toShowtimeResponse(&list[i]))
		}
		writeJSONWithETag(c, http.StatusOK, out)
	}
}

// @Summary  Get showtime
// @Param    id  path  int  true  "Showtime ID"
// @Success  200 {object} ShowtimeResponse
// @Failure  404 {object} ErrorResponse
// @Router   /showtimes/{id} [get]
func handleGetShowtime(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		s, err := svcs.Scheduling.Get(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithETag(c, http.StatusOK, toShowtimeResponse(s))
	}
}

// @Summary  Update showtime
// @Param    id   path  int  true  "Showtime ID"
// @Param    req  body  UpdateShowtimeRequest true "fields to change"
// @Success  200 {object} ShowtimeResponse
// @Failure  404 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse "overlaps existing showtimes"
// @Router   /showtimes/{id} [patch]
func handleUpdateShowtime(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req UpdateShowtimeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		var p scheduling.UpdateParams
		p.MovieID = req.MovieID
		p.TheaterName = req.Theater
		p.Price = req.Price
		if req.StartTime != nil {
			t, err := parseRFC3339(*req.StartTime)
			if err != nil {
				badRequest(c, "invalid startTime (RFC3339)")
				return
			}
			p.Starts = &t
		}
		if req.EndTime != nil {
			t, err := parseRFC3339(*req.EndTime)
			if err != nil {
				badRequest(c, "invalid endTime (RFC3339)")
				return
			}
			p.Ends = &t
		}
		s, err := svcs.Scheduling.Update(c.Request.Context(), id, p)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, toShowtimeResponse(s))
	}
}

// @Summary  Cancel showtime
// @Param    id  path  int  true  "Showtime ID"
// @Success  204
// @Failure  404 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse "showtime has bookings"
// @Router   /showtimes/{id} [delete]
func handleDeleteShowtime(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		if err := svcs.Scheduling.Remove(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  Get seat matrix
// @Param    id  path  int  true  "Showtime ID"
// @Success  200 {object} SeatMatrixResponse
// @Failure  404 {object} ErrorResponse
// @Router   /showtimes/{id}/seats [get]
func handleGetSeatMatrix(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		s, matrix, err := svcs.Scheduling.SeatMatrix(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithETag(c, http.StatusOK, SeatMatrixResponse{
			ShowtimeResponse: toShowtimeResponse(s),
			SeatMatrix:       matrix,
		})
	}
}

// @Summary  Book seats (idempotent)
// @Param    req body  CreateBookingRequest true "payload"
// @Header   201 {string} Idempotency-Key "echo"
// @Success  201 {object} CreateBookingResponse
// @Failure  400 {object} ErrorResponse "bad seat label / too many seats"
// @Failure  404 {object} ErrorResponse "showtime unknown"
// @Failure  409 {object} ErrorResponse "seat taken / idem in progress"
// @Failure  429 {object} ErrorResponse "rate limited"
// @Router   /bookings [post]
func handleCreateBooking(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if idem != nil && idemKey != "" {
			idemStorageKey = redisrepo.KeyIdemBooking(req.ShowtimeID, idemKey)

			if payload, ok, _ := idem.GetResult(
				c.Request.Context(),
				idemStorageKey,
			); ok {
				c.Header("Idempotency-Key", idemKey)
				c.Data(
					http.StatusCreated,
					"application/json; charset=utf-8",
					[]byte(payload),
				)
				return
			}

			locked, err := idem.AcquireLock(
				c.Request.Context(),
				idemStorageKey,
				60*time.Second,
			)
			if err != nil {
				respondErr(c, err)
				return
			}
			if !locked {
				if payload, ok, _ := idem.GetResult(
					c.Request.Context(),
					idemStorageKey,
				); ok {
					c.Header("Idempotency-Key", idemKey)
					c.Data(
						http.StatusCreated,
						"application/json; charset=utf-8",
						[]byte(payload),
					)
					return
				}
				c.Header("Retry-After", "1")
				c.JSON(
					http.StatusConflict,
					ErrorResponse{Error: "idempotency key in progress"},
				)
				return
			}
		}

		rlKey := "ip:" + c.ClientIP()

		ids, err := svcs.Booking.Book(
			c.Request.Context(),
			req.ShowtimeID,
			req.Seats,
			req.UserID,
			rlKey,
		)
		if err != nil {
			if idemStorageKey != "" && idem != nil {
				_ = idem.Release(c.Request.Context(), idemStorageKey)
			}
			respondErr(c, err)
			return
		}

		resp := CreateBookingResponse{BookingIDs: make([]string, 0, len(ids))}
		for _, id := range ids {
			resp.BookingIDs = append(resp.BookingIDs, id.String())
		}

		if idemStorageKey != "" && idem != nil {
			b, _ := json.Marshal(resp)
			_ = idem.SaveResult(c.Request.Context(), idemStorageKey, string(b))
			c.Header("Idempotency-Key", idemKey)
		}

		c.JSON(http.StatusCreated, resp)
	}
}

// @Summary  Get booking
// @Param    id  path  string  true  "Booking ID (uuid)"
// @Success  200 {object} domain.Booking
// @Failure  404 {object} ErrorResponse
// @Router   /bookings/{id} [get]
func handleGetBooking(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			badRequest(c, "invalid booking id")
			return
		}
		b, err := svcs.Booking.Get(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// --- Helpers ---

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	s := c.Param(name)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	var (
		overlapErr   *scheduling.OverlapError
		seatTaken    *booking.SeatTakenError
		seatInvalid  *booking.SeatInvalidError
		tooManySeats *booking.TooManySeatsError
		rateLimited  *booking.RateLimitedError
		validation   *movies.ValidationError
	)

	switch {
	// movies service
	case errors.Is(err, movies.ErrMovieNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "movie not found"})
		return
	case errors.Is(err, movies.ErrMovieExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "movie already exists"})
		return
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validation.Msg})
		return
	// theaters service
	case errors.Is(err, theaters.ErrTheaterNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "theater not found"})
		return
	case errors.Is(err, theaters.ErrTheaterExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "theater already exists"})
		return
	case errors.Is(err, theaters.ErrTheaterHasShowtimes):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "theater has scheduled showtimes"})
		return
	case errors.Is(err, theaters.ErrBadDimensions):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "bad seat grid dimensions"})
		return
	// scheduling service
	case errors.Is(err, scheduling.ErrShowtimeNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "showtime not found"})
		return
	case errors.Is(err, scheduling.ErrMovieNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "movie not found"})
		return
	case errors.Is(err, scheduling.ErrTheaterNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "theater not found"})
		return
	case errors.Is(err, scheduling.ErrShowtimeHasBookings):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "showtime has active bookings"})
		return
	case errors.Is(err, scheduling.ErrInvalidTimeRange):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "end time must be after start time"})
		return
	case errors.Is(err, scheduling.ErrInvalidPrice):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "price must be positive"})
		return
	case errors.As(err, &overlapErr):
		conflicts := make([]ConflictInterval, 0, len(overlapErr.Conflicts))
		for _, iv := range overlapErr.Conflicts {
			conflicts = append(conflicts, ConflictInterval{
				ShowtimeID: iv.ShowtimeID,
				StartTime:  iv.Starts.UTC().Format(time.RFC3339),
				EndTime:    iv.Ends.UTC().Format(time.RFC3339),
			})
		}
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:     overlapErr.Error(),
			Conflicts: conflicts,
		})
		return
	// booking service
	case errors.Is(err, booking.ErrShowtimeNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "showtime not found"})
		return
	case errors.Is(err, booking.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "booking not found"})
		return
	case errors.Is(err, booking.ErrNoSeatsRequested):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no seats requested"})
		return
	case errors.As(err, &seatTaken):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error: seatTaken.Error(),
			Seat:  seatTaken.Label,
		})
		return
	case errors.As(err, &seatInvalid):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: seatInvalid.Error(),
			Seat:  seatInvalid.Label,
		})
		return
	case errors.As(err, &tooManySeats):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: tooManySeats.Error()})
		return
	case errors.As(err, &rateLimited):
		secs := int(math.Ceil(rateLimited.RetryAfter.Seconds()))
		if secs < 1 {
			secs = 1
		}
		c.Header("Retry-After", strconv.Itoa(secs))
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
