package service

import (
	postgres "github.com/ostrenko/cinebook/internal/repository/postgres"
	redis "github.com/ostrenko/cinebook/internal/repository/redis"
	"github.com/ostrenko/cinebook/internal/service/booking"
	"github.com/ostrenko/cinebook/internal/service/movies"
	"github.com/ostrenko/cinebook/internal/service/scheduling"
	"github.com/ostrenko/cinebook/internal/service/theaters"
)

type Services struct {
	Movies     *movies.Service
	Theaters   *theaters.Service
	Scheduling *scheduling.Service
	Booking    *booking.Service
}

type Config struct {
	Booking booking.Config
}

func NewServices(
	store *postgres.Store,
	pubsub *redis.ShowtimesPubSub,
	limiter *redis.SlidingWindowLimiter,
	cfg Config,
) *Services {
	return &Services{
		Movies:     movies.New(store),
		Theaters:   theaters.New(store),
		Scheduling: scheduling.New(store, pubsub),
		Booking:    booking.New(store, pubsub, limiter, cfg.Booking),
	}
}
