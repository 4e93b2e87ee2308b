package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinebook_bookings_total",
			Help: "Booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	bookingSeats = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinebook_booking_seats",
			Help:    "Seats requested per booking",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		},
	)

	schedulingConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinebook_scheduling_conflicts_total",
			Help: "Showtime create/update attempts rejected for overlap",
		},
	)

	showtimesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinebook_showtimes_created_total",
			Help: "Showtimes created",
		},
	)
)

func RecordBooking(outcome string, seats int) {
	bookingsTotal.WithLabelValues(outcome).Inc()
	if seats > 0 {
		bookingSeats.Observe(float64(seats))
	}
}

func RecordSchedulingConflict() {
	schedulingConflicts.Inc()
}

func RecordShowtimeCreated() {
	showtimesCreated.Inc()
}
