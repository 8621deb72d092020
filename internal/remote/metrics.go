package remote

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	roundTripsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "movie_catalog_remote_round_trips_total",
		Help: "Round trips to the remote collection endpoint by operation and outcome",
	}, []string{
		"op",     // list|get|create|update|delete
		"result", // success|failure
		"status", // HTTP status, or 0 when none was received
	})

	roundTripDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "movie_catalog_remote_round_trip_duration_seconds",
		Help:    "Duration of round trips to the remote collection endpoint",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})
)

func observeRoundTrip(op Operation, status int, err error, start time.Time) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	roundTripsTotal.WithLabelValues(string(op), result, strconv.Itoa(status)).Inc()
	roundTripDuration.WithLabelValues(string(op)).Observe(time.Since(start).Seconds())
}
