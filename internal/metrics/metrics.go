package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SessionsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "swipe_sessions_created_total",
			Help: "Total number of swipe sessions created",
		},
	)

	SwipesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swipes_total",
			Help: "Total number of swipes",
		},
		[]string{"direction"},
	)

	DeckRebuildsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "deck_rebuilds_total",
			Help: "Total number of deck rebuilds",
		},
	)

	DeckExhaustedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "deck_exhausted_total",
			Help: "Total number of sessions hitting an empty deck",
		},
	)

	DeckScoreHistogram = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "deck_card_score",
			Help:    "Distribution of recommendation scores in built decks",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)
)
