package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Discord Metrics
var (
	DiscordCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDiscordCommands,
			Help: HelpTextDiscordCommands,
		},
		[]string{LabelName},
	)
)

// Business Metrics
var (
	GamesPlayed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGamesPlayed,
			Help: HelpTextGamesPlayed,
		},
		[]string{LabelGame, LabelResult},
	)

	PointsWagered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePointsWagered,
			Help: HelpTextPointsWagered,
		},
		[]string{LabelGame},
	)

	// HouseNet is a gauge because the house can lose
	HouseNet = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameHouseNet,
			Help: HelpTextHouseNet,
		},
		[]string{LabelGame},
	)

	DuelTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDuelTransitions,
			Help: HelpTextDuelTransitions,
		},
		[]string{LabelState, LabelKind},
	)

	DuelsPending = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameDuelsPending,
			Help: HelpTextDuelsPending,
		},
	)

	DailyClaims = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyClaims,
			Help: HelpTextDailyClaims,
		},
	)

	PointsIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePointsIssued,
			Help: HelpTextPointsIssued,
		},
		[]string{LabelSource},
	)

	Transfers = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTransfers,
			Help: HelpTextTransfers,
		},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)
)
