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
)

// Battle Metrics
var (
	BattlesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBattlesTotal,
			Help: HelpTextBattlesTotal,
		},
		[]string{LabelOutcome},
	)

	BattleRounds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameBattleRounds,
			Help:    HelpTextBattleRounds,
			Buckets: BattleRoundBuckets,
		},
	)

	DamageDealt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDamageDealt,
			Help: HelpTextDamageDealt,
		},
		[]string{LabelSide},
	)

	UnitsFallen = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUnitsFallen,
			Help: HelpTextUnitsFallen,
		},
		[]string{LabelSide},
	)

	// ItemHits is labelled by catalog item; the catalog is fixed at startup
	ItemHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemHits,
			Help: HelpTextItemHits,
		},
		[]string{LabelItem},
	)

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogItems,
			Help: HelpTextCatalogItems,
		},
	)

	BattlesActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameBattlesActive,
			Help: HelpTextBattlesActive,
		},
	)
)
