package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Battle metric names
const (
	MetricNameBattlesTotal  = "battles_total"
	MetricNameBattleRounds  = "battle_rounds"
	MetricNameDamageDealt   = "damage_dealt_total"
	MetricNameUnitsFallen   = "units_fallen_total"
	MetricNameItemHits      = "item_hits_total"
	MetricNameCatalogItems  = "catalog_items"
	MetricNameBattlesActive = "battles_active"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Battle metric help text
const (
	HelpTextBattlesTotal  = "Total number of finished battles by outcome"
	HelpTextBattleRounds  = "Rounds played per finished battle"
	HelpTextDamageDealt   = "Total hit points removed, by attacking side"
	HelpTextUnitsFallen   = "Total units removed from their army, by side"
	HelpTextItemHits      = "Total hits landed, by item"
	HelpTextCatalogItems  = "Number of items in the loaded catalog"
	HelpTextBattlesActive = "Battles currently being resolved"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
	LabelSide    = "side"
	LabelItem    = "item"
)

// OutcomeRoundLimit labels battles stopped by the round limit
const OutcomeRoundLimit = "round_limit"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// BattleRoundBuckets covers quick knockouts up to the default round limit
var BattleRoundBuckets = []float64{1, 2, 3, 5, 8, 13, 21, 34, 55, 100, 250, 1000}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)
