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
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Discord metric names
const (
	MetricNameDiscordCommands = "discord_commands_total"
)

// Business metric names
const (
	MetricNameGamesPlayed     = "casino_games_played_total"
	MetricNamePointsWagered   = "casino_points_wagered_total"
	MetricNameHouseNet        = "casino_house_net_points_total"
	MetricNameDuelTransitions = "casino_duel_transitions_total"
	MetricNameDuelsPending    = "casino_duels_pending"
	MetricNameDailyClaims     = "casino_daily_claims_total"
	MetricNamePointsIssued    = "casino_points_issued_total"
	MetricNameTransfers       = "casino_transfers_total"
	MetricNameItemsBought     = "casino_items_bought_total"
	MetricNameLevelUps        = "casino_level_ups_total"
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
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Discord metric help text
const (
	HelpTextDiscordCommands = "Total number of Discord interactions handled"
)

// Business metric help text
const (
	HelpTextGamesPlayed     = "Total number of solo games played"
	HelpTextPointsWagered   = "Total points staked on solo games"
	HelpTextHouseNet        = "Net points the house kept from solo games (negative when players are ahead)"
	HelpTextDuelTransitions = "Total number of duel state transitions"
	HelpTextDuelsPending    = "Current number of proposed duels awaiting an answer"
	HelpTextDailyClaims     = "Total number of daily bonus claims"
	HelpTextPointsIssued    = "Total points created by daily bonuses and passive activity"
	HelpTextTransfers       = "Total number of point transfers between users"
	HelpTextItemsBought     = "Total number of shop items bought"
	HelpTextLevelUps        = "Total number of account level ups"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelGame   = "game"
	LabelResult = "result"
	LabelState  = "state"
	LabelKind   = "kind"
	LabelItem   = "item"
	LabelSource = "source"
	LabelName   = "name"
)

// Label values
const (
	ResultWin      = "win"
	ResultLoss     = "loss"
	ResultPush     = "push"
	SourceDaily    = "daily"
	SourceMessage  = "message"
	SourceReaction = "reaction"
)

// UnmatchedRoute labels requests no chi route matched
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUndecodable = "Event payload could not be decoded"
	LogMsgMetricsRecorded         = "Metrics recorded for event"
)
