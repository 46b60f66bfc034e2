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

// Verification metric names
const (
	MetricNameVerificationAttempts = "verification_attempts_total"
	MetricNameRoleMutations        = "role_mutations_total"
	MetricNameStoreWrites          = "store_writes_total"
	MetricNameUpstreamRequests     = "upstream_requests_total"
	MetricNameRenders              = "renders_total"
	MetricNameCommandsReceived     = "discord_commands_received_total"
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

// Verification metric help text
const (
	HelpTextVerificationAttempts = "Verification submissions by outcome"
	HelpTextRoleMutations        = "Discord role grants and revokes by result"
	HelpTextStoreWrites          = "Verification store writes by backend and result"
	HelpTextUpstreamRequests     = "Requests to Mojang, Hypixel and the skin service by result"
	HelpTextRenders              = "Image renders by kind and result"
	HelpTextCommandsReceived     = "Discord commands and interactions received"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelOp      = "op"
	LabelResult  = "result"
	LabelBackend = "backend"
	LabelService = "service"
	LabelKind    = "kind"
	LabelCommand = "command"
)

// ============================================================================
// Label Values
// ============================================================================

const (
	ResultSuccess = "success"
	ResultFailure = "failure"

	OpGrant  = "grant"
	OpRevoke = "revoke"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets covers the liveness endpoints, which should answer in well under a second
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}
