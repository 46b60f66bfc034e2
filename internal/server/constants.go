package server

import "time"

// Liveness body expected by uptime monitors
const LivenessBody = "Hello world!"

// Timeouts
const (
	ReadHeaderTimeout = 5 * time.Second
	ReadinessTimeout  = 2 * time.Second
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgReadinessFailed  = "Readiness check failed"
)

// HTTP header names
const (
	HeaderContentType     = "Content-Type"
	HeaderContentTypeOpts = "X-Content-Type-Options"
	HeaderFrameOptions    = "X-Frame-Options"
	HeaderReferrerPolicy  = "Referrer-Policy"
	HeaderRequestID       = "X-Request-ID"
	ContentTypeJSON       = "application/json"
	ContentTypeText       = "text/plain; charset=utf-8"
)

// Security header values
const (
	HeaderValueNoSniff            = "nosniff"
	HeaderValueDeny               = "DENY"
	HeaderValueReferrerNoReferrer = "no-referrer"
)

// Paths skipped by request logging
var quietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}
