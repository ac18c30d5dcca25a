package common

// Durable storage keys of the mock session.
const (
	AuthTokenKey = "authToken"
	UserDataKey  = "userData"
)

// RequestIDHeaderName is the HTTP header carrying the per-request id on
// outbound gateway calls.
const RequestIDHeaderName = "X-Request-ID"
