package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token on
// authorized requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName is the response header carrying the per-response
// correlation id.
const RequestIDHeaderName = "X-Request-ID"
