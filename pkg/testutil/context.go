package testutil

import (
	"net/http"
	"time"

	id "certflow/pkg/domain"
	"certflow/pkg/requestcontext"
)

// WithUserID adds a user ID to the request context, simulating what the auth
// middleware does for authenticated requests. Invalid IDs are ignored.
func WithUserID(req *http.Request, userID string) *http.Request {
	parsed, err := id.ParseUserID(userID)
	if err != nil {
		return req
	}
	return req.WithContext(requestcontext.WithUserID(req.Context(), parsed))
}

// WithAuth adds both user ID and session ID to the request context.
// Invalid IDs are silently ignored.
func WithAuth(req *http.Request, userID, sessionID string) *http.Request {
	ctx := req.Context()
	if parsed, err := id.ParseUserID(userID); err == nil {
		ctx = requestcontext.WithUserID(ctx, parsed)
	}
	if parsed, err := id.ParseSessionID(sessionID); err == nil {
		ctx = requestcontext.WithSessionID(ctx, parsed)
	}
	return req.WithContext(ctx)
}

// WithRequestTime pins the request evaluation time, so date-window rules are
// deterministic in handler tests.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}
