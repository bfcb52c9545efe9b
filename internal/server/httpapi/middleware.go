package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/mkravets/bookshelf/internal/common"
	"github.com/mkravets/bookshelf/internal/server/models"
)

type ctxKey string

const userKey ctxKey = "user"

// UserFromContext returns the authorized user stored by the access-token
// middleware, or nil outside an authorized request.
func UserFromContext(ctx context.Context) *models.User {
	u, _ := ctx.Value(userKey).(*models.User)
	return u
}

// requestIDMiddleware assigns every response a fresh correlation id. The id
// is deliberately not derived from any inbound header.
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.ReplaceAll(uuid.NewString(), "-", "")
		w.Header().Set(common.RequestIDHeaderName, requestID)
		s.logger.Debug(r.Context(), "request", "request_id", requestID, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// accessTokenMiddleware gates a route group behind bearer-token
// authorization. Every credential failure (missing header, malformed scheme,
// invalid/expired token, vanished subject) produces the same 401 so the
// response leaks nothing about which check failed. Infrastructure errors are
// not credential failures and surface as 500.
func (s *Server) accessTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeaderName)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			errorJSON(w, http.StatusUnauthorized, "invalid or missing token")
			return
		}

		user, err := s.users.Authorize(r.Context(), token)
		if err != nil {
			if errors.Is(err, common.ErrInvalidToken) || errors.Is(err, common.ErrUserNotFound) {
				errorJSON(w, http.StatusUnauthorized, "invalid or missing token")
				return
			}
			s.respondError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
