package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/herodex/herodex/internal/render"
	"github.com/herodex/herodex/internal/service"
)

type contextKey string

// subjectKey is the context key for the authenticated subject.
const subjectKey contextKey = "auth_subject"

// Authenticate returns an HTTP middleware that requires a valid bearer token
// in the Authorization header. The "Bearer " prefix is stripped when present;
// a bare token is also accepted. On failure the request is rejected with 401
// before the wrapped handler runs, with a message distinguishing missing,
// expired, and invalid tokens. On success the token's subject is attached to
// the request context.
func Authenticate(authSvc *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				render.Message(w, r, http.StatusUnauthorized, "Token is missing!")
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")

			subject, err := authSvc.VerifyToken(token)
			if err != nil {
				msg := "Token is invalid!"
				if errors.Is(err, service.ErrTokenExpired) {
					msg = "Token has expired!"
				}
				render.Message(w, r, http.StatusUnauthorized, msg)
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSubject returns the authenticated subject from the context, or an empty
// string for an unauthenticated request.
func GetSubject(ctx context.Context) string {
	if s, ok := ctx.Value(subjectKey).(string); ok {
		return s
	}
	return ""
}
