package middleware

import (
	"net/http"
	"todolist/internal/session"

	"go.uber.org/zap"
)

const notLoggedIn = "Not logged in"

type AuthMiddleware struct {
	logs *zap.SugaredLogger
}

func NewAuthMiddleware(logger *zap.SugaredLogger) *AuthMiddleware {
	return &AuthMiddleware{
		logs: logger,
	}
}

// RequireLogin lets the request through only when its session carries a user id. Otherwise it
// answers with a plain-text denial and the default status.
func (m *AuthMiddleware) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if session.UserIDFromContext(r.Context()) == "" {
			m.logs.Infow("unauthenticated request rejected",
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", GetRequestID(r.Context()))

			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte(notLoggedIn))
			return
		}

		next.ServeHTTP(w, r)
	})
}
