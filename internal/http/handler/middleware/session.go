package middleware

import (
	"net/http"
	"todolist/internal/session"

	"go.uber.org/zap"
)

type SessionMiddleware struct {
	logs  *zap.SugaredLogger
	store SessionStore
}

func NewSessionMiddleware(logger *zap.SugaredLogger, store SessionStore) *SessionMiddleware {
	return &SessionMiddleware{
		logs:  logger,
		store: store,
	}
}

// Session attaches the request's session to its context. A store failure degrades to an
// empty session rather than failing the request.
func (m *SessionMiddleware) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := GetRequestID(r.Context())

		sess, err := m.store.Load(r.Context(), r)
		if err != nil {
			m.logs.Errorw("failed to load session",
				"error", err,
				"request_id", requestID)
		}

		if m.store.NeedsTouch(sess) {
			if err := m.store.Save(r.Context(), w, sess); err != nil {
				m.logs.Errorw("failed to touch session",
					"error", err,
					"request_id", requestID)
			}
		}

		next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), sess)))
	})
}
