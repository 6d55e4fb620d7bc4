package middleware

import (
	"context"
	"net/http"
	"todolist/internal/session"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SessionStore . SessionStore
type SessionStore interface {
	Load(ctx context.Context, r *http.Request) (*session.Session, error)
	NeedsTouch(sess *session.Session) bool
	Save(ctx context.Context, w http.ResponseWriter, sess *session.Session) error
}
