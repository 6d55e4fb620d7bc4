package handler

import (
	"context"
	"io"
	"net/http"

	"todolist/internal/core"
	"todolist/internal/http/payload"
	"todolist/internal/session"
	"todolist/internal/view"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TodoService . TodoService
type TodoService interface {
	Register(ctx context.Context, msg core.AuthMessage) (string, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	ListTodos(ctx context.Context, userID string) ([]core.TodoRecord, error)
	GetTodo(ctx context.Context, id string) (core.TodoRecord, error)
	CreateTodo(ctx context.Context, userID string, msg core.TodoMessage) (core.TodoRecord, error)
	UpdateTodo(ctx context.Context, id string, msg core.TodoMessage) error
	SetCompleted(ctx context.Context, id string, completed bool) error
	DeleteTodo(ctx context.Context, id string) error
}

//counterfeiter:generate -o fake -fake-name SessionStore . SessionStore
type SessionStore interface {
	Save(ctx context.Context, w http.ResponseWriter, sess *session.Session) error
	Destroy(ctx context.Context, w http.ResponseWriter, sess *session.Session) error
}

//counterfeiter:generate -o fake -fake-name Renderer . Renderer
type Renderer interface {
	Render(w io.Writer, name string, page view.Page) error
}

type RequestValidator interface {
	DecodeAndValidateForm(r *http.Request, object payload.FormBinder) error
}
