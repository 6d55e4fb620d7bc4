package handler

import (
	"net/http"
	"strings"

	"todolist/internal/http/handler/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter wires the middleware chain and every route. Routes under /todo sit behind RequireLogin.
func NewRouter(logger *zap.SugaredLogger, h *TodoHandler, sessions middleware.SessionStore) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRequestIDMiddleware().RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.NewLoggingMiddleware(logger).Logging)
	r.Use(chimw.Recoverer)
	r.Use(middleware.MethodOverride)
	r.Use(middleware.NewSessionMiddleware(logger, sessions).Session)

	handle(r, Root, h.HandleRoot)
	handle(r, RegisterForm, h.HandleRegisterForm)
	handle(r, Register, h.HandleRegister)
	handle(r, LoginForm, h.HandleLoginForm)
	handle(r, Login, h.HandleLogin)
	handle(r, Logout, h.HandleLogout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewAuthMiddleware(logger).RequireLogin)

		handle(r, ListTodos, h.HandleListTodos)
		handle(r, NewTodoForm, h.HandleNewTodoForm)
		handle(r, CreateTodo, h.HandleCreateTodo)
		handle(r, ShowTodo, h.HandleShowTodo)
		handle(r, EditTodoForm, h.HandleEditTodoForm)
		handle(r, UpdateTodo, h.HandleUpdateTodo)
		handle(r, CompleteTodo, h.HandleCompleteTodo)
		handle(r, IncompleteTodo, h.HandleIncompleteTodo)
		handle(r, DeleteTodo, h.HandleDeleteTodo)
	})

	return r
}

// handle registers fn for a "METHOD /path" route.
func handle(r chi.Router, route string, fn http.HandlerFunc) {
	method, pattern, _ := strings.Cut(route, " ")
	r.Method(method, pattern, fn)
}
