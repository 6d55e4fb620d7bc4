package handler

import (
	"errors"
	"net/http"

	"todolist/internal/core"
	"todolist/internal/http/handler/middleware"
	"todolist/internal/http/payload"
	"todolist/internal/session"
	"todolist/internal/view"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var (
	Root           = "GET /"
	RegisterForm   = "GET /register"
	Register       = "POST /register"
	LoginForm      = "GET /login"
	Login          = "POST /login"
	Logout         = "POST /logout"
	ListTodos      = "GET /todo"
	NewTodoForm    = "GET /todo/new"
	CreateTodo     = "POST /todo"
	ShowTodo       = "GET /todo/{id}"
	EditTodoForm   = "GET /todo/{id}/edit"
	UpdateTodo     = "POST /todo/{id}/edit"
	CompleteTodo   = "POST /todo/{id}/complete"
	IncompleteTodo = "POST /todo/{id}/incomplete"
	DeleteTodo     = "DELETE /todo/{id}"
)

const (
	todoListPath = "/todo"
	loginPath    = "/login"
)

type TodoHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	todos            TodoService
	sessions         SessionStore
	renderer         Renderer
}

func NewTodoHandler(
	logger *zap.SugaredLogger,
	requestValidator RequestValidator,
	todoService TodoService,
	sessions SessionStore,
	renderer Renderer,
) *TodoHandler {
	return &TodoHandler{
		logs:             logger,
		requestValidator: requestValidator,
		todos:            todoService,
		sessions:         sessions,
		renderer:         renderer,
	}
}

func (h *TodoHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, todoListPath, http.StatusFound)
}

func (h *TodoHandler) HandleRegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.Register, view.Page{Title: "Register"}, RegisterForm)
}

func (h *TodoHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	var form payload.AuthForm
	if err := h.requestValidator.DecodeAndValidateForm(r, &form); err != nil {
		respondText(w, "Invalid registration: "+err.Error(), http.StatusBadRequest)
		h.logs.Errorw("failed to decode and validate registration form",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	userID, err := h.todos.Register(r.Context(), form.ToAuthMessage())
	if err != nil {
		respondText(w, registrationErr, http.StatusInternalServerError)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.establishSession(w, r, userID, Register)
}

func (h *TodoHandler) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.Login, view.Page{Title: "Log in"}, LoginForm)
}

func (h *TodoHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	var form payload.AuthForm
	if err := h.requestValidator.DecodeAndValidateForm(r, &form); err != nil {
		respondText(w, invalidLogin, http.StatusBadRequest)
		h.logs.Errorw("failed to decode and validate login form",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	userID, err := h.todos.Authenticate(r.Context(), form.ToAuthMessage())
	if err != nil {
		// unknown user and wrong password get the same answer
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			respondText(w, invalidLogin, http.StatusBadRequest)
			h.logs.Infow("login rejected",
				"reason", err,
				"handler", Login,
				"request_id", requestId)
			return
		}

		respondText(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.establishSession(w, r, userID, Login)
}

func (h *TodoHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())

	if sess, ok := session.FromContext(r.Context()); ok {
		if err := h.sessions.Destroy(r.Context(), w, sess); err != nil {
			h.logs.Errorw("failed to destroy session",
				"error", err,
				"handler", Logout,
				"request_id", requestId)
		}
	}

	http.Redirect(w, r, loginPath, http.StatusFound)
}

func (h *TodoHandler) HandleListTodos(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())
	userID := session.UserIDFromContext(r.Context())

	todos, err := h.todos.ListTodos(r.Context(), userID)
	if err != nil {
		respondText(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to list todos",
			"error", err,
			"handler", ListTodos,
			"request_id", requestId)
		return
	}

	h.render(w, r, view.Todos, view.Page{Title: "My To-Dos", Todos: todos}, ListTodos)
}

func (h *TodoHandler) HandleNewTodoForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.NewTodo, view.Page{Title: "New To-Do"}, NewTodoForm)
}

func (h *TodoHandler) HandleCreateTodo(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())
	userID := session.UserIDFromContext(r.Context())

	var form payload.TodoForm
	if err := h.requestValidator.DecodeAndValidateForm(r, &form); err != nil {
		respondText(w, "Invalid todo: "+err.Error(), http.StatusBadRequest)
		h.logs.Errorw("failed to decode and validate todo form",
			"error", err,
			"handler", CreateTodo,
			"request_id", requestId)
		return
	}

	todo, err := h.todos.CreateTodo(r.Context(), userID, form.ToMessage())
	if err != nil {
		respondText(w, createTodoErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to create todo",
			"error", err,
			"handler", CreateTodo,
			"request_id", requestId)
		return
	}

	h.logs.Infow("todo saved",
		"todo_id", todo.ID,
		"handler", CreateTodo,
		"request_id", requestId)

	h.redirectWithFlash(w, r, todoSaved, CreateTodo)
}

func (h *TodoHandler) HandleShowTodo(w http.ResponseWriter, r *http.Request) {
	todo, ok := h.findTodo(w, r, ShowTodo)
	if !ok {
		return
	}

	h.render(w, r, view.Show, view.Page{Title: todo.Title, Todo: todo}, ShowTodo)
}

func (h *TodoHandler) HandleEditTodoForm(w http.ResponseWriter, r *http.Request) {
	todo, ok := h.findTodo(w, r, EditTodoForm)
	if !ok {
		return
	}

	h.render(w, r, view.Edit, view.Page{Title: "Edit " + todo.Title, Todo: todo}, EditTodoForm)
}

func (h *TodoHandler) HandleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())
	id := chi.URLParam(r, "id")

	var form payload.TodoForm
	if err := h.requestValidator.DecodeAndValidateForm(r, &form); err != nil {
		respondText(w, "Invalid todo: "+err.Error(), http.StatusBadRequest)
		h.logs.Errorw("failed to decode and validate todo form",
			"error", err,
			"handler", UpdateTodo,
			"request_id", requestId)
		return
	}

	err := h.todos.UpdateTodo(r.Context(), id, form.ToMessage())
	if h.todoError(w, err, UpdateTodo, requestId) {
		return
	}

	http.Redirect(w, r, todoListPath, http.StatusFound)
}

func (h *TodoHandler) HandleCompleteTodo(w http.ResponseWriter, r *http.Request) {
	h.setCompleted(w, r, true, CompleteTodo)
}

func (h *TodoHandler) HandleIncompleteTodo(w http.ResponseWriter, r *http.Request) {
	h.setCompleted(w, r, false, IncompleteTodo)
}

func (h *TodoHandler) HandleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.GetRequestID(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.todos.DeleteTodo(r.Context(), id); err != nil {
		respondText(w, deleteTodoErr+err.Error(), http.StatusInternalServerError)
		h.logs.Errorw("failed to delete todo",
			"error", err,
			"todo_id", id,
			"handler", DeleteTodo,
			"request_id", requestId)
		return
	}

	h.redirectWithFlash(w, r, todoDeleted, DeleteTodo)
}

func (h *TodoHandler) setCompleted(w http.ResponseWriter, r *http.Request, completed bool, handlerName string) {
	requestId := middleware.GetRequestID(r.Context())
	id := chi.URLParam(r, "id")

	err := h.todos.SetCompleted(r.Context(), id, completed)
	if h.todoError(w, err, handlerName, requestId) {
		return
	}

	http.Redirect(w, r, todoListPath, http.StatusFound)
}

func (h *TodoHandler) findTodo(w http.ResponseWriter, r *http.Request, handlerName string) (core.TodoRecord, bool) {
	requestId := middleware.GetRequestID(r.Context())
	id := chi.URLParam(r, "id")

	h.logs.Infow("todo requested",
		"todo_id", id,
		"handler", handlerName,
		"request_id", requestId)

	todo, err := h.todos.GetTodo(r.Context(), id)
	if h.todoError(w, err, handlerName, requestId) {
		return core.TodoRecord{}, false
	}

	return todo, true
}

// todoError maps a service error to a response and reports whether one was written.
func (h *TodoHandler) todoError(w http.ResponseWriter, err error, handlerName, requestId string) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, core.ErrTodoNotFound) {
		respondText(w, todoNotFound, http.StatusNotFound)
		return true
	}

	respondText(w, oopsErr, http.StatusInternalServerError)
	h.logs.Errorw("todo operation failed",
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
	return true
}

func (h *TodoHandler) establishSession(w http.ResponseWriter, r *http.Request, userID, handlerName string) {
	requestId := middleware.GetRequestID(r.Context())

	sess, ok := session.FromContext(r.Context())
	if !ok {
		respondText(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("no session attached to request", "handler", handlerName, "request_id", requestId)
		return
	}

	sess.SetUserID(userID)
	if err := h.sessions.Save(r.Context(), w, sess); err != nil {
		respondText(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to save session",
			"error", err,
			"handler", handlerName,
			"request_id", requestId)
		return
	}

	http.Redirect(w, r, todoListPath, http.StatusFound)
}

// redirectWithFlash queues msg for the next rendered page and redirects to the list.
// A session that cannot be saved loses the message but the redirect still happens.
func (h *TodoHandler) redirectWithFlash(w http.ResponseWriter, r *http.Request, msg, handlerName string) {
	if sess, ok := session.FromContext(r.Context()); ok {
		sess.AddFlash(msg)
		if err := h.sessions.Save(r.Context(), w, sess); err != nil {
			h.logs.Errorw("failed to save flash message",
				"error", err,
				"handler", handlerName,
				"request_id", middleware.GetRequestID(r.Context()))
		}
	}

	http.Redirect(w, r, todoListPath, http.StatusFound)
}

func (h *TodoHandler) render(w http.ResponseWriter, r *http.Request, name string, page view.Page, handlerName string) {
	requestId := middleware.GetRequestID(r.Context())

	if sess, ok := session.FromContext(r.Context()); ok {
		page.LoggedIn = sess.UserID() != ""
		page.Messages = sess.Flashes()
		if sess.Modified() {
			if err := h.sessions.Save(r.Context(), w, sess); err != nil {
				h.logs.Errorw("failed to save session after reading flash messages",
					"error", err,
					"handler", handlerName,
					"request_id", requestId)
			}
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, name, page); err != nil {
		respondText(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to render page",
			"error", err,
			"page", name,
			"handler", handlerName,
			"request_id", requestId)
	}
}
