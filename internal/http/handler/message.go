package handler

import "net/http"

const (
	oopsErr         = "Oops! Something went wrong. Please try again later."
	invalidLogin    = "Invalid Login,Please Try Again"
	todoNotFound    = "Todo not found"
	todoSaved       = "Todo Saved"
	todoDeleted     = "Todo deleted"
	createTodoErr   = "Error creating a new todo"
	deleteTodoErr   = "Error Deleting To-Do: "
	registrationErr = "Could not register user"
)

// respondText writes a plain-text body. Errors take this path; successful pages are rendered.
func respondText(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(msg))
}
