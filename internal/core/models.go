package core

import "time"

type TodoRecord struct {
	ID          string
	Title       string
	Description string
	DueDate     time.Time
	Completed   bool
	UserID      string
}

type AuthMessage struct {
	Username string
	Password string
}

// TodoMessage carries the user-editable fields of a todo.
type TodoMessage struct {
	Title       string
	Description string
	DueDate     time.Time
	Completed   bool
}
