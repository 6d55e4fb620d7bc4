package core

import (
	"context"
	"todolist/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (repository.User, error)
	GetUserFromDB(ctx context.Context, username string) (repository.User, error)
	CreateTodo(ctx context.Context, userID string, fields repository.TodoFields) (repository.Todo, error)
	GetUserTodos(ctx context.Context, userID string) ([]repository.Todo, error)
	GetTodo(ctx context.Context, id string) (repository.Todo, error)
	UpdateTodo(ctx context.Context, id string, fields repository.TodoFields) error
	SetTodoCompleted(ctx context.Context, id string, completed bool) error
	DeleteTodo(ctx context.Context, id string) (bool, error)
}
