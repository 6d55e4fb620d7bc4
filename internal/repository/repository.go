package repository

import (
	"context"
	"errors"
	"fmt"
	"todolist/internal/db"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound error = errors.New("user not found")
	ErrTodoNotFound error = errors.New("todo not found")
)

type TodoRepository struct {
	db Storage
}

func NewTodoRepository(db Storage) *TodoRepository {
	return &TodoRepository{
		db: db,
	}
}

func (r *TodoRepository) Migrate() error {
	err := r.db.MigrateTable(&User{}, &Todo{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// CreateUser stores a new user and returns it with its generated id.
func (r *TodoRepository) CreateUser(ctx context.Context, username, passwordHash string) (User, error) {
	user := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
	}

	if err := r.db.Create(ctx, &user); err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *TodoRepository) GetUserFromDB(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *TodoRepository) CreateTodo(ctx context.Context, userID string, fields TodoFields) (Todo, error) {
	todo := Todo{
		ID:          uuid.NewString(),
		Title:       fields.Title,
		Description: fields.Description,
		DueDate:     fields.DueDate,
		Completed:   false,
		UserID:      userID,
	}

	if err := r.db.Create(ctx, &todo); err != nil {
		return Todo{}, fmt.Errorf("create todo: %w", err)
	}

	return todo, nil
}

// GetUserTodos returns the user's todos oldest first.
func (r *TodoRepository) GetUserTodos(ctx context.Context, userID string) ([]Todo, error) {
	todos := []Todo{}

	err := r.db.GetAllBy(ctx, "user_id", userID, "created_at, id", &todos)
	if err != nil {
		return nil, fmt.Errorf("get todos by user: %w", err)
	}

	return todos, nil
}

func (r *TodoRepository) GetTodo(ctx context.Context, id string) (Todo, error) {
	var todo Todo

	err := r.db.GetOneBy(ctx, "id", id, &todo)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Todo{}, ErrTodoNotFound
		}
		return Todo{}, fmt.Errorf("get todo by id: %w", err)
	}

	return todo, nil
}

// UpdateTodo overwrites every editable field of the todo. The owner is left as is.
func (r *TodoRepository) UpdateTodo(ctx context.Context, id string, fields TodoFields) error {
	return r.updateTodo(ctx, id, map[string]any{
		"title":       fields.Title,
		"description": fields.Description,
		"due_date":    fields.DueDate,
		"completed":   fields.Completed,
	})
}

func (r *TodoRepository) SetTodoCompleted(ctx context.Context, id string, completed bool) error {
	return r.updateTodo(ctx, id, map[string]any{
		"completed": completed,
	})
}

// DeleteTodo reports whether a row was removed.
func (r *TodoRepository) DeleteTodo(ctx context.Context, id string) (bool, error) {
	n, err := r.db.DeleteBy(ctx, &Todo{}, "id", id)
	if err != nil {
		return false, fmt.Errorf("delete todo: %w", err)
	}

	return n > 0, nil
}

func (r *TodoRepository) updateTodo(ctx context.Context, id string, fields map[string]any) error {
	err := r.db.UpdateBy(ctx, &Todo{}, "id", id, fields)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrTodoNotFound
		}
		return fmt.Errorf("update todo: %w", err)
	}

	return nil
}
