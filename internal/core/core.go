package core

import (
	"context"
	"errors"
	"fmt"
	"todolist/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrTodoNotFound error = errors.New("todo not found")

const bcryptCost = 12

// TodoService implements registration, login and the todo operations. Each method performs
// a single store operation. Todo access is not checked against the owner.
type TodoService struct {
	logs *zap.SugaredLogger
	repo Repository
	cost int
}

// NewTodoService is a constructor function for the TodoService type.
func NewTodoService(logger *zap.SugaredLogger, repo Repository) *TodoService {
	return &TodoService{
		logs: logger,
		repo: repo,
		cost: bcryptCost,
	}
}

// WithHashCost overrides the bcrypt work factor.
func (s *TodoService) WithHashCost(cost int) *TodoService {
	s.cost = cost
	return s
}

// Register hashes the password and stores a new user. It returns the new user's id.
func (s *TodoService) Register(ctx context.Context, msg AuthMessage) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, msg.Username, string(hash))
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	s.logs.Infow("user registered", "userId", user.ID)
	return user.ID, nil
}

// Authenticate checks the provided username and password against the database and returns the user's id.
func (s *TodoService) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := s.repo.GetUserFromDB(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	return user.ID, nil
}

func (s *TodoService) ListTodos(ctx context.Context, userID string) ([]TodoRecord, error) {
	todos, err := s.repo.GetUserTodos(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user todos: %w", err)
	}

	records := make([]TodoRecord, len(todos))
	for i, t := range todos {
		records[i] = toRecord(t)
	}

	return records, nil
}

func (s *TodoService) GetTodo(ctx context.Context, id string) (TodoRecord, error) {
	todo, err := s.repo.GetTodo(ctx, id)
	if err != nil {
		return TodoRecord{}, mapTodoErr("get todo", err)
	}

	return toRecord(todo), nil
}

// CreateTodo stores a pending todo owned by userID. msg.Completed is ignored.
func (s *TodoService) CreateTodo(ctx context.Context, userID string, msg TodoMessage) (TodoRecord, error) {
	todo, err := s.repo.CreateTodo(ctx, userID, repository.TodoFields{
		Title:       msg.Title,
		Description: msg.Description,
		DueDate:     msg.DueDate,
	})
	if err != nil {
		return TodoRecord{}, fmt.Errorf("create todo: %w", err)
	}

	s.logs.Infow("todo created", "todoId", todo.ID, "userId", userID)
	return toRecord(todo), nil
}

func (s *TodoService) UpdateTodo(ctx context.Context, id string, msg TodoMessage) error {
	err := s.repo.UpdateTodo(ctx, id, repository.TodoFields{
		Title:       msg.Title,
		Description: msg.Description,
		DueDate:     msg.DueDate,
		Completed:   msg.Completed,
	})
	if err != nil {
		return mapTodoErr("update todo", err)
	}

	return nil
}

func (s *TodoService) SetCompleted(ctx context.Context, id string, completed bool) error {
	if err := s.repo.SetTodoCompleted(ctx, id, completed); err != nil {
		return mapTodoErr("set todo completed", err)
	}

	return nil
}

// DeleteTodo removes the todo. Deleting an id that does not exist is not an error.
func (s *TodoService) DeleteTodo(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteTodo(ctx, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}

	s.logs.Infow("todo deleted", "todoId", id, "deleted", deleted)
	return nil
}

func mapTodoErr(op string, err error) error {
	if errors.Is(err, repository.ErrTodoNotFound) {
		return ErrTodoNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func toRecord(t repository.Todo) TodoRecord {
	return TodoRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		UserID:      t.UserID,
	}
}
