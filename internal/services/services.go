package services

import (
	"errors"
	"fmt"

	"github.com/adanyl0v/go-todo-console/internal/models"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrTaskNotFound = errors.New("task not found")
)

// ValidationError reports caller input that violates a task rule.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports an id that does not match a stored task.
// It matches ErrTaskNotFound with errors.Is.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found (id: %d)", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrTaskNotFound
}

type TaskService interface {
	// CreateTask stores a new pending task with the next sequential ID.
	//
	// It returns a *ValidationError if the title is empty
	// or whitespace-only.
	CreateTask(params CreateTaskParams) (models.Task, error)

	// GetTask returns the task with the given ID. The second
	// return value is false if no such task is stored.
	GetTask(id int64) (models.Task, bool)

	// ListTasks returns a snapshot of the stored tasks matching
	// the filter, in insertion order. An empty filter means
	// models.FilterAll.
	//
	// It returns a *ValidationError if the filter is unknown.
	ListTasks(filter string) ([]models.Task, error)

	// UpdateTask applies the non-nil fields of params to the task.
	//
	// Marking a pending task completed stamps CompletedAt; marking
	// any task pending clears it.
	//
	// It returns a *NotFoundError if the task doesn't exist or a
	// *ValidationError if the new title is empty.
	UpdateTask(params UpdateTaskParams) (models.Task, error)

	// DeleteTask removes the task and reports whether it existed.
	// IDs of deleted tasks are never reassigned.
	DeleteTask(id int64) bool
}

type CreateTaskParams struct {
	Title       string
	Description string
}

type UpdateTaskParams struct {
	ID          int64
	Title       *string
	Description *string
	Completed   *bool
}

func newEmptyTitleError() *ValidationError {
	return &ValidationError{
		Field:   "title",
		Message: "Task title cannot be empty",
	}
}

func newInvalidFilterError() *ValidationError {
	return &ValidationError{
		Field:   "filter",
		Message: "Invalid filter. Use 'all', 'pending', or 'completed'.",
	}
}
