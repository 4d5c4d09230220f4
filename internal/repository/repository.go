package repository

import (
	"context"
	"errors"

	"github.com/Callymags/task-manager-api/internal/models"
)

var (
	// ErrNotFound is returned when a read targets a record that does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrInvalidID is returned when a record identifier is not a valid ObjectID hex string.
	ErrInvalidID = errors.New("repository: malformed record identifier")
	// ErrDuplicateUsername is returned when an insert violates the unique username index.
	ErrDuplicateUsername = errors.New("repository: username already exists")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Insert creates a new user. Returns ErrDuplicateUsername when the
	// username is already taken.
	Insert(ctx context.Context, user *models.User) error

	// FindByUsername finds a user by exact (lowercased) username
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// TaskRepository defines the interface for task data access.
//
// Replace performs a full-document replace of the matched record, never a
// partial patch. Replace and Delete are silent no-ops when no record matches.
type TaskRepository interface {
	// Insert creates a new task and returns its store-assigned id
	Insert(ctx context.Context, task *models.Task) (string, error)

	// FindByID finds a task by its hex id
	FindByID(ctx context.Context, id string) (*models.Task, error)

	// FindAll retrieves every task, unordered
	FindAll(ctx context.Context) ([]models.Task, error)

	// FindByCreator retrieves the tasks created by a given username
	FindByCreator(ctx context.Context, username string) ([]models.Task, error)

	// Search runs a text search over the indexed task fields
	Search(ctx context.Context, query string) ([]models.Task, error)

	// Replace overwrites the task with the given id
	Replace(ctx context.Context, id string, task *models.Task) error

	// Delete removes the task with the given id
	Delete(ctx context.Context, id string) error
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	// Insert creates a new category and returns its store-assigned id
	Insert(ctx context.Context, category *models.Category) (string, error)

	// FindByID finds a category by its hex id
	FindByID(ctx context.Context, id string) (*models.Category, error)

	// FindAll retrieves every category sorted by category_name ascending
	FindAll(ctx context.Context) ([]models.Category, error)

	// Replace overwrites the category with the given id
	Replace(ctx context.Context, id string, category *models.Category) error

	// Delete removes the category with the given id
	Delete(ctx context.Context, id string) error
}
