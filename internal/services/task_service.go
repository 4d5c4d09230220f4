package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Callymags/task-manager-api/internal/models"
	"github.com/Callymags/task-manager-api/internal/repository"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTaskInvalidID = errors.New("malformed task identifier")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// TaskInput holds the user-editable fields of a task.
type TaskInput struct {
	CategoryName    string
	TaskName        string
	TaskDescription string
	IsUrgent        bool
	DueDate         string
}

// List returns every task, unordered.
func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Search runs a text search over the indexed task fields. The query is handed
// to the store unmodified; an empty query gets store-defined behavior.
func (s *TaskService) Search(ctx context.Context, query string) ([]models.Task, error) {
	tasks, err := s.taskRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search tasks: %w", err)
	}
	return tasks, nil
}

// Create persists a new task with created_by set to the acting user and
// returns its id.
func (s *TaskService) Create(ctx context.Context, input TaskInput, actingUser string) (string, error) {
	task := &models.Task{
		CategoryName:    input.CategoryName,
		TaskName:        input.TaskName,
		TaskDescription: input.TaskDescription,
		IsUrgent:        input.IsUrgent,
		DueDate:         input.DueDate,
		CreatedBy:       actingUser,
	}

	id, err := s.taskRepo.Insert(ctx, task)
	if err != nil {
		return "", fmt.Errorf("failed to create task: %w", err)
	}
	return id, nil
}

// Get returns the task with the given id.
func (s *TaskService) Get(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapTaskRepoError(err)
	}
	return task, nil
}

// Update replaces the user-editable fields of a task. The original creator is
// preserved: the record is re-read and created_by carried over, so editing a
// task never reassigns it to the editor.
func (s *TaskService) Update(ctx context.Context, id string, input TaskInput) (*models.Task, error) {
	existing, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapTaskRepoError(err)
	}

	task := &models.Task{
		CategoryName:    input.CategoryName,
		TaskName:        input.TaskName,
		TaskDescription: input.TaskDescription,
		IsUrgent:        input.IsUrgent,
		DueDate:         input.DueDate,
		CreatedBy:       existing.CreatedBy,
	}

	if err := s.taskRepo.Replace(ctx, id, task); err != nil {
		return nil, mapTaskRepoError(err)
	}
	return task, nil
}

// Delete removes a task unconditionally. Any authenticated user may delete
// any task; there is no ownership check in this system. Deleting a missing
// task is a no-op.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return mapTaskRepoError(err)
	}
	return nil
}

func mapTaskRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrTaskNotFound
	case errors.Is(err, repository.ErrInvalidID):
		return ErrTaskInvalidID
	default:
		return fmt.Errorf("task store error: %w", err)
	}
}
