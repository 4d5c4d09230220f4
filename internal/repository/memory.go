package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Callymags/task-manager-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory implementations of the repository interfaces. They reproduce the
// store semantics the services rely on (invalid-id rejection, no-op replace
// and delete on missing records, unique usernames, name-sorted categories,
// case-insensitive text search with an empty query matching everything) and
// back the test suites, which cannot assume a running MongoDB.

// MemoryUserRepository is an in-memory UserRepository
type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[string]models.User
}

// NewMemoryUserRepository creates an empty in-memory user repository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]models.User)}
}

// Insert creates a new user, enforcing username uniqueness
func (r *MemoryUserRepository) Insert(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return ErrDuplicateUsername
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.Username] = *user
	return nil
}

// FindByUsername finds a user by username
func (r *MemoryUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[username]
	if !exists {
		return nil, ErrNotFound
	}
	return &user, nil
}

// MemoryTaskRepository is an in-memory TaskRepository
type MemoryTaskRepository struct {
	mu    sync.Mutex
	tasks map[string]models.Task
}

// NewMemoryTaskRepository creates an empty in-memory task repository
func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{tasks: make(map[string]models.Task)}
}

// Insert creates a new task and returns its assigned id
func (r *MemoryTaskRepository) Insert(ctx context.Context, task *models.Task) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task.ID = primitive.NewObjectID()
	r.tasks[task.ID.Hex()] = *task
	return task.ID.Hex(), nil
}

// FindByID finds a task by its hex id
func (r *MemoryTaskRepository) FindByID(ctx context.Context, id string) (*models.Task, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	task, exists := r.tasks[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &task, nil
}

// FindAll retrieves every task, unordered
func (r *MemoryTaskRepository) FindAll(ctx context.Context) ([]models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := make([]models.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// FindByCreator retrieves the tasks created by a given username
func (r *MemoryTaskRepository) FindByCreator(ctx context.Context, username string) ([]models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := []models.Task{}
	for _, task := range r.tasks {
		if task.CreatedBy == username {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

// Search matches tasks whose indexed fields contain the query,
// case-insensitively. An empty query matches every task.
func (r *MemoryTaskRepository) Search(ctx context.Context, query string) ([]models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	needle := strings.ToLower(query)
	tasks := []models.Task{}
	for _, task := range r.tasks {
		haystack := strings.ToLower(task.TaskName + " " + task.TaskDescription)
		if strings.Contains(haystack, needle) {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

// Replace overwrites the task with the given id; missing ids are a no-op
func (r *MemoryTaskRepository) Replace(ctx context.Context, id string, task *models.Task) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[id]; !exists {
		return nil
	}
	task.ID = oid
	r.tasks[id] = *task
	return nil
}

// Delete removes the task with the given id; missing ids are a no-op
func (r *MemoryTaskRepository) Delete(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tasks, id)
	return nil
}

// MemoryCategoryRepository is an in-memory CategoryRepository
type MemoryCategoryRepository struct {
	mu         sync.Mutex
	categories map[string]models.Category
}

// NewMemoryCategoryRepository creates an empty in-memory category repository
func NewMemoryCategoryRepository() *MemoryCategoryRepository {
	return &MemoryCategoryRepository{categories: make(map[string]models.Category)}
}

// Insert creates a new category and returns its assigned id
func (r *MemoryCategoryRepository) Insert(ctx context.Context, category *models.Category) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category.ID = primitive.NewObjectID()
	r.categories[category.ID.Hex()] = *category
	return category.ID.Hex(), nil
}

// FindByID finds a category by its hex id
func (r *MemoryCategoryRepository) FindByID(ctx context.Context, id string) (*models.Category, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	category, exists := r.categories[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &category, nil
}

// FindAll retrieves every category sorted by category_name ascending
func (r *MemoryCategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	categories := make([]models.Category, 0, len(r.categories))
	for _, category := range r.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].CategoryName < categories[j].CategoryName
	})
	return categories, nil
}

// Replace overwrites the category with the given id; missing ids are a no-op
func (r *MemoryCategoryRepository) Replace(ctx context.Context, id string, category *models.Category) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.categories[id]; !exists {
		return nil
	}
	category.ID = oid
	r.categories[id] = *category
	return nil
}

// Delete removes the category with the given id; missing ids are a no-op
func (r *MemoryCategoryRepository) Delete(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.categories, id)
	return nil
}
