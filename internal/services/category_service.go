package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Callymags/task-manager-api/internal/models"
	"github.com/Callymags/task-manager-api/internal/repository"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryInvalidID = errors.New("malformed category identifier")
)

// CategoryService handles category business logic. Category names are not
// validated: empty and duplicate names are permitted, matching the store
// contents this application inherits.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
	}
}

// List returns every category sorted by name ascending.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Create persists a new category and returns its id.
func (s *CategoryService) Create(ctx context.Context, name string) (string, error) {
	category := &models.Category{CategoryName: name}

	id, err := s.categoryRepo.Insert(ctx, category)
	if err != nil {
		return "", fmt.Errorf("failed to create category: %w", err)
	}
	return id, nil
}

// Get returns the category with the given id.
func (s *CategoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCategoryRepoError(err)
	}
	return category, nil
}

// Update replaces the category's name. Tasks referencing the old name keep
// it; renames do not cascade.
func (s *CategoryService) Update(ctx context.Context, id, name string) (*models.Category, error) {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return nil, mapCategoryRepoError(err)
	}

	category := &models.Category{CategoryName: name}
	if err := s.categoryRepo.Replace(ctx, id, category); err != nil {
		return nil, mapCategoryRepoError(err)
	}
	return category, nil
}

// Delete removes a category. Tasks referencing the deleted name are left
// pointing at it; deletes do not cascade. Deleting a missing category is a
// no-op.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return mapCategoryRepoError(err)
	}
	return nil
}

func mapCategoryRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrCategoryNotFound
	case errors.Is(err, repository.ErrInvalidID):
		return ErrCategoryInvalidID
	default:
		return fmt.Errorf("category store error: %w", err)
	}
}
