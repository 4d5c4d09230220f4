package dto

import (
	"github.com/Callymags/task-manager-api/internal/models"
)

// CategoryDTO represents a category in API responses
type CategoryDTO struct {
	ID           string `json:"id"`
	CategoryName string `json:"category_name"`
}

// CategoryListResponse represents a list of categories
type CategoryListResponse struct {
	Categories []CategoryDTO `json:"categories"`
}

// ToCategoryDTO converts a Category model to CategoryDTO
func ToCategoryDTO(category models.Category) CategoryDTO {
	return CategoryDTO{
		ID:           category.ID.Hex(),
		CategoryName: category.CategoryName,
	}
}

// ToCategoryDTOs converts a slice of categories
func ToCategoryDTOs(categories []models.Category) []CategoryDTO {
	items := make([]CategoryDTO, len(categories))
	for i, category := range categories {
		items[i] = ToCategoryDTO(category)
	}
	return items
}

// ToCategoryListResponse converts a slice of categories to CategoryListResponse
func ToCategoryListResponse(categories []models.Category) CategoryListResponse {
	return CategoryListResponse{Categories: ToCategoryDTOs(categories)}
}
