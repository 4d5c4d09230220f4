package handlers

import (
	"errors"
	"net/http"

	"github.com/Callymags/task-manager-api/internal/dto"
	apierrors "github.com/Callymags/task-manager-api/internal/errors"
	"github.com/Callymags/task-manager-api/internal/services"
	"github.com/gin-gonic/gin"
)

// CategoryHandler coordinates category-related HTTP handlers.
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// categoryRequest is the typed body for the create and edit endpoints. Names
// are not validated: empty and duplicate names are allowed.
type categoryRequest struct {
	CategoryName string `json:"category_name"`
}

// List returns every category, name-sorted.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		apierrors.StoreUnavailable(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryListResponse(categories))
}

// NewForm serves the new-category form route.
func (h *CategoryHandler) NewForm(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Create persists a new category.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithForm(c, "Invalid request body", req)
		return
	}

	id, err := h.categoryService.Create(c.Request.Context(), req.CategoryName)
	if err != nil {
		respondCategoryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CategoryDTO{
		ID:           id,
		CategoryName: req.CategoryName,
	})
}

// EditForm returns the category for the edit form.
func (h *CategoryHandler) EditForm(c *gin.Context) {
	category, err := h.categoryService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondCategoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryDTO(*category))
}

// Update replaces the category's name. Tasks referencing the old name are
// not touched.
func (h *CategoryHandler) Update(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithForm(c, "Invalid request body", req)
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), c.Param("id"), req.CategoryName)
	if err != nil {
		respondCategoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryDTO(*category))
}

// Delete removes a category. Tasks referencing it keep the dangling name.
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.categoryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondCategoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category deleted successfully",
	})
}

func respondCategoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCategoryNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrCategoryInvalidID):
		apierrors.InvalidIdentifier(c, err.Error())
	default:
		apierrors.StoreUnavailable(c, "")
	}
}
