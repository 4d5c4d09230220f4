package handlers

import (
	"errors"
	"net/http"

	"github.com/Callymags/task-manager-api/internal/dto"
	apierrors "github.com/Callymags/task-manager-api/internal/errors"
	"github.com/Callymags/task-manager-api/internal/middleware"
	"github.com/Callymags/task-manager-api/internal/services"
	"github.com/gin-gonic/gin"
)

// TaskHandler coordinates task-related HTTP handlers.
type TaskHandler struct {
	taskService     *services.TaskService
	categoryService *services.CategoryService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService, categoryService *services.CategoryService) *TaskHandler {
	return &TaskHandler{
		taskService:     taskService,
		categoryService: categoryService,
	}
}

// taskRequest is the typed body shared by the create and edit endpoints.
type taskRequest struct {
	CategoryName    string         `json:"category_name" binding:"required"`
	TaskName        string         `json:"task_name" binding:"required"`
	TaskDescription string         `json:"task_description"`
	IsUrgent        dto.UrgentFlag `json:"is_urgent"`
	DueDate         string         `json:"due_date"`
}

func (r taskRequest) toInput() services.TaskInput {
	return services.TaskInput{
		CategoryName:    r.CategoryName,
		TaskName:        r.TaskName,
		TaskDescription: r.TaskDescription,
		IsUrgent:        bool(r.IsUrgent),
		DueDate:         r.DueDate,
	}
}

// List returns every task.
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskService.List(c.Request.Context())
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks))
}

// Search runs a text search over tasks. An empty query is passed through to
// the store rather than special-cased.
func (h *TaskHandler) Search(c *gin.Context) {
	type SearchRequest struct {
		Query string `json:"query"`
	}

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	tasks, err := h.taskService.Search(c.Request.Context(), req.Query)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks))
}

// NewForm returns the data the view layer needs to render the new-task form:
// the category list for the dropdown.
func (h *TaskHandler) NewForm(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		apierrors.StoreUnavailable(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.TaskFormData{Categories: dto.ToCategoryDTOs(categories)})
}

// Create persists a new task owned by the logged-in user.
func (h *TaskHandler) Create(c *gin.Context) {
	username, ok := middleware.CurrentUsername(c)
	if !ok {
		apierrors.Unauthenticated(c, "")
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithForm(c, "Invalid request body", req)
		return
	}

	id, err := h.taskService.Create(c.Request.Context(), req.toInput(), username)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TaskDTO{
		ID:              id,
		CategoryName:    req.CategoryName,
		TaskName:        req.TaskName,
		TaskDescription: req.TaskDescription,
		IsUrgent:        bool(req.IsUrgent),
		DueDate:         req.DueDate,
		CreatedBy:       username,
	})
}

// EditForm returns the task plus the category list for the edit form.
func (h *TaskHandler) EditForm(c *gin.Context) {
	task, err := h.taskService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondTaskError(c, err)
		return
	}

	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		apierrors.StoreUnavailable(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.TaskEditFormData{
		Task:       dto.ToTaskDTO(*task),
		Categories: dto.ToCategoryDTOs(categories),
	})
}

// Update replaces the task's editable fields. The original creator is kept.
func (h *TaskHandler) Update(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithForm(c, "Invalid request body", req)
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// Delete removes a task. Any logged-in user may delete any task.
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.taskService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTaskInvalidID):
		apierrors.InvalidIdentifier(c, err.Error())
	default:
		apierrors.StoreUnavailable(c, "")
	}
}
