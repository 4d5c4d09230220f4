package dto

import (
	"bytes"
	"fmt"

	"github.com/Callymags/task-manager-api/internal/models"
)

// UrgentFlag is a bool that also accepts the legacy checkbox sentinel values
// on the wire: "on" for checked and "" (or an absent field) for unchecked.
// The translation happens here, at the request-decoding boundary; everywhere
// past it urgency is a plain bool.
type UrgentFlag bool

func (f *UrgentFlag) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("true")):
		*f = true
	case bytes.Equal(data, []byte("false")), bytes.Equal(data, []byte("null")):
		*f = false
	case bytes.Equal(data, []byte(`"on"`)):
		*f = true
	case bytes.Equal(data, []byte(`"off"`)), bytes.Equal(data, []byte(`""`)):
		*f = false
	default:
		return fmt.Errorf("invalid urgency flag %s", data)
	}
	return nil
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID              string `json:"id"`
	CategoryName    string `json:"category_name"`
	TaskName        string `json:"task_name"`
	TaskDescription string `json:"task_description"`
	IsUrgent        bool   `json:"is_urgent"`
	DueDate         string `json:"due_date"`
	CreatedBy       string `json:"created_by"`
}

// TaskListResponse represents a list of tasks
type TaskListResponse struct {
	Tasks []TaskDTO `json:"tasks"`
}

// TaskFormData carries what the view layer needs to render the new-task form
type TaskFormData struct {
	Categories []CategoryDTO `json:"categories"`
}

// TaskEditFormData carries what the view layer needs to render the edit form
type TaskEditFormData struct {
	Task       TaskDTO       `json:"task"`
	Categories []CategoryDTO `json:"categories"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:              task.ID.Hex(),
		CategoryName:    task.CategoryName,
		TaskName:        task.TaskName,
		TaskDescription: task.TaskDescription,
		IsUrgent:        task.IsUrgent,
		DueDate:         task.DueDate,
		CreatedBy:       task.CreatedBy,
	}
}

// ToTaskListResponse converts a slice of tasks to TaskListResponse
func ToTaskListResponse(tasks []models.Task) TaskListResponse {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return TaskListResponse{Tasks: items}
}
