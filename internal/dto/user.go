package dto

import (
	"github.com/Callymags/task-manager-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash never leaves
// the server.
type UserDTO struct {
	Username string `json:"username"`
}

// ProfileResponse represents a user profile with the tasks they created
type ProfileResponse struct {
	Username string    `json:"username"`
	Tasks    []TaskDTO `json:"tasks"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{Username: user.Username}
}

// ToProfileResponse builds a profile from a user and their tasks
func ToProfileResponse(user models.User, tasks []models.Task) ProfileResponse {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return ProfileResponse{
		Username: user.Username,
		Tasks:    items,
	}
}
