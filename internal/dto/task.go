package dto

import (
	"time"

	"github.com/yukikurage/project-manager-api/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	IsCompleted bool       `json:"isCompleted"`
	DueDate     *time.Time `json:"dueDate"`
}

// CreateTaskRequest is the body of POST /api/projects/:id/tasks
type CreateTaskRequest struct {
	Title   string     `json:"title"`
	DueDate *time.Time `json:"dueDate"`
}

// UpdateTaskRequest is the body of PUT /api/projects/:id/tasks/:taskId.
// All fields are written; omitted ones take their zero value.
type UpdateTaskRequest struct {
	Title       string     `json:"title"`
	IsCompleted bool       `json:"isCompleted"`
	DueDate     *time.Time `json:"dueDate"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		IsCompleted: task.IsCompleted,
		DueDate:     task.DueDate,
	}
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}
