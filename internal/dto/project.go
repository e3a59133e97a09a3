package dto

import (
	"time"

	"github.com/yukikurage/project-manager-api/internal/models"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProjectDetailDTO is a project together with its tasks
type ProjectDetailDTO struct {
	Project ProjectDTO `json:"project"`
	Tasks   []TaskDTO  `json:"tasks"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
	Total    int64        `json:"total"`
	Data     []ProjectDTO `json:"data"`
}

// CreateProjectRequest is the body of POST /api/projects
type CreateProjectRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		CreatedAt:   project.CreatedAt,
	}
}

// ToProjectDetailDTO converts a project with preloaded tasks
func ToProjectDetailDTO(project models.Project) ProjectDetailDTO {
	return ProjectDetailDTO{
		Project: ToProjectDTO(project),
		Tasks:   ToTaskDTOs(project.Tasks),
	}
}

// ToProjectListResponse converts a page of projects
func ToProjectListResponse(projects []models.Project, page, pageSize int, total int64) ProjectListResponse {
	items := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		items[i] = ToProjectDTO(project)
	}

	return ProjectListResponse{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Data:     items,
	}
}
