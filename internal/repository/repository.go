package repository

import (
	"context"

	"github.com/yukikurage/project-manager-api/internal/models"
	"github.com/yukikurage/project-manager-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByEmail finds a user by normalized email
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// ProjectRepository defines the interface for project data access.
// Every lookup takes the owner ID; a project owned by someone else is
// reported as gorm.ErrRecordNotFound, exactly like a missing one.
type ProjectRepository interface {
	// Create creates a new project
	Create(ctx context.Context, project *models.Project) error

	// ListByOwner returns one page of the owner's projects, newest first,
	// together with the owner's total project count
	ListByOwner(ctx context.Context, ownerID uint64, params utils.PaginationParams) ([]models.Project, int64, error)

	// FindOwned finds a project with its tasks preloaded
	FindOwned(ctx context.Context, ownerID, projectID uint64) (*models.Project, error)

	// ExistsOwned reports whether the owner has a project with the given ID
	ExistsOwned(ctx context.Context, ownerID, projectID uint64) (bool, error)

	// DeleteOwned deletes a project and all of its tasks in one transaction
	DeleteOwned(ctx context.Context, ownerID, projectID uint64) error
}

// TaskRepository defines the interface for task data access scoped through
// the owning project
type TaskRepository interface {
	// ListByProject lists the tasks of an owned project ordered by ID
	ListByProject(ctx context.Context, ownerID, projectID uint64) ([]models.Task, error)

	// CreateInProject creates a task after verifying the project is owned
	CreateInProject(ctx context.Context, ownerID uint64, task *models.Task) error

	// ReplaceOwned overwrites title, completion flag and due date of a task
	ReplaceOwned(ctx context.Context, ownerID uint64, task *models.Task) error

	// DeleteOwned deletes a task of an owned project
	DeleteOwned(ctx context.Context, ownerID, projectID, taskID uint64) error
}
