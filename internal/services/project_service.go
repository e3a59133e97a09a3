package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yukikurage/project-manager-api/internal/constants"
	"github.com/yukikurage/project-manager-api/internal/models"
	"github.com/yukikurage/project-manager-api/internal/repository"
	"github.com/yukikurage/project-manager-api/internal/utils"
	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project business logic. Ownership is checked
// against the store on every call.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	OwnerID     uint64
	Title       string
	Description *string
}

// CreateProject validates and stores a new project for its owner
func (s *ProjectService) CreateProject(ctx context.Context, input CreateProjectInput) (*models.Project, error) {
	title := strings.TrimSpace(input.Title)

	verr := &ValidationError{}
	if n := utf8.RuneCountInString(title); n < constants.MinProjectTitleLength || n > constants.MaxProjectTitleLength {
		verr.add("title", fmt.Sprintf("must be between %d and %d characters", constants.MinProjectTitleLength, constants.MaxProjectTitleLength))
	}
	if input.Description != nil && utf8.RuneCountInString(*input.Description) > constants.MaxProjectDescLength {
		verr.add("description", fmt.Sprintf("must be at most %d characters", constants.MaxProjectDescLength))
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	project := &models.Project{
		OwnerID:     input.OwnerID,
		Title:       title,
		Description: input.Description,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// ListProjects returns a page of the owner's projects and their total count
func (s *ProjectService) ListProjects(ctx context.Context, ownerID uint64, page, pageSize int) ([]models.Project, int64, utils.PaginationParams, error) {
	params := utils.NormalizePagination(page, pageSize)

	projects, total, err := s.projectRepo.ListByOwner(ctx, ownerID, params)
	if err != nil {
		return nil, 0, params, fmt.Errorf("failed to list projects: %w", err)
	}

	return projects, total, params, nil
}

// GetProject returns an owned project with its tasks
func (s *ProjectService) GetProject(ctx context.Context, ownerID, projectID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindOwned(ctx, ownerID, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	return project, nil
}

// DeleteProject removes an owned project together with all of its tasks
func (s *ProjectService) DeleteProject(ctx context.Context, ownerID, projectID uint64) error {
	if err := s.projectRepo.DeleteOwned(ctx, ownerID, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

// EnsureProjectOwner returns ErrProjectNotFound unless ownerID owns projectID
func (s *ProjectService) EnsureProjectOwner(ctx context.Context, ownerID, projectID uint64) error {
	owned, err := s.projectRepo.ExistsOwned(ctx, ownerID, projectID)
	if err != nil {
		return fmt.Errorf("failed to check project ownership: %w", err)
	}
	if !owned {
		return ErrProjectNotFound
	}

	return nil
}
