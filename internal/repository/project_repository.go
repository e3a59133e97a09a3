package repository

import (
	"context"

	"github.com/yukikurage/project-manager-api/internal/database"
	"github.com/yukikurage/project-manager-api/internal/models"
	"github.com/yukikurage/project-manager-api/internal/utils"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Omit("Tasks").Create(project).Error
}

// ListByOwner retrieves one page of projects and the unpaginated total
func (r *GormProjectRepository) ListByOwner(ctx context.Context, ownerID uint64, params utils.PaginationParams) ([]models.Project, int64, error) {
	owned := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.Project{}).Scopes(database.OwnedProjects(ownerID))
	}

	var total int64
	if err := owned().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	projects := []models.Project{}
	if err := owned().
		Order("projects.created_at DESC").
		Order("projects.id DESC").
		Scopes(database.Paginate(params)).
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// FindOwned finds an owned project and its tasks in a single read transaction
func (r *GormProjectRepository) FindOwned(ctx context.Context, ownerID, projectID uint64) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Scopes(database.OwnedProjects(ownerID)).
			Preload("Tasks", func(db *gorm.DB) *gorm.DB {
				return db.Order("tasks.id ASC")
			}).
			First(&project, projectID).Error
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// ExistsOwned reports whether the owner has the project
func (r *GormProjectRepository) ExistsOwned(ctx context.Context, ownerID, projectID uint64) (bool, error) {
	return projectOwned(r.db.WithContext(ctx), ownerID, projectID)
}

// DeleteOwned deletes a project and all of its tasks in a transaction
func (r *GormProjectRepository) DeleteOwned(ctx context.Context, ownerID, projectID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned, err := projectOwned(tx, ownerID, projectID)
		if err != nil {
			return err
		}
		if !owned {
			return gorm.ErrRecordNotFound
		}

		// Delete all tasks in the project
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		// Delete project
		result := tx.Scopes(database.OwnedProjects(ownerID)).Delete(&models.Project{}, projectID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

func projectOwned(db *gorm.DB, ownerID, projectID uint64) (bool, error) {
	var count int64
	err := db.Model(&models.Project{}).
		Scopes(database.OwnedProjects(ownerID)).
		Where("projects.id = ?", projectID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
