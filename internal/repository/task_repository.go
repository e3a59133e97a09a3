package repository

import (
	"context"

	"github.com/yukikurage/project-manager-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// ListByProject lists tasks of an owned project
func (r *GormTaskRepository) ListByProject(ctx context.Context, ownerID, projectID uint64) ([]models.Task, error) {
	tasks := []models.Task{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned, err := projectOwned(tx, ownerID, projectID)
		if err != nil {
			return err
		}
		if !owned {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("project_id = ?", projectID).Order("id ASC").Find(&tasks).Error
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateInProject creates a task; the project must exist and be owned
func (r *GormTaskRepository) CreateInProject(ctx context.Context, ownerID uint64, task *models.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned, err := projectOwned(tx, ownerID, task.ProjectID)
		if err != nil {
			return err
		}
		if !owned {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(task).Error
	})
}

// ReplaceOwned writes all mutable fields of the task in a single UPDATE and
// reloads the stored row into task
func (r *GormTaskRepository) ReplaceOwned(ctx context.Context, ownerID uint64, task *models.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Task{}).
			Where("id = ? AND project_id = ?", task.ID, task.ProjectID).
			Where("project_id IN (?)", ownedProjectIDs(tx, ownerID)).
			Select("title", "is_completed", "due_date", "updated_at").
			Updates(map[string]interface{}{
				"title":        task.Title,
				"is_completed": task.IsCompleted,
				"due_date":     task.DueDate,
				"updated_at":   tx.NowFunc(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(task, task.ID).Error
	})
}

// DeleteOwned deletes a task of an owned project
func (r *GormTaskRepository) DeleteOwned(ctx context.Context, ownerID, projectID, taskID uint64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", taskID, projectID).
		Where("project_id IN (?)", ownedProjectIDs(r.db.WithContext(ctx), ownerID)).
		Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func ownedProjectIDs(db *gorm.DB, ownerID uint64) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).
		Model(&models.Project{}).
		Select("id").
		Where("owner_id = ?", ownerID)
}
