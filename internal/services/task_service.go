package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/yukikurage/project-manager-api/internal/constants"
	"github.com/yukikurage/project-manager-api/internal/models"
	"github.com/yukikurage/project-manager-api/internal/repository"
	"gorm.io/gorm"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskService handles task business logic. Tasks are only reachable through
// a project the caller owns.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	OwnerID   uint64
	ProjectID uint64
	Title     string
	DueDate   *time.Time
}

// UpdateTaskInput represents a full replacement of a task's mutable fields
type UpdateTaskInput struct {
	OwnerID     uint64
	ProjectID   uint64
	TaskID      uint64
	Title       string
	IsCompleted bool
	DueDate     *time.Time
}

// ListTasks returns the tasks of an owned project
func (s *TaskService) ListTasks(ctx context.Context, ownerID, projectID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByProject(ctx, ownerID, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// CreateTask creates a task in an owned project. A project the caller does
// not own is reported before any validation problem with the input.
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	owned, err := s.projectRepo.ExistsOwned(ctx, input.OwnerID, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check project ownership: %w", err)
	}
	if !owned {
		return nil, ErrProjectNotFound
	}

	title := strings.TrimSpace(input.Title)
	if err := validateTaskTitle(title); err != nil {
		return nil, err
	}

	task := &models.Task{
		ProjectID: input.ProjectID,
		Title:     title,
		DueDate:   input.DueDate,
	}

	if err := s.taskRepo.CreateInProject(ctx, input.OwnerID, task); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask overwrites title, completion flag and due date of a task
func (s *TaskService) UpdateTask(ctx context.Context, input UpdateTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)
	if err := validateTaskTitle(title); err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:          input.TaskID,
		ProjectID:   input.ProjectID,
		Title:       title,
		IsCompleted: input.IsCompleted,
		DueDate:     input.DueDate,
	}

	if err := s.taskRepo.ReplaceOwned(ctx, input.OwnerID, task); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask removes a task from an owned project
func (s *TaskService) DeleteTask(ctx context.Context, ownerID, projectID, taskID uint64) error {
	if err := s.taskRepo.DeleteOwned(ctx, ownerID, projectID, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

func validateTaskTitle(title string) error {
	if n := utf8.RuneCountInString(title); n < constants.MinTaskTitleLength || n > constants.MaxTaskTitleLength {
		return (&ValidationError{}).add("title", fmt.Sprintf("must be between %d and %d characters", constants.MinTaskTitleLength, constants.MaxTaskTitleLength))
	}
	return nil
}
