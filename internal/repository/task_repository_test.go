package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-manager-api/internal/models"
	"github.com/yukikurage/project-manager-api/internal/testutil"
	"gorm.io/gorm"
)

func TestTaskRepository_CreateInProject(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	owner := testutil.CreateUser(t, db, "owner@example.com")
	other := testutil.CreateUser(t, db, "other@example.com")
	project := testutil.CreateProject(t, db, owner.ID, "Mine")

	task := &models.Task{ProjectID: project.ID, Title: "ok"}
	require.NoError(t, repo.CreateInProject(ctx, owner.ID, task))
	assert.NotZero(t, task.ID)

	err := repo.CreateInProject(ctx, other.ID, &models.Task{ProjectID: project.ID, Title: "nope"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.CreateInProject(ctx, owner.ID, &models.Task{ProjectID: 424242, Title: "nope"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTaskRepository_ReplaceOwned(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	owner := testutil.CreateUser(t, db, "owner@example.com")
	other := testutil.CreateUser(t, db, "other@example.com")
	project := testutil.CreateProject(t, db, owner.ID, "Mine")
	task := testutil.CreateTask(t, db, project.ID, "before")

	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	update := &models.Task{ID: task.ID, ProjectID: project.ID, Title: "after", IsCompleted: true, DueDate: &due}
	require.NoError(t, repo.ReplaceOwned(ctx, owner.ID, update))
	assert.Equal(t, "after", update.Title)
	assert.True(t, update.IsCompleted)
	require.NotNil(t, update.DueDate)
	assert.True(t, due.Equal(*update.DueDate))
	assert.False(t, update.CreatedAt.IsZero())

	hijack := &models.Task{ID: task.ID, ProjectID: project.ID, Title: "hijack"}
	assert.ErrorIs(t, repo.ReplaceOwned(ctx, other.ID, hijack), gorm.ErrRecordNotFound)

	var stored models.Task
	require.NoError(t, db.First(&stored, task.ID).Error)
	assert.Equal(t, "after", stored.Title)
}

func TestTaskRepository_ListAndDelete(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	owner := testutil.CreateUser(t, db, "owner@example.com")
	other := testutil.CreateUser(t, db, "other@example.com")
	project := testutil.CreateProject(t, db, owner.ID, "Mine")
	first := testutil.CreateTask(t, db, project.ID, "first")
	testutil.CreateTask(t, db, project.ID, "second")

	tasks, err := repo.ListByProject(ctx, owner.ID, project.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "first", tasks[0].Title)

	_, err = repo.ListByProject(ctx, other.ID, project.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, repo.DeleteOwned(ctx, other.ID, project.ID, first.ID), gorm.ErrRecordNotFound)
	require.NoError(t, repo.DeleteOwned(ctx, owner.ID, project.ID, first.ID))
	assert.ErrorIs(t, repo.DeleteOwned(ctx, owner.ID, project.ID, first.ID), gorm.ErrRecordNotFound)
}
