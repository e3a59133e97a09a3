// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-manager-api/internal/database"
	"github.com/yukikurage/project-manager-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated in-memory SQLite database with foreign keys on.
// The pool is pinned to one connection so every query sees the same
// database. It is closed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), database.GormConfig(logger.Silent))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// CreateUser inserts a user with a placeholder password hash.
func CreateUser(t testing.TB, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{Email: email, PasswordHash: "hashedpassword"}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateProject inserts a project owned by ownerID.
func CreateProject(t testing.TB, db *gorm.DB, ownerID uint64, title string) *models.Project {
	t.Helper()

	project := &models.Project{OwnerID: ownerID, Title: title}
	require.NoError(t, db.Create(project).Error)
	return project
}

// CreateTask inserts a task in projectID.
func CreateTask(t testing.TB, db *gorm.DB, projectID uint64, title string) *models.Task {
	t.Helper()

	task := &models.Task{ProjectID: projectID, Title: title}
	require.NoError(t, db.Create(task).Error)
	return task
}
