package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-manager-api/internal/middleware"
	"github.com/yukikurage/project-manager-api/internal/models"
	"github.com/yukikurage/project-manager-api/internal/repository"
	"github.com/yukikurage/project-manager-api/internal/services"
	"github.com/yukikurage/project-manager-api/internal/testutil"
	"gorm.io/gorm"
)

const testSecret = "handlers-test-secret-0123456789abcdef"

type testEnv struct {
	db             *gorm.DB
	router         *gin.Engine
	authService    *services.AuthService
	projectService *services.ProjectService
	taskService    *services.TaskService
}

// setupTestEnv wires real services over an in-memory database and mounts
// every handler on a bare router.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	tokens, err := services.NewTokenService(services.TokenConfig{
		Secret:   testSecret,
		Issuer:   "pm.local",
		Audience: "pm.local",
	})
	require.NoError(t, err)

	projectRepo := repository.NewProjectRepository(db)
	env := &testEnv{
		db:             db,
		authService:    services.NewAuthService(repository.NewUserRepository(db), tokens),
		projectService: services.NewProjectService(projectRepo),
		taskService:    services.NewTaskService(repository.NewTaskRepository(db), projectRepo),
	}

	authHandler := NewAuthHandler(env.authService)
	projectHandler := NewProjectHandler(env.projectService, "http://tracker.example/")
	taskHandler := NewTaskHandler(env.taskService)
	scheduleHandler := NewScheduleHandler(env.projectService)
	requireAuth := middleware.RequireAuth(env.authService)
	id := middleware.RequireIDParams("id")
	ids := middleware.RequireIDParams("id", "taskId")

	r := gin.New()
	r.POST("/api/auth/register", authHandler.Register)
	r.POST("/api/auth/login", authHandler.Login)
	r.GET("/api/auth/me", requireAuth, authHandler.GetCurrentUser)
	r.GET("/api/projects", requireAuth, projectHandler.ListProjects)
	r.POST("/api/projects", requireAuth, projectHandler.CreateProject)
	r.GET("/api/projects/:id", requireAuth, id, projectHandler.GetProject)
	r.DELETE("/api/projects/:id", requireAuth, id, projectHandler.DeleteProject)
	r.GET("/api/projects/:id/tasks-ui", requireAuth, id, projectHandler.TasksUI)
	r.GET("/api/projects/:id/tasks", requireAuth, id, taskHandler.ListTasks)
	r.POST("/api/projects/:id/tasks", requireAuth, id, taskHandler.CreateTask)
	r.PUT("/api/projects/:id/tasks/:taskId", requireAuth, ids, taskHandler.UpdateTask)
	r.DELETE("/api/projects/:id/tasks/:taskId", requireAuth, ids, taskHandler.DeleteTask)
	r.POST("/api/v1/projects/:id/schedule", requireAuth, id, scheduleHandler.Generate)
	env.router = r

	return env
}

// registerAndLogin creates an account and returns the user with a token.
func (env *testEnv) registerAndLogin(t *testing.T, email string) (*models.User, string) {
	t.Helper()

	user, err := env.authService.Register(context.Background(), services.RegisterInput{Email: email, Password: "password123"})
	require.NoError(t, err)
	result, err := env.authService.Login(context.Background(), email, "password123")
	require.NoError(t, err)
	return user, result.Token
}

func (env *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

type errorBody struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details"`
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
}
