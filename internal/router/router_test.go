package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-manager-api/internal/middleware"
	"github.com/yukikurage/project-manager-api/internal/services"
	"github.com/yukikurage/project-manager-api/internal/taskstore"
	"github.com/yukikurage/project-manager-api/internal/testutil"
)

func newTestEngine(t *testing.T, origins []string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := services.NewTokenService(services.TokenConfig{
		Secret:   "router-test-secret-0123456789abcdefgh",
		Issuer:   "pm.local",
		Audience: "pm.local",
	})
	require.NoError(t, err)

	return New(Options{
		DB:             testutil.NewDB(t),
		Tokens:         tokens,
		AuthLimiter:    middleware.NewClientRateLimiter(10, 10*time.Second),
		AllowedOrigins: origins,
		Logger:         zerolog.Nop(),

		TaskManagerBaseURL: "http://localhost:3001",
	})
}

func send(r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestServer_EndToEnd(t *testing.T) {
	r := newTestEngine(t, nil)

	w := send(r, http.MethodPost, "/api/auth/register", "", map[string]string{"email": "e2e@example.com", "password": "password123"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = send(r, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "e2e@example.com", "password": "password123"})
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = send(r, http.MethodPost, "/api/projects", login.Token, map[string]string{"title": "Launch"})
	require.Equal(t, http.StatusCreated, w.Code)
	location := w.Header().Get("Location")
	require.NotEmpty(t, location)

	w = send(r, http.MethodPost, location+"/tasks", login.Token, map[string]string{"title": "Plan"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = send(r, http.MethodGet, location, login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Plan"`)

	w = send(r, http.MethodDelete, location, login.Token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = send(r, http.MethodGet, "/api/projects/abc", login.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = send(r, http.MethodGet, "/api/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServer_AuthRateLimit(t *testing.T) {
	r := newTestEngine(t, nil)

	limited := 0
	for i := 0; i < 11; i++ {
		w := send(r, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "x@example.com", "password": "whatever1"})
		if w.Code == http.StatusTooManyRequests {
			limited++
		}
	}
	assert.Equal(t, 1, limited)

	// Other routes are not throttled.
	w := send(r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// An authenticated client polling /me does not spend the credential budget.
	w = send(r, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServer_MeIsNotRateLimited(t *testing.T) {
	r := newTestEngine(t, nil)

	for i := 0; i < 15; i++ {
		w := send(r, http.MethodGet, "/api/auth/me", "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, "request %d", i)
	}

	w := send(r, http.MethodPost, "/api/auth/register", "", map[string]string{"email": "fresh@example.com", "password": "password123"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestServer_IndexAndCORS(t *testing.T) {
	r := newTestEngine(t, []string{"http://app.example"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://app.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://app.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Body.String(), "/api/v1/projects/{projectId}/schedule")
	assert.Contains(t, w.Body.String(), "/api/projects/{id}/tasks-ui")

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestTracker_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewTracker(taskstore.NewStore(nil), zerolog.Nop())

	w := send(r, http.MethodPost, "/api/projects/1/tasks", "", map[string]string{"description": "first"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/projects/1/tasks/1", w.Header().Get("Location"))

	w = send(r, http.MethodPut, "/api/projects/1/tasks/1", "", map[string]bool{"isCompleted": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isCompleted":true`)

	w = send(r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = send(r, http.MethodDelete, "/api/projects/1/tasks/1", "", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
