package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-manager-api/internal/taskstore"
)

func setupTracker(t *testing.T) (*gin.Engine, *taskstore.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := taskstore.NewStore(nil)
	h := NewTrackerHandler(store)

	r := gin.New()
	r.GET("/", h.Index)
	r.GET("/api/projects/:projectId/tasks", h.ListTasks)
	r.POST("/api/projects/:projectId/tasks", h.CreateTask)
	r.PUT("/api/projects/:projectId/tasks/:id", h.UpdateTask)
	r.DELETE("/api/projects/:projectId/tasks/:id", h.DeleteTask)
	return r, store
}

func trackerDo(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTracker_CreateAndList(t *testing.T) {
	r, _ := setupTracker(t)

	w := trackerDo(r, http.MethodPost, "/api/projects/7/tasks", `{"description":"  write tests  "}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created taskstore.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, int64(7), created.ProjectID)
	assert.Equal(t, "write tests", created.Description)
	assert.False(t, created.IsCompleted)
	assert.Equal(t, "/api/projects/7/tasks/1", w.Header().Get("Location"))

	w = trackerDo(r, http.MethodGet, "/api/projects/7/tasks", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"projectId":7,"description":"write tests","isCompleted":false}]`, w.Body.String())

	w = trackerDo(r, http.MethodGet, "/api/projects/8/tasks", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestTracker_CreateRequiresDescription(t *testing.T) {
	r, _ := setupTracker(t)

	for _, body := range []string{`{}`, `{"description":""}`, `{"description":"   "}`, `nope`} {
		w := trackerDo(r, http.MethodPost, "/api/projects/1/tasks", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestTracker_Update(t *testing.T) {
	r, store := setupTracker(t)
	item, err := store.Add(3, "original")
	require.NoError(t, err)

	w := trackerDo(r, http.MethodPut, "/api/projects/3/tasks/"+itoa(item.ID), `{"isCompleted":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated taskstore.Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "original", updated.Description)
	assert.True(t, updated.IsCompleted)

	w = trackerDo(r, http.MethodPut, "/api/projects/3/tasks/"+itoa(item.ID), `{"description":"renamed"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "renamed", updated.Description)
	assert.True(t, updated.IsCompleted)

	// Same id under a different project is unknown.
	w = trackerDo(r, http.MethodPut, "/api/projects/4/tasks/"+itoa(item.ID), `{"isCompleted":false}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTracker_Delete(t *testing.T) {
	r, store := setupTracker(t)
	item, err := store.Add(3, "temp")
	require.NoError(t, err)

	w := trackerDo(r, http.MethodDelete, "/api/projects/3/tasks/"+itoa(item.ID), "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = trackerDo(r, http.MethodDelete, "/api/projects/3/tasks/"+itoa(item.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTracker_NonNumericIDs(t *testing.T) {
	r, _ := setupTracker(t)

	assert.Equal(t, http.StatusBadRequest, trackerDo(r, http.MethodGet, "/api/projects/x/tasks", "").Code)
	assert.Equal(t, http.StatusBadRequest, trackerDo(r, http.MethodPut, "/api/projects/1/tasks/y", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, trackerDo(r, http.MethodDelete, "/api/projects/1/tasks/y", "").Code)
}

func TestTracker_Index(t *testing.T) {
	r, store := setupTracker(t)
	_, err := store.Add(5, "a")
	require.NoError(t, err)
	_, err = store.Add(5, "b")
	require.NoError(t, err)

	var index struct {
		Endpoints []map[string]string `json:"endpoints"`
		Count     int                 `json:"count"`
		Tasks     []taskstore.Item    `json:"tasks"`
	}

	w := trackerDo(r, http.MethodGet, "/?projectId=5", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &index))
	assert.Len(t, index.Endpoints, 4)
	assert.Equal(t, 2, index.Count)
	assert.Len(t, index.Tasks, 2)

	w = trackerDo(r, http.MethodGet, "/?projectId=abc", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &index))
	assert.Equal(t, 0, index.Count)
}

func itoa(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
