package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-manager-api/internal/dto"
	apierrors "github.com/yukikurage/project-manager-api/internal/errors"
	"github.com/yukikurage/project-manager-api/internal/taskstore"
)

// TrackerHandler serves the unauthenticated tracker API over an in-memory
// store.
type TrackerHandler struct {
	store *taskstore.Store
}

// NewTrackerHandler creates a new TrackerHandler.
func NewTrackerHandler(store *taskstore.Store) *TrackerHandler {
	return &TrackerHandler{store: store}
}

// Index describes the API and, given ?projectId, lists that project's tasks
func (h *TrackerHandler) Index(c *gin.Context) {
	tasks := []taskstore.Item{}
	if projectID, err := strconv.ParseInt(c.Query("projectId"), 10, 64); err == nil && projectID > 0 {
		tasks = h.store.GetAll(projectID)
	}

	c.JSON(http.StatusOK, gin.H{
		"name": "tracker",
		"endpoints": []gin.H{
			{"method": "GET", "path": "/api/projects/{projectId}/tasks"},
			{"method": "POST", "path": "/api/projects/{projectId}/tasks"},
			{"method": "PUT", "path": "/api/projects/{projectId}/tasks/{id}"},
			{"method": "DELETE", "path": "/api/projects/{projectId}/tasks/{id}"},
		},
		"count": len(tasks),
		"tasks": tasks,
	})
}

// ListTasks returns the project's tasks ordered by ID
func (h *TrackerHandler) ListTasks(c *gin.Context) {
	projectID, ok := trackerID(c, "projectId")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.store.GetAll(projectID))
}

// CreateTask adds a task to the project
func (h *TrackerHandler) CreateTask(c *gin.Context) {
	projectID, ok := trackerID(c, "projectId")
	if !ok {
		return
	}

	var req dto.TrackerTaskRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Description == nil {
		apierrors.BadRequest(c, "Description is required")
		return
	}

	item, err := h.store.Add(projectID, *req.Description)
	if err != nil {
		apierrors.BadRequest(c, "Description is required")
		return
	}

	c.Header("Location", "/api/projects/"+strconv.FormatInt(projectID, 10)+"/tasks/"+strconv.FormatInt(item.ID, 10))
	c.JSON(http.StatusCreated, item)
}

// UpdateTask changes the description and/or completion flag of a task
func (h *TrackerHandler) UpdateTask(c *gin.Context) {
	projectID, ok := trackerID(c, "projectId")
	if !ok {
		return
	}
	id, ok := trackerID(c, "id")
	if !ok {
		return
	}

	var req dto.TrackerTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.store.Update(projectID, id, req.Description, req.IsCompleted)
	if err != nil {
		apierrors.NotFound(c, "Task not found")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteTask removes a task
func (h *TrackerHandler) DeleteTask(c *gin.Context) {
	projectID, ok := trackerID(c, "projectId")
	if !ok {
		return
	}
	id, ok := trackerID(c, "id")
	if !ok {
		return
	}

	if !h.store.Delete(projectID, id) {
		apierrors.NotFound(c, "Task not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// trackerID parses an integer route parameter, answering 400 when it is not
// one.
func trackerID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}
