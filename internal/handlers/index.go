package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports liveness
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Index lists the endpoints of the project manager API
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name": "project-manager-api",
		"endpoints": []gin.H{
			{"method": "POST", "path": "/api/auth/register"},
			{"method": "POST", "path": "/api/auth/login"},
			{"method": "GET", "path": "/api/auth/me"},
			{"method": "GET", "path": "/api/projects"},
			{"method": "POST", "path": "/api/projects"},
			{"method": "GET", "path": "/api/projects/{id}"},
			{"method": "DELETE", "path": "/api/projects/{id}"},
			{"method": "GET", "path": "/api/projects/{id}/tasks-ui"},
			{"method": "GET", "path": "/api/projects/{projectId}/tasks"},
			{"method": "POST", "path": "/api/projects/{projectId}/tasks"},
			{"method": "PUT", "path": "/api/projects/{projectId}/tasks/{taskId}"},
			{"method": "DELETE", "path": "/api/projects/{projectId}/tasks/{taskId}"},
			{"method": "POST", "path": "/api/v1/projects/{projectId}/schedule"},
		},
	})
}
