package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-manager-api/internal/dto"
	apierrors "github.com/yukikurage/project-manager-api/internal/errors"
	"github.com/yukikurage/project-manager-api/internal/middleware"
	"github.com/yukikurage/project-manager-api/internal/scheduler"
	"github.com/yukikurage/project-manager-api/internal/services"
)

// ScheduleHandler computes day-range schedules for an owned project.
type ScheduleHandler struct {
	projectService *services.ProjectService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(projectService *services.ProjectService) *ScheduleHandler {
	return &ScheduleHandler{projectService: projectService}
}

// Generate lays the requested tasks out on consecutive days
func (h *ScheduleHandler) Generate(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.projectService.EnsureProjectOwner(c.Request.Context(), userID, middleware.GetIDParam(c, "id")); err != nil {
		respondServiceError(c, err)
		return
	}

	var req dto.ScheduleRequest
	if !bindJSON(c, &req) {
		return
	}

	slots := scheduler.Schedule(req.ToScheduleInputs(), *req.StartDate)
	c.JSON(http.StatusOK, dto.ToScheduleResponse(slots))
}
