package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-manager-api/internal/dto"
	apierrors "github.com/yukikurage/project-manager-api/internal/errors"
	"github.com/yukikurage/project-manager-api/internal/middleware"
	"github.com/yukikurage/project-manager-api/internal/services"
	"github.com/yukikurage/project-manager-api/internal/utils"
)

// ProjectHandler serves the owner-scoped project endpoints.
type ProjectHandler struct {
	projectService     *services.ProjectService
	taskManagerBaseURL string
}

// NewProjectHandler creates a new ProjectHandler. taskManagerBaseURL is the
// tracker UI that TasksUI redirects to.
func NewProjectHandler(projectService *services.ProjectService, taskManagerBaseURL string) *ProjectHandler {
	return &ProjectHandler{
		projectService:     projectService,
		taskManagerBaseURL: strings.TrimRight(taskManagerBaseURL, "/"),
	}
}

// ListProjects returns one page of the caller's projects, newest first
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetPaginationParams(c)
	projects, total, params, err := h.projectService.ListProjects(c.Request.Context(), userID, params.Page, params.PageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectListResponse(projects, params.Page, params.PageSize, total))
}

// CreateProject creates a project owned by the caller
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req dto.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), services.CreateProjectInput{
		OwnerID:     userID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Location", "/api/projects/"+utils.FormatID(project.ID))
	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// GetProject returns a project with its tasks
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), userID, middleware.GetIDParam(c, "id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDetailDTO(*project))
}

// DeleteProject deletes a project and all its tasks
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), userID, middleware.GetIDParam(c, "id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// TasksUI redirects the owner to the tracker UI filtered to this project
func (h *ProjectHandler) TasksUI(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	projectID := middleware.GetIDParam(c, "id")
	if err := h.projectService.EnsureProjectOwner(c.Request.Context(), userID, projectID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, h.taskManagerBaseURL+"/?projectId="+utils.FormatID(projectID))
}
