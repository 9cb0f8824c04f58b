package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"constructax/internal/responses"
	"constructax/internal/services"
)

type PhaseHandler struct {
	phaseService *services.PhaseService
}

func NewPhaseHandler(phaseService *services.PhaseService) *PhaseHandler {
	return &PhaseHandler{phaseService: phaseService}
}

// phaseScope resolves the authenticated user and the project/phase path ids.
func phaseScope(c *gin.Context) (userID, projectID, phaseID uuid.UUID, ok bool) {
	userID, authed := currentUserID(c)
	if !authed {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}

	projectID, err := pathUUID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid project id")
		return uuid.Nil, uuid.Nil, uuid.Nil, false
	}

	if c.Param("phaseId") != "" {
		phaseID, err = pathUUID(c, "phaseId")
		if err != nil {
			responses.Fail(c, http.StatusBadRequest, err, "Invalid phase id")
			return uuid.Nil, uuid.Nil, uuid.Nil, false
		}
	}

	return userID, projectID, phaseID, true
}

// CreatePhase handles POST /api/v1/projects/:id/phases
func (h *PhaseHandler) CreatePhase(c *gin.Context) {
	userID, projectID, _, ok := phaseScope(c)
	if !ok {
		return
	}

	var req services.CreatePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please fill in all required fields")
		return
	}

	phase, err := h.phaseService.CreatePhase(userID, projectID, req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Failed to create phase")
		return
	}

	responses.Success(c, http.StatusCreated, phase, "Phase created successfully")
}

// ListPhases handles GET /api/v1/projects/:id/phases
func (h *PhaseHandler) ListPhases(c *gin.Context) {
	userID, projectID, _, ok := phaseScope(c)
	if !ok {
		return
	}

	phases, err := h.phaseService.ListPhases(userID, projectID)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Failed to retrieve phases")
		return
	}

	responses.Success(c, http.StatusOK, phases, "Phases retrieved successfully")
}

// GetPhase handles GET /api/v1/projects/:id/phases/:phaseId
func (h *PhaseHandler) GetPhase(c *gin.Context) {
	userID, projectID, phaseID, ok := phaseScope(c)
	if !ok {
		return
	}

	phase, err := h.phaseService.GetPhase(userID, projectID, phaseID)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Phase not found")
		return
	}

	responses.Success(c, http.StatusOK, phase, "Phase retrieved successfully")
}

// UpdatePhase handles PATCH /api/v1/projects/:id/phases/:phaseId
func (h *PhaseHandler) UpdatePhase(c *gin.Context) {
	userID, projectID, phaseID, ok := phaseScope(c)
	if !ok {
		return
	}

	var req services.UpdatePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	phase, err := h.phaseService.UpdatePhase(userID, projectID, phaseID, req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Failed to update phase")
		return
	}

	responses.Success(c, http.StatusOK, phase, "Phase updated successfully")
}

// DeletePhase handles DELETE /api/v1/projects/:id/phases/:phaseId
//
// The phase's daily logs are removed first, then the phase, atomically.
func (h *PhaseHandler) DeletePhase(c *gin.Context) {
	userID, projectID, phaseID, ok := phaseScope(c)
	if !ok {
		return
	}

	logsDeleted, err := h.phaseService.DeletePhase(userID, projectID, phaseID)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Phase not found or access denied")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"dailyLogsDeleted": logsDeleted}, "Phase and its logs deleted")
}

// AddImages handles POST /api/v1/projects/:id/phases/:phaseId/images
func (h *PhaseHandler) AddImages(c *gin.Context) {
	userID, projectID, phaseID, ok := phaseScope(c)
	if !ok {
		return
	}

	var req struct {
		URLs []string `json:"urls" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	images, err := h.phaseService.AddImages(userID, projectID, phaseID, req.URLs)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Failed to add images")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"images": images}, "Images added successfully")
}

// RemoveImage handles DELETE /api/v1/projects/:id/phases/:phaseId/images
func (h *PhaseHandler) RemoveImage(c *gin.Context) {
	userID, projectID, phaseID, ok := phaseScope(c)
	if !ok {
		return
	}

	var req struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	images, err := h.phaseService.RemoveImage(userID, projectID, phaseID, req.URL)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Failed to remove image")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"images": images}, "Image removed successfully")
}
