package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"constructax/internal/responses"
	"constructax/internal/services"
)

type DailyLogHandler struct {
	dailyLogService *services.DailyLogService
}

func NewDailyLogHandler(dailyLogService *services.DailyLogService) *DailyLogHandler {
	return &DailyLogHandler{dailyLogService: dailyLogService}
}

// logScope resolves the authenticated user and the project/phase/log path ids.
func logScope(c *gin.Context) (userID, projectID, phaseID, logID uuid.UUID, ok bool) {
	userID, projectID, phaseID, ok = phaseScope(c)
	if !ok {
		return
	}

	if c.Param("logId") != "" {
		var err error
		logID, err = pathUUID(c, "logId")
		if err != nil {
			responses.Fail(c, http.StatusBadRequest, err, "Invalid log id")
			return uuid.Nil, uuid.Nil, uuid.Nil, uuid.Nil, false
		}
	}

	return userID, projectID, phaseID, logID, true
}

// CreateLog handles POST /api/v1/projects/:id/phases/:phaseId/daily-logs
func (h *DailyLogHandler) CreateLog(c *gin.Context) {
	userID, projectID, phaseID, _, ok := logScope(c)
	if !ok {
		return
	}

	var req services.CreateDailyLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please fill in all required fields")
		return
	}

	log, err := h.dailyLogService.CreateLog(userID, projectID, phaseID, req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Failed to create daily log")
		return
	}

	responses.Success(c, http.StatusCreated, log, "Daily log created successfully")
}

// ListLogs handles GET /api/v1/projects/:id/phases/:phaseId/daily-logs
func (h *DailyLogHandler) ListLogs(c *gin.Context) {
	userID, projectID, phaseID, _, ok := logScope(c)
	if !ok {
		return
	}

	logs, err := h.dailyLogService.ListLogs(userID, projectID, phaseID)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Failed to retrieve daily logs")
		return
	}

	responses.Success(c, http.StatusOK, logs, "Daily logs retrieved successfully")
}

// GetLog handles GET /api/v1/projects/:id/phases/:phaseId/daily-logs/:logId
func (h *DailyLogHandler) GetLog(c *gin.Context) {
	userID, projectID, phaseID, logID, ok := logScope(c)
	if !ok {
		return
	}

	log, err := h.dailyLogService.GetLog(userID, projectID, phaseID, logID)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Daily log not found")
		return
	}

	responses.Success(c, http.StatusOK, log, "Daily log retrieved successfully")
}

// UpdateLog handles PATCH /api/v1/projects/:id/phases/:phaseId/daily-logs/:logId
func (h *DailyLogHandler) UpdateLog(c *gin.Context) {
	userID, projectID, phaseID, logID, ok := logScope(c)
	if !ok {
		return
	}

	var req services.UpdateDailyLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	log, err := h.dailyLogService.UpdateLog(userID, projectID, phaseID, logID, req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Failed to update daily log")
		return
	}

	responses.Success(c, http.StatusOK, log, "Daily log updated successfully")
}

// DeleteLog handles DELETE /api/v1/projects/:id/phases/:phaseId/daily-logs/:logId
func (h *DailyLogHandler) DeleteLog(c *gin.Context) {
	userID, projectID, phaseID, logID, ok := logScope(c)
	if !ok {
		return
	}

	if err := h.dailyLogService.DeleteLog(userID, projectID, phaseID, logID); err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Daily log not found or access denied")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Daily log deleted successfully")
}

// AddImages handles POST /api/v1/projects/:id/phases/:phaseId/daily-logs/:logId/images
func (h *DailyLogHandler) AddImages(c *gin.Context) {
	userID, projectID, phaseID, logID, ok := logScope(c)
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

	images, err := h.dailyLogService.AddImages(userID, projectID, phaseID, logID, req.URLs)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Failed to add images")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"images": images}, "Images added successfully")
}

// RemoveImage handles DELETE /api/v1/projects/:id/phases/:phaseId/daily-logs/:logId/images
func (h *DailyLogHandler) RemoveImage(c *gin.Context) {
	userID, projectID, phaseID, logID, ok := logScope(c)
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

	images, err := h.dailyLogService.RemoveImage(userID, projectID, phaseID, logID, req.URL)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Failed to remove image")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"images": images}, "Image removed successfully")
}
