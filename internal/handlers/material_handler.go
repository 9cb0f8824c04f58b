package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"constructax/internal/responses"
	"constructax/internal/services"
)

type MaterialLogHandler struct {
	materialService *services.MaterialService
	projectService  *services.ProjectService
	reportService   *services.ReportService
}

func NewMaterialLogHandler(materialService *services.MaterialService, projectService *services.ProjectService, reportService *services.ReportService) *MaterialLogHandler {
	return &MaterialLogHandler{
		materialService: materialService,
		projectService:  projectService,
		reportService:   reportService,
	}
}

func materialScope(c *gin.Context) (userID, projectID uuid.UUID, ok bool) {
	userID, authed := currentUserID(c)
	if !authed {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return uuid.Nil, uuid.Nil, false
	}

	projectID, err := pathUUID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid project id")
		return uuid.Nil, uuid.Nil, false
	}

	return userID, projectID, true
}

// CreateLog handles POST /api/v1/projects/:id/material-logs
func (h *MaterialLogHandler) CreateLog(c *gin.Context) {
	userID, projectID, ok := materialScope(c)
	if !ok {
		return
	}

	var req services.CreateMaterialLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please fill in all required fields")
		return
	}

	log, err := h.materialService.CreateLog(userID, projectID, req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Failed to create material log")
		return
	}

	responses.Success(c, http.StatusCreated, log, "Material log created successfully")
}

// ListLogs handles GET /api/v1/projects/:id/material-logs (one-shot snapshot)
func (h *MaterialLogHandler) ListLogs(c *gin.Context) {
	userID, projectID, ok := materialScope(c)
	if !ok {
		return
	}

	logs, err := h.materialService.GetLogs(userID, projectID)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Failed to retrieve material logs")
		return
	}

	responses.Success(c, http.StatusOK, logs, "Material logs retrieved successfully")
}

// UpdateLog handles PATCH /api/v1/projects/:id/material-logs/:logId
func (h *MaterialLogHandler) UpdateLog(c *gin.Context) {
	userID, projectID, ok := materialScope(c)
	if !ok {
		return
	}

	logID, err := pathUUID(c, "logId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid log id")
		return
	}

	var req services.UpdateMaterialLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	log, err := h.materialService.UpdateLog(userID, projectID, logID, req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Failed to update material log")
		return
	}

	responses.Success(c, http.StatusOK, log, "Material log updated successfully")
}

// DeleteLog handles DELETE /api/v1/projects/:id/material-logs/:logId
func (h *MaterialLogHandler) DeleteLog(c *gin.Context) {
	userID, projectID, ok := materialScope(c)
	if !ok {
		return
	}

	logID, err := pathUUID(c, "logId")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid log id")
		return
	}

	if err := h.materialService.DeleteLog(userID, projectID, logID); err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Material log not found or access denied")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Material log deleted successfully")
}

// GetTotals handles GET /api/v1/projects/:id/material-logs/totals
func (h *MaterialLogHandler) GetTotals(c *gin.Context) {
	userID, projectID, ok := materialScope(c)
	if !ok {
		return
	}

	totals, err := h.materialService.GetTotals(userID, projectID)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Failed to calculate material totals")
		return
	}

	responses.Success(c, http.StatusOK, totals, "Material totals calculated successfully")
}

// GetLogsByDate handles GET /api/v1/projects/:id/material-logs/by-date
func (h *MaterialLogHandler) GetLogsByDate(c *gin.Context) {
	userID, projectID, ok := materialScope(c)
	if !ok {
		return
	}

	breakdown, err := h.materialService.GetLogsByDate(userID, projectID)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Failed to group material logs")
		return
	}

	responses.Success(c, http.StatusOK, breakdown, "Material logs grouped successfully")
}

// StreamLogs handles GET /api/v1/projects/:id/material-logs/stream
//
// Server-sent events. Every event carries the full current result set;
// clients replace their copy rather than patch it. The subscription is
// released when the client disconnects.
func (h *MaterialLogHandler) StreamLogs(c *gin.Context) {
	userID, projectID, ok := materialScope(c)
	if !ok {
		return
	}

	ch, cancel, err := h.materialService.Subscribe(userID, projectID)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Project not found or access denied")
		return
	}
	defer cancel()

	// Initial snapshot so new listeners do not wait for the next write.
	logs, err := h.materialService.GetLogs(userID, projectID)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve material logs")
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.SSEvent("materialLogs", logs)
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()
	for {
		select {
		case <-clientGone:
			return
		case snapshot, open := <-ch:
			if !open {
				return
			}
			c.SSEvent("materialLogs", snapshot)
			c.Writer.Flush()
		}
	}
}

// DownloadReport handles GET /api/v1/projects/:id/material-logs/report
func (h *MaterialLogHandler) DownloadReport(c *gin.Context) {
	userID, projectID, ok := materialScope(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(userID, projectID)
	if err != nil {
		responses.Fail(c, http.StatusNotFound, err, "Project not found or access denied")
		return
	}

	logs, err := h.materialService.GetLogs(userID, projectID)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to retrieve material logs")
		return
	}

	pdf, err := h.reportService.BuildEstimationReport(project.Name, logs)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to generate report")
		return
	}

	filename := fmt.Sprintf("%s_Material_Report_%s.pdf", project.Name, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
