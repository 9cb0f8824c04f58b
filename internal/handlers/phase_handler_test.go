package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreatePhaseRejectsMissingFields(t *testing.T) {
	h := NewPhaseHandler(nil)

	projectID := uuid.New()
	c, w := authedContext(t, http.MethodPost, "/api/v1/projects/"+projectID.String()+"/phases", gin.H{
		"phaseName": "Foundation",
		"workType":  "Concrete",
		"startDate": "2024-01-01",
		"phaseCost": 250000,
		// totalQuantity missing
	})
	c.Params = gin.Params{{Key: "id", Value: projectID.String()}}
	h.CreatePhase(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please fill in all required fields", decodeResponse(t, w).Message)
}

func TestCreatePhaseRejectsBadProjectID(t *testing.T) {
	h := NewPhaseHandler(nil)

	c, w := authedContext(t, http.MethodPost, "/api/v1/projects/oops/phases", nil)
	c.Params = gin.Params{{Key: "id", Value: "oops"}}
	h.CreatePhase(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid project id", decodeResponse(t, w).Message)
}

func TestRemoveImageRequiresURL(t *testing.T) {
	h := NewPhaseHandler(nil)

	projectID, phaseID := uuid.New(), uuid.New()
	c, w := authedContext(t, http.MethodDelete, "/api/v1/projects/p/phases/ph/images", gin.H{})
	c.Params = gin.Params{
		{Key: "id", Value: projectID.String()},
		{Key: "phaseId", Value: phaseID.String()},
	}
	h.RemoveImage(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
