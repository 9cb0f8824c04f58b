package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is the root entity. Every phase, daily log and material log
// hangs off a project and must not outlive it.
type Project struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	Name            string    `json:"name"`
	StartDate       string    `json:"startDate"` // calendar date, YYYY-MM-DD
	EstimatedCost   float64   `json:"estimatedCost"`
	Status          Status    `json:"status"` // 'ongoing' or 'completed'
	CompletedDate   *string   `json:"completedDate,omitempty"`
	ProjectImageURL string    `json:"projectImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (p *Project) Prepare() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = StatusOngoing
	}
}
