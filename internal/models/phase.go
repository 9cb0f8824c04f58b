package models

import (
	"time"

	"github.com/google/uuid"
)

// Phase is a named stage of work within a project (e.g. foundation),
// with its own budget and quantity target. Deleting a phase removes its
// daily logs first.
type Phase struct {
	ID            uuid.UUID `json:"id"`
	ProjectID     uuid.UUID `json:"projectId"`
	PhaseName     string    `json:"phaseName"`
	WorkType      string    `json:"workType"`
	StartDate     string    `json:"startDate"`
	PhaseCost     float64   `json:"phaseCost"`
	TotalQuantity float64   `json:"totalQuantity"`
	Progress      int       `json:"progress"` // 0-100
	Status        Status    `json:"status"`
	Images        []string  `json:"images"` // ordered, insertion order
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (p *Phase) Prepare() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = StatusOngoing
	}
	if p.Images == nil {
		p.Images = []string{}
	}
}
