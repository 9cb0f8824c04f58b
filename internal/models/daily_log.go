package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyLog is a dated free-text record scoped to a phase:
// today's work plus tomorrow's requirements.
type DailyLog struct {
	ID            uuid.UUID `json:"id"`
	PhaseID       uuid.UUID `json:"phaseId"`
	Date          string    `json:"date"`
	TodayLog      string    `json:"todayLog"`
	TomorrowNeeds string    `json:"tomorrowNeeds,omitempty"`
	Images        []string  `json:"images"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (d *DailyLog) Prepare() {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.Images == nil {
		d.Images = []string{}
	}
}
