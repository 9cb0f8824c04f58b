package models

// Status is the lifecycle state shared by projects and phases.
type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	return s == StatusOngoing || s == StatusCompleted
}
