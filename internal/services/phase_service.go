package services

import (
	"errors"

	"github.com/google/uuid"

	"constructax/internal/models"
	"constructax/internal/repositories"
)

type PhaseService struct {
	projectRepo *repositories.ProjectRepository
	phaseRepo   *repositories.PhaseRepository
}

func NewPhaseService(projectRepo *repositories.ProjectRepository, phaseRepo *repositories.PhaseRepository) *PhaseService {
	return &PhaseService{
		projectRepo: projectRepo,
		phaseRepo:   phaseRepo,
	}
}

type CreatePhaseRequest struct {
	PhaseName     string  `json:"phaseName" binding:"required"`
	WorkType      string  `json:"workType" binding:"required"`
	StartDate     string  `json:"startDate" binding:"required"`
	PhaseCost     float64 `json:"phaseCost" binding:"required"`
	TotalQuantity float64 `json:"totalQuantity" binding:"required"`
}

type UpdatePhaseRequest struct {
	PhaseName     *string        `json:"phaseName,omitempty"`
	WorkType      *string        `json:"workType,omitempty"`
	StartDate     *string        `json:"startDate,omitempty"`
	PhaseCost     *float64       `json:"phaseCost,omitempty"`
	TotalQuantity *float64       `json:"totalQuantity,omitempty"`
	Progress      *int           `json:"progress,omitempty"`
	Status        *models.Status `json:"status,omitempty"`
}

// ensureProject verifies the project exists and belongs to the user.
func (s *PhaseService) ensureProject(userID, projectID uuid.UUID) error {
	project, err := s.projectRepo.GetByIDAndUserID(projectID, userID)
	if err != nil {
		return err
	}
	if project == nil {
		return repositories.ErrNotOwned
	}
	return nil
}

func (s *PhaseService) CreatePhase(userID, projectID uuid.UUID, req CreatePhaseRequest) (*models.Phase, error) {
	if err := s.ensureProject(userID, projectID); err != nil {
		return nil, err
	}
	if !validDate(req.StartDate) {
		return nil, errors.New("startDate must be a valid date (YYYY-MM-DD)")
	}

	phase := &models.Phase{
		ProjectID:     projectID,
		PhaseName:     req.PhaseName,
		WorkType:      req.WorkType,
		StartDate:     req.StartDate,
		PhaseCost:     req.PhaseCost,
		TotalQuantity: req.TotalQuantity,
	}

	if err := s.phaseRepo.Create(phase); err != nil {
		return nil, err
	}

	return phase, nil
}

func (s *PhaseService) GetPhase(userID, projectID, phaseID uuid.UUID) (*models.Phase, error) {
	if err := s.ensureProject(userID, projectID); err != nil {
		return nil, err
	}

	phase, err := s.phaseRepo.GetByID(projectID, phaseID)
	if err != nil {
		return nil, err
	}
	if phase == nil {
		return nil, errors.New("phase not found")
	}
	return phase, nil
}

func (s *PhaseService) ListPhases(userID, projectID uuid.UUID) ([]models.Phase, error) {
	if err := s.ensureProject(userID, projectID); err != nil {
		return nil, err
	}
	return s.phaseRepo.GetByProjectID(projectID)
}

func (s *PhaseService) UpdatePhase(userID, projectID, phaseID uuid.UUID, req UpdatePhaseRequest) (*models.Phase, error) {
	phase, err := s.GetPhase(userID, projectID, phaseID)
	if err != nil {
		return nil, err
	}

	if req.PhaseName != nil {
		phase.PhaseName = *req.PhaseName
	}
	if req.WorkType != nil {
		phase.WorkType = *req.WorkType
	}
	if req.StartDate != nil {
		if !validDate(*req.StartDate) {
			return nil, errors.New("startDate must be a valid date (YYYY-MM-DD)")
		}
		phase.StartDate = *req.StartDate
	}
	if req.PhaseCost != nil {
		phase.PhaseCost = *req.PhaseCost
	}
	if req.TotalQuantity != nil {
		phase.TotalQuantity = *req.TotalQuantity
	}
	if req.Progress != nil {
		if *req.Progress < 0 || *req.Progress > 100 {
			return nil, errors.New("progress must be between 0 and 100")
		}
		phase.Progress = *req.Progress
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, errors.New("invalid status")
		}
		phase.Status = *req.Status
	}

	if err := s.phaseRepo.Update(phase); err != nil {
		return nil, err
	}

	return phase, nil
}

// DeletePhase removes the phase and its daily logs, logs first.
// Returns the number of daily logs removed.
func (s *PhaseService) DeletePhase(userID, projectID, phaseID uuid.UUID) (int64, error) {
	if err := s.ensureProject(userID, projectID); err != nil {
		return 0, err
	}
	return s.phaseRepo.DeleteCascade(projectID, phaseID)
}

func (s *PhaseService) AddImages(userID, projectID, phaseID uuid.UUID, urls []string) ([]string, error) {
	if len(urls) == 0 {
		return nil, errors.New("no image urls provided")
	}
	if _, err := s.GetPhase(userID, projectID, phaseID); err != nil {
		return nil, err
	}
	return s.phaseRepo.AppendImages(phaseID, urls)
}

func (s *PhaseService) RemoveImage(userID, projectID, phaseID uuid.UUID, url string) ([]string, error) {
	if url == "" {
		return nil, errors.New("image url is required")
	}
	if _, err := s.GetPhase(userID, projectID, phaseID); err != nil {
		return nil, err
	}
	return s.phaseRepo.RemoveImage(phaseID, url)
}
