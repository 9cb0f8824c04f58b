package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"constructax/internal/models"
	"constructax/internal/repositories"
)

type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

func NewProjectService(projectRepo *repositories.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

type CreateProjectRequest struct {
	Name            string        `json:"name" binding:"required"`
	StartDate       string        `json:"startDate" binding:"required"`
	EstimatedCost   float64       `json:"estimatedCost"`
	Status          models.Status `json:"status"`
	ProjectImageURL string        `json:"projectImageUrl"`
}

type UpdateProjectRequest struct {
	Name            *string        `json:"name,omitempty"`
	StartDate       *string        `json:"startDate,omitempty"`
	EstimatedCost   *float64       `json:"estimatedCost,omitempty"`
	Status          *models.Status `json:"status,omitempty"`
	CompletedDate   *string        `json:"completedDate,omitempty"`
	ProjectImageURL *string        `json:"projectImageUrl,omitempty"`
}

// validDate reports whether s is a calendar date in YYYY-MM-DD form.
func validDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

func (s *ProjectService) CreateProject(userID uuid.UUID, req CreateProjectRequest) (*models.Project, error) {
	if !validDate(req.StartDate) {
		return nil, errors.New("startDate must be a valid date (YYYY-MM-DD)")
	}
	if req.EstimatedCost < 0 {
		return nil, errors.New("estimatedCost must not be negative")
	}
	if req.Status != "" && !req.Status.Valid() {
		return nil, errors.New("invalid status")
	}

	project := &models.Project{
		UserID:          userID,
		Name:            req.Name,
		StartDate:       req.StartDate,
		EstimatedCost:   req.EstimatedCost,
		Status:          req.Status,
		ProjectImageURL: req.ProjectImageURL,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *ProjectService) GetProject(userID, projectID uuid.UUID) (*models.Project, error) {
	project, err := s.projectRepo.GetByIDAndUserID(projectID, userID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, repositories.ErrNotOwned
	}
	return project, nil
}

func (s *ProjectService) ListProjects(userID uuid.UUID) ([]models.Project, error) {
	return s.projectRepo.GetByUserID(userID)
}

func (s *ProjectService) UpdateProject(userID, projectID uuid.UUID, req UpdateProjectRequest) (*models.Project, error) {
	project, err := s.GetProject(userID, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.StartDate != nil {
		if !validDate(*req.StartDate) {
			return nil, errors.New("startDate must be a valid date (YYYY-MM-DD)")
		}
		project.StartDate = *req.StartDate
	}
	if req.EstimatedCost != nil {
		if *req.EstimatedCost < 0 {
			return nil, errors.New("estimatedCost must not be negative")
		}
		project.EstimatedCost = *req.EstimatedCost
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, errors.New("invalid status")
		}
		project.Status = *req.Status
	}
	if req.CompletedDate != nil {
		if !validDate(*req.CompletedDate) {
			return nil, errors.New("completedDate must be a valid date (YYYY-MM-DD)")
		}
		project.CompletedDate = req.CompletedDate
	}
	if req.ProjectImageURL != nil {
		project.ProjectImageURL = *req.ProjectImageURL
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}

	return project, nil
}

// DeleteProject cascades: phases, their daily logs, and the project's
// material logs all go in one atomic operation.
func (s *ProjectService) DeleteProject(userID, projectID uuid.UUID) (*repositories.CascadeResult, error) {
	return s.projectRepo.DeleteCascadeByIDAndUserID(projectID, userID)
}
