package services

import (
	"errors"

	"github.com/google/uuid"

	"constructax/internal/models"
	"constructax/internal/repositories"
)

type DailyLogService struct {
	projectRepo  *repositories.ProjectRepository
	phaseRepo    *repositories.PhaseRepository
	dailyLogRepo *repositories.DailyLogRepository
}

func NewDailyLogService(projectRepo *repositories.ProjectRepository, phaseRepo *repositories.PhaseRepository, dailyLogRepo *repositories.DailyLogRepository) *DailyLogService {
	return &DailyLogService{
		projectRepo:  projectRepo,
		phaseRepo:    phaseRepo,
		dailyLogRepo: dailyLogRepo,
	}
}

type CreateDailyLogRequest struct {
	Date          string `json:"date" binding:"required"`
	TodayLog      string `json:"todayLog" binding:"required"`
	TomorrowNeeds string `json:"tomorrowNeeds"`
}

type UpdateDailyLogRequest struct {
	Date          *string `json:"date,omitempty"`
	TodayLog      *string `json:"todayLog,omitempty"`
	TomorrowNeeds *string `json:"tomorrowNeeds,omitempty"`
}

// ensurePhase walks the ownership chain: user -> project -> phase.
func (s *DailyLogService) ensurePhase(userID, projectID, phaseID uuid.UUID) error {
	project, err := s.projectRepo.GetByIDAndUserID(projectID, userID)
	if err != nil {
		return err
	}
	if project == nil {
		return repositories.ErrNotOwned
	}

	phase, err := s.phaseRepo.GetByID(projectID, phaseID)
	if err != nil {
		return err
	}
	if phase == nil {
		return errors.New("phase not found")
	}
	return nil
}

func (s *DailyLogService) CreateLog(userID, projectID, phaseID uuid.UUID, req CreateDailyLogRequest) (*models.DailyLog, error) {
	if err := s.ensurePhase(userID, projectID, phaseID); err != nil {
		return nil, err
	}
	if !validDate(req.Date) {
		return nil, errors.New("date must be a valid date (YYYY-MM-DD)")
	}

	log := &models.DailyLog{
		PhaseID:       phaseID,
		Date:          req.Date,
		TodayLog:      req.TodayLog,
		TomorrowNeeds: req.TomorrowNeeds,
	}

	if err := s.dailyLogRepo.Create(log); err != nil {
		return nil, err
	}

	return log, nil
}

func (s *DailyLogService) GetLog(userID, projectID, phaseID, logID uuid.UUID) (*models.DailyLog, error) {
	if err := s.ensurePhase(userID, projectID, phaseID); err != nil {
		return nil, err
	}

	log, err := s.dailyLogRepo.GetByID(phaseID, logID)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, errors.New("daily log not found")
	}
	return log, nil
}

func (s *DailyLogService) ListLogs(userID, projectID, phaseID uuid.UUID) ([]models.DailyLog, error) {
	if err := s.ensurePhase(userID, projectID, phaseID); err != nil {
		return nil, err
	}
	return s.dailyLogRepo.GetByPhaseID(phaseID)
}

func (s *DailyLogService) UpdateLog(userID, projectID, phaseID, logID uuid.UUID, req UpdateDailyLogRequest) (*models.DailyLog, error) {
	log, err := s.GetLog(userID, projectID, phaseID, logID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		if !validDate(*req.Date) {
			return nil, errors.New("date must be a valid date (YYYY-MM-DD)")
		}
		log.Date = *req.Date
	}
	if req.TodayLog != nil {
		if *req.TodayLog == "" {
			return nil, errors.New("todayLog must not be empty")
		}
		log.TodayLog = *req.TodayLog
	}
	if req.TomorrowNeeds != nil {
		log.TomorrowNeeds = *req.TomorrowNeeds
	}

	if err := s.dailyLogRepo.Update(log); err != nil {
		return nil, err
	}

	return log, nil
}

func (s *DailyLogService) DeleteLog(userID, projectID, phaseID, logID uuid.UUID) error {
	if err := s.ensurePhase(userID, projectID, phaseID); err != nil {
		return err
	}
	return s.dailyLogRepo.Delete(phaseID, logID)
}

func (s *DailyLogService) AddImages(userID, projectID, phaseID, logID uuid.UUID, urls []string) ([]string, error) {
	if len(urls) == 0 {
		return nil, errors.New("no image urls provided")
	}
	if _, err := s.GetLog(userID, projectID, phaseID, logID); err != nil {
		return nil, err
	}
	return s.dailyLogRepo.AppendImages(logID, urls)
}

func (s *DailyLogService) RemoveImage(userID, projectID, phaseID, logID uuid.UUID, url string) ([]string, error) {
	if url == "" {
		return nil, errors.New("image url is required")
	}
	if _, err := s.GetLog(userID, projectID, phaseID, logID); err != nil {
		return nil, err
	}
	return s.dailyLogRepo.RemoveImage(logID, url)
}
