package services

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"constructax/internal/models"
	"constructax/internal/realtime"
	"constructax/internal/repositories"
)

type MaterialService struct {
	projectRepo *repositories.ProjectRepository
	logRepo     *repositories.MaterialLogRepository
	feed        *realtime.Feed
	logger      *zap.Logger
}

func NewMaterialService(projectRepo *repositories.ProjectRepository, logRepo *repositories.MaterialLogRepository, feed *realtime.Feed, logger *zap.Logger) *MaterialService {
	return &MaterialService{
		projectRepo: projectRepo,
		logRepo:     logRepo,
		feed:        feed,
		logger:      logger,
	}
}

type CreateMaterialLogRequest struct {
	Material      models.Material      `json:"material" binding:"required"`
	Amount        float64              `json:"amount" binding:"required"`
	Quantity      *string              `json:"quantity,omitempty"`
	Date          string               `json:"date" binding:"required"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	PaymentDone   *bool                `json:"paymentDone,omitempty"`
}

type UpdateMaterialLogRequest struct {
	Material      *models.Material      `json:"material,omitempty"`
	Amount        *float64              `json:"amount,omitempty"`
	Quantity      *string               `json:"quantity,omitempty"`
	Date          *string               `json:"date,omitempty"`
	PaymentMethod *models.PaymentMethod `json:"paymentMethod,omitempty"`
	PaymentDone   *bool                 `json:"paymentDone,omitempty"`
}

func (s *MaterialService) ensureProject(userID, projectID uuid.UUID) error {
	project, err := s.projectRepo.GetByIDAndUserID(projectID, userID)
	if err != nil {
		return err
	}
	if project == nil {
		return repositories.ErrNotOwned
	}
	return nil
}

func (s *MaterialService) CreateLog(userID, projectID uuid.UUID, req CreateMaterialLogRequest) (*models.MaterialLog, error) {
	if err := s.ensureProject(userID, projectID); err != nil {
		return nil, err
	}

	if !req.Material.Valid() {
		return nil, errors.New("invalid material type")
	}
	if req.PaymentMethod != "" && !req.PaymentMethod.Valid() {
		return nil, errors.New("invalid payment method")
	}
	if req.Amount < 0 {
		return nil, errors.New("amount must not be negative")
	}
	if !validDate(req.Date) {
		return nil, errors.New("date must be a valid date (YYYY-MM-DD)")
	}

	paymentDone := true
	if req.PaymentDone != nil {
		paymentDone = *req.PaymentDone
	}

	log := &models.MaterialLog{
		ProjectID:     projectID,
		Material:      req.Material,
		Amount:        req.Amount,
		Quantity:      req.Quantity,
		Date:          req.Date,
		PaymentMethod: req.PaymentMethod,
		PaymentDone:   paymentDone,
	}

	if err := s.logRepo.Create(log); err != nil {
		return nil, err
	}

	s.publish(projectID)
	return log, nil
}

func (s *MaterialService) GetLogs(userID, projectID uuid.UUID) ([]models.MaterialLog, error) {
	if err := s.ensureProject(userID, projectID); err != nil {
		return nil, err
	}
	return s.logRepo.GetByProjectID(projectID)
}

func (s *MaterialService) UpdateLog(userID, projectID, logID uuid.UUID, req UpdateMaterialLogRequest) (*models.MaterialLog, error) {
	if err := s.ensureProject(userID, projectID); err != nil {
		return nil, err
	}

	log, err := s.logRepo.GetByID(projectID, logID)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, errors.New("material log not found")
	}

	if req.Material != nil {
		if !req.Material.Valid() {
			return nil, errors.New("invalid material type")
		}
		log.Material = *req.Material
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, errors.New("amount must not be negative")
		}
		log.Amount = *req.Amount
	}
	if req.Quantity != nil {
		log.Quantity = req.Quantity
	}
	if req.Date != nil {
		if !validDate(*req.Date) {
			return nil, errors.New("date must be a valid date (YYYY-MM-DD)")
		}
		log.Date = *req.Date
	}
	if req.PaymentMethod != nil {
		if !req.PaymentMethod.Valid() {
			return nil, errors.New("invalid payment method")
		}
		log.PaymentMethod = *req.PaymentMethod
	}
	if req.PaymentDone != nil {
		log.PaymentDone = *req.PaymentDone
	}

	if err := s.logRepo.Update(log); err != nil {
		return nil, err
	}

	s.publish(projectID)
	return log, nil
}

func (s *MaterialService) DeleteLog(userID, projectID, logID uuid.UUID) error {
	if err := s.ensureProject(userID, projectID); err != nil {
		return err
	}
	if err := s.logRepo.Delete(projectID, logID); err != nil {
		return err
	}
	s.publish(projectID)
	return nil
}

// GetTotals returns the per-material grand totals, recomputed from the
// current rows (totals are never stored).
func (s *MaterialService) GetTotals(userID, projectID uuid.UUID) (MaterialTotals, error) {
	logs, err := s.GetLogs(userID, projectID)
	if err != nil {
		return nil, err
	}
	return CalculateMaterialTotals(logs), nil
}

// GetLogsByDate returns the per-date breakdown plus the sorted date list.
func (s *MaterialService) GetLogsByDate(userID, projectID uuid.UUID) (*DateBreakdown, error) {
	logs, err := s.GetLogs(userID, projectID)
	if err != nil {
		return nil, err
	}
	breakdown := GroupLogsByDate(logs)
	return &breakdown, nil
}

// Subscribe attaches a live listener to the project's material logs after
// verifying ownership. The caller owns the cancel func.
func (s *MaterialService) Subscribe(userID, projectID uuid.UUID) (<-chan []models.MaterialLog, func(), error) {
	if err := s.ensureProject(userID, projectID); err != nil {
		return nil, nil, err
	}
	ch, cancel := s.feed.Subscribe(projectID)
	return ch, cancel, nil
}

// publish pushes the full current result set to live subscribers.
// Best effort: a failed read is logged and dropped, the write that
// triggered it has already succeeded.
func (s *MaterialService) publish(projectID uuid.UUID) {
	logs, err := s.logRepo.GetByProjectID(projectID)
	if err != nil {
		s.logger.Warn("failed to load material logs for live feed",
			zap.String("project_id", projectID.String()),
			zap.Error(err),
		)
		return
	}
	s.feed.Publish(projectID, logs)
}
