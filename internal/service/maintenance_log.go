package service

import (
	"errors"
	"fmt"
	"time"

	"boatlog-backend/internal/database/models"
	apperrors "boatlog-backend/internal/errors"
	"boatlog-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaintenanceLogService handles business logic for maintenance logs
type MaintenanceLogService struct {
	repo      *repository.MaintenanceLogRepository
	boatRepo  *repository.BoatRepository
	validator *validator.Validate
}

// NewMaintenanceLogService creates a new maintenance log service
func NewMaintenanceLogService(repo *repository.MaintenanceLogRepository, boatRepo *repository.BoatRepository, validator *validator.Validate) *MaintenanceLogService {
	return &MaintenanceLogService{repo: repo, boatRepo: boatRepo, validator: validator}
}

// CreateMaintenanceLogRequest represents the request to create a maintenance log
type CreateMaintenanceLogRequest struct {
	BoatID      uuid.UUID  `json:"boat_id" validate:"required"`
	ComponentID *uuid.UUID `json:"component_id"`
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description"`
	PerformedAt string     `json:"performed_at" validate:"required,datetime=2006-01-02"`
	EngineHours *int       `json:"engine_hours" validate:"omitempty,min=0"`
	Cost        *float64   `json:"cost" validate:"omitempty,min=0"`
}

// MaintenanceLogResponse represents a maintenance log in API responses
type MaintenanceLogResponse struct {
	ID          uuid.UUID  `json:"id"`
	BoatID      uuid.UUID  `json:"boat_id"`
	ComponentID *uuid.UUID `json:"component_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	PerformedAt string     `json:"performed_at"`
	EngineHours *int       `json:"engine_hours,omitempty"`
	Cost        *float64   `json:"cost,omitempty"`
	CreatedAt   string     `json:"created_at"`
}

// MaintenanceLogListResponse represents a paginated log listing
type MaintenanceLogListResponse struct {
	Logs     []MaintenanceLogResponse `json:"logs"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
}

// Create records a maintenance action on a boat the caller owns. Log entries
// are immutable once written; there is no update operation.
func (s *MaintenanceLogService) Create(userID uuid.UUID, req *CreateMaintenanceLogRequest) (*MaintenanceLogResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.boatRepo.GetOwned(req.BoatID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBoatNotFound
		}
		return nil, fmt.Errorf("failed to get boat: %w", err)
	}

	performedAt, err := time.ParseInLocation("2006-01-02", req.PerformedAt, time.UTC)
	if err != nil {
		return nil, apperrors.NewValidationError("", fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", req.PerformedAt))
	}

	log := &models.MaintenanceLog{
		BoatID:      req.BoatID,
		ComponentID: req.ComponentID,
		Title:       req.Title,
		Description: req.Description,
		PerformedAt: performedAt,
		EngineHours: req.EngineHours,
		Cost:        req.Cost,
	}

	if err := s.repo.Create(log); err != nil {
		return nil, fmt.Errorf("failed to create maintenance log: %w", err)
	}
	return s.toResponse(log), nil
}

// ListByBoat retrieves maintenance logs for a boat the caller owns
func (s *MaintenanceLogService) ListByBoat(userID, boatID uuid.UUID, page, pageSize int) (*MaintenanceLogListResponse, error) {
	if _, err := s.boatRepo.GetOwned(boatID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBoatNotFound
		}
		return nil, fmt.Errorf("failed to get boat: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	logs, total, err := s.repo.GetByBoatID(boatID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance logs: %w", err)
	}

	responses := make([]MaintenanceLogResponse, len(logs))
	for i := range logs {
		responses[i] = *s.toResponse(&logs[i])
	}

	return &MaintenanceLogListResponse{
		Logs:     responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Delete removes a log entry the caller owns. Correction of a mis-entered
// record is the one allowed mutation.
func (s *MaintenanceLogService) Delete(userID, logID uuid.UUID) error {
	log, err := s.repo.GetWithBoat(logID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMaintenanceLogNotFound
		}
		return fmt.Errorf("failed to get maintenance log: %w", err)
	}
	if log.Boat == nil || log.Boat.OwnerID != userID {
		return apperrors.ErrMaintenanceLogNotFound
	}
	if err := s.repo.Delete(logID); err != nil {
		return fmt.Errorf("failed to delete maintenance log: %w", err)
	}
	return nil
}

func (s *MaintenanceLogService) toResponse(l *models.MaintenanceLog) *MaintenanceLogResponse {
	return &MaintenanceLogResponse{
		ID:          l.ID,
		BoatID:      l.BoatID,
		ComponentID: l.ComponentID,
		Title:       l.Title,
		Description: l.Description,
		PerformedAt: l.PerformedAt.Format("2006-01-02"),
		EngineHours: l.EngineHours,
		Cost:        l.Cost,
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
	}
}
