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

// HealthCheckService handles business logic for health checks
type HealthCheckService struct {
	repo      *repository.HealthCheckRepository
	boatRepo  *repository.BoatRepository
	validator *validator.Validate
}

// NewHealthCheckService creates a new health check service
func NewHealthCheckService(repo *repository.HealthCheckRepository, boatRepo *repository.BoatRepository, validator *validator.Validate) *HealthCheckService {
	return &HealthCheckService{repo: repo, boatRepo: boatRepo, validator: validator}
}

// CreateHealthCheckRequest represents the request to record a health check
type CreateHealthCheckRequest struct {
	BoatID      uuid.UUID  `json:"boat_id" validate:"required"`
	ComponentID *uuid.UUID `json:"component_id"`
	CheckType   string     `json:"check_type" validate:"required"`
	Status      string     `json:"status" validate:"omitempty"`
	Notes       string     `json:"notes"`
	CheckedAt   string     `json:"checked_at" validate:"required,datetime=2006-01-02"`
}

// HealthCheckResponse represents a health check in API responses
type HealthCheckResponse struct {
	ID          uuid.UUID  `json:"id"`
	BoatID      uuid.UUID  `json:"boat_id"`
	ComponentID *uuid.UUID `json:"component_id,omitempty"`
	CheckType   string     `json:"check_type"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes,omitempty"`
	CheckedAt   string     `json:"checked_at"`
	CreatedAt   string     `json:"created_at"`
}

// HealthCheckListResponse represents a paginated health check listing
type HealthCheckListResponse struct {
	Checks   []HealthCheckResponse `json:"checks"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

// Create records a point-in-time observation on a boat the caller owns
func (s *HealthCheckService) Create(userID uuid.UUID, req *CreateHealthCheckRequest) (*HealthCheckResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.boatRepo.GetOwned(req.BoatID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBoatNotFound
		}
		return nil, fmt.Errorf("failed to get boat: %w", err)
	}

	checkType := models.HealthCheckType(req.CheckType)
	if !checkType.IsValid() {
		return nil, apperrors.NewValidationError("", fmt.Sprintf("invalid check type: %s", req.CheckType))
	}

	status := models.HealthCheckStatus(req.Status)
	if req.Status == "" {
		status = models.HealthCheckStatusOK
	}
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("", fmt.Sprintf("invalid status: %s", req.Status))
	}

	checkedAt, err := time.ParseInLocation("2006-01-02", req.CheckedAt, time.UTC)
	if err != nil {
		return nil, apperrors.NewValidationError("", fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", req.CheckedAt))
	}

	check := &models.HealthCheck{
		BoatID:      req.BoatID,
		ComponentID: req.ComponentID,
		CheckType:   checkType,
		Status:      status,
		Notes:       req.Notes,
		CheckedAt:   checkedAt,
	}

	if err := s.repo.Create(check); err != nil {
		return nil, fmt.Errorf("failed to create health check: %w", err)
	}
	return s.toResponse(check), nil
}

// ListByBoat retrieves health checks for a boat the caller owns
func (s *HealthCheckService) ListByBoat(userID, boatID uuid.UUID, page, pageSize int) (*HealthCheckListResponse, error) {
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

	checks, total, err := s.repo.GetByBoatID(boatID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list health checks: %w", err)
	}

	responses := make([]HealthCheckResponse, len(checks))
	for i := range checks {
		responses[i] = *s.toResponse(&checks[i])
	}

	return &HealthCheckListResponse{
		Checks:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Delete removes a health check the caller owns
func (s *HealthCheckService) Delete(userID, checkID uuid.UUID) error {
	check, err := s.repo.GetWithBoat(checkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrHealthCheckNotFound
		}
		return fmt.Errorf("failed to get health check: %w", err)
	}
	if check.Boat == nil || check.Boat.OwnerID != userID {
		return apperrors.ErrHealthCheckNotFound
	}
	if err := s.repo.Delete(checkID); err != nil {
		return fmt.Errorf("failed to delete health check: %w", err)
	}
	return nil
}

func (s *HealthCheckService) toResponse(c *models.HealthCheck) *HealthCheckResponse {
	return &HealthCheckResponse{
		ID:          c.ID,
		BoatID:      c.BoatID,
		ComponentID: c.ComponentID,
		CheckType:   string(c.CheckType),
		Status:      string(c.Status),
		Notes:       c.Notes,
		CheckedAt:   c.CheckedAt.Format("2006-01-02"),
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}
