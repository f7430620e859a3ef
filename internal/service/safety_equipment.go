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

// SafetyEquipmentService handles business logic for safety equipment
type SafetyEquipmentService struct {
	repo      *repository.SafetyEquipmentRepository
	boatRepo  *repository.BoatRepository
	validator *validator.Validate
}

// NewSafetyEquipmentService creates a new safety equipment service
func NewSafetyEquipmentService(repo *repository.SafetyEquipmentRepository, boatRepo *repository.BoatRepository, validator *validator.Validate) *SafetyEquipmentService {
	return &SafetyEquipmentService{repo: repo, boatRepo: boatRepo, validator: validator}
}

// CreateSafetyEquipmentRequest represents the request to record safety equipment
type CreateSafetyEquipmentRequest struct {
	BoatID          uuid.UUID `json:"boat_id" validate:"required"`
	Name            string    `json:"name" validate:"required,min=1,max=120"`
	EquipmentType   string    `json:"equipment_type" validate:"omitempty,max=60"`
	Quantity        *int      `json:"quantity" validate:"omitempty,min=1"`
	ExpiryDate      *string   `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	LastInspectedAt *string   `json:"last_inspected_at" validate:"omitempty,datetime=2006-01-02"`
	Notes           string    `json:"notes"`
}

// UpdateSafetyEquipmentRequest represents the request to update safety equipment
type UpdateSafetyEquipmentRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=120"`
	EquipmentType   *string `json:"equipment_type" validate:"omitempty,max=60"`
	Quantity        *int    `json:"quantity" validate:"omitempty,min=1"`
	ExpiryDate      *string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	LastInspectedAt *string `json:"last_inspected_at" validate:"omitempty,datetime=2006-01-02"`
	Notes           *string `json:"notes"`
}

// SafetyEquipmentResponse represents a safety equipment item in API responses
type SafetyEquipmentResponse struct {
	ID              uuid.UUID `json:"id"`
	BoatID          uuid.UUID `json:"boat_id"`
	Name            string    `json:"name"`
	EquipmentType   string    `json:"equipment_type,omitempty"`
	Quantity        int       `json:"quantity"`
	ExpiryDate      string    `json:"expiry_date,omitempty"`
	LastInspectedAt string    `json:"last_inspected_at,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       string    `json:"created_at"`
}

// Create records a safety equipment item on a boat the caller owns
func (s *SafetyEquipmentService) Create(userID uuid.UUID, req *CreateSafetyEquipmentRequest) (*SafetyEquipmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.boatRepo.GetOwned(req.BoatID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBoatNotFound
		}
		return nil, fmt.Errorf("failed to get boat: %w", err)
	}

	item := &models.SafetyEquipment{
		BoatID:        req.BoatID,
		Name:          req.Name,
		EquipmentType: req.EquipmentType,
		Quantity:      1,
		Notes:         req.Notes,
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}

	var err error
	if item.ExpiryDate, err = parseDatePtr(req.ExpiryDate); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if item.LastInspectedAt, err = parseDatePtr(req.LastInspectedAt); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if err := s.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create safety equipment: %w", err)
	}
	return s.toResponse(item), nil
}

// ListByBoat retrieves safety equipment for a boat the caller owns
func (s *SafetyEquipmentService) ListByBoat(userID, boatID uuid.UUID) ([]SafetyEquipmentResponse, error) {
	if _, err := s.boatRepo.GetOwned(boatID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBoatNotFound
		}
		return nil, fmt.Errorf("failed to get boat: %w", err)
	}

	items, err := s.repo.GetByBoatID(boatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list safety equipment: %w", err)
	}

	responses := make([]SafetyEquipmentResponse, len(items))
	for i := range items {
		responses[i] = *s.toResponse(&items[i])
	}
	return responses, nil
}

// Update updates a safety equipment item the caller owns
func (s *SafetyEquipmentService) Update(userID, itemID uuid.UUID, req *UpdateSafetyEquipmentRequest) (*SafetyEquipmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	item, err := s.getOwned(userID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.EquipmentType != nil {
		item.EquipmentType = *req.EquipmentType
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.ExpiryDate != nil {
		if item.ExpiryDate, err = parseDatePtr(req.ExpiryDate); err != nil {
			return nil, apperrors.NewValidationError("", err.Error())
		}
	}
	if req.LastInspectedAt != nil {
		if item.LastInspectedAt, err = parseDatePtr(req.LastInspectedAt); err != nil {
			return nil, apperrors.NewValidationError("", err.Error())
		}
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}

	if err := s.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update safety equipment: %w", err)
	}
	return s.toResponse(item), nil
}

// Delete removes a safety equipment item the caller owns
func (s *SafetyEquipmentService) Delete(userID, itemID uuid.UUID) error {
	if _, err := s.getOwned(userID, itemID); err != nil {
		return err
	}
	if err := s.repo.Delete(itemID); err != nil {
		return fmt.Errorf("failed to delete safety equipment: %w", err)
	}
	return nil
}

func (s *SafetyEquipmentService) getOwned(userID, itemID uuid.UUID) (*models.SafetyEquipment, error) {
	item, err := s.repo.GetWithBoat(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSafetyEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to get safety equipment: %w", err)
	}
	if item.Boat == nil || item.Boat.OwnerID != userID {
		return nil, apperrors.ErrSafetyEquipmentNotFound
	}
	return item, nil
}

func (s *SafetyEquipmentService) toResponse(e *models.SafetyEquipment) *SafetyEquipmentResponse {
	resp := &SafetyEquipmentResponse{
		ID:            e.ID,
		BoatID:        e.BoatID,
		Name:          e.Name,
		EquipmentType: e.EquipmentType,
		Quantity:      e.Quantity,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
	if e.ExpiryDate != nil {
		resp.ExpiryDate = e.ExpiryDate.Format("2006-01-02")
	}
	if e.LastInspectedAt != nil {
		resp.LastInspectedAt = e.LastInspectedAt.Format("2006-01-02")
	}
	return resp
}
