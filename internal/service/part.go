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

// PartService handles business logic for parts
type PartService struct {
	repo          *repository.PartRepository
	componentRepo *repository.ComponentRepository
	validator     *validator.Validate
}

// NewPartService creates a new part service
func NewPartService(repo *repository.PartRepository, componentRepo *repository.ComponentRepository, validator *validator.Validate) *PartService {
	return &PartService{repo: repo, componentRepo: componentRepo, validator: validator}
}

// CreatePartRequest represents the request to create a part
type CreatePartRequest struct {
	ComponentID uuid.UUID `json:"component_id" validate:"required"`
	Name        string    `json:"name" validate:"required,min=1,max=120"`
	PartNumber  string    `json:"part_number" validate:"omitempty,max=120"`
	Quantity    *int      `json:"quantity" validate:"omitempty,min=0"`
	Supplier    string    `json:"supplier" validate:"omitempty,max=120"`
	Notes       string    `json:"notes"`
}

// UpdatePartRequest represents the request to update a part
type UpdatePartRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=120"`
	PartNumber *string `json:"part_number" validate:"omitempty,max=120"`
	Quantity   *int    `json:"quantity" validate:"omitempty,min=0"`
	Supplier   *string `json:"supplier" validate:"omitempty,max=120"`
	Notes      *string `json:"notes"`
}

// PartResponse represents a part in API responses
type PartResponse struct {
	ID          uuid.UUID `json:"id"`
	ComponentID uuid.UUID `json:"component_id"`
	Name        string    `json:"name"`
	PartNumber  string    `json:"part_number,omitempty"`
	Quantity    int       `json:"quantity"`
	Supplier    string    `json:"supplier,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   string    `json:"created_at"`
}

// Create creates a part under a component the caller owns
func (s *PartService) Create(userID uuid.UUID, req *CreatePartRequest) (*PartResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if err := s.ownsComponent(userID, req.ComponentID); err != nil {
		return nil, err
	}

	part := &models.Part{
		ComponentID: req.ComponentID,
		Name:        req.Name,
		PartNumber:  req.PartNumber,
		Quantity:    1,
		Supplier:    req.Supplier,
		Notes:       req.Notes,
	}
	if req.Quantity != nil {
		part.Quantity = *req.Quantity
	}

	if err := s.repo.Create(part); err != nil {
		return nil, fmt.Errorf("failed to create part: %w", err)
	}
	return s.toResponse(part), nil
}

// ListByComponent retrieves parts for a component the caller owns
func (s *PartService) ListByComponent(userID, componentID uuid.UUID) ([]PartResponse, error) {
	if err := s.ownsComponent(userID, componentID); err != nil {
		return nil, err
	}

	parts, err := s.repo.GetByComponentID(componentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}

	responses := make([]PartResponse, len(parts))
	for i := range parts {
		responses[i] = *s.toResponse(&parts[i])
	}
	return responses, nil
}

// Update updates a part the caller owns
func (s *PartService) Update(userID, partID uuid.UUID, req *UpdatePartRequest) (*PartResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	part, err := s.getOwned(userID, partID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		part.Name = *req.Name
	}
	if req.PartNumber != nil {
		part.PartNumber = *req.PartNumber
	}
	if req.Quantity != nil {
		part.Quantity = *req.Quantity
	}
	if req.Supplier != nil {
		part.Supplier = *req.Supplier
	}
	if req.Notes != nil {
		part.Notes = *req.Notes
	}

	if err := s.repo.Update(part); err != nil {
		return nil, fmt.Errorf("failed to update part: %w", err)
	}
	return s.toResponse(part), nil
}

// Delete deletes a part the caller owns
func (s *PartService) Delete(userID, partID uuid.UUID) error {
	if _, err := s.getOwned(userID, partID); err != nil {
		return err
	}
	if err := s.repo.Delete(partID); err != nil {
		return fmt.Errorf("failed to delete part: %w", err)
	}
	return nil
}

// ownsComponent verifies the caller owns the boat that owns the component
func (s *PartService) ownsComponent(userID, componentID uuid.UUID) error {
	component, err := s.componentRepo.GetWithBoat(componentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrComponentNotFound
		}
		return fmt.Errorf("failed to get component: %w", err)
	}
	if component.Boat == nil || component.Boat.OwnerID != userID {
		return apperrors.ErrComponentNotFound
	}
	return nil
}

func (s *PartService) getOwned(userID, partID uuid.UUID) (*models.Part, error) {
	part, err := s.repo.GetWithComponent(partID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartNotFound
		}
		return nil, fmt.Errorf("failed to get part: %w", err)
	}
	if part.Component == nil || part.Component.Boat == nil || part.Component.Boat.OwnerID != userID {
		return nil, apperrors.ErrPartNotFound
	}
	return part, nil
}

func (s *PartService) toResponse(p *models.Part) *PartResponse {
	return &PartResponse{
		ID:          p.ID,
		ComponentID: p.ComponentID,
		Name:        p.Name,
		PartNumber:  p.PartNumber,
		Quantity:    p.Quantity,
		Supplier:    p.Supplier,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}
