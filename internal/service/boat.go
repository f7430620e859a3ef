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

// BoatService handles business logic for boats
type BoatService struct {
	repo      *repository.BoatRepository
	validator *validator.Validate
}

// NewBoatService creates a new boat service
func NewBoatService(repo *repository.BoatRepository, validator *validator.Validate) *BoatService {
	return &BoatService{repo: repo, validator: validator}
}

// CreateBoatRequest represents the request to create a boat
type CreateBoatRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=120"`
	Make         string `json:"make" validate:"omitempty,max=120"`
	Model        string `json:"model" validate:"omitempty,max=120"`
	Year         *int   `json:"year" validate:"omitempty,min=1900,max=2100"`
	Registration string `json:"registration" validate:"omitempty,max=60"`
	HullID       string `json:"hull_id" validate:"omitempty,max=60"`
}

// UpdateBoatRequest represents the request to update a boat
type UpdateBoatRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=120"`
	Make         *string `json:"make" validate:"omitempty,max=120"`
	Model        *string `json:"model" validate:"omitempty,max=120"`
	Year         *int    `json:"year" validate:"omitempty,min=1900,max=2100"`
	Registration *string `json:"registration" validate:"omitempty,max=60"`
	HullID       *string `json:"hull_id" validate:"omitempty,max=60"`
}

// BoatResponse represents a boat in API responses
type BoatResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Make         string    `json:"make,omitempty"`
	Model        string    `json:"model,omitempty"`
	Year         *int      `json:"year,omitempty"`
	Registration string    `json:"registration,omitempty"`
	HullID       string    `json:"hull_id,omitempty"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// Create creates a new boat owned by the caller
func (s *BoatService) Create(userID uuid.UUID, req *CreateBoatRequest) (*BoatResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	boat := &models.Boat{
		OwnerID:      userID,
		Name:         req.Name,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Registration: req.Registration,
		HullID:       req.HullID,
	}

	if err := s.repo.Create(boat); err != nil {
		return nil, fmt.Errorf("failed to create boat: %w", err)
	}
	return s.toResponse(boat), nil
}

// GetByID retrieves a boat owned by the caller
func (s *BoatService) GetByID(userID, boatID uuid.UUID) (*BoatResponse, error) {
	boat, err := s.getOwned(userID, boatID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(boat), nil
}

// List retrieves all boats owned by the caller
func (s *BoatService) List(userID uuid.UUID) ([]BoatResponse, error) {
	boats, err := s.repo.GetByOwnerID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list boats: %w", err)
	}

	responses := make([]BoatResponse, len(boats))
	for i := range boats {
		responses[i] = *s.toResponse(&boats[i])
	}
	return responses, nil
}

// Update updates a boat owned by the caller
func (s *BoatService) Update(userID, boatID uuid.UUID, req *UpdateBoatRequest) (*BoatResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	boat, err := s.getOwned(userID, boatID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		boat.Name = *req.Name
	}
	if req.Make != nil {
		boat.Make = *req.Make
	}
	if req.Model != nil {
		boat.Model = *req.Model
	}
	if req.Year != nil {
		boat.Year = req.Year
	}
	if req.Registration != nil {
		boat.Registration = *req.Registration
	}
	if req.HullID != nil {
		boat.HullID = *req.HullID
	}

	if err := s.repo.Update(boat); err != nil {
		return nil, fmt.Errorf("failed to update boat: %w", err)
	}
	return s.toResponse(boat), nil
}

// Delete deletes a boat owned by the caller. Children cascade in the store.
func (s *BoatService) Delete(userID, boatID uuid.UUID) error {
	if _, err := s.getOwned(userID, boatID); err != nil {
		return err
	}
	if err := s.repo.Delete(boatID); err != nil {
		return fmt.Errorf("failed to delete boat: %w", err)
	}
	return nil
}

func (s *BoatService) getOwned(userID, boatID uuid.UUID) (*models.Boat, error) {
	boat, err := s.repo.GetOwned(boatID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBoatNotFound
		}
		return nil, fmt.Errorf("failed to get boat: %w", err)
	}
	return boat, nil
}

func (s *BoatService) toResponse(b *models.Boat) *BoatResponse {
	return &BoatResponse{
		ID:           b.ID,
		Name:         b.Name,
		Make:         b.Make,
		Model:        b.Model,
		Year:         b.Year,
		Registration: b.Registration,
		HullID:       b.HullID,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}
}
