package repository

import (
	"boatlog-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartRepository handles database operations for parts
type PartRepository struct {
	db *gorm.DB
}

// NewPartRepository creates a new part repository
func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

// Create creates a new part
func (r *PartRepository) Create(part *models.Part) error {
	return r.db.Create(part).Error
}

// GetByID retrieves a part by ID
func (r *PartRepository) GetByID(id uuid.UUID) (*models.Part, error) {
	var part models.Part
	err := r.db.First(&part, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &part, nil
}

// GetWithComponent retrieves a part with its component and the component's boat
func (r *PartRepository) GetWithComponent(id uuid.UUID) (*models.Part, error) {
	var part models.Part
	err := r.db.Preload("Component.Boat").First(&part, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &part, nil
}

// GetByComponentID retrieves all parts of a component
func (r *PartRepository) GetByComponentID(componentID uuid.UUID) ([]models.Part, error) {
	var parts []models.Part
	err := r.db.Where("component_id = ?", componentID).Order("name ASC").Find(&parts).Error
	if err != nil {
		return nil, err
	}
	return parts, nil
}

// Update updates a part
func (r *PartRepository) Update(part *models.Part) error {
	return r.db.Save(part).Error
}

// Delete deletes a part
func (r *PartRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Part{}, "id = ?", id).Error
}
