package repository

import (
	"boatlog-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComponentRepository handles database operations for components
type ComponentRepository struct {
	db *gorm.DB
}

// NewComponentRepository creates a new component repository
func NewComponentRepository(db *gorm.DB) *ComponentRepository {
	return &ComponentRepository{db: db}
}

// Create creates a new component
func (r *ComponentRepository) Create(component *models.Component) error {
	return r.db.Create(component).Error
}

// GetByID retrieves a component by ID
func (r *ComponentRepository) GetByID(id uuid.UUID) (*models.Component, error) {
	var component models.Component
	err := r.db.First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// GetWithBoat retrieves a component with its owning boat, for ownership checks
func (r *ComponentRepository) GetWithBoat(id uuid.UUID) (*models.Component, error) {
	var component models.Component
	err := r.db.Preload("Boat").First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// GetWithParts retrieves a component with its parts
func (r *ComponentRepository) GetWithParts(id uuid.UUID) (*models.Component, error) {
	var component models.Component
	err := r.db.Preload("Parts").First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// GetByBoatID retrieves all components of a boat
func (r *ComponentRepository) GetByBoatID(boatID uuid.UUID) ([]models.Component, error) {
	var components []models.Component
	err := r.db.Where("boat_id = ?", boatID).Order("name ASC").Find(&components).Error
	if err != nil {
		return nil, err
	}
	return components, nil
}

// GetByBoatIDs retrieves all components across a set of boats. Used by the
// due-item scanner, which walks every component an account owns in one pass.
func (r *ComponentRepository) GetByBoatIDs(boatIDs []uuid.UUID) ([]models.Component, error) {
	if len(boatIDs) == 0 {
		return []models.Component{}, nil
	}
	var components []models.Component
	err := r.db.Where("boat_id IN ?", boatIDs).Find(&components).Error
	if err != nil {
		return nil, err
	}
	return components, nil
}

// Update updates a component
func (r *ComponentRepository) Update(component *models.Component) error {
	return r.db.Save(component).Error
}

// UpdateFields applies a partial update to a component. Explicit column maps
// are required here because the mutators legitimately write NULLs (clearing a
// next-due field), which Save/Updates on a struct would skip.
func (r *ComponentRepository) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&models.Component{}).Where("id = ?", id).Updates(fields).Error
}

// Delete deletes a component
func (r *ComponentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Component{}, "id = ?", id).Error
}
