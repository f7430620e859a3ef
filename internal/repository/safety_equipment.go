package repository

import (
	"boatlog-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SafetyEquipmentRepository handles database operations for safety equipment
type SafetyEquipmentRepository struct {
	db *gorm.DB
}

// NewSafetyEquipmentRepository creates a new safety equipment repository
func NewSafetyEquipmentRepository(db *gorm.DB) *SafetyEquipmentRepository {
	return &SafetyEquipmentRepository{db: db}
}

// Create creates a new safety equipment item
func (r *SafetyEquipmentRepository) Create(item *models.SafetyEquipment) error {
	return r.db.Create(item).Error
}

// GetByID retrieves a safety equipment item by ID
func (r *SafetyEquipmentRepository) GetByID(id uuid.UUID) (*models.SafetyEquipment, error) {
	var item models.SafetyEquipment
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetWithBoat retrieves a safety equipment item with its boat
func (r *SafetyEquipmentRepository) GetWithBoat(id uuid.UUID) (*models.SafetyEquipment, error) {
	var item models.SafetyEquipment
	err := r.db.Preload("Boat").First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByBoatID retrieves all safety equipment of a boat
func (r *SafetyEquipmentRepository) GetByBoatID(boatID uuid.UUID) ([]models.SafetyEquipment, error) {
	var items []models.SafetyEquipment
	err := r.db.Where("boat_id = ?", boatID).Order("name ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Update updates a safety equipment item
func (r *SafetyEquipmentRepository) Update(item *models.SafetyEquipment) error {
	return r.db.Save(item).Error
}

// Delete deletes a safety equipment item
func (r *SafetyEquipmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SafetyEquipment{}, "id = ?", id).Error
}
