package repository

import (
	"boatlog-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HealthCheckRepository handles database operations for health checks
type HealthCheckRepository struct {
	db *gorm.DB
}

// NewHealthCheckRepository creates a new health check repository
func NewHealthCheckRepository(db *gorm.DB) *HealthCheckRepository {
	return &HealthCheckRepository{db: db}
}

// Create creates a new health check
func (r *HealthCheckRepository) Create(check *models.HealthCheck) error {
	return r.db.Create(check).Error
}

// GetByID retrieves a health check by ID
func (r *HealthCheckRepository) GetByID(id uuid.UUID) (*models.HealthCheck, error) {
	var check models.HealthCheck
	err := r.db.First(&check, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &check, nil
}

// GetWithBoat retrieves a health check with its owning boat
func (r *HealthCheckRepository) GetWithBoat(id uuid.UUID) (*models.HealthCheck, error) {
	var check models.HealthCheck
	err := r.db.Preload("Boat").First(&check, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &check, nil
}

// GetByBoatID retrieves health checks for a boat, newest first
func (r *HealthCheckRepository) GetByBoatID(boatID uuid.UUID, limit, offset int) ([]models.HealthCheck, int64, error) {
	var checks []models.HealthCheck
	var total int64

	query := r.db.Model(&models.HealthCheck{}).Where("boat_id = ?", boatID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("checked_at DESC").Limit(limit).Offset(offset).Find(&checks).Error
	if err != nil {
		return nil, 0, err
	}
	return checks, total, nil
}

// GetRecentByBoatIDs retrieves the most recent health checks across a set of
// boats. Feeds the activity aggregator.
func (r *HealthCheckRepository) GetRecentByBoatIDs(boatIDs []uuid.UUID, limit int) ([]models.HealthCheck, error) {
	if len(boatIDs) == 0 {
		return []models.HealthCheck{}, nil
	}
	var checks []models.HealthCheck
	err := r.db.Preload("Boat").Preload("Component").
		Where("boat_id IN ?", boatIDs).
		Order("checked_at DESC").
		Limit(limit).
		Find(&checks).Error
	if err != nil {
		return nil, err
	}
	return checks, nil
}

// Update updates a health check
func (r *HealthCheckRepository) Update(check *models.HealthCheck) error {
	return r.db.Save(check).Error
}

// Delete deletes a health check
func (r *HealthCheckRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.HealthCheck{}, "id = ?", id).Error
}
