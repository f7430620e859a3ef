package repository

import (
	"boatlog-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaintenanceLogRepository handles database operations for maintenance logs
type MaintenanceLogRepository struct {
	db *gorm.DB
}

// NewMaintenanceLogRepository creates a new maintenance log repository
func NewMaintenanceLogRepository(db *gorm.DB) *MaintenanceLogRepository {
	return &MaintenanceLogRepository{db: db}
}

// Create creates a new maintenance log
func (r *MaintenanceLogRepository) Create(log *models.MaintenanceLog) error {
	return r.db.Create(log).Error
}

// GetByID retrieves a maintenance log by ID
func (r *MaintenanceLogRepository) GetByID(id uuid.UUID) (*models.MaintenanceLog, error) {
	var log models.MaintenanceLog
	err := r.db.First(&log, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// GetWithBoat retrieves a maintenance log with its owning boat
func (r *MaintenanceLogRepository) GetWithBoat(id uuid.UUID) (*models.MaintenanceLog, error) {
	var log models.MaintenanceLog
	err := r.db.Preload("Boat").First(&log, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// GetByBoatID retrieves maintenance logs for a boat, newest first
func (r *MaintenanceLogRepository) GetByBoatID(boatID uuid.UUID, limit, offset int) ([]models.MaintenanceLog, int64, error) {
	var logs []models.MaintenanceLog
	var total int64

	query := r.db.Model(&models.MaintenanceLog{}).Where("boat_id = ?", boatID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("performed_at DESC").Limit(limit).Offset(offset).Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// GetRecentByBoatIDs retrieves the most recent maintenance logs across a set
// of boats. Feeds the activity aggregator.
func (r *MaintenanceLogRepository) GetRecentByBoatIDs(boatIDs []uuid.UUID, limit int) ([]models.MaintenanceLog, error) {
	if len(boatIDs) == 0 {
		return []models.MaintenanceLog{}, nil
	}
	var logs []models.MaintenanceLog
	err := r.db.Preload("Boat").Preload("Component").
		Where("boat_id IN ?", boatIDs).
		Order("performed_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// Update updates a maintenance log
func (r *MaintenanceLogRepository) Update(log *models.MaintenanceLog) error {
	return r.db.Save(log).Error
}

// Delete deletes a maintenance log
func (r *MaintenanceLogRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MaintenanceLog{}, "id = ?", id).Error
}
