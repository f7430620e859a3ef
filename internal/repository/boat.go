package repository

import (
	"boatlog-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BoatRepository handles database operations for boats
type BoatRepository struct {
	db *gorm.DB
}

// NewBoatRepository creates a new boat repository
func NewBoatRepository(db *gorm.DB) *BoatRepository {
	return &BoatRepository{db: db}
}

// Create creates a new boat
func (r *BoatRepository) Create(boat *models.Boat) error {
	return r.db.Create(boat).Error
}

// GetByID retrieves a boat by ID
func (r *BoatRepository) GetByID(id uuid.UUID) (*models.Boat, error) {
	var boat models.Boat
	err := r.db.First(&boat, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &boat, nil
}

// GetOwned retrieves a boat by ID scoped to an owner. A boat belonging to
// another account comes back as gorm.ErrRecordNotFound, indistinguishable
// from a missing row.
func (r *BoatRepository) GetOwned(id, ownerID uuid.UUID) (*models.Boat, error) {
	var boat models.Boat
	err := r.db.First(&boat, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		return nil, err
	}
	return &boat, nil
}

// GetByOwnerID retrieves all boats owned by an account
func (r *BoatRepository) GetByOwnerID(ownerID uuid.UUID) ([]models.Boat, error) {
	var boats []models.Boat
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&boats).Error
	if err != nil {
		return nil, err
	}
	return boats, nil
}

// GetWithComponents retrieves a boat with its components
func (r *BoatRepository) GetWithComponents(id uuid.UUID) (*models.Boat, error) {
	var boat models.Boat
	err := r.db.Preload("Components").First(&boat, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &boat, nil
}

// Update updates a boat
func (r *BoatRepository) Update(boat *models.Boat) error {
	return r.db.Save(boat).Error
}

// Delete deletes a boat
func (r *BoatRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Boat{}, "id = ?", id).Error
}
