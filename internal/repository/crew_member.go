package repository

import (
	"boatlog-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CrewMemberRepository handles database operations for crew members
type CrewMemberRepository struct {
	db *gorm.DB
}

// NewCrewMemberRepository creates a new crew member repository
func NewCrewMemberRepository(db *gorm.DB) *CrewMemberRepository {
	return &CrewMemberRepository{db: db}
}

// Create creates a new crew member
func (r *CrewMemberRepository) Create(member *models.CrewMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a crew member by ID
func (r *CrewMemberRepository) GetByID(id uuid.UUID) (*models.CrewMember, error) {
	var member models.CrewMember
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetWithBoat retrieves a crew member with their boat
func (r *CrewMemberRepository) GetWithBoat(id uuid.UUID) (*models.CrewMember, error) {
	var member models.CrewMember
	err := r.db.Preload("Boat").First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByBoatID retrieves all crew members of a boat
func (r *CrewMemberRepository) GetByBoatID(boatID uuid.UUID) ([]models.CrewMember, error) {
	var members []models.CrewMember
	err := r.db.Where("boat_id = ?", boatID).Order("name ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// Update updates a crew member
func (r *CrewMemberRepository) Update(member *models.CrewMember) error {
	return r.db.Save(member).Error
}

// Delete deletes a crew member
func (r *CrewMemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.CrewMember{}, "id = ?", id).Error
}
