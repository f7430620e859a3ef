package repository

import (
	"boatlog-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentRepository handles database operations for documents
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new document
func (r *DocumentRepository) Create(doc *models.Document) error {
	return r.db.Create(doc).Error
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	err := r.db.First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetWithBoat retrieves a document with its owning boat
func (r *DocumentRepository) GetWithBoat(id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	err := r.db.Preload("Boat").First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetByBoatID retrieves documents for a boat, newest upload first
func (r *DocumentRepository) GetByBoatID(boatID uuid.UUID) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.Where("boat_id = ?", boatID).Order("created_at DESC").Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// GetExpiringByBoatIDs retrieves documents with an expiry date across a set
// of boats. The scanner decides per document whether the reminder window has
// opened, so no date filter is applied here.
func (r *DocumentRepository) GetExpiringByBoatIDs(boatIDs []uuid.UUID) ([]models.Document, error) {
	if len(boatIDs) == 0 {
		return []models.Document{}, nil
	}
	var docs []models.Document
	err := r.db.Preload("Boat").
		Where("boat_id IN ? AND expiry_date IS NOT NULL", boatIDs).
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// GetRecentByBoatIDs retrieves the most recently uploaded documents across a
// set of boats. Feeds the activity aggregator.
func (r *DocumentRepository) GetRecentByBoatIDs(boatIDs []uuid.UUID, limit int) ([]models.Document, error) {
	if len(boatIDs) == 0 {
		return []models.Document{}, nil
	}
	var docs []models.Document
	err := r.db.Preload("Boat").
		Where("boat_id IN ?", boatIDs).
		Order("created_at DESC").
		Limit(limit).
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// Update updates a document
func (r *DocumentRepository) Update(doc *models.Document) error {
	return r.db.Save(doc).Error
}

// Delete deletes a document
func (r *DocumentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Document{}, "id = ?", id).Error
}
