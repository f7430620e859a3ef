package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"boatlog-backend/internal/database/models"
	apperrors "boatlog-backend/internal/errors"
	"boatlog-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentStore hands out presigned URLs for document files held in blob
// storage. File bytes never pass through this service.
type DocumentStore interface {
	PresignUpload(ctx context.Context, key, contentType string) (string, error)
	PresignDownload(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// DocumentService handles business logic for documents
type DocumentService struct {
	repo      *repository.DocumentRepository
	boatRepo  *repository.BoatRepository
	store     DocumentStore
	validator *validator.Validate
}

// NewDocumentService creates a new document service. The store may be nil
// when blob storage is not configured; metadata CRUD still works, file
// operations report a configuration error.
func NewDocumentService(repo *repository.DocumentRepository, boatRepo *repository.BoatRepository, store DocumentStore, validator *validator.Validate) *DocumentService {
	return &DocumentService{repo: repo, boatRepo: boatRepo, store: store, validator: validator}
}

// CreateDocumentRequest represents the request to register a document
type CreateDocumentRequest struct {
	BoatID       uuid.UUID `json:"boat_id" validate:"required"`
	Title        string    `json:"title" validate:"required,min=1,max=200"`
	FileName     string    `json:"file_name" validate:"required,min=1,max=255"`
	ContentType  string    `json:"content_type" validate:"required,max=120"`
	FileSize     int64     `json:"file_size" validate:"omitempty,min=0"`
	ExpiryDate   *string   `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	ReminderDays *int      `json:"reminder_days" validate:"omitempty,min=1,max=365"`
}

// UpdateDocumentRequest represents the request to update document metadata
type UpdateDocumentRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1,max=200"`
	ExpiryDate   *string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	ReminderDays *int    `json:"reminder_days" validate:"omitempty,min=1,max=365"`
}

// DocumentResponse represents a document in API responses
type DocumentResponse struct {
	ID           uuid.UUID `json:"id"`
	BoatID       uuid.UUID `json:"boat_id"`
	Title        string    `json:"title"`
	ContentType  string    `json:"content_type,omitempty"`
	FileSize     int64     `json:"file_size,omitempty"`
	ExpiryDate   string    `json:"expiry_date,omitempty"`
	ReminderDays *int      `json:"reminder_days,omitempty"`
	UploadURL    string    `json:"upload_url,omitempty"`
	CreatedAt    string    `json:"created_at"`
}

// DownloadResponse carries a short-lived download URL
type DownloadResponse struct {
	URL string `json:"url"`
}

// Create registers a document on a boat the caller owns and returns a
// presigned URL the client uploads the file bytes to
func (s *DocumentService) Create(ctx context.Context, userID uuid.UUID, req *CreateDocumentRequest) (*DocumentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if s.store == nil {
		return nil, apperrors.ErrStorageNotConfigured
	}

	if _, err := s.boatRepo.GetOwned(req.BoatID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBoatNotFound
		}
		return nil, fmt.Errorf("failed to get boat: %w", err)
	}

	expiry, err := parseDatePtr(req.ExpiryDate)
	if err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	doc := &models.Document{
		BoatID:       req.BoatID,
		Title:        req.Title,
		FileKey:      fmt.Sprintf("documents/%s/%s%s", req.BoatID, uuid.New(), path.Ext(req.FileName)),
		ContentType:  req.ContentType,
		FileSize:     req.FileSize,
		ExpiryDate:   expiry,
		ReminderDays: req.ReminderDays,
	}

	uploadURL, err := s.store.PresignUpload(ctx, doc.FileKey, doc.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	if err := s.repo.Create(doc); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	resp := s.toResponse(doc)
	resp.UploadURL = uploadURL
	return resp, nil
}

// ListByBoat retrieves documents for a boat the caller owns
func (s *DocumentService) ListByBoat(userID, boatID uuid.UUID) ([]DocumentResponse, error) {
	if _, err := s.boatRepo.GetOwned(boatID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBoatNotFound
		}
		return nil, fmt.Errorf("failed to get boat: %w", err)
	}

	docs, err := s.repo.GetByBoatID(boatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	responses := make([]DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = *s.toResponse(&docs[i])
	}
	return responses, nil
}

// Update changes document metadata. File contents are immutable; replace the
// document to change the file.
func (s *DocumentService) Update(userID, documentID uuid.UUID, req *UpdateDocumentRequest) (*DocumentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	doc, err := s.getOwned(userID, documentID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		doc.Title = *req.Title
	}
	if req.ExpiryDate != nil {
		if doc.ExpiryDate, err = parseDatePtr(req.ExpiryDate); err != nil {
			return nil, apperrors.NewValidationError("", err.Error())
		}
	}
	if req.ReminderDays != nil {
		doc.ReminderDays = req.ReminderDays
	}

	if err := s.repo.Update(doc); err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	return s.toResponse(doc), nil
}

// Download returns a short-lived URL for the document file
func (s *DocumentService) Download(ctx context.Context, userID, documentID uuid.UUID) (*DownloadResponse, error) {
	if s.store == nil {
		return nil, apperrors.ErrStorageNotConfigured
	}

	doc, err := s.getOwned(userID, documentID)
	if err != nil {
		return nil, err
	}

	url, err := s.store.PresignDownload(ctx, doc.FileKey)
	if err != nil {
		return nil, fmt.Errorf("failed to presign download: %w", err)
	}
	return &DownloadResponse{URL: url}, nil
}

// Delete removes a document and its stored file. The row goes first so a
// failed blob delete leaves an orphan file, not a dangling row.
func (s *DocumentService) Delete(ctx context.Context, userID, documentID uuid.UUID) error {
	doc, err := s.getOwned(userID, documentID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(documentID); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	if s.store != nil && doc.FileKey != "" {
		if err := s.store.Delete(ctx, doc.FileKey); err != nil {
			return fmt.Errorf("failed to delete document file: %w", err)
		}
	}
	return nil
}

func (s *DocumentService) getOwned(userID, documentID uuid.UUID) (*models.Document, error) {
	doc, err := s.repo.GetWithBoat(documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	if doc.Boat == nil || doc.Boat.OwnerID != userID {
		return nil, apperrors.ErrDocumentNotFound
	}
	return doc, nil
}

func (s *DocumentService) toResponse(d *models.Document) *DocumentResponse {
	resp := &DocumentResponse{
		ID:           d.ID,
		BoatID:       d.BoatID,
		Title:        d.Title,
		ContentType:  d.ContentType,
		FileSize:     d.FileSize,
		ReminderDays: d.ReminderDays,
		CreatedAt:    d.CreatedAt.Format(time.RFC3339),
	}
	if d.ExpiryDate != nil {
		resp.ExpiryDate = d.ExpiryDate.Format("2006-01-02")
	}
	return resp
}
