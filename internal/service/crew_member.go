package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boatlog-backend/internal/database/models"
	apperrors "boatlog-backend/internal/errors"
	"boatlog-backend/internal/logger"
	"boatlog-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CrewMemberService handles business logic for crew members
type CrewMemberService struct {
	repo      *repository.CrewMemberRepository
	boatRepo  *repository.BoatRepository
	mailer    *MailerService
	validator *validator.Validate
	log       *logger.Logger
}

// NewCrewMemberService creates a new crew member service
func NewCrewMemberService(repo *repository.CrewMemberRepository, boatRepo *repository.BoatRepository, mailer *MailerService, validator *validator.Validate) *CrewMemberService {
	return &CrewMemberService{
		repo:      repo,
		boatRepo:  boatRepo,
		mailer:    mailer,
		validator: validator,
		log:       logger.New(),
	}
}

// InviteCrewMemberRequest represents the request to invite a crew member
type InviteCrewMemberRequest struct {
	BoatID uuid.UUID `json:"boat_id" validate:"required"`
	Name   string    `json:"name" validate:"required,min=1,max=120"`
	Email  string    `json:"email" validate:"required,email"`
	Role   string    `json:"role" validate:"omitempty,max=60"`
}

// CrewMemberResponse represents a crew member in API responses
type CrewMemberResponse struct {
	ID        uuid.UUID `json:"id"`
	BoatID    uuid.UUID `json:"boat_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role,omitempty"`
	Status    string    `json:"status"`
	InvitedAt string    `json:"invited_at,omitempty"`
	CreatedAt string    `json:"created_at"`
}

// Invite records a crew member on a boat the caller owns and emails them an
// invitation. A missing mailer downgrades to recording the invite without
// email rather than failing the request.
func (s *CrewMemberService) Invite(ctx context.Context, owner *models.User, req *InviteCrewMemberRequest) (*CrewMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	boat, err := s.boatRepo.GetOwned(req.BoatID, owner.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBoatNotFound
		}
		return nil, fmt.Errorf("failed to get boat: %w", err)
	}

	now := time.Now().UTC()
	member := &models.CrewMember{
		BoatID:    req.BoatID,
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		Status:    models.CrewStatusInvited,
		InvitedAt: &now,
	}

	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create crew member: %w", err)
	}

	if err := s.mailer.SendCrewInvite(ctx, member.Name, member.Email, owner.Name, boat.Name); err != nil {
		if !errors.Is(err, apperrors.ErrMailerNotConfigured) {
			s.log.WithError(err).WithField("crew_member_id", member.ID).Warn("failed to send crew invite email")
		}
	}

	return s.toResponse(member), nil
}

// ListByBoat retrieves crew members for a boat the caller owns
func (s *CrewMemberService) ListByBoat(userID, boatID uuid.UUID) ([]CrewMemberResponse, error) {
	if _, err := s.boatRepo.GetOwned(boatID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBoatNotFound
		}
		return nil, fmt.Errorf("failed to get boat: %w", err)
	}

	members, err := s.repo.GetByBoatID(boatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list crew members: %w", err)
	}

	responses := make([]CrewMemberResponse, len(members))
	for i := range members {
		responses[i] = *s.toResponse(&members[i])
	}
	return responses, nil
}

// Activate marks an invited crew member as active
func (s *CrewMemberService) Activate(userID, memberID uuid.UUID) (*CrewMemberResponse, error) {
	member, err := s.getOwned(userID, memberID)
	if err != nil {
		return nil, err
	}

	member.Status = models.CrewStatusActive
	if err := s.repo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update crew member: %w", err)
	}
	return s.toResponse(member), nil
}

// Delete removes a crew member from a boat the caller owns
func (s *CrewMemberService) Delete(userID, memberID uuid.UUID) error {
	if _, err := s.getOwned(userID, memberID); err != nil {
		return err
	}
	if err := s.repo.Delete(memberID); err != nil {
		return fmt.Errorf("failed to delete crew member: %w", err)
	}
	return nil
}

func (s *CrewMemberService) getOwned(userID, memberID uuid.UUID) (*models.CrewMember, error) {
	member, err := s.repo.GetWithBoat(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCrewMemberNotFound
		}
		return nil, fmt.Errorf("failed to get crew member: %w", err)
	}
	if member.Boat == nil || member.Boat.OwnerID != userID {
		return nil, apperrors.ErrCrewMemberNotFound
	}
	return member, nil
}

func (s *CrewMemberService) toResponse(m *models.CrewMember) *CrewMemberResponse {
	resp := &CrewMemberResponse{
		ID:        m.ID,
		BoatID:    m.BoatID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      m.Role,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
	if m.InvitedAt != nil {
		resp.InvitedAt = m.InvitedAt.Format(time.RFC3339)
	}
	return resp
}
