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

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdentityProvider removes accounts at the hosted identity provider so a
// deleted account cannot log back in
type IdentityProvider interface {
	DeleteAccount(ctx context.Context, subject string) error
}

// UserService handles business logic for accounts
type UserService struct {
	repo     *repository.UserRepository
	provider IdentityProvider
	log      *logger.Logger
}

// NewUserService creates a new user service. The provider may be nil when no
// management API credentials are configured; deletes then stay local.
func NewUserService(repo *repository.UserRepository, provider IdentityProvider) *UserService {
	return &UserService{repo: repo, provider: provider, log: logger.New()}
}

// UserResponse represents an account in API responses
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"created_at"`
}

// UserListResponse represents the admin account listing
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ResolveAccount maps an identity-provider subject to a local account row,
// creating one on first login. Profile fields refresh on every call so a
// provider-side name or email change propagates.
func (s *UserService) ResolveAccount(subject, email, name string) (*models.User, error) {
	user, err := s.repo.GetBySubject(subject)
	if err == nil {
		if user.Email != email || user.Name != name {
			user.Email = email
			user.Name = name
			if err := s.repo.Update(user); err != nil {
				return nil, fmt.Errorf("failed to refresh account profile: %w", err)
			}
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	user = &models.User{
		Subject: subject,
		Email:   email,
		Name:    name,
	}
	if err := s.repo.Create(user); err != nil {
		// Two first logins can race on the unique subject index. Whoever
		// lost the race reads the winner's row.
		if repository.IsUniqueViolation(err) {
			return s.repo.GetBySubject(subject)
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return user, nil
}

// GetByID retrieves an account by ID
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return s.toResponse(user), nil
}

// List retrieves accounts with pagination. Admin only.
func (s *UserService) List(page, pageSize int) (*UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	users, total, err := s.repo.List(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *s.toResponse(&users[i])
	}

	return &UserListResponse{
		Users:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Delete removes an account. Admin only; boats and their children cascade.
// The provider-side deletion is best effort: the local row is already gone,
// so a provider failure only leaves a dangling login.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get account: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	if s.provider != nil {
		if err := s.provider.DeleteAccount(ctx, user.Subject); err != nil {
			s.log.WithError(err).WithField("subject", user.Subject).
				Warn("account deleted locally but provider deletion failed")
		}
	}
	return nil
}

func (s *UserService) toResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
