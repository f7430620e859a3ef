package service

import (
	"errors"
	"fmt"
	"time"

	"boatlog-backend/internal/database/models"
	apperrors "boatlog-backend/internal/errors"
	"boatlog-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComponentService handles business logic for components, including the
// dismiss and quick-complete alert mutators
type ComponentService struct {
	repo      *repository.ComponentRepository
	boatRepo  *repository.BoatRepository
	logRepo   *repository.MaintenanceLogRepository
	validator *validator.Validate
}

// NewComponentService creates a new component service
func NewComponentService(repo *repository.ComponentRepository, boatRepo *repository.BoatRepository, logRepo *repository.MaintenanceLogRepository, validator *validator.Validate) *ComponentService {
	return &ComponentService{
		repo:      repo,
		boatRepo:  boatRepo,
		logRepo:   logRepo,
		validator: validator,
	}
}

// CreateComponentRequest represents the request to create a component
type CreateComponentRequest struct {
	BoatID               uuid.UUID `json:"boat_id" validate:"required"`
	Name                 string    `json:"name" validate:"required,min=1,max=120"`
	Category             string    `json:"category" validate:"omitempty,max=30"`
	Manufacturer         string    `json:"manufacturer" validate:"omitempty,max=120"`
	ModelNumber          string    `json:"model_number" validate:"omitempty,max=120"`
	SerialNumber         string    `json:"serial_number" validate:"omitempty,max=120"`
	ServiceName          string    `json:"service_name" validate:"omitempty,max=120"`
	Notes                string    `json:"notes"`
	NextServiceDate      *string   `json:"next_service_date" validate:"omitempty,datetime=2006-01-02"`
	ServiceIntervalDays  *int      `json:"service_interval_days" validate:"omitempty,min=1"`
	LastServiceDate      *string   `json:"last_service_date" validate:"omitempty,datetime=2006-01-02"`
	CurrentHours         *int      `json:"current_hours" validate:"omitempty,min=0"`
	NextServiceHours     *int      `json:"next_service_hours" validate:"omitempty,min=0"`
	ServiceIntervalHours *int      `json:"service_interval_hours" validate:"omitempty,min=1"`
	LastServiceHours     *int      `json:"last_service_hours" validate:"omitempty,min=0"`
}

// UpdateComponentRequest represents the request to update a component
type UpdateComponentRequest struct {
	Name                 *string `json:"name" validate:"omitempty,min=1,max=120"`
	Category             *string `json:"category" validate:"omitempty,max=30"`
	Manufacturer         *string `json:"manufacturer" validate:"omitempty,max=120"`
	ModelNumber          *string `json:"model_number" validate:"omitempty,max=120"`
	SerialNumber         *string `json:"serial_number" validate:"omitempty,max=120"`
	ServiceName          *string `json:"service_name" validate:"omitempty,max=120"`
	Notes                *string `json:"notes"`
	NextServiceDate      *string `json:"next_service_date" validate:"omitempty,datetime=2006-01-02"`
	ServiceIntervalDays  *int    `json:"service_interval_days" validate:"omitempty,min=1"`
	LastServiceDate      *string `json:"last_service_date" validate:"omitempty,datetime=2006-01-02"`
	CurrentHours         *int    `json:"current_hours" validate:"omitempty,min=0"`
	NextServiceHours     *int    `json:"next_service_hours" validate:"omitempty,min=0"`
	ServiceIntervalHours *int    `json:"service_interval_hours" validate:"omitempty,min=1"`
	LastServiceHours     *int    `json:"last_service_hours" validate:"omitempty,min=0"`
}

// DismissAlertRequest represents the request to dismiss a maintenance alert
type DismissAlertRequest struct {
	ComponentID uuid.UUID `json:"componentId" validate:"required"`
	AlertType   AlertType `json:"alertType" validate:"required"`
}

// QuickCompleteRequest represents the request to quick-complete a service
type QuickCompleteRequest struct {
	ComponentID uuid.UUID `json:"componentId" validate:"required"`
	AlertType   AlertType `json:"alertType" validate:"omitempty"`
	ServiceName string    `json:"serviceName" validate:"omitempty,max=200"`
}

// MutationResponse reports the fields a mutator changed
type MutationResponse struct {
	Success bool                   `json:"success"`
	Updates map[string]interface{} `json:"updates"`
}

// ComponentResponse represents a component in API responses
type ComponentResponse struct {
	ID                   uuid.UUID `json:"id"`
	BoatID               uuid.UUID `json:"boat_id"`
	Name                 string    `json:"name"`
	Category             string    `json:"category"`
	Manufacturer         string    `json:"manufacturer,omitempty"`
	ModelNumber          string    `json:"model_number,omitempty"`
	SerialNumber         string    `json:"serial_number,omitempty"`
	ServiceName          string    `json:"service_name,omitempty"`
	Notes                string    `json:"notes,omitempty"`
	NextServiceDate      string    `json:"next_service_date,omitempty"`
	ServiceIntervalDays  *int      `json:"service_interval_days,omitempty"`
	LastServiceDate      string    `json:"last_service_date,omitempty"`
	CurrentHours         *int      `json:"current_hours,omitempty"`
	NextServiceHours     *int      `json:"next_service_hours,omitempty"`
	ServiceIntervalHours *int      `json:"service_interval_hours,omitempty"`
	LastServiceHours     *int      `json:"last_service_hours,omitempty"`
	CreatedAt            string    `json:"created_at"`
	UpdatedAt            string    `json:"updated_at"`
}

// Create creates a new component on a boat the caller owns
func (s *ComponentService) Create(userID uuid.UUID, req *CreateComponentRequest) (*ComponentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.boatRepo.GetOwned(req.BoatID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBoatNotFound
		}
		return nil, fmt.Errorf("failed to get boat: %w", err)
	}

	category := models.ComponentCategory(req.Category)
	if req.Category == "" {
		category = models.ComponentCategoryOther
	}
	if !category.IsValid() {
		return nil, apperrors.NewValidationError("", fmt.Sprintf("invalid category: %s", req.Category))
	}

	component := &models.Component{
		BoatID:               req.BoatID,
		Name:                 req.Name,
		Category:             category,
		Manufacturer:         req.Manufacturer,
		ModelNumber:          req.ModelNumber,
		SerialNumber:         req.SerialNumber,
		ServiceName:          req.ServiceName,
		Notes:                req.Notes,
		ServiceIntervalDays:  req.ServiceIntervalDays,
		CurrentHours:         req.CurrentHours,
		NextServiceHours:     req.NextServiceHours,
		ServiceIntervalHours: req.ServiceIntervalHours,
		LastServiceHours:     req.LastServiceHours,
	}

	var err error
	if component.NextServiceDate, err = parseDatePtr(req.NextServiceDate); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if component.LastServiceDate, err = parseDatePtr(req.LastServiceDate); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if err := s.repo.Create(component); err != nil {
		return nil, fmt.Errorf("failed to create component: %w", err)
	}

	return s.toResponse(component), nil
}

// GetByID retrieves a component owned by the caller
func (s *ComponentService) GetByID(userID, componentID uuid.UUID) (*ComponentResponse, error) {
	component, err := s.getOwned(userID, componentID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(component), nil
}

// ListByBoat retrieves all components of a boat the caller owns
func (s *ComponentService) ListByBoat(userID, boatID uuid.UUID) ([]ComponentResponse, error) {
	if _, err := s.boatRepo.GetOwned(boatID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBoatNotFound
		}
		return nil, fmt.Errorf("failed to get boat: %w", err)
	}

	components, err := s.repo.GetByBoatID(boatID)
	if err != nil {
		return nil, fmt.Errorf("failed to get components: %w", err)
	}

	responses := make([]ComponentResponse, len(components))
	for i := range components {
		responses[i] = *s.toResponse(&components[i])
	}
	return responses, nil
}

// Update updates a component owned by the caller
func (s *ComponentService) Update(userID, componentID uuid.UUID, req *UpdateComponentRequest) (*ComponentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	component, err := s.getOwned(userID, componentID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		component.Name = *req.Name
	}
	if req.Category != nil {
		category := models.ComponentCategory(*req.Category)
		if !category.IsValid() {
			return nil, apperrors.NewValidationError("", fmt.Sprintf("invalid category: %s", *req.Category))
		}
		component.Category = category
	}
	if req.Manufacturer != nil {
		component.Manufacturer = *req.Manufacturer
	}
	if req.ModelNumber != nil {
		component.ModelNumber = *req.ModelNumber
	}
	if req.SerialNumber != nil {
		component.SerialNumber = *req.SerialNumber
	}
	if req.ServiceName != nil {
		component.ServiceName = *req.ServiceName
	}
	if req.Notes != nil {
		component.Notes = *req.Notes
	}
	if req.NextServiceDate != nil {
		if component.NextServiceDate, err = parseDatePtr(req.NextServiceDate); err != nil {
			return nil, apperrors.NewValidationError("", err.Error())
		}
	}
	if req.LastServiceDate != nil {
		if component.LastServiceDate, err = parseDatePtr(req.LastServiceDate); err != nil {
			return nil, apperrors.NewValidationError("", err.Error())
		}
	}
	if req.ServiceIntervalDays != nil {
		component.ServiceIntervalDays = req.ServiceIntervalDays
	}
	if req.CurrentHours != nil {
		component.CurrentHours = req.CurrentHours
	}
	if req.NextServiceHours != nil {
		component.NextServiceHours = req.NextServiceHours
	}
	if req.ServiceIntervalHours != nil {
		component.ServiceIntervalHours = req.ServiceIntervalHours
	}
	if req.LastServiceHours != nil {
		component.LastServiceHours = req.LastServiceHours
	}

	if err := s.repo.Update(component); err != nil {
		return nil, fmt.Errorf("failed to update component: %w", err)
	}
	return s.toResponse(component), nil
}

// Delete deletes a component owned by the caller
func (s *ComponentService) Delete(userID, componentID uuid.UUID) error {
	if _, err := s.getOwned(userID, componentID); err != nil {
		return err
	}
	if err := s.repo.Delete(componentID); err != nil {
		return fmt.Errorf("failed to delete component: %w", err)
	}
	return nil
}

// DismissAlert pushes a component's next-due value forward for one cadence.
// The interval projects from today (or the current hour counter), not from
// the old due point. A cadence with no interval is cleared instead.
func (s *ComponentService) DismissAlert(userID uuid.UUID, req *DismissAlertRequest) (*MutationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.AlertType != AlertTypeMaintenanceDate && req.AlertType != AlertTypeMaintenanceHours {
		return nil, apperrors.ErrInvalidAlertType
	}

	component, err := s.getOwned(userID, req.ComponentID)
	if err != nil {
		return nil, err
	}

	updates := dismissUpdates(component, req.AlertType, todayUTC())
	if err := s.repo.UpdateFields(component.ID, updates); err != nil {
		return nil, fmt.Errorf("failed to update component: %w", err)
	}

	return &MutationResponse{Success: true, Updates: presentUpdates(updates)}, nil
}

// QuickComplete records a completed service: it inserts one maintenance log
// and re-projects every configured cadence forward from today and the current
// hour counter. The two writes are not wrapped in a transaction; a crash in
// between leaves the log without the component update, which future runs
// tolerate.
func (s *ComponentService) QuickComplete(userID uuid.UUID, req *QuickCompleteRequest) (*MutationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.AlertType != "" && !req.AlertType.IsValid() {
		return nil, apperrors.ErrInvalidAlertType
	}

	component, err := s.getOwned(userID, req.ComponentID)
	if err != nil {
		return nil, err
	}

	today := todayUTC()
	entry, updates := quickCompleteChanges(component, req.ServiceName, today)

	if err := s.logRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create maintenance log: %w", err)
	}
	if err := s.repo.UpdateFields(component.ID, updates); err != nil {
		return nil, fmt.Errorf("failed to update component: %w", err)
	}

	return &MutationResponse{Success: true, Updates: presentUpdates(updates)}, nil
}

// getOwned fetches a component and verifies the caller owns its boat. A
// component on someone else's boat reports as not found, same as a missing
// row, so existence never leaks across accounts.
func (s *ComponentService) getOwned(userID, componentID uuid.UUID) (*models.Component, error) {
	component, err := s.repo.GetWithBoat(componentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrComponentNotFound
		}
		return nil, fmt.Errorf("failed to get component: %w", err)
	}
	if component.Boat == nil || component.Boat.OwnerID != userID {
		return nil, apperrors.ErrComponentNotFound
	}
	return component, nil
}

// dismissUpdates computes the column changes for dismissing one cadence
func dismissUpdates(c *models.Component, alertType AlertType, today time.Time) map[string]interface{} {
	updates := make(map[string]interface{})

	switch alertType {
	case AlertTypeMaintenanceDate:
		if c.ServiceIntervalDays != nil {
			updates["next_service_date"] = today.AddDate(0, 0, *c.ServiceIntervalDays)
		} else {
			updates["next_service_date"] = nil
		}
	case AlertTypeMaintenanceHours:
		if c.ServiceIntervalHours != nil {
			current := 0
			if c.CurrentHours != nil {
				current = *c.CurrentHours
			}
			updates["next_service_hours"] = current + *c.ServiceIntervalHours
		} else {
			updates["next_service_hours"] = nil
		}
	}

	return updates
}

// quickCompleteChanges computes the log entry and column changes for a
// completed service. Both cadences re-project whenever their interval is
// configured, regardless of which alert the caller acted on.
func quickCompleteChanges(c *models.Component, serviceName string, today time.Time) (*models.MaintenanceLog, map[string]interface{}) {
	title := serviceName
	if title == "" {
		title = c.ServiceName
	}
	if title == "" {
		title = "Service"
	}

	componentID := c.ID
	entry := &models.MaintenanceLog{
		BoatID:      c.BoatID,
		ComponentID: &componentID,
		Title:       title,
		PerformedAt: today,
		EngineHours: c.CurrentHours,
	}

	updates := map[string]interface{}{
		"last_service_date": today,
	}
	if c.CurrentHours != nil {
		updates["last_service_hours"] = *c.CurrentHours
	}
	if c.ServiceIntervalDays != nil {
		updates["next_service_date"] = today.AddDate(0, 0, *c.ServiceIntervalDays)
	}
	if c.ServiceIntervalHours != nil {
		current := 0
		if c.CurrentHours != nil {
			current = *c.CurrentHours
		}
		updates["next_service_hours"] = current + *c.ServiceIntervalHours
	}

	return entry, updates
}

// presentUpdates formats column changes for the response body
func presentUpdates(updates map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		if t, ok := v.(time.Time); ok {
			out[k] = t.Format("2006-01-02")
			continue
		}
		out[k] = v
	}
	return out
}

// todayUTC returns today's date with the time-of-day zeroed
func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// parseDatePtr parses an optional "2006-01-02" date string
func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", *s, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", *s)
	}
	return &t, nil
}

func (s *ComponentService) toResponse(c *models.Component) *ComponentResponse {
	resp := &ComponentResponse{
		ID:                   c.ID,
		BoatID:               c.BoatID,
		Name:                 c.Name,
		Category:             string(c.Category),
		Manufacturer:         c.Manufacturer,
		ModelNumber:          c.ModelNumber,
		SerialNumber:         c.SerialNumber,
		ServiceName:          c.ServiceName,
		Notes:                c.Notes,
		ServiceIntervalDays:  c.ServiceIntervalDays,
		CurrentHours:         c.CurrentHours,
		NextServiceHours:     c.NextServiceHours,
		ServiceIntervalHours: c.ServiceIntervalHours,
		LastServiceHours:     c.LastServiceHours,
		CreatedAt:            c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            c.UpdatedAt.Format(time.RFC3339),
	}
	if c.NextServiceDate != nil {
		resp.NextServiceDate = c.NextServiceDate.Format("2006-01-02")
	}
	if c.LastServiceDate != nil {
		resp.LastServiceDate = c.LastServiceDate.Format("2006-01-02")
	}
	return resp
}
