package service

import (
	"testing"
	"time"

	"boatlog-backend/internal/database/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ComponentMutatorTestSuite struct {
	suite.Suite
	today     time.Time
	validator *validator.Validate
}

func (s *ComponentMutatorTestSuite) SetupTest() {
	s.today = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	s.validator = validator.New()
}

func intPtr(v int) *int { return &v }

func (s *ComponentMutatorTestSuite) TestDismissDateWithInterval() {
	overdue := s.today.AddDate(0, 0, -200)
	c := &models.Component{
		Name:                "Port Engine",
		NextServiceDate:     &overdue,
		ServiceIntervalDays: intPtr(90),
	}

	updates := dismissUpdates(c, AlertTypeMaintenanceDate, s.today)

	s.Require().Contains(updates, "next_service_date")
	// Projection is from today, not from the old due date
	s.Equal(s.today.AddDate(0, 0, 90), updates["next_service_date"])
	s.NotContains(updates, "next_service_hours")
}

func (s *ComponentMutatorTestSuite) TestDismissDateWithoutIntervalClears() {
	overdue := s.today.AddDate(0, 0, -10)
	c := &models.Component{
		Name:            "Port Engine",
		NextServiceDate: &overdue,
	}

	updates := dismissUpdates(c, AlertTypeMaintenanceDate, s.today)

	s.Require().Contains(updates, "next_service_date")
	s.Nil(updates["next_service_date"])
}

func (s *ComponentMutatorTestSuite) TestDismissHoursWithInterval() {
	c := &models.Component{
		Name:                 "Port Engine",
		CurrentHours:         intPtr(480),
		NextServiceHours:     intPtr(450),
		ServiceIntervalHours: intPtr(100),
	}

	updates := dismissUpdates(c, AlertTypeMaintenanceHours, s.today)

	s.Equal(580, updates["next_service_hours"])
	s.NotContains(updates, "next_service_date")
}

func (s *ComponentMutatorTestSuite) TestDismissHoursWithoutCurrentProjectsFromZero() {
	c := &models.Component{
		Name:                 "Port Engine",
		NextServiceHours:     intPtr(450),
		ServiceIntervalHours: intPtr(100),
	}

	updates := dismissUpdates(c, AlertTypeMaintenanceHours, s.today)

	s.Equal(100, updates["next_service_hours"])
}

func (s *ComponentMutatorTestSuite) TestDismissHoursWithoutIntervalClears() {
	c := &models.Component{
		Name:             "Port Engine",
		CurrentHours:     intPtr(480),
		NextServiceHours: intPtr(450),
	}

	updates := dismissUpdates(c, AlertTypeMaintenanceHours, s.today)

	s.Require().Contains(updates, "next_service_hours")
	s.Nil(updates["next_service_hours"])
}

func (s *ComponentMutatorTestSuite) TestQuickCompleteBothCadences() {
	c := &models.Component{
		BoatID:               uuid.New(),
		Name:                 "Port Engine",
		ServiceName:          "Engine service",
		CurrentHours:         intPtr(480),
		ServiceIntervalDays:  intPtr(90),
		ServiceIntervalHours: intPtr(100),
	}
	c.ID = uuid.New()

	entry, updates := quickCompleteChanges(c, "", s.today)

	s.Equal("Engine service", entry.Title)
	s.Equal(c.BoatID, entry.BoatID)
	s.Require().NotNil(entry.ComponentID)
	s.Equal(c.ID, *entry.ComponentID)
	s.Equal(s.today, entry.PerformedAt)
	s.Require().NotNil(entry.EngineHours)
	s.Equal(480, *entry.EngineHours)

	s.Equal(s.today, updates["last_service_date"])
	s.Equal(480, updates["last_service_hours"])
	s.Equal(s.today.AddDate(0, 0, 90), updates["next_service_date"])
	s.Equal(580, updates["next_service_hours"])
}

func (s *ComponentMutatorTestSuite) TestQuickCompleteTitleFallbacks() {
	c := &models.Component{BoatID: uuid.New(), Name: "Bilge Pump"}
	c.ID = uuid.New()

	entry, _ := quickCompleteChanges(c, "Impeller swap", s.today)
	s.Equal("Impeller swap", entry.Title, "caller-supplied name wins")

	entry, _ = quickCompleteChanges(c, "", s.today)
	s.Equal("Service", entry.Title, "no service name configured falls back to Service")
}

func (s *ComponentMutatorTestSuite) TestQuickCompleteNoIntervalsOnlyStampsLast() {
	c := &models.Component{BoatID: uuid.New(), Name: "Bilge Pump"}
	c.ID = uuid.New()

	entry, updates := quickCompleteChanges(c, "", s.today)

	s.Nil(entry.EngineHours)
	s.Equal(s.today, updates["last_service_date"])
	s.NotContains(updates, "last_service_hours")
	s.NotContains(updates, "next_service_date")
	s.NotContains(updates, "next_service_hours")
}

func (s *ComponentMutatorTestSuite) TestPresentUpdatesFormatsDates() {
	updates := map[string]interface{}{
		"next_service_date":  time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC),
		"next_service_hours": 580,
		"cleared":            nil,
	}

	out := presentUpdates(updates)

	s.Equal("2026-06-08", out["next_service_date"])
	s.Equal(580, out["next_service_hours"])
	s.Nil(out["cleared"])
}

func (s *ComponentMutatorTestSuite) TestDismissRequestValidation() {
	tests := []struct {
		name    string
		req     DismissAlertRequest
		wantErr bool
	}{
		{
			name:    "valid",
			req:     DismissAlertRequest{ComponentID: uuid.New(), AlertType: AlertTypeMaintenanceDate},
			wantErr: false,
		},
		{
			name:    "missing component",
			req:     DismissAlertRequest{AlertType: AlertTypeMaintenanceDate},
			wantErr: true,
		},
		{
			name:    "missing alert type",
			req:     DismissAlertRequest{ComponentID: uuid.New()},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := s.validator.Struct(tt.req)
			if tt.wantErr {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}

func (s *ComponentMutatorTestSuite) TestCreateComponentRequestValidation() {
	tests := []struct {
		name    string
		req     CreateComponentRequest
		wantErr bool
	}{
		{
			name:    "valid minimal",
			req:     CreateComponentRequest{BoatID: uuid.New(), Name: "Port Engine"},
			wantErr: false,
		},
		{
			name:    "missing name",
			req:     CreateComponentRequest{BoatID: uuid.New()},
			wantErr: true,
		},
		{
			name: "bad date format",
			req: CreateComponentRequest{
				BoatID:          uuid.New(),
				Name:            "Port Engine",
				NextServiceDate: strPtr("08/06/2026"),
			},
			wantErr: true,
		},
		{
			name: "negative current hours",
			req: CreateComponentRequest{
				BoatID:       uuid.New(),
				Name:         "Port Engine",
				CurrentHours: intPtr(-1),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := s.validator.Struct(tt.req)
			if tt.wantErr {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}

func strPtr(v string) *string { return &v }

func TestComponentMutatorTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentMutatorTestSuite))
}
