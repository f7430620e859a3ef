package testutils

import (
	"time"

	"boatlog-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all factories for convenient use in test suites
type FactorySet struct {
	User           *UserFactory
	Boat           *BoatFactory
	Component      *ComponentFactory
	Document       *DocumentFactory
	MaintenanceLog *MaintenanceLogFactory
	HealthCheck    *HealthCheckFactory
	CrewMember     *CrewMemberFactory
}

// NewFactorySet creates a FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:           NewUserFactory(),
		Boat:           NewBoatFactory(),
		Component:      NewComponentFactory(),
		Document:       NewDocumentFactory(),
		MaintenanceLog: NewMaintenanceLogFactory(),
		HealthCheck:    NewHealthCheckFactory(),
		CrewMember:     NewCrewMemberFactory(),
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	// Unique subject and email so two factory users never collide on the
	// unique indexes
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Subject: "auth0|" + id.String()[:8],
		Email:   id.String()[:8] + "@test.com",
		Name:    "Test Skipper",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithSubject sets a custom identity subject for the user
func (f *UserFactory) WithSubject(subject string) *models.User {
	user := f.Create()
	user.Subject = subject
	return user
}

// BoatFactory provides methods to create test Boat data
type BoatFactory struct{}

// NewBoatFactory creates a new BoatFactory
func NewBoatFactory() *BoatFactory {
	return &BoatFactory{}
}

// Create creates a test Boat with default values
func (f *BoatFactory) Create() *models.Boat {
	year := 2015
	return &models.Boat{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OwnerID:      uuid.New(),
		Name:         "Test Boat",
		Make:         "Beneteau",
		Model:        "Oceanis 38",
		Year:         &year,
		Registration: "GBR-1234",
	}
}

// WithOwner sets the owner ID for the boat
func (f *BoatFactory) WithOwner(ownerID uuid.UUID) *models.Boat {
	boat := f.Create()
	boat.OwnerID = ownerID
	return boat
}

// WithName sets a custom name for the boat
func (f *BoatFactory) WithName(name string) *models.Boat {
	boat := f.Create()
	boat.Name = name
	return boat
}

// ComponentFactory provides methods to create test Component data
type ComponentFactory struct{}

// NewComponentFactory creates a new ComponentFactory
func NewComponentFactory() *ComponentFactory {
	return &ComponentFactory{}
}

// Create creates a test Component with default values and no cadences
func (f *ComponentFactory) Create() *models.Component {
	return &models.Component{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		BoatID:   uuid.New(),
		Name:     "Main Engine",
		Category: models.ComponentCategoryEngine,
	}
}

// WithBoat sets the boat ID for the component
func (f *ComponentFactory) WithBoat(boatID uuid.UUID) *models.Component {
	component := f.Create()
	component.BoatID = boatID
	return component
}

// WithDateCadence configures a calendar-date maintenance cadence
func (f *ComponentFactory) WithDateCadence(next time.Time, intervalDays int) *models.Component {
	component := f.Create()
	component.NextServiceDate = &next
	component.ServiceIntervalDays = &intervalDays
	return component
}

// WithHoursCadence configures a running-hours maintenance cadence
func (f *ComponentFactory) WithHoursCadence(current, next, intervalHours int) *models.Component {
	component := f.Create()
	component.CurrentHours = &current
	component.NextServiceHours = &next
	component.ServiceIntervalHours = &intervalHours
	return component
}

// DocumentFactory provides methods to create test Document data
type DocumentFactory struct{}

// NewDocumentFactory creates a new DocumentFactory
func NewDocumentFactory() *DocumentFactory {
	return &DocumentFactory{}
}

// Create creates a test Document with default values and no expiry
func (f *DocumentFactory) Create() *models.Document {
	return &models.Document{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		BoatID:      uuid.New(),
		Title:       "Insurance Certificate",
		ContentType: "application/pdf",
	}
}

// WithBoat sets the boat ID for the document
func (f *DocumentFactory) WithBoat(boatID uuid.UUID) *models.Document {
	document := f.Create()
	document.BoatID = boatID
	return document
}

// WithExpiry sets the expiry date and reminder window for the document
func (f *DocumentFactory) WithExpiry(expiry time.Time, reminderDays *int) *models.Document {
	document := f.Create()
	document.ExpiryDate = &expiry
	document.ReminderDays = reminderDays
	return document
}

// MaintenanceLogFactory provides methods to create test MaintenanceLog data
type MaintenanceLogFactory struct{}

// NewMaintenanceLogFactory creates a new MaintenanceLogFactory
func NewMaintenanceLogFactory() *MaintenanceLogFactory {
	return &MaintenanceLogFactory{}
}

// Create creates a test MaintenanceLog with default values
func (f *MaintenanceLogFactory) Create() *models.MaintenanceLog {
	return &models.MaintenanceLog{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		BoatID:      uuid.New(),
		Title:       "Oil Change",
		Description: "Changed engine oil and filter",
		PerformedAt: time.Now().Add(-24 * time.Hour),
	}
}

// WithBoat sets the boat ID for the log entry
func (f *MaintenanceLogFactory) WithBoat(boatID uuid.UUID) *models.MaintenanceLog {
	entry := f.Create()
	entry.BoatID = boatID
	return entry
}

// WithPerformedAt sets the performed-at timestamp for the log entry
func (f *MaintenanceLogFactory) WithPerformedAt(at time.Time) *models.MaintenanceLog {
	entry := f.Create()
	entry.PerformedAt = at
	return entry
}

// HealthCheckFactory provides methods to create test HealthCheck data
type HealthCheckFactory struct{}

// NewHealthCheckFactory creates a new HealthCheckFactory
func NewHealthCheckFactory() *HealthCheckFactory {
	return &HealthCheckFactory{}
}

// Create creates a test HealthCheck with default values
func (f *HealthCheckFactory) Create() *models.HealthCheck {
	return &models.HealthCheck{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		BoatID:    uuid.New(),
		CheckType: models.HealthCheckTypeVisual,
		Status:    models.HealthCheckStatusOK,
		CheckedAt: time.Now(),
	}
}

// WithBoat sets the boat ID for the check
func (f *HealthCheckFactory) WithBoat(boatID uuid.UUID) *models.HealthCheck {
	check := f.Create()
	check.BoatID = boatID
	return check
}

// CrewMemberFactory provides methods to create test CrewMember data
type CrewMemberFactory struct{}

// NewCrewMemberFactory creates a new CrewMemberFactory
func NewCrewMemberFactory() *CrewMemberFactory {
	return &CrewMemberFactory{}
}

// Create creates a test CrewMember with default values
func (f *CrewMemberFactory) Create() *models.CrewMember {
	invited := time.Now()
	return &models.CrewMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		BoatID:    uuid.New(),
		Name:      "First Mate",
		Email:     "mate@test.com",
		Role:      "deckhand",
		Status:    models.CrewStatusInvited,
		InvitedAt: &invited,
	}
}

// WithBoat sets the boat ID for the crew member
func (f *CrewMemberFactory) WithBoat(boatID uuid.UUID) *models.CrewMember {
	member := f.Create()
	member.BoatID = boatID
	return member
}
