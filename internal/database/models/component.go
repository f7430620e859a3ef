package models

import (
	"time"

	"github.com/google/uuid"
)

// ComponentCategory represents the kind of component being tracked
type ComponentCategory string

const (
	ComponentCategoryEngine     ComponentCategory = "engine"
	ComponentCategoryElectrical ComponentCategory = "electrical"
	ComponentCategoryPlumbing   ComponentCategory = "plumbing"
	ComponentCategoryRigging    ComponentCategory = "rigging"
	ComponentCategoryHull       ComponentCategory = "hull"
	ComponentCategoryNavigation ComponentCategory = "navigation"
	ComponentCategoryOther      ComponentCategory = "other"
)

// IsValid checks whether the category is one of the known values
func (c ComponentCategory) IsValid() bool {
	switch c {
	case ComponentCategoryEngine, ComponentCategoryElectrical, ComponentCategoryPlumbing,
		ComponentCategoryRigging, ComponentCategoryHull, ComponentCategoryNavigation,
		ComponentCategoryOther:
		return true
	}
	return false
}

// Component is a serviceable item on a boat. It tracks two independent
// maintenance cadences: a calendar-date cadence (next/interval/last in days)
// and a running-hours cadence (next/interval/last against the current hour
// counter). Either, both, or neither may be configured; a cadence with no
// interval cannot be re-projected after dismissal and is cleared instead.
type Component struct {
	BaseModel
	BoatID       uuid.UUID         `json:"boat_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name         string            `json:"name" gorm:"size:120;not null" validate:"required,min=1,max=120"`
	Category     ComponentCategory `json:"category" gorm:"type:varchar(30);default:'other'"`
	Manufacturer string            `json:"manufacturer" gorm:"size:120"`
	ModelNumber  string            `json:"model_number" gorm:"size:120"`
	SerialNumber string            `json:"serial_number" gorm:"size:120"`
	ServiceName  string            `json:"service_name" gorm:"size:120"`
	Notes        string            `json:"notes" gorm:"type:text"`

	// Date cadence
	NextServiceDate     *time.Time `json:"next_service_date,omitempty"`
	ServiceIntervalDays *int       `json:"service_interval_days,omitempty"`
	LastServiceDate     *time.Time `json:"last_service_date,omitempty"`

	// Hours cadence
	CurrentHours         *int `json:"current_hours,omitempty"`
	NextServiceHours     *int `json:"next_service_hours,omitempty"`
	ServiceIntervalHours *int `json:"service_interval_hours,omitempty"`
	LastServiceHours     *int `json:"last_service_hours,omitempty"`

	// Relationships
	Boat  *Boat  `json:"boat,omitempty" gorm:"foreignKey:BoatID;constraint:OnDelete:CASCADE"`
	Parts []Part `json:"parts,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Component
func (Component) TableName() string {
	return "components"
}
