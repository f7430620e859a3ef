package models

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceLog is an immutable record of maintenance performed.
// Quick-complete inserts one as a side effect; nothing else in the alert
// engine ever updates or deletes them.
type MaintenanceLog struct {
	BaseModel
	BoatID      uuid.UUID  `json:"boat_id" gorm:"type:uuid;not null;index" validate:"required"`
	ComponentID *uuid.UUID `json:"component_id,omitempty" gorm:"type:uuid;index"`
	Title       string     `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Description string     `json:"description" gorm:"type:text"`
	PerformedAt time.Time  `json:"performed_at" gorm:"not null;index" validate:"required"`
	EngineHours *int       `json:"engine_hours,omitempty"`
	Cost        *float64   `json:"cost,omitempty"`

	Boat      *Boat      `json:"boat,omitempty" gorm:"foreignKey:BoatID;constraint:OnDelete:CASCADE"`
	Component *Component `json:"component,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for MaintenanceLog
func (MaintenanceLog) TableName() string {
	return "maintenance_logs"
}
