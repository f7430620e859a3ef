package models

import "github.com/google/uuid"

// Boat represents a vessel owned by exactly one account. All child records
// (components, logs, documents, crew, safety equipment) cascade on delete.
type Boat struct {
	BaseModel
	OwnerID      uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name         string    `json:"name" gorm:"size:120;not null" validate:"required,min=1,max=120"`
	Make         string    `json:"make" gorm:"size:120"`
	Model        string    `json:"model" gorm:"size:120"`
	Year         *int      `json:"year,omitempty"`
	Registration string    `json:"registration" gorm:"size:60"`
	HullID       string    `json:"hull_id" gorm:"size:60"`

	// Relationships
	Owner           *User             `json:"owner,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Components      []Component       `json:"components,omitempty" gorm:"foreignKey:BoatID;constraint:OnDelete:CASCADE"`
	MaintenanceLogs []MaintenanceLog  `json:"maintenance_logs,omitempty" gorm:"foreignKey:BoatID;constraint:OnDelete:CASCADE"`
	HealthChecks    []HealthCheck     `json:"health_checks,omitempty" gorm:"foreignKey:BoatID;constraint:OnDelete:CASCADE"`
	Documents       []Document        `json:"documents,omitempty" gorm:"foreignKey:BoatID;constraint:OnDelete:CASCADE"`
	Crew            []CrewMember      `json:"crew,omitempty" gorm:"foreignKey:BoatID;constraint:OnDelete:CASCADE"`
	SafetyEquipment []SafetyEquipment `json:"safety_equipment,omitempty" gorm:"foreignKey:BoatID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Boat
func (Boat) TableName() string {
	return "boats"
}
