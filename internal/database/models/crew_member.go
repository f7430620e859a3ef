package models

import (
	"time"

	"github.com/google/uuid"
)

// CrewStatus represents the lifecycle of a crew membership
type CrewStatus string

const (
	CrewStatusInvited CrewStatus = "invited"
	CrewStatusActive  CrewStatus = "active"
)

// IsValid checks whether the status is one of the known values
func (s CrewStatus) IsValid() bool {
	return s == CrewStatusInvited || s == CrewStatusActive
}

// CrewMember is a person with shared access to a boat. Crew access never
// grants alerting: the due-item scanner covers owned boats only.
type CrewMember struct {
	BaseModel
	BoatID    uuid.UUID  `json:"boat_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name      string     `json:"name" gorm:"size:120;not null" validate:"required,min=1,max=120"`
	Email     string     `json:"email" gorm:"size:200;not null" validate:"required,email"`
	Role      string     `json:"role" gorm:"size:60"`
	Status    CrewStatus `json:"status" gorm:"type:varchar(20);not null;default:'invited'"`
	InvitedAt *time.Time `json:"invited_at,omitempty"`

	Boat *Boat `json:"boat,omitempty" gorm:"foreignKey:BoatID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CrewMember
func (CrewMember) TableName() string {
	return "crew_members"
}
