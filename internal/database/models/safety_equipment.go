package models

import (
	"time"

	"github.com/google/uuid"
)

// SafetyEquipment tracks lifejackets, flares, extinguishers and similar
// items carried aboard. Expiry here is informational record-keeping; the
// due-item scanner covers components and documents only.
type SafetyEquipment struct {
	BaseModel
	BoatID          uuid.UUID  `json:"boat_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name            string     `json:"name" gorm:"size:120;not null" validate:"required,min=1,max=120"`
	EquipmentType   string     `json:"equipment_type" gorm:"size:60"`
	Quantity        int        `json:"quantity" gorm:"default:1"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
	LastInspectedAt *time.Time `json:"last_inspected_at,omitempty"`
	Notes           string     `json:"notes" gorm:"type:text"`

	Boat *Boat `json:"boat,omitempty" gorm:"foreignKey:BoatID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SafetyEquipment
func (SafetyEquipment) TableName() string {
	return "safety_equipment"
}
