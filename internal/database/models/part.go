package models

import "github.com/google/uuid"

// Part is a spare or consumable tracked against a component
type Part struct {
	BaseModel
	ComponentID uuid.UUID `json:"component_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string    `json:"name" gorm:"size:120;not null" validate:"required,min=1,max=120"`
	PartNumber  string    `json:"part_number" gorm:"size:120"`
	Quantity    int       `json:"quantity" gorm:"default:1"`
	Supplier    string    `json:"supplier" gorm:"size:120"`
	Notes       string    `json:"notes" gorm:"type:text"`

	Component *Component `json:"component,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Part
func (Part) TableName() string {
	return "parts"
}
