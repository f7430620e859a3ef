package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultReminderDays is the expiry reminder window applied when a document
// has no custom one.
const DefaultReminderDays = 30

// Document is a stored file attached to a boat (registration papers,
// insurance certificates, manuals). The binary lives in blob storage under
// FileKey; only metadata is kept here. ExpiryDate feeds the alert scanner
// with a per-document reminder window.
type Document struct {
	BaseModel
	BoatID       uuid.UUID  `json:"boat_id" gorm:"type:uuid;not null;index" validate:"required"`
	ComponentID  *uuid.UUID `json:"component_id,omitempty" gorm:"type:uuid;index"`
	Title        string     `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	FileKey      string     `json:"file_key" gorm:"size:500"`
	ContentType  string     `json:"content_type" gorm:"size:120"`
	FileSize     int64      `json:"file_size"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	ReminderDays *int       `json:"reminder_days,omitempty"`

	Boat      *Boat      `json:"boat,omitempty" gorm:"foreignKey:BoatID;constraint:OnDelete:CASCADE"`
	Component *Component `json:"component,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Document
func (Document) TableName() string {
	return "documents"
}

// ReminderWindow returns the effective reminder window in days
func (d *Document) ReminderWindow() int {
	if d.ReminderDays != nil && *d.ReminderDays > 0 {
		return *d.ReminderDays
	}
	return DefaultReminderDays
}
