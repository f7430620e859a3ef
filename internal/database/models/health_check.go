package models

import (
	"time"

	"github.com/google/uuid"
)

// HealthCheckType represents the kind of observation recorded
type HealthCheckType string

const (
	HealthCheckTypeOilLevel     HealthCheckType = "oil_level"
	HealthCheckTypeCoolantLevel HealthCheckType = "coolant_level"
	HealthCheckTypeVisual       HealthCheckType = "visual"
	HealthCheckTypeBilge        HealthCheckType = "bilge"
	HealthCheckTypeBattery      HealthCheckType = "battery"
)

// IsValid checks whether the check type is one of the known values
func (t HealthCheckType) IsValid() bool {
	switch t {
	case HealthCheckTypeOilLevel, HealthCheckTypeCoolantLevel, HealthCheckTypeVisual,
		HealthCheckTypeBilge, HealthCheckTypeBattery:
		return true
	}
	return false
}

// HealthCheckStatus represents the outcome of a check
type HealthCheckStatus string

const (
	HealthCheckStatusOK      HealthCheckStatus = "ok"
	HealthCheckStatusWarning HealthCheckStatus = "warning"
	HealthCheckStatusIssue   HealthCheckStatus = "issue"
)

// IsValid checks whether the status is one of the known values
func (s HealthCheckStatus) IsValid() bool {
	switch s {
	case HealthCheckStatusOK, HealthCheckStatusWarning, HealthCheckStatusIssue:
		return true
	}
	return false
}

// HealthCheck is an immutable point-in-time observation. Surfaced in the
// activity feed only; it never participates in due-date alerting.
type HealthCheck struct {
	BaseModel
	BoatID      uuid.UUID         `json:"boat_id" gorm:"type:uuid;not null;index" validate:"required"`
	ComponentID *uuid.UUID        `json:"component_id,omitempty" gorm:"type:uuid;index"`
	CheckType   HealthCheckType   `json:"check_type" gorm:"type:varchar(30);not null" validate:"required"`
	Status      HealthCheckStatus `json:"status" gorm:"type:varchar(20);not null;default:'ok'" validate:"required"`
	Notes       string            `json:"notes" gorm:"type:text"`
	CheckedAt   time.Time         `json:"checked_at" gorm:"not null;index" validate:"required"`

	Boat      *Boat      `json:"boat,omitempty" gorm:"foreignKey:BoatID;constraint:OnDelete:CASCADE"`
	Component *Component `json:"component,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for HealthCheck
func (HealthCheck) TableName() string {
	return "health_checks"
}
