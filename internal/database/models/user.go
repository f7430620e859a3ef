package models

// User is the internal account record for a hosted-identity subject.
// Rows are created on first authenticated request; the identity provider
// remains the source of truth for credentials.
type User struct {
	BaseModel
	Subject string `json:"subject" gorm:"size:100;not null;uniqueIndex" validate:"required"`
	Email   string `json:"email" gorm:"size:200;not null;uniqueIndex" validate:"required,email"`
	Name    string `json:"name" gorm:"size:200"`

	// Relationships
	Boats []Boat `json:"boats,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
