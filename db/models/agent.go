package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Agent is a recruiting agent who brings applicants into the office.
// The applicant count shown on agent screens is derived with a query,
// never stored here.
type Agent struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`

	Name  string `gorm:"not null;index" json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (a *Agent) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
