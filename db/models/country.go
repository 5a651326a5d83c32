package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Country is a pure lookup entity.
type Country struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`

	Name string `gorm:"not null;uniqueIndex" json:"name"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Country) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
