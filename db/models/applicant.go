package models

import (
	"time"

	"visa-console-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//
// ENUM DEFINITIONS
//

type ProcessingStatus string

const (
	ProcessingStatusProcessing ProcessingStatus = "Processing"
	ProcessingStatusComplete   ProcessingStatus = "Complete"
)

//
// APPLICANT MODEL
//

type Applicant struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`

	Name     string `gorm:"not null;index" json:"name"`
	Passport string `gorm:"index" json:"passport"`

	// PassportExpiry drives the passport-validity dashboard. Absent means
	// the row never enters a validity bucket.
	DOB            *utils.DateOnly `gorm:"type:date" json:"dob,omitempty"`
	PassportExpiry *utils.DateOnly `gorm:"type:date" json:"passport_expiry,omitempty"`

	Phone         string `json:"phone"`
	Email         string `json:"email"`
	MaritalStatus string `json:"marital_status"`
	Remarks       string `json:"remarks"`

	// References (country and agent may come back embedded or as bare ids
	// depending on whether the query preloaded them)
	CountryID *uuid.UUID `gorm:"type:uuid;index" json:"country_id,omitempty"`
	Country   *Country   `gorm:"foreignKey:CountryID;references:ID" json:"country,omitempty"`
	AgentID   *uuid.UUID `gorm:"type:uuid;index" json:"agent_id,omitempty"`
	Agent     *Agent     `gorm:"foreignKey:AgentID;references:ID" json:"agent,omitempty"`

	ProcessingStatus ProcessingStatus `gorm:"type:varchar(20);default:'Processing'" json:"processing_status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (a *Applicant) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.ProcessingStatus == "" {
		a.ProcessingStatus = ProcessingStatusProcessing
	}

	return
}
