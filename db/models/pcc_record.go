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

type PccProcess string

const (
	PccApplied    PccProcess = "applied"
	PccApproved   PccProcess = "approved"
	PccRejected   PccProcess = "rejected"
	PccDispatched PccProcess = "dispatched"
	PccReapplied  PccProcess = "reapplied"
)

//
// PCC RECORD MODEL
//

// PccRecord tracks a police clearance certificate for an applicant.
// One record per applicant is enforced at the controller, not the schema.
type PccRecord struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`

	ApplicantID uuid.UUID  `gorm:"type:uuid;not null;index" json:"applicant_id"`
	Applicant   *Applicant `gorm:"foreignKey:ApplicantID;references:ID" json:"applicant,omitempty"`

	Process PccProcess `gorm:"type:varchar(20)" json:"process"`

	// IssuedAt is the dispatch date of the certificate; validity windows
	// are counted from it.
	IssuedAt *utils.DateOnly `gorm:"type:date" json:"issued_at,omitempty"`

	RegisteredEmail string `json:"registered_email"`
	Remarks         string `json:"remarks"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *PccRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
