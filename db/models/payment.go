package models

import (
	"time"

	"visa-console-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is one instalment received against an applicant's file. The
// ready-to-apply gate sums these per applicant.
type Payment struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`

	ApplicantID uuid.UUID  `gorm:"type:uuid;not null;index" json:"applicant_id"`
	Applicant   *Applicant `gorm:"foreignKey:ApplicantID;references:ID" json:"applicant,omitempty"`

	Date      utils.DateOnly  `gorm:"type:date;not null" json:"date"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Reference string          `json:"reference"`
	Method    string          `json:"method"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	if p.Date.IsZero() {
		p.Date = utils.NewDateOnly(time.Now())
	}

	return
}
