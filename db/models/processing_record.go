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

type RecordType string

const (
	RecordTypeVisaStamping  RecordType = "Visa ST"
	RecordTypeDocumentation RecordType = "DOC"
	RecordTypeFull          RecordType = "FULL"
)

// ProgressStage is the enumerated status of a visa-processing case.
type ProgressStage string

const (
	StageMedical               ProgressStage = "MEDICAL"
	StageDocsForwarded         ProgressStage = "DOCS FORWARDED"
	StageSubmitted             ProgressStage = "SUBMITTED"
	StagePermitDispatched      ProgressStage = "PERMIT DISPATCHED"
	StagePermitRejected        ProgressStage = "PERMIT REJECTED"
	StageEmbassySubmitted      ProgressStage = "EMBASSY SUBMITTED"
	StageAppointmentCnf        ProgressStage = "APPOINTMENT CNF"
	StageInterviewFaced        ProgressStage = "INTERVIEW FACED"
	StageMailReceived          ProgressStage = "MAIL RECEIVED"
	StageVisaApproved          ProgressStage = "VISA APPROVED"
	StageVisaRejected          ProgressStage = "VISA REJECTED"
	StageLaborPermitProcessed  ProgressStage = "LABOR PERMIT PROCESSED"
	StageLaborPermitDispatched ProgressStage = "LABOR PERMIT DISPATCHED"
	StageFlightDone            ProgressStage = "FLIGHT DONE"
	StageCancelledSelf         ProgressStage = "CANCELLED SELF"
	StageOfcCancelled          ProgressStage = "OFC CANCELLED"
)

// AllProgressStages lists every stage the record form accepts, in the
// order the console presents them.
var AllProgressStages = []ProgressStage{
	StageMedical,
	StageDocsForwarded,
	StageSubmitted,
	StagePermitDispatched,
	StagePermitRejected,
	StageEmbassySubmitted,
	StageAppointmentCnf,
	StageInterviewFaced,
	StageMailReceived,
	StageVisaApproved,
	StageVisaRejected,
	StageLaborPermitProcessed,
	StageLaborPermitDispatched,
	StageFlightDone,
	StageCancelledSelf,
	StageOfcCancelled,
}

func (s ProgressStage) Known() bool {
	for _, stage := range AllProgressStages {
		if s == stage {
			return true
		}
	}
	return false
}

//
// PROCESSING RECORD MODEL
//

// ProcessingRecord is one visa-processing case for an applicant. The API
// allows several per applicant; dashboards that need "the" case pick the
// latest one by physical/submitted/created date.
type ProcessingRecord struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`

	ApplicantID uuid.UUID  `gorm:"type:uuid;not null;index" json:"applicant_id"`
	Applicant   *Applicant `gorm:"foreignKey:ApplicantID;references:ID" json:"applicant,omitempty"`

	Type          RecordType    `gorm:"type:varchar(20)" json:"type"`
	ProgressStage ProgressStage `gorm:"type:varchar(40);index" json:"progress_stage"`

	SubmittedAt *utils.DateOnly `gorm:"type:date" json:"submitted_at,omitempty"`
	// PhysicalDate is the day the physical permit/document entered
	// processing; permit-ageing buckets are measured from it.
	PhysicalDate    *utils.DateOnly `gorm:"type:date" json:"physical_date,omitempty"`
	AppointmentDate *utils.DateOnly `gorm:"type:date" json:"appointment_date,omitempty"`

	Notes string `json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *ProcessingRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
