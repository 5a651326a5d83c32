package services

import (
	"time"

	"visa-console-backend/db/models"
)

// Bucket labels. These are display values; changing them changes what the
// console renders.

type PccValidity string

const (
	PccValid   PccValidity = "Valid"
	PccReapply PccValidity = "Reapply"
	PccExpired PccValidity = "Expired"
	PccUnknown PccValidity = "Unknown"
)

type PassportValidity string

const (
	PassportValid        PassportValidity = "Valid"
	PassportExpiringSoon PassportValidity = "Expiring Soon"
	PassportExpired      PassportValidity = "Expired"
	PassportNoInfo       PassportValidity = "No Info"
)

type PermitAgeing string

const (
	PermitNormal        PermitAgeing = "Normal"
	PermitReleasingSoon PermitAgeing = "Releasing Soon"
	PermitDelayed       PermitAgeing = "Delayed"
	PermitNotApplicable PermitAgeing = "Not Applicable"
)

type AppointmentWindow string

const (
	AppointmentToday     AppointmentWindow = "Today"
	AppointmentThisMonth AppointmentWindow = "This Month"
	AppointmentNextMonth AppointmentWindow = "Next Month"
	AppointmentOther     AppointmentWindow = "Other"
)

// DayDiff returns the number of whole calendar days from anchor to asOf.
// Both instants are normalized to midnight first, so a 23:59 anchor and a
// 00:01 reference on the next day still differ by exactly one day.
// Positive means the anchor is in the past.
func DayDiff(anchor, asOf time.Time) int {
	a := midnightUTC(anchor)
	b := midnightUTC(asOf)
	return int(b.Sub(a).Hours() / 24)
}

// midnightUTC rebuilds the calendar date in UTC so the difference is an
// exact multiple of 24h regardless of DST transitions in the local zone.
func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ClassifyPccValidity buckets a PCC by the age of its dispatch date.
// Up to 90 days old the certificate is usable; 91-165 days means the
// applicant should reapply; 166 days or more it is expired. A future
// dispatch date has not aged at all and counts as Valid.
func ClassifyPccValidity(issuedAt *time.Time, asOf time.Time) PccValidity {
	if issuedAt == nil {
		return PccUnknown
	}
	diff := DayDiff(*issuedAt, asOf)
	switch {
	case diff <= 90:
		return PccValid
	case diff <= 165:
		return PccReapply
	default:
		return PccExpired
	}
}

// ClassifyPassportValidity buckets a passport by days until expiry.
// Anything inside 315 days counts as expiring soon; only Expired and
// Expiring Soon rows surface on the dashboard.
func ClassifyPassportValidity(expiry *time.Time, asOf time.Time) PassportValidity {
	if expiry == nil {
		return PassportNoInfo
	}
	daysUntil := -DayDiff(*expiry, asOf)
	switch {
	case daysUntil < 0:
		return PassportExpired
	case daysUntil <= 315:
		return PassportExpiringSoon
	default:
		return PassportValid
	}
}

// ClassifyPermitAgeing buckets a submitted case by how long the physical
// permit has been in processing. The stage filter dominates: a record not
// in SUBMITTED never ages, whatever its physical date says. Likewise a
// missing or future physical date is not applicable.
func ClassifyPermitAgeing(stage models.ProgressStage, physicalDate *time.Time, asOf time.Time) PermitAgeing {
	if stage != models.StageSubmitted || physicalDate == nil {
		return PermitNotApplicable
	}
	diff := DayDiff(*physicalDate, asOf)
	switch {
	case diff <= 0:
		return PermitNotApplicable
	case diff <= 19:
		return PermitNormal
	case diff <= 45:
		return PermitReleasingSoon
	default:
		return PermitDelayed
	}
}

// ClassifyAppointmentWindow buckets an appointment date relative to asOf:
// same calendar day, a later day of the current month, any day of the
// immediately following month, or Other.
func ClassifyAppointmentWindow(appointment *time.Time, asOf time.Time) AppointmentWindow {
	if appointment == nil {
		return AppointmentOther
	}

	ay, am, ad := appointment.Date()
	ry, rm, rd := asOf.Date()

	if ay == ry && am == rm {
		if ad == rd {
			return AppointmentToday
		}
		if ad > rd {
			return AppointmentThisMonth
		}
		return AppointmentOther
	}

	next := time.Date(ry, rm, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	if ay == next.Year() && am == next.Month() {
		return AppointmentNextMonth
	}

	return AppointmentOther
}
