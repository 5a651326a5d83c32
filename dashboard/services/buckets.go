package services

import (
	"strings"
	"time"
)

// PageParams is the session-local view state of one dashboard section:
// a search term, a page, and the show-all escape hatch. Nothing here is
// ever persisted.
type PageParams struct {
	Query    string
	Page     int
	PageSize int
	ShowAll  bool
}

func (p PageParams) normalized(defaultSize int) PageParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultSize
	}
	return p
}

// SearchRows filters rows by case-insensitive substring match over the
// projected string fields of each row. Numeric and date values are only
// searchable through their display strings, never directly.
func SearchRows[T any](rows []T, query string, fields func(T) []string) []T {
	if query == "" {
		return rows
	}
	needle := strings.ToLower(query)
	var out []T
	for _, row := range rows {
		for _, field := range fields(row) {
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// PaginateRows truncates rows to the requested page unless show-all is set.
func PaginateRows[T any](rows []T, p PageParams) []T {
	if p.ShowAll {
		return rows
	}
	start := (p.Page - 1) * p.PageSize
	if start >= len(rows) {
		return nil
	}
	end := start + p.PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// SectionPage applies search then pagination, the way every dashboard
// section behaves. It returns the page plus the total matching count so
// callers can report pagination metadata.
func SectionPage[T any](rows []T, p PageParams, defaultSize int, fields func(T) []string) ([]T, int) {
	p = p.normalized(defaultSize)
	matched := SearchRows(rows, p.Query, fields)
	return PaginateRows(matched, p), len(matched)
}

// StablePartitionValidLast moves rows for which isValid returns true to
// the end, preserving relative order within both partitions. The PCC list
// uses it to surface actionable (non-valid) rows first.
func StablePartitionValidLast[T any](rows []T, isValid func(T) bool) []T {
	out := make([]T, 0, len(rows))
	var valid []T
	for _, row := range rows {
		if isValid(row) {
			valid = append(valid, row)
		} else {
			out = append(out, row)
		}
	}
	return append(out, valid...)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

//
// DEPTH (permit ageing) DASHBOARD
//

type DepthRow struct {
	Name      string `json:"name"`
	Agent     string `json:"agent"`
	Submitted string `json:"submitted"`
	Physical  string `json:"physical"`
}

func (r DepthRow) searchFields() []string {
	return []string{r.Name, r.Agent}
}

type OfficeApplicantRow struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	Agent    string `json:"agent"`
	Progress string `json:"progress"`
}

func (r OfficeApplicantRow) searchFields() []string {
	return []string{r.Name, r.Country, r.Agent, r.Progress}
}

type DepthBuckets struct {
	ReleasingSoon    []DepthRow           `json:"releasing_soon"`
	Delays           []DepthRow           `json:"delays"`
	OfficeApplicants []OfficeApplicantRow `json:"office_applicants"`
}

// ComputeDepthBuckets classifies every submitted record with a physical
// date into releasing-soon and delayed buckets, and builds the
// office-applicants print list (excluded agents removed, latest progress
// joined per applicant).
func ComputeDepthBuckets(s *Snapshot, asOf time.Time, cfg DashboardConfig) DepthBuckets {
	var buckets DepthBuckets

	for _, r := range s.Records {
		ageing := ClassifyPermitAgeing(r.ProgressStage, r.PhysicalDate, asOf)
		if ageing != PermitReleasingSoon && ageing != PermitDelayed {
			continue
		}

		name := "-"
		agent := "-"
		if a, ok := s.ApplicantByID(r.Applicant.ID); ok {
			name = a.Name
			agent = a.Agent.Name
		}
		row := DepthRow{
			Name:      name,
			Agent:     agent,
			Submitted: formatDate(r.SubmittedAt),
			Physical:  formatDate(r.PhysicalDate),
		}

		if ageing == PermitReleasingSoon {
			buckets.ReleasingSoon = append(buckets.ReleasingSoon, row)
		} else {
			buckets.Delays = append(buckets.Delays, row)
		}
	}

	latest := LatestRecordIndex(s.Records)
	for _, a := range s.Applicants {
		if cfg.agentExcluded(a.Agent.Name) {
			continue
		}
		progress := "-"
		if record, ok := latest[a.ID]; ok && record.ProgressStage != "" {
			progress = string(record.ProgressStage)
		}
		buckets.OfficeApplicants = append(buckets.OfficeApplicants, OfficeApplicantRow{
			Name:     a.Name,
			Country:  a.Country.Name,
			Agent:    a.Agent.Name,
			Progress: progress,
		})
	}

	return buckets
}

//
// APPOINTMENTS DASHBOARD
//

type AppointmentRow struct {
	Applicant   string            `json:"applicant"`
	Agent       string            `json:"agent"`
	Contact     string            `json:"contact"`
	Appointment string            `json:"appointment"`
	Window      AppointmentWindow `json:"window"`
}

func (r AppointmentRow) searchFields() []string {
	return []string{r.Applicant, r.Agent}
}

type AppointmentBuckets struct {
	Today     []AppointmentRow `json:"today"`
	ThisMonth []AppointmentRow `json:"this_month"`
	NextMonth []AppointmentRow `json:"next_month"`
	All       []AppointmentRow `json:"all"`
}

// ComputeAppointmentBuckets windows every record with an appointment date.
// Rows outside the three named windows still appear in the All bucket.
func ComputeAppointmentBuckets(s *Snapshot, asOf time.Time) AppointmentBuckets {
	var buckets AppointmentBuckets

	for _, r := range s.Records {
		if r.AppointmentDate == nil {
			continue
		}

		applicant := "-"
		agent := "-"
		contact := "-"
		if a, ok := s.ApplicantByID(r.Applicant.ID); ok {
			applicant = a.Name
			agent = a.Agent.Name
			contact = a.Contact()
		}

		window := ClassifyAppointmentWindow(r.AppointmentDate, asOf)
		row := AppointmentRow{
			Applicant:   applicant,
			Agent:       agent,
			Contact:     contact,
			Appointment: formatDate(r.AppointmentDate),
			Window:      window,
		}

		buckets.All = append(buckets.All, row)
		switch window {
		case AppointmentToday:
			buckets.Today = append(buckets.Today, row)
		case AppointmentThisMonth:
			buckets.ThisMonth = append(buckets.ThisMonth, row)
		case AppointmentNextMonth:
			buckets.NextMonth = append(buckets.NextMonth, row)
		}
	}

	return buckets
}

//
// PASSPORT VALIDITY DASHBOARD
//

type PassportRow struct {
	Name    string           `json:"name"`
	Contact string           `json:"contact"`
	Agent   string           `json:"agent"`
	Status  PassportValidity `json:"status"`
	Expiry  string           `json:"expiry"`
}

func (r PassportRow) searchFields() []string {
	return []string{r.Name, r.Agent, string(r.Status)}
}

type PassportBuckets struct {
	Expired      []PassportRow `json:"expired"`
	ExpiringSoon []PassportRow `json:"expiring_soon"`
}

// ComputePassportBuckets surfaces only Expired and Expiring Soon rows;
// valid passports and applicants without expiry info are excluded from
// every list.
func ComputePassportBuckets(s *Snapshot, asOf time.Time) PassportBuckets {
	var buckets PassportBuckets

	for _, a := range s.Applicants {
		status := ClassifyPassportValidity(a.PassportExpiry, asOf)
		if status != PassportExpired && status != PassportExpiringSoon {
			continue
		}
		row := PassportRow{
			Name:    a.Name,
			Contact: a.Contact(),
			Agent:   a.Agent.Name,
			Status:  status,
			Expiry:  formatDate(a.PassportExpiry),
		}
		if status == PassportExpired {
			buckets.Expired = append(buckets.Expired, row)
		} else {
			buckets.ExpiringSoon = append(buckets.ExpiringSoon, row)
		}
	}

	return buckets
}

//
// PCC VALIDITY DASHBOARD
//

type PccValidityRow struct {
	Applicant string      `json:"applicant"`
	Process   string      `json:"process"`
	IssuedAt  string      `json:"issued_at"`
	Validity  PccValidity `json:"validity"`
	Remarks   string      `json:"remarks"`
}

func (r PccValidityRow) searchFields() []string {
	return []string{r.Applicant, r.Process, string(r.Validity)}
}

type PccBuckets struct {
	AllRecords []PccValidityRow `json:"all_records"`
}

// ComputePccBuckets classifies every PCC record and orders the list so
// Valid rows sink below everything needing action. Records without a
// dispatch date classify Unknown, render blank in the validity column,
// and sort last among the non-valid rows. Relative order is preserved
// within each group.
func ComputePccBuckets(s *Snapshot, asOf time.Time) PccBuckets {
	var rows []PccValidityRow
	for _, r := range s.Pcc {
		rows = append(rows, PccValidityRow{
			Applicant: r.Applicant.Name,
			Process:   string(r.Process),
			IssuedAt:  formatDate(r.IssuedAt),
			Validity:  ClassifyPccValidity(r.IssuedAt, asOf),
			Remarks:   r.Remarks,
		})
	}

	rows = StablePartitionValidLast(rows, func(r PccValidityRow) bool {
		return r.Validity == PccUnknown || r.Validity == PccValid
	})
	rows = StablePartitionValidLast(rows, func(r PccValidityRow) bool {
		return r.Validity == PccValid
	})

	return PccBuckets{AllRecords: rows}
}

//
// READY-TO-APPLY DASHBOARD
//

func readySearchFields(r ReadyRow) []string {
	return []string{r.Name, r.Country, r.Agent}
}

type ReadyBuckets struct {
	Ready []ReadyRow `json:"ready"`
}

func ComputeReadyBuckets(s *Snapshot, cfg DashboardConfig) ReadyBuckets {
	return ReadyBuckets{Ready: ReadyToApply(s, cfg)}
}

//
// SEARCH FIELD ACCESSORS
//
// Exported so transport code can pass them to SectionPage without the row
// types leaking their projection logic.

func DepthRowSearchFields(r DepthRow) []string { return r.searchFields() }

func OfficeApplicantSearchFields(r OfficeApplicantRow) []string { return r.searchFields() }

func AppointmentSearchFields(r AppointmentRow) []string { return r.searchFields() }

func PassportSearchFields(r PassportRow) []string { return r.searchFields() }

func PccSearchFields(r PccValidityRow) []string { return r.searchFields() }

func ReadySearchFields(r ReadyRow) []string { return readySearchFields(r) }
