package services

import (
	"strings"
	"time"

	"visa-console-backend/db/models"

	"github.com/shopspring/decimal"
)

// DashboardConfig carries the business constants the dashboards gate on.
// The defaults are the office's current working rules; they are config
// rather than literals because nobody could say why 25000 or that one
// agent specifically, only that the office works that way today.
type DashboardConfig struct {
	// ReadyThreshold is the cumulative payment an applicant must reach
	// before appearing on the ready-to-apply list.
	ReadyThreshold decimal.Decimal
	// ReadyEntryStage is the only progress stage (besides having no record
	// at all) an applicant may be in and still count as ready.
	ReadyEntryStage models.ProgressStage
	// ExcludedAgents are agent names (case-insensitive) whose applicants
	// are left off the office-applicants print list.
	ExcludedAgents []string
}

func DefaultDashboardConfig() DashboardConfig {
	return DashboardConfig{
		ReadyThreshold:  decimal.NewFromInt(25000),
		ReadyEntryStage: models.StageMedical,
		ExcludedAgents:  []string{"amrit pokhrel"},
	}
}

func (c DashboardConfig) agentExcluded(name string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	for _, excluded := range c.ExcludedAgents {
		if trimmed == strings.ToLower(strings.TrimSpace(excluded)) {
			return true
		}
	}
	return false
}

// recordSortDate is the date a record is "latest" by: physical date,
// falling back to submission date, falling back to creation time.
func recordSortDate(r RecordRow) time.Time {
	if r.PhysicalDate != nil {
		return *r.PhysicalDate
	}
	if r.SubmittedAt != nil {
		return *r.SubmittedAt
	}
	return r.CreatedAt
}

// LatestRecordIndex maps each applicant id to their most recent processing
// record. Ties keep the first record seen, so the result is deterministic
// for a given input order.
func LatestRecordIndex(records []RecordRow) map[string]RecordRow {
	index := make(map[string]RecordRow)
	for _, r := range records {
		if r.Applicant.ID == "" {
			continue
		}
		current, ok := index[r.Applicant.ID]
		if !ok || recordSortDate(r).After(recordSortDate(current)) {
			index[r.Applicant.ID] = r
		}
	}
	return index
}

// TotalPaidIndex sums payment amounts per applicant. A payment with a
// zero-value or missing amount contributes nothing; no payment ever
// aborts the aggregation.
func TotalPaidIndex(payments []PaymentRow) map[string]decimal.Decimal {
	index := make(map[string]decimal.Decimal)
	for _, p := range payments {
		if p.Applicant.ID == "" {
			continue
		}
		amount := p.Amount
		if amount.IsNegative() {
			amount = decimal.Zero
		}
		index[p.Applicant.ID] = index[p.Applicant.ID].Add(amount)
	}
	return index
}

// ReadyRow is one applicant on the ready-to-apply list.
type ReadyRow struct {
	Name      string          `json:"name"`
	Country   string          `json:"country"`
	Contact   string          `json:"contact"`
	Agent     string          `json:"agent"`
	TotalPaid decimal.Decimal `json:"total_paid"`
}

// ReadyToApply lists applicants who are financially cleared but not yet
// past the entry stage: total paid at or above the threshold, and either
// no processing record or a latest record still in the entry stage.
func ReadyToApply(s *Snapshot, cfg DashboardConfig) []ReadyRow {
	totals := TotalPaidIndex(s.Payments)
	latest := LatestRecordIndex(s.Records)

	var rows []ReadyRow
	for _, a := range s.Applicants {
		total := totals[a.ID]
		if total.LessThan(cfg.ReadyThreshold) {
			continue
		}
		if record, ok := latest[a.ID]; ok && record.ProgressStage != cfg.ReadyEntryStage {
			continue
		}
		rows = append(rows, ReadyRow{
			Name:      a.Name,
			Country:   a.Country.Name,
			Contact:   a.Contact(),
			Agent:     a.Agent.Name,
			TotalPaid: total,
		})
	}
	return rows
}
