package services

import (
	"context"
	"sync"
	"time"

	"visa-console-backend/config"
	"visa-console-backend/db/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Ref is the canonical resolved form of a cross-reference. The API layer
// may deliver a reference either as a preloaded association or as a bare
// foreign key; the snapshot resolves both into this one shape so nothing
// downstream ever branches on representation.
type Ref struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// NullRef is the placeholder for a missing or unresolvable reference.
// It renders as "-" wherever a name is shown.
func NullRef() Ref {
	return Ref{Name: "-"}
}

func (r Ref) IsNull() bool {
	return r.ID == ""
}

// ApplicantRow is an applicant as the dashboards see it: references
// resolved, dates reduced to day granularity.
type ApplicantRow struct {
	ID               string
	Name             string
	Passport         string
	Phone            string
	Email            string
	PassportExpiry   *time.Time
	Country          Ref
	Agent            Ref
	ProcessingStatus models.ProcessingStatus
}

// Contact mirrors the console's contact column: phone, else email, else "-".
func (a ApplicantRow) Contact() string {
	if a.Phone != "" {
		return a.Phone
	}
	if a.Email != "" {
		return a.Email
	}
	return "-"
}

type RecordRow struct {
	ID              string
	Applicant       Ref
	Type            models.RecordType
	ProgressStage   models.ProgressStage
	SubmittedAt     *time.Time
	PhysicalDate    *time.Time
	AppointmentDate *time.Time
	CreatedAt       time.Time
}

type PaymentRow struct {
	ID        string
	Applicant Ref
	Date      *time.Time
	Amount    decimal.Decimal
}

type PccRow struct {
	ID        string
	Applicant Ref
	Process   models.PccProcess
	IssuedAt  *time.Time
	Remarks   string
}

// Snapshot is a point-in-time copy of every collection one dashboard
// computation needs. It is built fresh per request and never cached.
type Snapshot struct {
	Applicants []ApplicantRow
	Records    []RecordRow
	Payments   []PaymentRow
	Pcc        []PccRow

	// Degraded lists the entity collections whose fetch failed and were
	// substituted with empty slices. Buckets still compute from the rest.
	Degraded []string

	applicantsByID map[string]ApplicantRow
}

func (s *Snapshot) ApplicantByID(id string) (ApplicantRow, bool) {
	a, ok := s.applicantsByID[id]
	return a, ok
}

// Fetchers are the five read operations the snapshot is assembled from.
// Each returns the full collection; the loader runs them concurrently.
type Fetchers struct {
	Applicants func(ctx context.Context) ([]models.Applicant, error)
	Records    func(ctx context.Context) ([]models.ProcessingRecord, error)
	Payments   func(ctx context.Context) ([]models.Payment, error)
	Agents     func(ctx context.Context) ([]models.Agent, error)
	Pcc        func(ctx context.Context) ([]models.PccRecord, error)
}

// LoadSnapshot fetches all five collections in parallel and normalizes
// them. A failed fetch yields an empty collection and marks the entity as
// degraded; only context cancellation aborts the load, in which case the
// partial results are discarded.
func LoadSnapshot(ctx context.Context, f Fetchers) (*Snapshot, error) {
	var (
		wg         sync.WaitGroup
		applicants []models.Applicant
		records    []models.ProcessingRecord
		payments   []models.Payment
		agents     []models.Agent
		pcc        []models.PccRecord

		mu       sync.Mutex
		degraded []string
	)

	fail := func(entity string, err error) {
		config.Logger.Warn("Snapshot fetch failed, continuing with empty collection",
			zap.String("entity", entity),
			zap.Error(err))
		mu.Lock()
		degraded = append(degraded, entity)
		mu.Unlock()
	}

	wg.Add(5)
	go func() {
		defer wg.Done()
		var err error
		if applicants, err = f.Applicants(ctx); err != nil {
			fail("applicants", err)
			applicants = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if records, err = f.Records(ctx); err != nil {
			fail("records", err)
			records = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if payments, err = f.Payments(ctx); err != nil {
			fail("payments", err)
			payments = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if agents, err = f.Agents(ctx); err != nil {
			fail("agents", err)
			agents = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if pcc, err = f.Pcc(ctx); err != nil {
			fail("pcc_records", err)
			pcc = nil
		}
	}()
	wg.Wait()

	// The consuming view is gone; in-flight results must not be applied.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return buildSnapshot(applicants, records, payments, agents, pcc, degraded), nil
}

func buildSnapshot(
	applicants []models.Applicant,
	records []models.ProcessingRecord,
	payments []models.Payment,
	agents []models.Agent,
	pcc []models.PccRecord,
	degraded []string,
) *Snapshot {
	agentNames := make(map[string]string, len(agents))
	for _, a := range agents {
		agentNames[a.ID.String()] = a.Name
	}

	s := &Snapshot{
		Degraded:       degraded,
		applicantsByID: make(map[string]ApplicantRow, len(applicants)),
	}

	for _, a := range applicants {
		row := ApplicantRow{
			ID:               a.ID.String(),
			Name:             a.Name,
			Passport:         a.Passport,
			Phone:            a.Phone,
			Email:            a.Email,
			PassportExpiry:   a.PassportExpiry.TimePtr(),
			Country:          resolveCountry(a.Country, a.CountryID),
			Agent:            resolveAgent(a.Agent, a.AgentID, agentNames),
			ProcessingStatus: a.ProcessingStatus,
		}
		s.Applicants = append(s.Applicants, row)
		s.applicantsByID[row.ID] = row
	}

	for _, r := range records {
		s.Records = append(s.Records, RecordRow{
			ID:              r.ID.String(),
			Applicant:       resolveApplicant(r.Applicant, r.ApplicantID, s.applicantsByID),
			Type:            r.Type,
			ProgressStage:   r.ProgressStage,
			SubmittedAt:     r.SubmittedAt.TimePtr(),
			PhysicalDate:    r.PhysicalDate.TimePtr(),
			AppointmentDate: r.AppointmentDate.TimePtr(),
			CreatedAt:       r.CreatedAt,
		})
	}

	for _, p := range payments {
		date := p.Date
		s.Payments = append(s.Payments, PaymentRow{
			ID:        p.ID.String(),
			Applicant: resolveApplicant(p.Applicant, p.ApplicantID, s.applicantsByID),
			Date:      date.TimePtr(),
			Amount:    p.Amount,
		})
	}

	for _, r := range pcc {
		s.Pcc = append(s.Pcc, PccRow{
			ID:        r.ID.String(),
			Applicant: resolveApplicant(r.Applicant, r.ApplicantID, s.applicantsByID),
			Process:   r.Process,
			IssuedAt:  r.IssuedAt.TimePtr(),
			Remarks:   r.Remarks,
		})
	}

	return s
}

// Resolution rule: embedded object wins, then sibling-index lookup by id,
// then the null placeholder. A dangling id never drops the row.
func resolveAgent(embedded *models.Agent, id *uuid.UUID, names map[string]string) Ref {
	if embedded != nil {
		return Ref{ID: embedded.ID.String(), Name: embedded.Name}
	}
	if id != nil {
		if name, ok := names[id.String()]; ok {
			return Ref{ID: id.String(), Name: name}
		}
	}
	return NullRef()
}

// Countries are not one of the five snapshot collections; they resolve
// from the embedded association only.
func resolveCountry(embedded *models.Country, id *uuid.UUID) Ref {
	if embedded != nil {
		return Ref{ID: embedded.ID.String(), Name: embedded.Name}
	}
	return NullRef()
}

func resolveApplicant(embedded *models.Applicant, id uuid.UUID, index map[string]ApplicantRow) Ref {
	if embedded != nil {
		return Ref{ID: embedded.ID.String(), Name: embedded.Name}
	}
	if row, ok := index[id.String()]; ok {
		return Ref{ID: row.ID, Name: row.Name}
	}
	if id != uuid.Nil {
		// Keep the id so joins by id still work even though the name is unknown.
		return Ref{ID: id.String(), Name: "-"}
	}
	return NullRef()
}
