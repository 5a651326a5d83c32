package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"visa-console-backend/db/models"
	"visa-console-backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type SnapshotSuite struct {
	suite.Suite
	asOf time.Time
}

func TestSnapshotSuite(t *testing.T) {
	suite.Run(t, new(SnapshotSuite))
}

func (s *SnapshotSuite) SetupTest() {
	s.asOf = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func staticFetchers(
	applicants []models.Applicant,
	records []models.ProcessingRecord,
	payments []models.Payment,
	agents []models.Agent,
	pcc []models.PccRecord,
) Fetchers {
	return Fetchers{
		Applicants: func(ctx context.Context) ([]models.Applicant, error) { return applicants, nil },
		Records:    func(ctx context.Context) ([]models.ProcessingRecord, error) { return records, nil },
		Payments:   func(ctx context.Context) ([]models.Payment, error) { return payments, nil },
		Agents:     func(ctx context.Context) ([]models.Agent, error) { return agents, nil },
		Pcc:        func(ctx context.Context) ([]models.PccRecord, error) { return pcc, nil },
	}
}

func dateOnlyPtr(y int, m time.Month, d int) *utils.DateOnly {
	v := utils.NewDateOnly(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	return &v
}

func (s *SnapshotSuite) TestAgentResolution_BareIDAgainstSiblingCollection() {
	agentID := uuid.New()
	agent := models.Agent{ID: agentID, Name: "Gopal"}
	applicant := models.Applicant{ID: uuid.New(), Name: "Ram", AgentID: &agentID}

	snap, err := LoadSnapshot(context.Background(),
		staticFetchers([]models.Applicant{applicant}, nil, nil, []models.Agent{agent}, nil))

	s.Require().NoError(err)
	s.Require().Len(snap.Applicants, 1)
	s.Equal("Gopal", snap.Applicants[0].Agent.Name)
	s.Equal(agentID.String(), snap.Applicants[0].Agent.ID)
}

func (s *SnapshotSuite) TestAgentResolution_EmbeddedObjectWins() {
	agentID := uuid.New()
	embedded := &models.Agent{ID: agentID, Name: "Gopal"}
	applicant := models.Applicant{ID: uuid.New(), Name: "Ram", AgentID: &agentID, Agent: embedded}

	// Sibling collection empty: the embedded object must still resolve.
	snap, err := LoadSnapshot(context.Background(),
		staticFetchers([]models.Applicant{applicant}, nil, nil, nil, nil))

	s.Require().NoError(err)
	s.Equal("Gopal", snap.Applicants[0].Agent.Name)
}

func (s *SnapshotSuite) TestAgentResolution_DanglingIDYieldsPlaceholder() {
	danglingID := uuid.New()
	applicant := models.Applicant{ID: uuid.New(), Name: "Ram", AgentID: &danglingID}

	snap, err := LoadSnapshot(context.Background(),
		staticFetchers([]models.Applicant{applicant}, nil, nil, nil, nil))

	s.Require().NoError(err)
	s.Require().Len(snap.Applicants, 1, "a dangling ref never drops the row")
	s.Equal("-", snap.Applicants[0].Agent.Name)
	s.True(snap.Applicants[0].Agent.IsNull())
}

func (s *SnapshotSuite) TestPartialSnapshot_FailedFetchDegrades() {
	applicant := models.Applicant{ID: uuid.New(), Name: "Ram",
		PassportExpiry: dateOnlyPtr(2025, 6, 10)}
	pcc := models.PccRecord{ID: uuid.New(), ApplicantID: applicant.ID,
		Process: models.PccDispatched, IssuedAt: dateOnlyPtr(2025, 6, 1)}

	full := staticFetchers([]models.Applicant{applicant}, nil, nil, nil, []models.PccRecord{pcc})

	broken := full
	broken.Payments = func(ctx context.Context) ([]models.Payment, error) {
		return nil, errors.New("payments service down")
	}

	fullSnap, err := LoadSnapshot(context.Background(), full)
	s.Require().NoError(err)
	brokenSnap, err := LoadSnapshot(context.Background(), broken)
	s.Require().NoError(err)

	s.Contains(brokenSnap.Degraded, "payments")
	s.Empty(fullSnap.Degraded)

	// Dashboards that do not depend on payments are unaffected.
	s.Equal(ComputePassportBuckets(fullSnap, s.asOf), ComputePassportBuckets(brokenSnap, s.asOf))
	s.Equal(ComputePccBuckets(fullSnap, s.asOf), ComputePccBuckets(brokenSnap, s.asOf))
}

func (s *SnapshotSuite) TestCancelledContextDiscardsResults() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snap, err := LoadSnapshot(ctx, staticFetchers(nil, nil, nil, nil, nil))

	s.Nil(snap)
	s.ErrorIs(err, context.Canceled)
}

func (s *SnapshotSuite) TestApplicantRefOnRecords() {
	applicantID := uuid.New()
	applicant := models.Applicant{ID: applicantID, Name: "Ram"}
	record := models.ProcessingRecord{ID: uuid.New(), ApplicantID: applicantID,
		ProgressStage: models.StageSubmitted, PhysicalDate: dateOnlyPtr(2025, 5, 1)}

	snap, err := LoadSnapshot(context.Background(),
		staticFetchers([]models.Applicant{applicant}, []models.ProcessingRecord{record}, nil, nil, nil))

	s.Require().NoError(err)
	s.Require().Len(snap.Records, 1)
	s.Equal("Ram", snap.Records[0].Applicant.Name)
	s.Equal(applicantID.String(), snap.Records[0].Applicant.ID)
}
