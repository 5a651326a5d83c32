package services

import (
	"testing"
	"time"

	"visa-console-backend/db/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type JoinSuite struct {
	suite.Suite
}

func TestJoinSuite(t *testing.T) {
	suite.Run(t, new(JoinSuite))
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func (s *JoinSuite) TestLatestRecordIndex_DateFallbackChain() {
	applicant := Ref{ID: "a1", Name: "Ram"}

	older := RecordRow{ID: "r1", Applicant: applicant, ProgressStage: models.StageMedical,
		PhysicalDate: datePtr(2025, 1, 10)}
	newer := RecordRow{ID: "r2", Applicant: applicant, ProgressStage: models.StageSubmitted,
		SubmittedAt: datePtr(2025, 3, 1)} // no physical date, submitted wins

	index := LatestRecordIndex([]RecordRow{older, newer})
	s.Equal("r2", index["a1"].ID)
}

func (s *JoinSuite) TestLatestRecordIndex_CreatedAtFallback() {
	applicant := Ref{ID: "a1", Name: "Ram"}

	undated := RecordRow{ID: "r1", Applicant: applicant,
		CreatedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)}
	dated := RecordRow{ID: "r2", Applicant: applicant,
		PhysicalDate: datePtr(2025, 2, 1)}

	// The undated record's creation time is later than the dated record's
	// physical date, so it wins.
	index := LatestRecordIndex([]RecordRow{dated, undated})
	s.Equal("r1", index["a1"].ID)
}

func (s *JoinSuite) TestLatestRecordIndex_TiesKeepFirstSeen() {
	applicant := Ref{ID: "a1", Name: "Ram"}
	first := RecordRow{ID: "r1", Applicant: applicant, PhysicalDate: datePtr(2025, 4, 1)}
	second := RecordRow{ID: "r2", Applicant: applicant, PhysicalDate: datePtr(2025, 4, 1)}

	index := LatestRecordIndex([]RecordRow{first, second})
	s.Equal("r1", index["a1"].ID)
}

func (s *JoinSuite) TestTotalPaidIndex() {
	a := Ref{ID: "a1", Name: "Ram"}
	b := Ref{ID: "a2", Name: "Sita"}

	totals := TotalPaidIndex([]PaymentRow{
		{Applicant: a, Amount: decimal.NewFromInt(10000)},
		{Applicant: a, Amount: decimal.NewFromInt(5000)},
		{Applicant: b, Amount: decimal.NewFromInt(700)},
		{Applicant: a}, // missing amount coerces to zero, row not skipped
		{Applicant: a, Amount: decimal.NewFromInt(-50)}, // bad data, coerced to zero
	})

	s.True(totals["a1"].Equal(decimal.NewFromInt(15000)), "got %s", totals["a1"])
	s.True(totals["a2"].Equal(decimal.NewFromInt(700)))
}

func readySnapshot(total int64, stage models.ProgressStage, hasRecord bool) *Snapshot {
	applicant := ApplicantRow{ID: "a1", Name: "Ram", Phone: "9800000000",
		Country: Ref{ID: "c1", Name: "Portugal"}, Agent: Ref{ID: "g1", Name: "Gopal"}}

	s := &Snapshot{
		Applicants:     []ApplicantRow{applicant},
		Payments:       []PaymentRow{{Applicant: Ref{ID: "a1"}, Amount: decimal.NewFromInt(total)}},
		applicantsByID: map[string]ApplicantRow{"a1": applicant},
	}
	if hasRecord {
		s.Records = []RecordRow{{ID: "r1", Applicant: Ref{ID: "a1"}, ProgressStage: stage,
			SubmittedAt: datePtr(2025, 1, 1)}}
	}
	return s
}

func (s *JoinSuite) TestReadyToApply_MonotonicInTotalPaid() {
	cfg := DefaultDashboardConfig()

	s.Run("24999 is excluded", func() {
		rows := ReadyToApply(readySnapshot(24999, "", false), cfg)
		s.Empty(rows)
	})

	s.Run("25000 with no record is included", func() {
		rows := ReadyToApply(readySnapshot(25000, "", false), cfg)
		s.Require().Len(rows, 1)
		s.Equal("Ram", rows[0].Name)
		s.Equal("Portugal", rows[0].Country)
		s.Equal("9800000000", rows[0].Contact)
		s.True(rows[0].TotalPaid.Equal(decimal.NewFromInt(25000)))
	})
}

func (s *JoinSuite) TestReadyToApply_StageGate() {
	cfg := DefaultDashboardConfig()

	s.Run("latest record at MEDICAL passes", func() {
		rows := ReadyToApply(readySnapshot(30000, models.StageMedical, true), cfg)
		s.Len(rows, 1)
	})

	s.Run("latest record past MEDICAL is excluded", func() {
		rows := ReadyToApply(readySnapshot(30000, models.StageSubmitted, true), cfg)
		s.Empty(rows)
	})
}

func (s *JoinSuite) TestReadyToApply_ConfigurableThreshold() {
	cfg := DefaultDashboardConfig()
	cfg.ReadyThreshold = decimal.NewFromInt(1000)

	rows := ReadyToApply(readySnapshot(1500, "", false), cfg)
	s.Len(rows, 1)
}
