package services

import (
	"testing"
	"time"

	"visa-console-backend/db/models"

	"github.com/stretchr/testify/suite"
)

type BucketsSuite struct {
	suite.Suite
	asOf time.Time
}

func TestBucketsSuite(t *testing.T) {
	suite.Run(t, new(BucketsSuite))
}

func (s *BucketsSuite) SetupTest() {
	s.asOf = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func (s *BucketsSuite) daysAgo(n int) *time.Time {
	t := s.asOf.AddDate(0, 0, -n)
	return &t
}

func snapshotWith(applicants []ApplicantRow, records []RecordRow, payments []PaymentRow, pcc []PccRow) *Snapshot {
	s := &Snapshot{
		Applicants:     applicants,
		Records:        records,
		Payments:       payments,
		Pcc:            pcc,
		applicantsByID: make(map[string]ApplicantRow, len(applicants)),
	}
	for _, a := range applicants {
		s.applicantsByID[a.ID] = a
	}
	return s
}

func (s *BucketsSuite) TestSearchRows() {
	rows := []DepthRow{
		{Name: "Ram Thapa", Agent: "Gopal"},
		{Name: "Sita Rai", Agent: "Hari"},
		{Name: "Bikash Gurung", Agent: "gopal krishna"},
	}

	s.Run("case-insensitive substring over projected fields", func() {
		got := SearchRows(rows, "GOPAL", DepthRow.searchFields)
		s.Len(got, 2)
	})

	s.Run("empty query returns everything", func() {
		s.Len(SearchRows(rows, "", DepthRow.searchFields), 3)
	})

	s.Run("no match returns empty", func() {
		s.Empty(SearchRows(rows, "zzz", DepthRow.searchFields))
	})
}

func (s *BucketsSuite) TestSectionPage() {
	var rows []DepthRow
	for i := 0; i < 23; i++ {
		rows = append(rows, DepthRow{Name: "Applicant", Agent: "Agent"})
	}

	s.Run("default page size caps the section", func() {
		page, total := SectionPage(rows, PageParams{}, 10, DepthRow.searchFields)
		s.Len(page, 10)
		s.Equal(23, total)
	})

	s.Run("second page holds the next slice", func() {
		page, _ := SectionPage(rows, PageParams{Page: 3, PageSize: 10}, 10, DepthRow.searchFields)
		s.Len(page, 3)
	})

	s.Run("show-all removes the cap for this section only", func() {
		page, total := SectionPage(rows, PageParams{ShowAll: true}, 10, DepthRow.searchFields)
		s.Len(page, 23)
		s.Equal(23, total)
	})

	s.Run("page past the end is empty", func() {
		page, _ := SectionPage(rows, PageParams{Page: 9}, 10, DepthRow.searchFields)
		s.Empty(page)
	})
}

func (s *BucketsSuite) TestPccBuckets_ValidSortsLast() {
	applicant := Ref{ID: "a1", Name: "Ram"}
	pcc := []PccRow{
		{ID: "p1", Applicant: applicant, Process: models.PccApplied, IssuedAt: s.daysAgo(120)},  // Reapply
		{ID: "p2", Applicant: applicant, Process: models.PccDispatched, IssuedAt: s.daysAgo(10)}, // Valid
		{ID: "p3", Applicant: applicant, Process: models.PccApproved, IssuedAt: s.daysAgo(200)},  // Expired
	}

	buckets := ComputePccBuckets(snapshotWith(nil, nil, nil, pcc), s.asOf)

	s.Require().Len(buckets.AllRecords, 3)
	s.Equal(PccReapply, buckets.AllRecords[0].Validity)
	s.Equal(PccExpired, buckets.AllRecords[1].Validity)
	s.Equal(PccValid, buckets.AllRecords[2].Validity)
}

func (s *BucketsSuite) TestPccBuckets_UnknownSortsAfterActionableBeforeValid() {
	applicant := Ref{ID: "a1", Name: "Ram"}
	pcc := []PccRow{
		{ID: "p1", Applicant: applicant, IssuedAt: nil},            // Unknown
		{ID: "p2", Applicant: applicant, IssuedAt: s.daysAgo(10)},  // Valid
		{ID: "p3", Applicant: applicant, IssuedAt: s.daysAgo(200)}, // Expired
	}

	buckets := ComputePccBuckets(snapshotWith(nil, nil, nil, pcc), s.asOf)

	s.Require().Len(buckets.AllRecords, 3)
	s.Equal(PccExpired, buckets.AllRecords[0].Validity)
	s.Equal(PccUnknown, buckets.AllRecords[1].Validity)
	s.Equal(PccValid, buckets.AllRecords[2].Validity)
}

func (s *BucketsSuite) TestDepthBuckets() {
	ram := ApplicantRow{ID: "a1", Name: "Ram", Agent: Ref{ID: "g1", Name: "Gopal"}}
	sita := ApplicantRow{ID: "a2", Name: "Sita", Agent: Ref{ID: "g2", Name: "Hari"}}
	applicants := []ApplicantRow{ram, sita}

	records := []RecordRow{
		// 30 days in processing: releasing soon
		{ID: "r1", Applicant: Ref{ID: "a1"}, ProgressStage: models.StageSubmitted,
			SubmittedAt: s.daysAgo(40), PhysicalDate: s.daysAgo(30)},
		// 60 days: delayed
		{ID: "r2", Applicant: Ref{ID: "a2"}, ProgressStage: models.StageSubmitted,
			SubmittedAt: s.daysAgo(70), PhysicalDate: s.daysAgo(60)},
		// old physical date but wrong stage: excluded entirely
		{ID: "r3", Applicant: Ref{ID: "a1"}, ProgressStage: models.StageVisaApproved,
			PhysicalDate: s.daysAgo(90)},
	}

	buckets := ComputeDepthBuckets(snapshotWith(applicants, records, nil, nil), s.asOf, DefaultDashboardConfig())

	s.Require().Len(buckets.ReleasingSoon, 1)
	s.Equal("Ram", buckets.ReleasingSoon[0].Name)
	s.Equal("Gopal", buckets.ReleasingSoon[0].Agent)

	s.Require().Len(buckets.Delays, 1)
	s.Equal("Sita", buckets.Delays[0].Name)
}

func (s *BucketsSuite) TestDepthBuckets_OfficeApplicantsExcludesConfiguredAgent() {
	applicants := []ApplicantRow{
		{ID: "a1", Name: "Ram", Agent: Ref{ID: "g1", Name: "Gopal"}},
		{ID: "a2", Name: "Sita", Agent: Ref{ID: "g2", Name: " Amrit Pokhrel "}},
	}
	records := []RecordRow{
		{ID: "r1", Applicant: Ref{ID: "a1"}, ProgressStage: models.StageMedical,
			SubmittedAt: s.daysAgo(3)},
	}

	buckets := ComputeDepthBuckets(snapshotWith(applicants, records, nil, nil), s.asOf, DefaultDashboardConfig())

	s.Require().Len(buckets.OfficeApplicants, 1)
	s.Equal("Ram", buckets.OfficeApplicants[0].Name)
	s.Equal("MEDICAL", buckets.OfficeApplicants[0].Progress)
}

func (s *BucketsSuite) TestPassportBuckets_OnlyActionableRowsSurface() {
	applicants := []ApplicantRow{
		{ID: "a1", Name: "Expired", PassportExpiry: s.daysAgo(5)},
		{ID: "a2", Name: "Soon", PassportExpiry: s.daysAgo(-100)},
		{ID: "a3", Name: "Fine", PassportExpiry: s.daysAgo(-400)},
		{ID: "a4", Name: "NoInfo"},
	}

	buckets := ComputePassportBuckets(snapshotWith(applicants, nil, nil, nil), s.asOf)

	s.Require().Len(buckets.Expired, 1)
	s.Equal("Expired", buckets.Expired[0].Name)
	s.Require().Len(buckets.ExpiringSoon, 1)
	s.Equal("Soon", buckets.ExpiringSoon[0].Name)
}

func (s *BucketsSuite) TestAppointmentBuckets() {
	ram := ApplicantRow{ID: "a1", Name: "Ram", Phone: "98", Agent: Ref{ID: "g1", Name: "Gopal"}}
	today := s.asOf
	thisMonth := time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC)
	nextMonth := time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC)
	past := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	records := []RecordRow{
		{ID: "r1", Applicant: Ref{ID: "a1"}, AppointmentDate: &today},
		{ID: "r2", Applicant: Ref{ID: "a1"}, AppointmentDate: &thisMonth},
		{ID: "r3", Applicant: Ref{ID: "a1"}, AppointmentDate: &nextMonth},
		{ID: "r4", Applicant: Ref{ID: "a1"}, AppointmentDate: &past},
		{ID: "r5", Applicant: Ref{ID: "a1"}}, // no appointment, excluded everywhere
	}

	buckets := ComputeAppointmentBuckets(snapshotWith([]ApplicantRow{ram}, records, nil, nil), s.asOf)

	s.Len(buckets.Today, 1)
	s.Len(buckets.ThisMonth, 1)
	s.Len(buckets.NextMonth, 1)
	// Other rows are retained in the unfiltered bucket only.
	s.Len(buckets.All, 4)
}
