package services

import (
	"testing"
	"time"

	"visa-console-backend/db/models"

	"github.com/stretchr/testify/suite"
)

// ClassifySuite covers the day-window classifiers. The bucket boundaries
// are invariants the office plans around, so every edge value is pinned
// explicitly.
type ClassifySuite struct {
	suite.Suite
	asOf time.Time
}

func TestClassifySuite(t *testing.T) {
	suite.Run(t, new(ClassifySuite))
}

func (s *ClassifySuite) SetupTest() {
	s.asOf = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
}

func (s *ClassifySuite) daysAgo(n int) *time.Time {
	t := s.asOf.AddDate(0, 0, -n)
	return &t
}

func (s *ClassifySuite) daysAhead(n int) *time.Time {
	t := s.asOf.AddDate(0, 0, n)
	return &t
}

func (s *ClassifySuite) TestDayDiff_MidnightNormalization() {
	s.Run("late evening to early next morning is one day", func() {
		anchor := time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC)
		ref := time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC)
		s.Equal(1, DayDiff(anchor, ref))
	})

	s.Run("same calendar day is zero regardless of clock time", func() {
		anchor := time.Date(2025, 6, 15, 0, 0, 1, 0, time.UTC)
		ref := time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)
		s.Equal(0, DayDiff(anchor, ref))
	})

	s.Run("future anchor is negative", func() {
		s.Equal(-3, DayDiff(*s.daysAhead(3), s.asOf))
	})
}

func (s *ClassifySuite) TestPccValidity_Boundaries() {
	cases := []struct {
		daysAgo int
		want    PccValidity
	}{
		{0, PccValid},
		{89, PccValid},
		{90, PccValid},
		{91, PccReapply},
		{165, PccReapply},
		{166, PccExpired},
		{400, PccExpired},
	}
	for _, tc := range cases {
		s.Equal(tc.want, ClassifyPccValidity(s.daysAgo(tc.daysAgo), s.asOf),
			"issuedAt %d days ago", tc.daysAgo)
	}
}

func (s *ClassifySuite) TestPccValidity_MissingAndFutureAnchors() {
	s.Run("missing dispatch date is Unknown", func() {
		s.Equal(PccUnknown, ClassifyPccValidity(nil, s.asOf))
	})

	s.Run("future dispatch date has not aged and is Valid", func() {
		s.Equal(PccValid, ClassifyPccValidity(s.daysAhead(10), s.asOf))
	})
}

func (s *ClassifySuite) TestPassportValidity_Boundaries() {
	s.Run("expired one day ago", func() {
		s.Equal(PassportExpired, ClassifyPassportValidity(s.daysAgo(1), s.asOf))
	})

	s.Run("expiring today counts as Expiring Soon", func() {
		s.Equal(PassportExpiringSoon, ClassifyPassportValidity(s.daysAhead(0), s.asOf))
	})

	s.Run("315 days out is still Expiring Soon", func() {
		s.Equal(PassportExpiringSoon, ClassifyPassportValidity(s.daysAhead(315), s.asOf))
	})

	s.Run("316 days out is Valid", func() {
		s.Equal(PassportValid, ClassifyPassportValidity(s.daysAhead(316), s.asOf))
	})

	s.Run("no expiry means No Info", func() {
		s.Equal(PassportNoInfo, ClassifyPassportValidity(nil, s.asOf))
	})
}

func (s *ClassifySuite) TestPassportValidity_WorkedExamples() {
	s.Equal(PassportExpiringSoon, ClassifyPassportValidity(s.daysAhead(100), s.asOf))
	s.Equal(PassportExpired, ClassifyPassportValidity(s.daysAgo(5), s.asOf))
}

func (s *ClassifySuite) TestPermitAgeing_Boundaries() {
	cases := []struct {
		daysAgo int
		want    PermitAgeing
	}{
		{0, PermitNotApplicable}, // physical date today has not aged
		{1, PermitNormal},
		{19, PermitNormal},
		{20, PermitReleasingSoon},
		{45, PermitReleasingSoon},
		{46, PermitDelayed},
		{120, PermitDelayed},
	}
	for _, tc := range cases {
		s.Equal(tc.want, ClassifyPermitAgeing(models.StageSubmitted, s.daysAgo(tc.daysAgo), s.asOf),
			"physical date %d days ago", tc.daysAgo)
	}
}

func (s *ClassifySuite) TestPermitAgeing_StageFilterDominates() {
	// A record far past the delay threshold still classifies
	// NotApplicable in every stage except SUBMITTED.
	ancient := s.daysAgo(200)
	for _, stage := range models.AllProgressStages {
		if stage == models.StageSubmitted {
			continue
		}
		s.Equal(PermitNotApplicable, ClassifyPermitAgeing(stage, ancient, s.asOf),
			"stage %s must not age", stage)
	}
}

func (s *ClassifySuite) TestPermitAgeing_MissingAndFutureDates() {
	s.Equal(PermitNotApplicable, ClassifyPermitAgeing(models.StageSubmitted, nil, s.asOf))
	s.Equal(PermitNotApplicable, ClassifyPermitAgeing(models.StageSubmitted, s.daysAhead(5), s.asOf))
}

func (s *ClassifySuite) TestAppointmentWindow() {
	s.Run("same calendar day is Today", func() {
		apt := time.Date(2025, 6, 15, 16, 0, 0, 0, time.UTC)
		s.Equal(AppointmentToday, ClassifyAppointmentWindow(&apt, s.asOf))
	})

	s.Run("later day of current month is This Month", func() {
		s.Equal(AppointmentThisMonth, ClassifyAppointmentWindow(s.daysAhead(5), s.asOf))
	})

	s.Run("earlier day of current month is Other", func() {
		s.Equal(AppointmentOther, ClassifyAppointmentWindow(s.daysAgo(5), s.asOf))
	})

	s.Run("any day of the following month is Next Month", func() {
		apt := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		s.Equal(AppointmentNextMonth, ClassifyAppointmentWindow(&apt, s.asOf))
		apt = time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
		s.Equal(AppointmentNextMonth, ClassifyAppointmentWindow(&apt, s.asOf))
	})

	s.Run("two months out is Other", func() {
		apt := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
		s.Equal(AppointmentOther, ClassifyAppointmentWindow(&apt, s.asOf))
	})

	s.Run("December rolls into January of the next year", func() {
		asOf := time.Date(2025, 12, 20, 9, 0, 0, 0, time.UTC)
		apt := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
		s.Equal(AppointmentNextMonth, ClassifyAppointmentWindow(&apt, asOf))
	})

	s.Run("missing appointment date is Other", func() {
		s.Equal(AppointmentOther, ClassifyAppointmentWindow(nil, s.asOf))
	})
}
