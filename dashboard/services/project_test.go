package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ProjectSuite struct {
	suite.Suite
}

func TestProjectSuite(t *testing.T) {
	suite.Run(t, new(ProjectSuite))
}

func (s *ProjectSuite) sampleTable() Table {
	return DepthTable("Permit Releasing Soon", []DepthRow{
		{Name: "Ram", Agent: "Gopal", Submitted: "2025-01-01", Physical: "2025-02-01"},
		{Name: "Sita", Agent: "Hari", Submitted: "2025-01-05", Physical: "2025-02-10"},
	})
}

func (s *ProjectSuite) TestProject_DropsExcludedColumnPreservingOrder() {
	projected := Project(s.sampleTable(), []string{"Agent"})

	s.Equal([]string{"SN", "Name", "Submitted Date", "Physical Date"}, projected.Columns)
	s.Require().Len(projected.Rows, 2)
	s.Equal([]string{"1", "Ram", "2025-01-01", "2025-02-01"}, projected.Rows[0])
	s.Equal([]string{"2", "Sita", "2025-01-05", "2025-02-10"}, projected.Rows[1])
}

func (s *ProjectSuite) TestProject_ExclusionIsCaseInsensitive() {
	projected := Project(s.sampleTable(), []string{"agent"})
	s.NotContains(projected.Columns, "Agent")
}

func (s *ProjectSuite) TestProject_NoExclusionsReturnsSameShape() {
	table := s.sampleTable()
	projected := Project(table, nil)
	s.Equal(table.Columns, projected.Columns)
	s.Equal(table.Rows, projected.Rows)
}

func (s *ProjectSuite) TestProject_DoesNotMutateSource() {
	table := s.sampleTable()
	_ = Project(table, []string{"Agent"})
	s.Equal([]string{"SN", "Name", "Agent", "Submitted Date", "Physical Date"}, table.Columns)
	s.Equal("Gopal", table.Rows[0][2])
}

func (s *ProjectSuite) TestPccTable_UnknownValidityRendersBlank() {
	table := PccTable([]PccValidityRow{
		{Applicant: "Ram", Process: "applied", IssuedAt: "-", Validity: PccUnknown},
		{Applicant: "Sita", Process: "dispatched", IssuedAt: "2025-06-01", Validity: PccValid},
	})

	s.Equal("", table.Rows[0][4])
	s.Equal("Valid", table.Rows[1][4])
}
