package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type DateOnlySuite struct {
	suite.Suite
}

func TestDateOnlySuite(t *testing.T) {
	suite.Run(t, new(DateOnlySuite))
}

func (s *DateOnlySuite) TestUnmarshalDropsTimeComponent() {
	var d DateOnly
	s.Require().NoError(json.Unmarshal([]byte(`"2025-06-15"`), &d))
	s.Equal("2025-06-15", d.String())
	s.Equal(0, d.Time().Hour())
}

func (s *DateOnlySuite) TestUnmarshalNullIsZero() {
	var d DateOnly
	s.Require().NoError(json.Unmarshal([]byte(`null`), &d))
	s.True(d.IsZero())
	s.Nil(d.TimePtr())
}

func (s *DateOnlySuite) TestUnmarshalRejectsTimestamps() {
	var d DateOnly
	s.Error(json.Unmarshal([]byte(`"2025-06-15T10:30:00Z"`), &d))
}

func (s *DateOnlySuite) TestTimePtrNilReceiver() {
	var d *DateOnly
	s.Nil(d.TimePtr())
}

func (s *DateOnlySuite) TestTimePtrRoundTrip() {
	d := NewDateOnly(time.Date(2025, 6, 15, 18, 45, 0, 0, time.UTC))
	ptr := d.TimePtr()
	s.Require().NotNil(ptr)
	s.Equal(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), *ptr)
}

func (s *DateOnlySuite) TestMarshalFormatsAsDate() {
	d := NewDateOnly(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))
	b, err := json.Marshal(d)
	s.Require().NoError(err)
	s.Equal(`"2025-01-02"`, string(b))
}
