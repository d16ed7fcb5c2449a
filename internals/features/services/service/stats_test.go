package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttendanceBreakdownZero(t *testing.T) {
	var b AttendanceBreakdown
	assert.Equal(t, 0, b.Total())
	assert.Equal(t, 0, b.Adults())
	assert.Equal(t, 0, b.Male())
}

func TestAttendanceBreakdownTotals(t *testing.T) {
	b := AttendanceBreakdown{
		AdultsMale:     40,
		AdultsFemale:   55,
		ChildrenMale:   12,
		ChildrenFemale: 9,
		VisitorsMale:   3,
		VisitorsFemale: 5,
	}
	assert.Equal(t, 95, b.Adults())
	assert.Equal(t, 21, b.Children())
	assert.Equal(t, 8, b.Visitors())
	assert.Equal(t, 55, b.Male())
	assert.Equal(t, 69, b.Female())
	assert.Equal(t, 124, b.Total())
	assert.Equal(t, b.Total(), b.Male()+b.Female())
}
