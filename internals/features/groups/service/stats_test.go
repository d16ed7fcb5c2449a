package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupAttendanceRateEmpty(t *testing.T) {
	assert.Equal(t, 0, GroupAttendanceRate(nil))
	assert.Equal(t, 0, GroupAttendanceRate([]MeetingTally{}))
}

func TestGroupAttendanceRateZeroMembers(t *testing.T) {
	tallies := []MeetingTally{{AttendanceCount: 0, TotalMembers: 0}}
	assert.Equal(t, 0, GroupAttendanceRate(tallies))
}

func TestGroupAttendanceRateAggregatesAcrossMeetings(t *testing.T) {
	// (3+2)/(4+4) = 62,5% -> 63
	tallies := []MeetingTally{
		{AttendanceCount: 3, TotalMembers: 4},
		{AttendanceCount: 2, TotalMembers: 4},
	}
	assert.Equal(t, 63, GroupAttendanceRate(tallies))
}

func TestGroupAttendanceRateFull(t *testing.T) {
	tallies := []MeetingTally{
		{AttendanceCount: 4, TotalMembers: 4},
		{AttendanceCount: 6, TotalMembers: 6},
	}
	assert.Equal(t, 100, GroupAttendanceRate(tallies))
}

func TestGroupAttendanceRateRoundsHalfUp(t *testing.T) {
	// 1/3 = 33,33 -> 33 ; 2/3 = 66,67 -> 67
	assert.Equal(t, 33, GroupAttendanceRate([]MeetingTally{{1, 3}}))
	assert.Equal(t, 67, GroupAttendanceRate([]MeetingTally{{2, 3}}))
}
