package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassAttendanceRateZeroFactors(t *testing.T) {
	assert.Equal(t, 0, ClassAttendanceRate(0, 0, 10)) // sem aulas
	assert.Equal(t, 0, ClassAttendanceRate(0, 5, 0))  // sem alunos
	assert.Equal(t, 0, ClassAttendanceRate(0, 0, 0))
}

func TestClassAttendanceRateRounding(t *testing.T) {
	// 5 presenças em 2 aulas × 4 alunos = 5/8 -> 63%
	assert.Equal(t, 63, ClassAttendanceRate(5, 2, 4))
	// presença total
	assert.Equal(t, 100, ClassAttendanceRate(8, 2, 4))
	// 1/3 -> 33%
	assert.Equal(t, 33, ClassAttendanceRate(1, 1, 3))
	// 2/3 -> 67% (arredonda para cima)
	assert.Equal(t, 67, ClassAttendanceRate(2, 1, 3))
}
