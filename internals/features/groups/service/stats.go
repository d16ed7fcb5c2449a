package service

import "math"

// MeetingTally é o par (presentes, total de membros na época do encontro)
// de um único encontro.
type MeetingTally struct {
	AttendanceCount int
	TotalMembers    int
}

// GroupAttendanceRate agrega os encontros somando presenças e somando
// os totais, e devolve a taxa como percentual inteiro arredondado.
// Sem encontros (ou soma de totais zero) a taxa é 0.
func GroupAttendanceRate(tallies []MeetingTally) int {
	sumAttendance := 0
	sumMembers := 0
	for _, t := range tallies {
		sumAttendance += t.AttendanceCount
		sumMembers += t.TotalMembers
	}
	if sumMembers <= 0 {
		return 0
	}
	return int(math.Round(float64(sumAttendance) / float64(sumMembers) * 100))
}
