package service

import "math"

// Funções puras sobre listas já buscadas: sem I/O.

// ClassAttendanceRate calcula o percentual de presença de uma turma:
// soma das presenças por aula / (nº de aulas × nº de alunos matriculados),
// arredondado para o inteiro mais próximo. 0 quando qualquer fator é 0.
func ClassAttendanceRate(totalAttendances, lessonCount, studentCount int) int {
	if lessonCount == 0 || studentCount == 0 {
		return 0
	}
	possible := lessonCount * studentCount
	return int(math.Round(float64(totalAttendances) / float64(possible) * 100))
}
