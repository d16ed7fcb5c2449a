package model

import (
	"time"

	"github.com/google/uuid"
)

// TeachingLessonModel representa a tabela `teaching_lessons`
// (uma aula de uma turma; filha de exatamente uma turma).
type TeachingLessonModel struct {
	LessonID      uuid.UUID `json:"lesson_id" gorm:"column:lesson_id;type:uuid;default:gen_random_uuid();primaryKey"`
	LessonClassID uuid.UUID `json:"lesson_class_id" gorm:"column:lesson_class_id;type:uuid;not null;index"`

	LessonDate  time.Time `json:"lesson_date" gorm:"column:lesson_date;type:date;not null"`
	LessonTitle string    `json:"lesson_title" gorm:"column:lesson_title;type:varchar(200);not null"`
	LessonNotes *string   `json:"lesson_notes,omitempty" gorm:"column:lesson_notes;type:text"`

	LessonCreatedAt time.Time  `json:"lesson_created_at" gorm:"column:lesson_created_at;not null;autoCreateTime"`
	LessonUpdatedAt *time.Time `json:"lesson_updated_at,omitempty" gorm:"column:lesson_updated_at;autoUpdateTime"`
}

func (TeachingLessonModel) TableName() string {
	return "teaching_lessons"
}

// TeachingLessonAttendanceModel representa `teaching_lesson_attendance`
// (presenças de uma aula; substituída por completo a cada gravação).
type TeachingLessonAttendanceModel struct {
	AttendanceID       uuid.UUID `json:"attendance_id" gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AttendanceLessonID uuid.UUID `json:"attendance_lesson_id" gorm:"column:attendance_lesson_id;type:uuid;not null;uniqueIndex:uq_lesson_attendance"`
	AttendanceMemberID uuid.UUID `json:"attendance_member_id" gorm:"column:attendance_member_id;type:uuid;not null;uniqueIndex:uq_lesson_attendance"`
	AttendanceCreatedAt time.Time `json:"attendance_created_at" gorm:"column:attendance_created_at;not null;autoCreateTime"`
}

func (TeachingLessonAttendanceModel) TableName() string {
	return "teaching_lesson_attendance"
}
