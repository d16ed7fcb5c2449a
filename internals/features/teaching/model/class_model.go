package model

import (
	"time"

	"github.com/google/uuid"
)

// Status possíveis de uma turma.
const (
	ClassStatusScheduled  = "Agendada"
	ClassStatusInProgress = "Em Andamento"
	ClassStatusCompleted  = "Concluída"
	ClassStatusCancelled  = "Cancelada"
)

// TeachingClassModel representa a tabela `teaching_classes`.
type TeachingClassModel struct {
	ClassID       uuid.UUID `json:"class_id" gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClassChurchID uuid.UUID `json:"class_church_id" gorm:"column:class_church_id;type:uuid;not null;index"`

	ClassName      string     `json:"class_name" gorm:"column:class_name;type:varchar(160);not null"`
	ClassTeacherID *uuid.UUID `json:"class_teacher_id,omitempty" gorm:"column:class_teacher_id;type:uuid"` // FK -> members(member_id)

	ClassStageID    *uuid.UUID `json:"class_stage_id,omitempty" gorm:"column:class_stage_id;type:uuid"`       // FK -> christian_stages(stage_id)
	ClassCategoryID *uuid.UUID `json:"class_category_id,omitempty" gorm:"column:class_category_id;type:uuid"` // FK -> teaching_categories(category_id)

	// Agenda semanal: 0=domingo ... 6=sábado, horário HH:MM.
	ClassWeekday *int    `json:"class_weekday,omitempty" gorm:"column:class_weekday"`
	ClassTime    *string `json:"class_time,omitempty" gorm:"column:class_time;type:varchar(5)"`
	ClassRoom    *string `json:"class_room,omitempty" gorm:"column:class_room;type:varchar(80)"`

	ClassStartDate *time.Time `json:"class_start_date,omitempty" gorm:"column:class_start_date;type:date"`
	ClassEndDate   *time.Time `json:"class_end_date,omitempty" gorm:"column:class_end_date;type:date"`
	ClassStatus    string     `json:"class_status" gorm:"column:class_status;type:varchar(20);not null;default:'Agendada'"`

	ClassCreatedAt time.Time  `json:"class_created_at" gorm:"column:class_created_at;not null;autoCreateTime"`
	ClassUpdatedAt *time.Time `json:"class_updated_at,omitempty" gorm:"column:class_updated_at;autoUpdateTime"`
}

func (TeachingClassModel) TableName() string {
	return "teaching_classes"
}

// TeachingClassStudentModel representa a tabela de junção
// `teaching_class_students` (única por turma+membro).
type TeachingClassStudentModel struct {
	ClassStudentID       uuid.UUID `json:"class_student_id" gorm:"column:class_student_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClassStudentClassID  uuid.UUID `json:"class_student_class_id" gorm:"column:class_student_class_id;type:uuid;not null;uniqueIndex:uq_class_student"`
	ClassStudentMemberID uuid.UUID `json:"class_student_member_id" gorm:"column:class_student_member_id;type:uuid;not null;uniqueIndex:uq_class_student"`
	ClassStudentJoinedAt time.Time `json:"class_student_joined_at" gorm:"column:class_student_joined_at;not null;autoCreateTime"`
}

func (TeachingClassStudentModel) TableName() string {
	return "teaching_class_students"
}
