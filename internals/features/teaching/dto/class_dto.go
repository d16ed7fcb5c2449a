package dto

import (
	"time"

	"github.com/google/uuid"

	memberdto "minhaigreja_backend/internals/features/members/dto"
	"minhaigreja_backend/internals/features/teaching/model"
)

/* ========== REQUEST DTOs ========== */

// Stage e Category aceitam identificador OU nome de exibição; a resolução
// acontece no controller antes da escrita.
type CreateClassRequest struct {
	ClassName      string     `json:"class_name"       form:"class_name"       validate:"required,min=2,max=160"`
	ClassTeacherID *uuid.UUID `json:"class_teacher_id" form:"class_teacher_id"`
	Stage          *string    `json:"stage"            form:"stage"`
	Category       *string    `json:"category"         form:"category"`
	ClassWeekday   *int       `json:"class_weekday"    form:"class_weekday"    validate:"omitempty,min=0,max=6"`
	ClassTime      *string    `json:"class_time"       form:"class_time"       validate:"omitempty,len=5"`
	ClassRoom      *string    `json:"class_room"       form:"class_room"       validate:"omitempty,max=80"`
	ClassStartDate *time.Time `json:"class_start_date" form:"class_start_date"`
	ClassEndDate   *time.Time `json:"class_end_date"   form:"class_end_date"`
	ClassStatus    *string    `json:"class_status"     form:"class_status"     validate:"omitempty,oneof=Agendada 'Em Andamento' Concluída Cancelada"`
}

type UpdateClassRequest struct {
	ClassName      *string    `json:"class_name"       form:"class_name"       validate:"omitempty,min=2,max=160"`
	ClassTeacherID *uuid.UUID `json:"class_teacher_id" form:"class_teacher_id"`
	Stage          *string    `json:"stage"            form:"stage"`
	Category       *string    `json:"category"         form:"category"`
	ClassWeekday   *int       `json:"class_weekday"    form:"class_weekday"    validate:"omitempty,min=0,max=6"`
	ClassTime      *string    `json:"class_time"       form:"class_time"       validate:"omitempty,len=5"`
	ClassRoom      *string    `json:"class_room"       form:"class_room"       validate:"omitempty,max=80"`
	ClassStartDate *time.Time `json:"class_start_date" form:"class_start_date"`
	ClassEndDate   *time.Time `json:"class_end_date"   form:"class_end_date"`
	ClassStatus    *string    `json:"class_status"     form:"class_status"     validate:"omitempty,oneof=Agendada 'Em Andamento' Concluída Cancelada"`
}

type SetClassStudentsRequest struct {
	StudentIDs []uuid.UUID `json:"student_ids" validate:"required"`
}

/* ========== RESPONSE DTOs ========== */

// ClassListItem é a linha da listagem (sem coleções aninhadas).
type ClassListItem struct {
	ClassID        uuid.UUID            `json:"class_id"`
	ClassName      string               `json:"class_name"`
	Teacher        *memberdto.MemberRef `json:"teacher,omitempty"`
	StageName      *string              `json:"stage_name,omitempty"`
	CategoryName   *string              `json:"category_name,omitempty"`
	ClassWeekday   *int                 `json:"class_weekday,omitempty"`
	ClassTime      *string              `json:"class_time,omitempty"`
	ClassRoom      *string              `json:"class_room,omitempty"`
	ClassStartDate *time.Time           `json:"class_start_date,omitempty"`
	ClassEndDate   *time.Time           `json:"class_end_date,omitempty"`
	ClassStatus    string               `json:"class_status"`
	StudentCount   int                  `json:"student_count"`
	LessonCount    int                  `json:"lesson_count"`
}

// ClassDetailResponse é o view-model completo consumido pela tela da turma.
type ClassDetailResponse struct {
	ClassListItem
	Students       []memberdto.MemberRef `json:"students"`
	Lessons        []LessonResponse      `json:"lessons"`
	AttendanceRate int                   `json:"attendance_rate"`
}

/* ========== HELPERS: MODEL <-> DTO ========== */

func (r *CreateClassRequest) ToModel(churchID uuid.UUID, stageID, categoryID *uuid.UUID) *model.TeachingClassModel {
	m := &model.TeachingClassModel{
		ClassChurchID:   churchID,
		ClassName:       r.ClassName,
		ClassTeacherID:  r.ClassTeacherID,
		ClassStageID:    stageID,
		ClassCategoryID: categoryID,
		ClassWeekday:    r.ClassWeekday,
		ClassTime:       r.ClassTime,
		ClassRoom:       r.ClassRoom,
		ClassStartDate:  r.ClassStartDate,
		ClassEndDate:    r.ClassEndDate,
		ClassStatus:     model.ClassStatusScheduled,
	}
	if r.ClassStatus != nil {
		m.ClassStatus = *r.ClassStatus
	}
	return m
}

// ApplyToModel aplica o update parcial; stageID/categoryID chegam já
// resolvidos (nil = campo não enviado).
func (r *UpdateClassRequest) ApplyToModel(m *model.TeachingClassModel, stageID, categoryID *uuid.UUID) {
	if r.ClassName != nil {
		m.ClassName = *r.ClassName
	}
	if r.ClassTeacherID != nil {
		m.ClassTeacherID = r.ClassTeacherID
	}
	if stageID != nil {
		m.ClassStageID = stageID
	}
	if categoryID != nil {
		m.ClassCategoryID = categoryID
	}
	if r.ClassWeekday != nil {
		m.ClassWeekday = r.ClassWeekday
	}
	if r.ClassTime != nil {
		m.ClassTime = r.ClassTime
	}
	if r.ClassRoom != nil {
		m.ClassRoom = r.ClassRoom
	}
	if r.ClassStartDate != nil {
		m.ClassStartDate = r.ClassStartDate
	}
	if r.ClassEndDate != nil {
		m.ClassEndDate = r.ClassEndDate
	}
	if r.ClassStatus != nil {
		m.ClassStatus = *r.ClassStatus
	}
}
