package dto

import (
	"time"

	"github.com/google/uuid"

	memberdto "minhaigreja_backend/internals/features/members/dto"
	"minhaigreja_backend/internals/features/teaching/model"
)

/* ========== REQUEST DTO ========== */

// UpsertLessonRequest cria ou atualiza uma aula junto com a lista completa de
// presenças, em uma única chamada atômica (substituição, não diff).
type UpsertLessonRequest struct {
	LessonID    *uuid.UUID  `json:"lesson_id"`
	LessonDate  time.Time   `json:"lesson_date"  validate:"required"`
	LessonTitle string      `json:"lesson_title" validate:"required,min=2,max=200"`
	LessonNotes *string     `json:"lesson_notes"`
	AttendeeIDs []uuid.UUID `json:"attendee_ids"`
}

/* ========== RESPONSE DTO ========== */

type LessonResponse struct {
	LessonID    uuid.UUID             `json:"lesson_id"`
	LessonClassID uuid.UUID           `json:"lesson_class_id"`
	LessonDate  time.Time             `json:"lesson_date"`
	LessonTitle string                `json:"lesson_title"`
	LessonNotes *string               `json:"lesson_notes,omitempty"`
	Attendees   []memberdto.MemberRef `json:"attendees"`
}

func NewLessonResponse(m *model.TeachingLessonModel, attendees []memberdto.MemberRef) LessonResponse {
	if attendees == nil {
		attendees = []memberdto.MemberRef{}
	}
	return LessonResponse{
		LessonID:      m.LessonID,
		LessonClassID: m.LessonClassID,
		LessonDate:    m.LessonDate,
		LessonTitle:   m.LessonTitle,
		LessonNotes:   m.LessonNotes,
		Attendees:     attendees,
	}
}
