package dto

import (
	"time"

	"github.com/google/uuid"

	"minhaigreja_backend/internals/features/discipleship/model"
	memberdto "minhaigreja_backend/internals/features/members/dto"
)

/* ================= Requests ================= */

type CreateLeaderRequest struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
	Notes    *string   `json:"notes" validate:"omitempty"`
}

type AddDiscipleRequest struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
}

type UpsertMeetingRequest struct {
	MeetingID    *uuid.UUID  `json:"meeting_id" validate:"omitempty"`
	MeetingDate  time.Time   `json:"meeting_date" validate:"required"`
	MeetingTopic *string     `json:"meeting_topic" validate:"omitempty,max=200"`
	MeetingNotes *string     `json:"meeting_notes" validate:"omitempty"`
	Status       *string     `json:"status" validate:"omitempty,oneof=Agendado Concluído Cancelado"`
	AttendeeIDs  []uuid.UUID `json:"attendee_ids" validate:"omitempty"`
}

/* ================= Responses ================= */

type MeetingResponse struct {
	MeetingID    uuid.UUID             `json:"meeting_id"`
	MeetingDate  time.Time             `json:"meeting_date"`
	MeetingTopic *string               `json:"meeting_topic,omitempty"`
	MeetingNotes *string               `json:"meeting_notes,omitempty"`
	Status       string                `json:"status"`
	Attendees    []memberdto.MemberRef `json:"attendees"`
}

func NewMeetingResponse(m *model.DiscipleshipMeetingModel, attendees []memberdto.MemberRef) MeetingResponse {
	if attendees == nil {
		attendees = []memberdto.MemberRef{}
	}
	return MeetingResponse{
		MeetingID:    m.MeetingID,
		MeetingDate:  m.MeetingDate,
		MeetingTopic: m.MeetingTopic,
		MeetingNotes: m.MeetingNotes,
		Status:       m.MeetingStatus,
		Attendees:    attendees,
	}
}

type DiscipleResponse struct {
	RelationshipID uuid.UUID           `json:"relationship_id"`
	Member         memberdto.MemberRef `json:"member"`
	StartedAt      time.Time           `json:"started_at"`
}

type LeaderListItem struct {
	LeaderID      uuid.UUID           `json:"leader_id"`
	Member        memberdto.MemberRef `json:"member"`
	Notes         *string             `json:"notes,omitempty"`
	DiscipleCount int                 `json:"disciple_count"`
	CreatedAt     time.Time           `json:"created_at"`
}

type LeaderDetailResponse struct {
	LeaderListItem
	Disciples []DiscipleResponse `json:"disciples"`
	Meetings  []MeetingResponse  `json:"meetings"`
}
