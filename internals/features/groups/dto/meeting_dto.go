package dto

import (
	"time"

	"github.com/google/uuid"

	"minhaigreja_backend/internals/features/groups/model"
	memberdto "minhaigreja_backend/internals/features/members/dto"
)

/* ================= Requests ================= */

type UpsertMeetingRequest struct {
	MeetingID    *uuid.UUID `json:"meeting_id" validate:"omitempty"`
	MeetingDate  time.Time  `json:"meeting_date" validate:"required"`
	MeetingTopic *string    `json:"meeting_topic" validate:"omitempty,max=200"`
	MeetingNotes *string    `json:"meeting_notes" validate:"omitempty"`
}

type AttendanceEntry struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
	Status   string    `json:"status" validate:"required,oneof=Presente Ausente Justificado"`
}

// RecordAttendanceRequest substitui integralmente a lista de presenças
// do encontro.
type RecordAttendanceRequest struct {
	Entries []AttendanceEntry `json:"entries" validate:"required,dive"`
}

/* ================= Responses ================= */

type AttendanceResponse struct {
	Member memberdto.MemberRef `json:"member"`
	Status string              `json:"status"`
}

type MeetingResponse struct {
	MeetingID       uuid.UUID            `json:"meeting_id"`
	MeetingDate     time.Time            `json:"meeting_date"`
	MeetingTopic    *string              `json:"meeting_topic,omitempty"`
	MeetingNotes    *string              `json:"meeting_notes,omitempty"`
	AttendanceCount int                  `json:"attendance_count"`
	TotalMembers    int                  `json:"total_members"`
	Attendance      []AttendanceResponse `json:"attendance"`
}

func NewMeetingResponse(m *model.GroupMeetingModel, attendance []AttendanceResponse, presentCount, totalMembers int) MeetingResponse {
	if attendance == nil {
		attendance = []AttendanceResponse{}
	}
	return MeetingResponse{
		MeetingID:       m.MeetingID,
		MeetingDate:     m.MeetingDate,
		MeetingTopic:    m.MeetingTopic,
		MeetingNotes:    m.MeetingNotes,
		AttendanceCount: presentCount,
		TotalMembers:    totalMembers,
		Attendance:      attendance,
	}
}
