package model

import (
	"time"

	"github.com/google/uuid"
)

// Status de presença em um encontro de grupo.
const (
	MeetingAttendancePresent   = "Presente"
	MeetingAttendanceAbsent    = "Ausente"
	MeetingAttendanceJustified = "Justificado"
)

// GroupMeetingModel representa a tabela `group_meetings`.
type GroupMeetingModel struct {
	MeetingID      uuid.UUID `json:"meeting_id" gorm:"column:meeting_id;type:uuid;default:gen_random_uuid();primaryKey"`
	MeetingGroupID uuid.UUID `json:"meeting_group_id" gorm:"column:meeting_group_id;type:uuid;not null;index"`

	MeetingDate  time.Time `json:"meeting_date" gorm:"column:meeting_date;type:date;not null"`
	MeetingTopic *string   `json:"meeting_topic,omitempty" gorm:"column:meeting_topic;type:varchar(200)"`
	MeetingNotes *string   `json:"meeting_notes,omitempty" gorm:"column:meeting_notes;type:text"`

	MeetingCreatedAt time.Time `json:"meeting_created_at" gorm:"column:meeting_created_at;not null;autoCreateTime"`
}

func (GroupMeetingModel) TableName() string {
	return "group_meetings"
}

// GroupMeetingAttendanceModel representa `group_meeting_attendance`
// (única por encontro+membro).
type GroupMeetingAttendanceModel struct {
	AttendanceID        uuid.UUID `json:"attendance_id" gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AttendanceMeetingID uuid.UUID `json:"attendance_meeting_id" gorm:"column:attendance_meeting_id;type:uuid;not null;uniqueIndex:uq_meeting_attendance"`
	AttendanceMemberID  uuid.UUID `json:"attendance_member_id" gorm:"column:attendance_member_id;type:uuid;not null;uniqueIndex:uq_meeting_attendance"`
	AttendanceStatus    string    `json:"attendance_status" gorm:"column:attendance_status;type:varchar(20);not null;default:'Presente'"`

	AttendanceCreatedAt time.Time `json:"attendance_created_at" gorm:"column:attendance_created_at;not null;autoCreateTime"`
}

func (GroupMeetingAttendanceModel) TableName() string {
	return "group_meeting_attendance"
}
