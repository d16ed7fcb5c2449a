package model

import (
	"time"

	"github.com/google/uuid"
)

// Status de um encontro de discipulado.
const (
	MeetingStatusScheduled = "Agendado"
	MeetingStatusDone      = "Concluído"
	MeetingStatusCanceled  = "Cancelado"
)

// DiscipleshipLeaderModel representa a tabela `discipleship_leaders`
// (um membro habilitado a discipular, único por igreja).
type DiscipleshipLeaderModel struct {
	LeaderID       uuid.UUID `json:"leader_id" gorm:"column:leader_id;type:uuid;default:gen_random_uuid();primaryKey"`
	LeaderChurchID uuid.UUID `json:"leader_church_id" gorm:"column:leader_church_id;type:uuid;not null;uniqueIndex:uq_discipleship_leader"`
	LeaderMemberID uuid.UUID `json:"leader_member_id" gorm:"column:leader_member_id;type:uuid;not null;uniqueIndex:uq_discipleship_leader"`

	LeaderNotes     *string   `json:"leader_notes,omitempty" gorm:"column:leader_notes;type:text"`
	LeaderCreatedAt time.Time `json:"leader_created_at" gorm:"column:leader_created_at;not null;autoCreateTime"`
}

func (DiscipleshipLeaderModel) TableName() string {
	return "discipleship_leaders"
}

// DiscipleshipRelationshipModel representa `discipleship_relationships`
// (vínculo líder↔discípulo, único por par).
type DiscipleshipRelationshipModel struct {
	RelationshipID         uuid.UUID `json:"relationship_id" gorm:"column:relationship_id;type:uuid;default:gen_random_uuid();primaryKey"`
	RelationshipLeaderID   uuid.UUID `json:"relationship_leader_id" gorm:"column:relationship_leader_id;type:uuid;not null;uniqueIndex:uq_discipleship_pair"`
	RelationshipDiscipleID uuid.UUID `json:"relationship_disciple_id" gorm:"column:relationship_disciple_id;type:uuid;not null;uniqueIndex:uq_discipleship_pair"`

	RelationshipStartedAt time.Time `json:"relationship_started_at" gorm:"column:relationship_started_at;not null;autoCreateTime"`
}

func (DiscipleshipRelationshipModel) TableName() string {
	return "discipleship_relationships"
}

// DiscipleshipMeetingModel representa `discipleship_meetings`.
type DiscipleshipMeetingModel struct {
	MeetingID       uuid.UUID `json:"meeting_id" gorm:"column:meeting_id;type:uuid;default:gen_random_uuid();primaryKey"`
	MeetingLeaderID uuid.UUID `json:"meeting_leader_id" gorm:"column:meeting_leader_id;type:uuid;not null;index"`

	MeetingDate   time.Time `json:"meeting_date" gorm:"column:meeting_date;not null"`
	MeetingTopic  *string   `json:"meeting_topic,omitempty" gorm:"column:meeting_topic;type:varchar(200)"`
	MeetingNotes  *string   `json:"meeting_notes,omitempty" gorm:"column:meeting_notes;type:text"`
	MeetingStatus string    `json:"meeting_status" gorm:"column:meeting_status;type:varchar(20);not null;default:'Agendado'"`

	MeetingCreatedAt time.Time `json:"meeting_created_at" gorm:"column:meeting_created_at;not null;autoCreateTime"`
}

func (DiscipleshipMeetingModel) TableName() string {
	return "discipleship_meetings"
}

// DiscipleshipMeetingAttendeeModel representa `discipleship_meeting_attendees`
// (única por encontro+discípulo).
type DiscipleshipMeetingAttendeeModel struct {
	AttendeeID        uuid.UUID `json:"attendee_id" gorm:"column:attendee_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AttendeeMeetingID uuid.UUID `json:"attendee_meeting_id" gorm:"column:attendee_meeting_id;type:uuid;not null;uniqueIndex:uq_discipleship_attendee"`
	AttendeeMemberID  uuid.UUID `json:"attendee_member_id" gorm:"column:attendee_member_id;type:uuid;not null;uniqueIndex:uq_discipleship_attendee"`

	AttendeeCreatedAt time.Time `json:"attendee_created_at" gorm:"column:attendee_created_at;not null;autoCreateTime"`
}

func (DiscipleshipMeetingAttendeeModel) TableName() string {
	return "discipleship_meeting_attendees"
}
