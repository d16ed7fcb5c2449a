package model

import (
	"time"

	"github.com/google/uuid"
)

// Status possíveis de um pequeno grupo.
const (
	GroupStatusActive   = "Ativo"
	GroupStatusFull     = "Cheio"
	GroupStatusInactive = "Inativo"
)

// Papéis dentro de um grupo.
const (
	GroupRoleLeader    = "Líder"
	GroupRoleCoLeader  = "Co-líder"
	GroupRoleMember    = "Membro"
	GroupRoleSecretary = "Secretário"
	GroupRoleVisitor   = "Visitante"
)

// GroupModel representa a tabela `groups`.
type GroupModel struct {
	GroupID       uuid.UUID `json:"group_id" gorm:"column:group_id;type:uuid;default:gen_random_uuid();primaryKey"`
	GroupChurchID uuid.UUID `json:"group_church_id" gorm:"column:group_church_id;type:uuid;not null;index"`

	GroupName       string     `json:"group_name" gorm:"column:group_name;type:varchar(160);not null"`
	GroupLeaderID   *uuid.UUID `json:"group_leader_id,omitempty" gorm:"column:group_leader_id;type:uuid"`
	GroupCoLeaderID *uuid.UUID `json:"group_co_leader_id,omitempty" gorm:"column:group_co_leader_id;type:uuid"`

	GroupWeekday  *int    `json:"group_weekday,omitempty" gorm:"column:group_weekday"`
	GroupTime     *string `json:"group_time,omitempty" gorm:"column:group_time;type:varchar(5)"`
	GroupLocation *string `json:"group_location,omitempty" gorm:"column:group_location;type:text"`
	GroupStatus   string  `json:"group_status" gorm:"column:group_status;type:varchar(20);not null;default:'Ativo'"`

	GroupCreatedAt time.Time  `json:"group_created_at" gorm:"column:group_created_at;not null;autoCreateTime"`
	GroupUpdatedAt *time.Time `json:"group_updated_at,omitempty" gorm:"column:group_updated_at;autoUpdateTime"`
}

func (GroupModel) TableName() string {
	return "groups"
}

// GroupMemberModel representa `group_members` (única por grupo+membro).
type GroupMemberModel struct {
	GroupMemberID       uuid.UUID `json:"group_member_id" gorm:"column:group_member_id;type:uuid;default:gen_random_uuid();primaryKey"`
	GroupMemberGroupID  uuid.UUID `json:"group_member_group_id" gorm:"column:group_member_group_id;type:uuid;not null;uniqueIndex:uq_group_member"`
	GroupMemberMemberID uuid.UUID `json:"group_member_member_id" gorm:"column:group_member_member_id;type:uuid;not null;uniqueIndex:uq_group_member"`
	GroupMemberRole     string    `json:"group_member_role" gorm:"column:group_member_role;type:varchar(20);not null;default:'Membro'"`
	GroupMemberJoinedAt time.Time `json:"group_member_joined_at" gorm:"column:group_member_joined_at;not null;autoCreateTime"`
}

func (GroupMemberModel) TableName() string {
	return "group_members"
}
