package model

import (
	"time"

	"github.com/google/uuid"
)

// DepartmentModel representa a tabela `departments`.
type DepartmentModel struct {
	DepartmentID       uuid.UUID `json:"department_id" gorm:"column:department_id;type:uuid;default:gen_random_uuid();primaryKey"`
	DepartmentChurchID uuid.UUID `json:"department_church_id" gorm:"column:department_church_id;type:uuid;not null;index"`

	DepartmentName        string     `json:"department_name" gorm:"column:department_name;type:varchar(160);not null"`
	DepartmentIcon        *string    `json:"department_icon,omitempty" gorm:"column:department_icon;type:varchar(60)"`
	DepartmentDescription *string    `json:"department_description,omitempty" gorm:"column:department_description;type:text"`
	DepartmentLeaderID    *uuid.UUID `json:"department_leader_id,omitempty" gorm:"column:department_leader_id;type:uuid"`
	DepartmentCoLeaderID  *uuid.UUID `json:"department_co_leader_id,omitempty" gorm:"column:department_co_leader_id;type:uuid"`
	DepartmentSchedule    *string    `json:"department_schedule,omitempty" gorm:"column:department_schedule;type:varchar(200)"`

	// Departamentos padrão são semeados na criação da igreja e não podem
	// ser removidos.
	DepartmentIsDefault bool `json:"department_is_default" gorm:"column:department_is_default;not null;default:false"`

	DepartmentCreatedAt time.Time  `json:"department_created_at" gorm:"column:department_created_at;not null;autoCreateTime"`
	DepartmentUpdatedAt *time.Time `json:"department_updated_at,omitempty" gorm:"column:department_updated_at;autoUpdateTime"`
}

func (DepartmentModel) TableName() string {
	return "departments"
}

// DepartmentMemberModel representa `department_members` (única por
// departamento+membro).
type DepartmentMemberModel struct {
	DepartmentMemberID           uuid.UUID `json:"department_member_id" gorm:"column:department_member_id;type:uuid;default:gen_random_uuid();primaryKey"`
	DepartmentMemberDepartmentID uuid.UUID `json:"department_member_department_id" gorm:"column:department_member_department_id;type:uuid;not null;uniqueIndex:uq_department_member"`
	DepartmentMemberMemberID     uuid.UUID `json:"department_member_member_id" gorm:"column:department_member_member_id;type:uuid;not null;uniqueIndex:uq_department_member"`
	DepartmentMemberJoinedAt     time.Time `json:"department_member_joined_at" gorm:"column:department_member_joined_at;not null;autoCreateTime"`
}

func (DepartmentMemberModel) TableName() string {
	return "department_members"
}
