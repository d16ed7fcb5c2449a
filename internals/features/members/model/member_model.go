package model

import (
	"time"

	"github.com/google/uuid"
)

// MemberModel representa a tabela `members`.
type MemberModel struct {
	MemberID       uuid.UUID  `json:"member_id" gorm:"column:member_id;type:uuid;default:gen_random_uuid();primaryKey"`
	MemberChurchID uuid.UUID  `json:"member_church_id" gorm:"column:member_church_id;type:uuid;not null;index"` // FK -> churches(church_id)

	MemberName      string     `json:"member_name" gorm:"column:member_name;type:varchar(160);not null"`
	MemberEmail     *string    `json:"member_email,omitempty" gorm:"column:member_email;type:varchar(160)"`
	MemberPhone     *string    `json:"member_phone,omitempty" gorm:"column:member_phone;type:varchar(40)"`
	MemberAvatarURL *string    `json:"member_avatar_url,omitempty" gorm:"column:member_avatar_url;type:text"`
	MemberBirthDate *time.Time `json:"member_birth_date,omitempty" gorm:"column:member_birth_date;type:date"`
	MemberGender    *string    `json:"member_gender,omitempty" gorm:"column:member_gender;type:varchar(20)"`
	MemberAddress   *string    `json:"member_address,omitempty" gorm:"column:member_address;type:text"`

	// Afiliação opcional a um pequeno grupo.
	MemberGroupID *uuid.UUID `json:"member_group_id,omitempty" gorm:"column:member_group_id;type:uuid;index"`

	MemberCreatedAt time.Time  `json:"member_created_at" gorm:"column:member_created_at;not null;autoCreateTime"`
	MemberUpdatedAt *time.Time `json:"member_updated_at,omitempty" gorm:"column:member_updated_at;autoUpdateTime"`
	MemberDeletedAt *time.Time `json:"member_deleted_at,omitempty" gorm:"column:member_deleted_at;index"`
}

func (MemberModel) TableName() string {
	return "members"
}
