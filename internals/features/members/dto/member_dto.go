package dto

import (
	"time"

	"github.com/google/uuid"

	"minhaigreja_backend/internals/features/members/model"
)

/* ========== REQUEST DTOs ========== */

type CreateMemberRequest struct {
	MemberName      string     `json:"member_name"       form:"member_name"       validate:"required,min=2,max=160"`
	MemberEmail     *string    `json:"member_email"      form:"member_email"      validate:"omitempty,email"`
	MemberPhone     *string    `json:"member_phone"      form:"member_phone"      validate:"omitempty,max=40"`
	MemberAvatarURL *string    `json:"member_avatar_url" form:"member_avatar_url" validate:"omitempty,url"`
	MemberBirthDate *time.Time `json:"member_birth_date" form:"member_birth_date"`
	MemberGender    *string    `json:"member_gender"     form:"member_gender"     validate:"omitempty,oneof=Masculino Feminino"`
	MemberAddress   *string    `json:"member_address"    form:"member_address"`
	MemberGroupID   *uuid.UUID `json:"member_group_id"   form:"member_group_id"`
}

type UpdateMemberRequest struct {
	MemberName      *string    `json:"member_name"       form:"member_name"       validate:"omitempty,min=2,max=160"`
	MemberEmail     *string    `json:"member_email"      form:"member_email"      validate:"omitempty,email"`
	MemberPhone     *string    `json:"member_phone"      form:"member_phone"      validate:"omitempty,max=40"`
	MemberAvatarURL *string    `json:"member_avatar_url" form:"member_avatar_url" validate:"omitempty,url"`
	MemberBirthDate *time.Time `json:"member_birth_date" form:"member_birth_date"`
	MemberGender    *string    `json:"member_gender"     form:"member_gender"     validate:"omitempty,oneof=Masculino Feminino"`
	MemberAddress   *string    `json:"member_address"    form:"member_address"`
	MemberGroupID   *uuid.UUID `json:"member_group_id"   form:"member_group_id"`
}

/* ========== RESPONSE DTOs ========== */

// MemberRef é a referência leve usada nos view-models agregados
// (alunos, presenças, líderes, discípulos).
type MemberRef struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Avatar *string   `json:"avatar,omitempty"`
}

type MemberResponse struct {
	MemberID        uuid.UUID  `json:"member_id"`
	MemberChurchID  uuid.UUID  `json:"member_church_id"`
	MemberName      string     `json:"member_name"`
	MemberEmail     *string    `json:"member_email,omitempty"`
	MemberPhone     *string    `json:"member_phone,omitempty"`
	MemberAvatarURL *string    `json:"member_avatar_url,omitempty"`
	MemberBirthDate *time.Time `json:"member_birth_date,omitempty"`
	MemberGender    *string    `json:"member_gender,omitempty"`
	MemberAddress   *string    `json:"member_address,omitempty"`
	MemberGroupID   *uuid.UUID `json:"member_group_id,omitempty"`
	MemberCreatedAt time.Time  `json:"member_created_at"`
	MemberUpdatedAt *time.Time `json:"member_updated_at,omitempty"`
}

/* ========== HELPERS: MODEL <-> DTO ========== */

func NewMemberResponse(m *model.MemberModel) *MemberResponse {
	if m == nil {
		return nil
	}
	return &MemberResponse{
		MemberID:        m.MemberID,
		MemberChurchID:  m.MemberChurchID,
		MemberName:      m.MemberName,
		MemberEmail:     m.MemberEmail,
		MemberPhone:     m.MemberPhone,
		MemberAvatarURL: m.MemberAvatarURL,
		MemberBirthDate: m.MemberBirthDate,
		MemberGender:    m.MemberGender,
		MemberAddress:   m.MemberAddress,
		MemberGroupID:   m.MemberGroupID,
		MemberCreatedAt: m.MemberCreatedAt,
		MemberUpdatedAt: m.MemberUpdatedAt,
	}
}

func NewMemberRef(m *model.MemberModel) MemberRef {
	return MemberRef{ID: m.MemberID, Name: m.MemberName, Avatar: m.MemberAvatarURL}
}

func (r *CreateMemberRequest) ToModel(churchID uuid.UUID) *model.MemberModel {
	return &model.MemberModel{
		MemberChurchID:  churchID,
		MemberName:      r.MemberName,
		MemberEmail:     r.MemberEmail,
		MemberPhone:     r.MemberPhone,
		MemberAvatarURL: r.MemberAvatarURL,
		MemberBirthDate: r.MemberBirthDate,
		MemberGender:    r.MemberGender,
		MemberAddress:   r.MemberAddress,
		MemberGroupID:   r.MemberGroupID,
	}
}

func (r *UpdateMemberRequest) ApplyToModel(m *model.MemberModel) {
	if r.MemberName != nil {
		m.MemberName = *r.MemberName
	}
	if r.MemberEmail != nil {
		m.MemberEmail = r.MemberEmail
	}
	if r.MemberPhone != nil {
		m.MemberPhone = r.MemberPhone
	}
	if r.MemberAvatarURL != nil {
		m.MemberAvatarURL = r.MemberAvatarURL
	}
	if r.MemberBirthDate != nil {
		m.MemberBirthDate = r.MemberBirthDate
	}
	if r.MemberGender != nil {
		m.MemberGender = r.MemberGender
	}
	if r.MemberAddress != nil {
		m.MemberAddress = r.MemberAddress
	}
	if r.MemberGroupID != nil {
		m.MemberGroupID = r.MemberGroupID
	}
}
