package dto

import (
	"time"

	"github.com/google/uuid"

	"minhaigreja_backend/internals/features/departments/model"
	memberdto "minhaigreja_backend/internals/features/members/dto"
)

/* ================= Requests ================= */

type CreateDepartmentRequest struct {
	DepartmentName        string     `json:"department_name" validate:"required,min=2,max=160"`
	DepartmentIcon        *string    `json:"department_icon" validate:"omitempty,max=60"`
	DepartmentDescription *string    `json:"department_description" validate:"omitempty"`
	DepartmentLeaderID    *uuid.UUID `json:"department_leader_id" validate:"omitempty"`
	DepartmentCoLeaderID  *uuid.UUID `json:"department_co_leader_id" validate:"omitempty"`
	DepartmentSchedule    *string    `json:"department_schedule" validate:"omitempty,max=200"`
}

type UpdateDepartmentRequest struct {
	DepartmentName        *string    `json:"department_name" validate:"omitempty,min=2,max=160"`
	DepartmentIcon        *string    `json:"department_icon" validate:"omitempty,max=60"`
	DepartmentDescription *string    `json:"department_description" validate:"omitempty"`
	DepartmentLeaderID    *uuid.UUID `json:"department_leader_id" validate:"omitempty"`
	DepartmentCoLeaderID  *uuid.UUID `json:"department_co_leader_id" validate:"omitempty"`
	DepartmentSchedule    *string    `json:"department_schedule" validate:"omitempty,max=200"`
}

type AddDepartmentMemberRequest struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
}

/* ================= Responses ================= */

type DepartmentListItem struct {
	DepartmentID uuid.UUID            `json:"department_id"`
	Name         string               `json:"name"`
	Icon         *string              `json:"icon,omitempty"`
	Description  *string              `json:"description,omitempty"`
	Leader       *memberdto.MemberRef `json:"leader,omitempty"`
	CoLeader     *memberdto.MemberRef `json:"co_leader,omitempty"`
	Schedule     *string              `json:"schedule,omitempty"`
	IsDefault    bool                 `json:"is_default"`
	MemberCount  int                  `json:"member_count"`
	CreatedAt    time.Time            `json:"created_at"`
}

type DepartmentDetailResponse struct {
	DepartmentListItem
	Members []memberdto.MemberRef `json:"members"`
}

func NewDepartmentListItem(m *model.DepartmentModel, leader, coLeader *memberdto.MemberRef, memberCount int) DepartmentListItem {
	return DepartmentListItem{
		DepartmentID: m.DepartmentID,
		Name:         m.DepartmentName,
		Icon:         m.DepartmentIcon,
		Description:  m.DepartmentDescription,
		Leader:       leader,
		CoLeader:     coLeader,
		Schedule:     m.DepartmentSchedule,
		IsDefault:    m.DepartmentIsDefault,
		MemberCount:  memberCount,
		CreatedAt:    m.DepartmentCreatedAt,
	}
}

/* ================= Conversions ================= */

func (r *CreateDepartmentRequest) ToModel(churchID uuid.UUID) *model.DepartmentModel {
	return &model.DepartmentModel{
		DepartmentChurchID:    churchID,
		DepartmentName:        r.DepartmentName,
		DepartmentIcon:        r.DepartmentIcon,
		DepartmentDescription: r.DepartmentDescription,
		DepartmentLeaderID:    r.DepartmentLeaderID,
		DepartmentCoLeaderID:  r.DepartmentCoLeaderID,
		DepartmentSchedule:    r.DepartmentSchedule,
	}
}

func (r *UpdateDepartmentRequest) ApplyToModel(m *model.DepartmentModel) {
	if r.DepartmentName != nil {
		m.DepartmentName = *r.DepartmentName
	}
	if r.DepartmentIcon != nil {
		m.DepartmentIcon = r.DepartmentIcon
	}
	if r.DepartmentDescription != nil {
		m.DepartmentDescription = r.DepartmentDescription
	}
	if r.DepartmentLeaderID != nil {
		m.DepartmentLeaderID = r.DepartmentLeaderID
	}
	if r.DepartmentCoLeaderID != nil {
		m.DepartmentCoLeaderID = r.DepartmentCoLeaderID
	}
	if r.DepartmentSchedule != nil {
		m.DepartmentSchedule = r.DepartmentSchedule
	}
}
