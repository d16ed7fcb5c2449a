package dto

import (
	"time"

	"github.com/google/uuid"

	"minhaigreja_backend/internals/features/groups/model"
	memberdto "minhaigreja_backend/internals/features/members/dto"
)

/* ================= Requests ================= */

type CreateGroupRequest struct {
	GroupName       string     `json:"group_name" validate:"required,min=2,max=160"`
	GroupLeaderID   *uuid.UUID `json:"group_leader_id" validate:"omitempty"`
	GroupCoLeaderID *uuid.UUID `json:"group_co_leader_id" validate:"omitempty"`
	GroupWeekday    *int       `json:"group_weekday" validate:"omitempty,min=0,max=6"`
	GroupTime       *string    `json:"group_time" validate:"omitempty,len=5"`
	GroupLocation   *string    `json:"group_location" validate:"omitempty,max=500"`
	GroupStatus     *string    `json:"group_status" validate:"omitempty,oneof=Ativo Cheio Inativo"`
}

type UpdateGroupRequest struct {
	GroupName       *string    `json:"group_name" validate:"omitempty,min=2,max=160"`
	GroupLeaderID   *uuid.UUID `json:"group_leader_id" validate:"omitempty"`
	GroupCoLeaderID *uuid.UUID `json:"group_co_leader_id" validate:"omitempty"`
	GroupWeekday    *int       `json:"group_weekday" validate:"omitempty,min=0,max=6"`
	GroupTime       *string    `json:"group_time" validate:"omitempty,len=5"`
	GroupLocation   *string    `json:"group_location" validate:"omitempty,max=500"`
	GroupStatus     *string    `json:"group_status" validate:"omitempty,oneof=Ativo Cheio Inativo"`
}

type AddGroupMemberRequest struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
	Role     *string   `json:"role" validate:"omitempty,oneof=Líder Co-líder Membro Secretário Visitante"`
}

type UpdateGroupMemberRequest struct {
	Role string `json:"role" validate:"required,oneof=Líder Co-líder Membro Secretário Visitante"`
}

/* ================= Responses ================= */

type GroupMemberResponse struct {
	GroupMemberID uuid.UUID           `json:"group_member_id"`
	Member        memberdto.MemberRef `json:"member"`
	Role          string              `json:"role"`
	JoinedAt      time.Time           `json:"joined_at"`
}

type GroupListItem struct {
	GroupID     uuid.UUID            `json:"group_id"`
	GroupName   string               `json:"group_name"`
	Leader      *memberdto.MemberRef `json:"leader,omitempty"`
	CoLeader    *memberdto.MemberRef `json:"co_leader,omitempty"`
	Weekday     *int                 `json:"weekday,omitempty"`
	Time        *string              `json:"time,omitempty"`
	Location    *string              `json:"location,omitempty"`
	Status      string               `json:"status"`
	MemberCount int                  `json:"member_count"`
	CreatedAt   time.Time            `json:"created_at"`
}

type GroupDetailResponse struct {
	GroupListItem
	Members        []GroupMemberResponse `json:"members"`
	Meetings       []MeetingResponse     `json:"meetings"`
	AttendanceRate int                   `json:"attendance_rate"`
}

func NewGroupListItem(m *model.GroupModel, leader, coLeader *memberdto.MemberRef, memberCount int) GroupListItem {
	return GroupListItem{
		GroupID:     m.GroupID,
		GroupName:   m.GroupName,
		Leader:      leader,
		CoLeader:    coLeader,
		Weekday:     m.GroupWeekday,
		Time:        m.GroupTime,
		Location:    m.GroupLocation,
		Status:      m.GroupStatus,
		MemberCount: memberCount,
		CreatedAt:   m.GroupCreatedAt,
	}
}

/* ================= Conversions ================= */

func (r *CreateGroupRequest) ToModel(churchID uuid.UUID) *model.GroupModel {
	m := &model.GroupModel{
		GroupChurchID:   churchID,
		GroupName:       r.GroupName,
		GroupLeaderID:   r.GroupLeaderID,
		GroupCoLeaderID: r.GroupCoLeaderID,
		GroupWeekday:    r.GroupWeekday,
		GroupTime:       r.GroupTime,
		GroupLocation:   r.GroupLocation,
		GroupStatus:     model.GroupStatusActive,
	}
	if r.GroupStatus != nil {
		m.GroupStatus = *r.GroupStatus
	}
	return m
}

func (r *UpdateGroupRequest) ApplyToModel(m *model.GroupModel) {
	if r.GroupName != nil {
		m.GroupName = *r.GroupName
	}
	if r.GroupLeaderID != nil {
		m.GroupLeaderID = r.GroupLeaderID
	}
	if r.GroupCoLeaderID != nil {
		m.GroupCoLeaderID = r.GroupCoLeaderID
	}
	if r.GroupWeekday != nil {
		m.GroupWeekday = r.GroupWeekday
	}
	if r.GroupTime != nil {
		m.GroupTime = r.GroupTime
	}
	if r.GroupLocation != nil {
		m.GroupLocation = r.GroupLocation
	}
	if r.GroupStatus != nil {
		m.GroupStatus = *r.GroupStatus
	}
}
