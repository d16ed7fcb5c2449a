package dto

import (
	"time"

	"github.com/google/uuid"

	"minhaigreja_backend/internals/features/services/model"
	svc "minhaigreja_backend/internals/features/services/service"
)

/* ================= Requests ================= */

type CreateServiceRequest struct {
	// Tipo do culto aceita id ou nome, resolvido no controller.
	ServiceType *string `json:"service_type" validate:"omitempty,max=120"`

	ServiceDate     time.Time `json:"service_date" validate:"required"`
	ServiceTime     *string   `json:"service_time" validate:"omitempty,len=5"`
	ServiceLocation *string   `json:"service_location" validate:"omitempty,max=200"`
	ServicePreacher *string   `json:"service_preacher" validate:"omitempty,max=160"`
	ServiceLeader   *string   `json:"service_leader" validate:"omitempty,max=160"`
	ServiceNotes    *string   `json:"service_notes" validate:"omitempty"`
	ServiceStatus   *string   `json:"service_status" validate:"omitempty,oneof=Agendado Concluído Cancelado"`

	Attendance *svc.AttendanceBreakdown `json:"attendance" validate:"omitempty"`
}

type UpdateServiceRequest struct {
	ServiceType *string `json:"service_type" validate:"omitempty,max=120"`

	ServiceDate     *time.Time `json:"service_date" validate:"omitempty"`
	ServiceTime     *string    `json:"service_time" validate:"omitempty,len=5"`
	ServiceLocation *string    `json:"service_location" validate:"omitempty,max=200"`
	ServicePreacher *string    `json:"service_preacher" validate:"omitempty,max=160"`
	ServiceLeader   *string    `json:"service_leader" validate:"omitempty,max=160"`
	ServiceNotes    *string    `json:"service_notes" validate:"omitempty"`
	ServiceStatus   *string    `json:"service_status" validate:"omitempty,oneof=Agendado Concluído Cancelado"`

	Attendance *svc.AttendanceBreakdown `json:"attendance" validate:"omitempty"`
}

type CreateServiceTypeRequest struct {
	ServiceTypeName        string  `json:"service_type_name" validate:"required,min=2,max=120"`
	ServiceTypeDescription *string `json:"service_type_description" validate:"omitempty"`
}

type UpdateServiceTypeRequest struct {
	ServiceTypeName        *string `json:"service_type_name" validate:"omitempty,min=2,max=120"`
	ServiceTypeDescription *string `json:"service_type_description" validate:"omitempty"`
}

/* ================= Responses ================= */

type ServiceTypeResponse struct {
	ServiceTypeID          uuid.UUID `json:"service_type_id"`
	ServiceTypeName        string    `json:"service_type_name"`
	ServiceTypeDescription *string   `json:"service_type_description,omitempty"`
}

func NewServiceTypeResponse(m *model.ServiceTypeModel) *ServiceTypeResponse {
	return &ServiceTypeResponse{
		ServiceTypeID:          m.ServiceTypeID,
		ServiceTypeName:        m.ServiceTypeName,
		ServiceTypeDescription: m.ServiceTypeDescription,
	}
}

type ServiceStatsResponse struct {
	svc.AttendanceBreakdown
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Visitors int `json:"visitors"`
	Male     int `json:"male"`
	Female   int `json:"female"`
	Total    int `json:"total"`
}

func NewServiceStatsResponse(b svc.AttendanceBreakdown) ServiceStatsResponse {
	return ServiceStatsResponse{
		AttendanceBreakdown: b,
		Adults:              b.Adults(),
		Children:            b.Children(),
		Visitors:            b.Visitors(),
		Male:                b.Male(),
		Female:              b.Female(),
		Total:               b.Total(),
	}
}

type ServiceResponse struct {
	ServiceID uuid.UUID `json:"service_id"`

	ServiceTypeID   *uuid.UUID `json:"service_type_id,omitempty"`
	ServiceTypeName *string    `json:"service_type_name,omitempty"`

	ServiceDate     time.Time `json:"service_date"`
	ServiceTime     *string   `json:"service_time,omitempty"`
	ServiceLocation *string   `json:"service_location,omitempty"`
	ServicePreacher *string   `json:"service_preacher,omitempty"`
	ServiceLeader   *string   `json:"service_leader,omitempty"`
	ServiceNotes    *string   `json:"service_notes,omitempty"`
	ServiceStatus   string    `json:"service_status"`

	Stats ServiceStatsResponse `json:"stats"`

	CreatedAt time.Time `json:"created_at"`
}

func BreakdownOf(m *model.ServiceModel) svc.AttendanceBreakdown {
	return svc.AttendanceBreakdown{
		AdultsMale:     m.ServiceAdultsMale,
		AdultsFemale:   m.ServiceAdultsFemale,
		ChildrenMale:   m.ServiceChildrenMale,
		ChildrenFemale: m.ServiceChildrenFemale,
		VisitorsMale:   m.ServiceVisitorsMale,
		VisitorsFemale: m.ServiceVisitorsFemale,
	}
}

func NewServiceResponse(m *model.ServiceModel, typeName *string) ServiceResponse {
	return ServiceResponse{
		ServiceID:       m.ServiceID,
		ServiceTypeID:   m.ServiceTypeID,
		ServiceTypeName: typeName,
		ServiceDate:     m.ServiceDate,
		ServiceTime:     m.ServiceTime,
		ServiceLocation: m.ServiceLocation,
		ServicePreacher: m.ServicePreacher,
		ServiceLeader:   m.ServiceLeader,
		ServiceNotes:    m.ServiceNotes,
		ServiceStatus:   m.ServiceStatus,
		Stats:           NewServiceStatsResponse(BreakdownOf(m)),
		CreatedAt:       m.ServiceCreatedAt,
	}
}

/* ================= Conversions ================= */

func applyBreakdown(m *model.ServiceModel, b *svc.AttendanceBreakdown) {
	if b == nil {
		return
	}
	m.ServiceAdultsMale = b.AdultsMale
	m.ServiceAdultsFemale = b.AdultsFemale
	m.ServiceChildrenMale = b.ChildrenMale
	m.ServiceChildrenFemale = b.ChildrenFemale
	m.ServiceVisitorsMale = b.VisitorsMale
	m.ServiceVisitorsFemale = b.VisitorsFemale
}

func (r *CreateServiceRequest) ToModel(churchID uuid.UUID, typeID *uuid.UUID) *model.ServiceModel {
	m := &model.ServiceModel{
		ServiceChurchID: churchID,
		ServiceTypeID:   typeID,
		ServiceDate:     r.ServiceDate,
		ServiceTime:     r.ServiceTime,
		ServiceLocation: r.ServiceLocation,
		ServicePreacher: r.ServicePreacher,
		ServiceLeader:   r.ServiceLeader,
		ServiceNotes:    r.ServiceNotes,
		ServiceStatus:   model.ServiceStatusScheduled,
	}
	if r.ServiceStatus != nil {
		m.ServiceStatus = *r.ServiceStatus
	}
	applyBreakdown(m, r.Attendance)
	return m
}

func (r *UpdateServiceRequest) ApplyToModel(m *model.ServiceModel, typeID *uuid.UUID) {
	if typeID != nil {
		m.ServiceTypeID = typeID
	}
	if r.ServiceDate != nil {
		m.ServiceDate = *r.ServiceDate
	}
	if r.ServiceTime != nil {
		m.ServiceTime = r.ServiceTime
	}
	if r.ServiceLocation != nil {
		m.ServiceLocation = r.ServiceLocation
	}
	if r.ServicePreacher != nil {
		m.ServicePreacher = r.ServicePreacher
	}
	if r.ServiceLeader != nil {
		m.ServiceLeader = r.ServiceLeader
	}
	if r.ServiceNotes != nil {
		m.ServiceNotes = r.ServiceNotes
	}
	if r.ServiceStatus != nil {
		m.ServiceStatus = *r.ServiceStatus
	}
	applyBreakdown(m, r.Attendance)
}
