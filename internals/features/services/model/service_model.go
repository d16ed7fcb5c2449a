package model

import (
	"time"

	"github.com/google/uuid"
)

// Status de um culto.
const (
	ServiceStatusScheduled = "Agendado"
	ServiceStatusDone      = "Concluído"
	ServiceStatusCanceled  = "Cancelado"
)

// ServiceTypeModel representa a taxonomia `service_types`.
type ServiceTypeModel struct {
	ServiceTypeID       uuid.UUID `json:"service_type_id" gorm:"column:service_type_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ServiceTypeChurchID uuid.UUID `json:"service_type_church_id" gorm:"column:service_type_church_id;type:uuid;not null;index"`

	ServiceTypeName        string  `json:"service_type_name" gorm:"column:service_type_name;type:varchar(120);not null"`
	ServiceTypeDescription *string `json:"service_type_description,omitempty" gorm:"column:service_type_description;type:text"`

	ServiceTypeCreatedAt time.Time `json:"service_type_created_at" gorm:"column:service_type_created_at;not null;autoCreateTime"`
}

func (ServiceTypeModel) TableName() string {
	return "service_types"
}

// ServiceModel representa a tabela `services` (cultos), incluindo as
// estatísticas de presença por faixa (adultos/crianças/visitantes) e sexo.
type ServiceModel struct {
	ServiceID       uuid.UUID `json:"service_id" gorm:"column:service_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ServiceChurchID uuid.UUID `json:"service_church_id" gorm:"column:service_church_id;type:uuid;not null;index"`

	ServiceTypeID *uuid.UUID `json:"service_type_id,omitempty" gorm:"column:service_type_id;type:uuid"`

	ServiceDate     time.Time `json:"service_date" gorm:"column:service_date;type:date;not null"`
	ServiceTime     *string   `json:"service_time,omitempty" gorm:"column:service_time;type:varchar(5)"`
	ServiceLocation *string   `json:"service_location,omitempty" gorm:"column:service_location;type:varchar(200)"`
	ServicePreacher *string   `json:"service_preacher,omitempty" gorm:"column:service_preacher;type:varchar(160)"`
	ServiceLeader   *string   `json:"service_leader,omitempty" gorm:"column:service_leader;type:varchar(160)"`
	ServiceNotes    *string   `json:"service_notes,omitempty" gorm:"column:service_notes;type:text"`
	ServiceStatus   string    `json:"service_status" gorm:"column:service_status;type:varchar(20);not null;default:'Agendado'"`

	ServiceAdultsMale     int `json:"service_adults_male" gorm:"column:service_adults_male;not null;default:0"`
	ServiceAdultsFemale   int `json:"service_adults_female" gorm:"column:service_adults_female;not null;default:0"`
	ServiceChildrenMale   int `json:"service_children_male" gorm:"column:service_children_male;not null;default:0"`
	ServiceChildrenFemale int `json:"service_children_female" gorm:"column:service_children_female;not null;default:0"`
	ServiceVisitorsMale   int `json:"service_visitors_male" gorm:"column:service_visitors_male;not null;default:0"`
	ServiceVisitorsFemale int `json:"service_visitors_female" gorm:"column:service_visitors_female;not null;default:0"`

	ServiceCreatedAt time.Time  `json:"service_created_at" gorm:"column:service_created_at;not null;autoCreateTime"`
	ServiceUpdatedAt *time.Time `json:"service_updated_at,omitempty" gorm:"column:service_updated_at;autoUpdateTime"`
}

func (ServiceModel) TableName() string {
	return "services"
}
