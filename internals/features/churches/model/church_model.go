package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChurchModel representa a tabela `churches` (tenant).
type ChurchModel struct {
	ChurchID      uuid.UUID  `json:"church_id" gorm:"column:church_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ChurchName    string     `json:"church_name" gorm:"column:church_name;type:varchar(160);not null"`
	ChurchSlug    string     `json:"church_slug" gorm:"column:church_slug;type:varchar(160);unique;not null"`
	ChurchAddress *string    `json:"church_address,omitempty" gorm:"column:church_address;type:text"`
	ChurchPhone   *string    `json:"church_phone,omitempty" gorm:"column:church_phone;type:varchar(40)"`
	ChurchEmail   *string    `json:"church_email,omitempty" gorm:"column:church_email;type:varchar(160)"`
	ChurchLogoURL *string    `json:"church_logo_url,omitempty" gorm:"column:church_logo_url;type:text"`

	// Blob único de configurações do tenant: role_permissions,
	// custom_system_roles, shared_permissions e branding.
	ChurchSettings datatypes.JSON `json:"church_settings" gorm:"column:church_settings;type:jsonb;not null;default:'{}'"`

	ChurchCreatedAt time.Time  `json:"church_created_at" gorm:"column:church_created_at;not null;autoCreateTime"`
	ChurchUpdatedAt *time.Time `json:"church_updated_at,omitempty" gorm:"column:church_updated_at;autoUpdateTime"`
}

func (ChurchModel) TableName() string {
	return "churches"
}
