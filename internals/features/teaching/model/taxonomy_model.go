package model

import (
	"time"

	"github.com/google/uuid"
)

// ChristianStageModel representa a tabela `christian_stages`
// (taxonomia de estágio de crescimento, por tenant).
type ChristianStageModel struct {
	StageID          uuid.UUID `json:"stage_id" gorm:"column:stage_id;type:uuid;default:gen_random_uuid();primaryKey"`
	StageChurchID    uuid.UUID `json:"stage_church_id" gorm:"column:stage_church_id;type:uuid;not null;index"`
	StageName        string    `json:"stage_name" gorm:"column:stage_name;type:varchar(120);not null"`
	StageDescription *string   `json:"stage_description,omitempty" gorm:"column:stage_description;type:text"`
	StageOrder       int       `json:"stage_order" gorm:"column:stage_order;not null;default:0"`
	StageCreatedAt   time.Time `json:"stage_created_at" gorm:"column:stage_created_at;not null;autoCreateTime"`
}

func (ChristianStageModel) TableName() string {
	return "christian_stages"
}

// TeachingCategoryModel representa a tabela `teaching_categories`.
type TeachingCategoryModel struct {
	CategoryID          uuid.UUID `json:"category_id" gorm:"column:category_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CategoryChurchID    uuid.UUID `json:"category_church_id" gorm:"column:category_church_id;type:uuid;not null;index"`
	CategoryName        string    `json:"category_name" gorm:"column:category_name;type:varchar(120);not null"`
	CategoryDescription *string   `json:"category_description,omitempty" gorm:"column:category_description;type:text"`
	CategoryCreatedAt   time.Time `json:"category_created_at" gorm:"column:category_created_at;not null;autoCreateTime"`
}

func (TeachingCategoryModel) TableName() string {
	return "teaching_categories"
}
