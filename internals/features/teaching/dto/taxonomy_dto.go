package dto

import (
	"github.com/google/uuid"

	"minhaigreja_backend/internals/features/teaching/model"
)

/* ========== REQUEST DTOs ========== */

type CreateStageRequest struct {
	StageName        string  `json:"stage_name"        validate:"required,min=2,max=120"`
	StageDescription *string `json:"stage_description"`
	StageOrder       *int    `json:"stage_order"       validate:"omitempty,min=0"`
}

type UpdateStageRequest struct {
	StageName        *string `json:"stage_name"        validate:"omitempty,min=2,max=120"`
	StageDescription *string `json:"stage_description"`
	StageOrder       *int    `json:"stage_order"       validate:"omitempty,min=0"`
}

type CreateCategoryRequest struct {
	CategoryName        string  `json:"category_name" validate:"required,min=2,max=120"`
	CategoryDescription *string `json:"category_description"`
}

type UpdateCategoryRequest struct {
	CategoryName        *string `json:"category_name" validate:"omitempty,min=2,max=120"`
	CategoryDescription *string `json:"category_description"`
}

/* ========== RESPONSE DTOs ========== */

type StageResponse struct {
	StageID          uuid.UUID `json:"stage_id"`
	StageName        string    `json:"stage_name"`
	StageDescription *string   `json:"stage_description,omitempty"`
	StageOrder       int       `json:"stage_order"`
}

func NewStageResponse(m *model.ChristianStageModel) *StageResponse {
	if m == nil {
		return nil
	}
	return &StageResponse{
		StageID:          m.StageID,
		StageName:        m.StageName,
		StageDescription: m.StageDescription,
		StageOrder:       m.StageOrder,
	}
}

type CategoryResponse struct {
	CategoryID          uuid.UUID `json:"category_id"`
	CategoryName        string    `json:"category_name"`
	CategoryDescription *string   `json:"category_description,omitempty"`
}

func NewCategoryResponse(m *model.TeachingCategoryModel) *CategoryResponse {
	if m == nil {
		return nil
	}
	return &CategoryResponse{
		CategoryID:          m.CategoryID,
		CategoryName:        m.CategoryName,
		CategoryDescription: m.CategoryDescription,
	}
}
