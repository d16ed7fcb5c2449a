package dto

import (
	"time"

	"github.com/google/uuid"

	"minhaigreja_backend/internals/features/finance/model"
)

/* ================= Requests ================= */

type CreateTransactionRequest struct {
	TransactionType        string     `json:"transaction_type" validate:"required,oneof=Receita Despesa"`
	TransactionCategoryID  *uuid.UUID `json:"transaction_category_id" validate:"omitempty"`
	TransactionAmountCents int64      `json:"transaction_amount_cents" validate:"required,gt=0"`
	TransactionDate        time.Time  `json:"transaction_date" validate:"required"`
	TransactionDescription *string    `json:"transaction_description" validate:"omitempty"`

	TransactionSourceKind *string    `json:"transaction_source_kind" validate:"omitempty,oneof=member service other"`
	TransactionSourceID   *uuid.UUID `json:"transaction_source_id" validate:"omitempty"`
}

type UpdateTransactionRequest struct {
	TransactionType        *string    `json:"transaction_type" validate:"omitempty,oneof=Receita Despesa"`
	TransactionCategoryID  *uuid.UUID `json:"transaction_category_id" validate:"omitempty"`
	TransactionAmountCents *int64     `json:"transaction_amount_cents" validate:"omitempty,gt=0"`
	TransactionDate        *time.Time `json:"transaction_date" validate:"omitempty"`
	TransactionDescription *string    `json:"transaction_description" validate:"omitempty"`

	TransactionSourceKind *string    `json:"transaction_source_kind" validate:"omitempty,oneof=member service other"`
	TransactionSourceID   *uuid.UUID `json:"transaction_source_id" validate:"omitempty"`
}

type CreateCategoryRequest struct {
	CategoryName string `json:"category_name" validate:"required,min=2,max=120"`
	CategoryType string `json:"category_type" validate:"required,oneof=Receita Despesa"`
}

type UpdateCategoryRequest struct {
	CategoryName *string `json:"category_name" validate:"omitempty,min=2,max=120"`
	CategoryType *string `json:"category_type" validate:"omitempty,oneof=Receita Despesa"`
}

/* ================= Responses ================= */

type CategoryResponse struct {
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	CategoryType string    `json:"category_type"`
}

func NewCategoryResponse(m *model.TransactionCategoryModel) *CategoryResponse {
	return &CategoryResponse{
		CategoryID:   m.CategoryID,
		CategoryName: m.CategoryName,
		CategoryType: m.CategoryType,
	}
}

type TransactionResponse struct {
	TransactionID uuid.UUID `json:"transaction_id"`

	Type         string     `json:"type"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	CategoryName *string    `json:"category_name,omitempty"`
	AmountCents  int64      `json:"amount_cents"`
	Date         time.Time  `json:"date"`
	Description  *string    `json:"description,omitempty"`

	SourceKind string     `json:"source_kind"`
	SourceID   *uuid.UUID `json:"source_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func NewTransactionResponse(m *model.TransactionModel, categoryName *string) TransactionResponse {
	return TransactionResponse{
		TransactionID: m.TransactionID,
		Type:          m.TransactionType,
		CategoryID:    m.TransactionCategoryID,
		CategoryName:  categoryName,
		AmountCents:   m.TransactionAmountCents,
		Date:          m.TransactionDate,
		Description:   m.TransactionDescription,
		SourceKind:    m.TransactionSourceKind,
		SourceID:      m.TransactionSourceID,
		CreatedAt:     m.TransactionCreatedAt,
	}
}

/* ================= Conversions ================= */

func (r *CreateTransactionRequest) ToModel(churchID uuid.UUID) *model.TransactionModel {
	m := &model.TransactionModel{
		TransactionChurchID:    churchID,
		TransactionType:        r.TransactionType,
		TransactionCategoryID:  r.TransactionCategoryID,
		TransactionAmountCents: r.TransactionAmountCents,
		TransactionDate:        r.TransactionDate,
		TransactionDescription: r.TransactionDescription,
		TransactionSourceKind:  model.SourceOther,
		TransactionSourceID:    r.TransactionSourceID,
	}
	if r.TransactionSourceKind != nil {
		m.TransactionSourceKind = *r.TransactionSourceKind
	}
	return m
}

func (r *UpdateTransactionRequest) ApplyToModel(m *model.TransactionModel) {
	if r.TransactionType != nil {
		m.TransactionType = *r.TransactionType
	}
	if r.TransactionCategoryID != nil {
		m.TransactionCategoryID = r.TransactionCategoryID
	}
	if r.TransactionAmountCents != nil {
		m.TransactionAmountCents = *r.TransactionAmountCents
	}
	if r.TransactionDate != nil {
		m.TransactionDate = *r.TransactionDate
	}
	if r.TransactionDescription != nil {
		m.TransactionDescription = r.TransactionDescription
	}
	if r.TransactionSourceKind != nil {
		m.TransactionSourceKind = *r.TransactionSourceKind
	}
	if r.TransactionSourceID != nil {
		m.TransactionSourceID = r.TransactionSourceID
	}
}
