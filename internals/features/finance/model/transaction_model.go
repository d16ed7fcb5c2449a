package model

import (
	"time"

	"github.com/google/uuid"
)

// Tipos de lançamento financeiro.
const (
	TransactionIncome  = "Receita"
	TransactionExpense = "Despesa"
)

// Origens possíveis de um lançamento.
const (
	SourceMember  = "member"
	SourceService = "service"
	SourceOther   = "other"
)

// TransactionCategoryModel representa `transaction_categories`.
type TransactionCategoryModel struct {
	CategoryID       uuid.UUID `json:"category_id" gorm:"column:category_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CategoryChurchID uuid.UUID `json:"category_church_id" gorm:"column:category_church_id;type:uuid;not null;index"`

	CategoryName string `json:"category_name" gorm:"column:category_name;type:varchar(120);not null"`
	CategoryType string `json:"category_type" gorm:"column:category_type;type:varchar(10);not null"`

	CategoryCreatedAt time.Time `json:"category_created_at" gorm:"column:category_created_at;not null;autoCreateTime"`
}

func (TransactionCategoryModel) TableName() string {
	return "transaction_categories"
}

// TransactionModel representa `transactions`. Valores em centavos
// (inteiro de ponto fixo), nunca em float.
type TransactionModel struct {
	TransactionID       uuid.UUID `json:"transaction_id" gorm:"column:transaction_id;type:uuid;default:gen_random_uuid();primaryKey"`
	TransactionChurchID uuid.UUID `json:"transaction_church_id" gorm:"column:transaction_church_id;type:uuid;not null;index"`

	TransactionType        string     `json:"transaction_type" gorm:"column:transaction_type;type:varchar(10);not null"`
	TransactionCategoryID  *uuid.UUID `json:"transaction_category_id,omitempty" gorm:"column:transaction_category_id;type:uuid"`
	TransactionAmountCents int64      `json:"transaction_amount_cents" gorm:"column:transaction_amount_cents;not null"`
	TransactionDate        time.Time  `json:"transaction_date" gorm:"column:transaction_date;type:date;not null"`
	TransactionDescription *string    `json:"transaction_description,omitempty" gorm:"column:transaction_description;type:text"`

	// Origem polimórfica: member | service | other.
	TransactionSourceKind string     `json:"transaction_source_kind" gorm:"column:transaction_source_kind;type:varchar(10);not null;default:'other'"`
	TransactionSourceID   *uuid.UUID `json:"transaction_source_id,omitempty" gorm:"column:transaction_source_id;type:uuid"`

	TransactionCreatedAt time.Time  `json:"transaction_created_at" gorm:"column:transaction_created_at;not null;autoCreateTime"`
	TransactionUpdatedAt *time.Time `json:"transaction_updated_at,omitempty" gorm:"column:transaction_updated_at;autoUpdateTime"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}
