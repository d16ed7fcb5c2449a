package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// O painel pode mandar campos de taxonomia como identificador OU como nome de
// exibição. A resolução tenta o identificador primeiro e cai para busca por
// nome (case-insensitive); falha de resolução é logada e devolvida como erro,
// nunca descartada em silêncio.

var (
	ErrTaxonomyNotFound  = errors.New("taxonomia não encontrada")
	ErrTaxonomyAmbiguous = errors.New("nome de taxonomia ambíguo")
)

type TaxonomyEntry struct {
	ID   uuid.UUID
	Name string
}

// MatchTaxonomy resolve um valor cru (id ou nome) contra a lista do tenant.
func MatchTaxonomy(entries []TaxonomyEntry, raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, ErrTaxonomyNotFound
	}

	// 1) o valor já é um identificador conhecido?
	if id, err := uuid.Parse(raw); err == nil {
		for _, e := range entries {
			if e.ID == id {
				return id, nil
			}
		}
		// UUID válido mas desconhecido neste tenant: não cair para nome,
		// um UUID nunca é nome de exibição.
		return uuid.Nil, ErrTaxonomyNotFound
	}

	// 2) fallback por nome, único e case-insensitive
	var found uuid.UUID
	matches := 0
	for _, e := range entries {
		if strings.EqualFold(strings.TrimSpace(e.Name), raw) {
			found = e.ID
			matches++
		}
	}
	switch matches {
	case 0:
		return uuid.Nil, ErrTaxonomyNotFound
	case 1:
		return found, nil
	default:
		return uuid.Nil, ErrTaxonomyAmbiguous
	}
}

func resolveFromTable(db *gorm.DB, table, idCol, nameCol, tenantCol string, churchID uuid.UUID, raw string) (uuid.UUID, error) {
	var rows []TaxonomyEntry
	if err := db.Table(table).
		Select(idCol+" AS id, "+nameCol+" AS name").
		Where(tenantCol+" = ?", churchID).
		Scan(&rows).Error; err != nil {
		return uuid.Nil, fmt.Errorf("carregar %s: %w", table, err)
	}
	id, err := MatchTaxonomy(rows, raw)
	if err != nil {
		log.Printf("[taxonomy] resolve table=%s church=%s raw=%q err=%v", table, churchID, raw, err)
	}
	return id, err
}

// ResolveStageID resolve id-ou-nome em `christian_stages` do tenant.
func ResolveStageID(db *gorm.DB, churchID uuid.UUID, raw string) (uuid.UUID, error) {
	return resolveFromTable(db, "christian_stages", "stage_id", "stage_name", "stage_church_id", churchID, raw)
}

// ResolveCategoryID resolve id-ou-nome em `teaching_categories` do tenant.
func ResolveCategoryID(db *gorm.DB, churchID uuid.UUID, raw string) (uuid.UUID, error) {
	return resolveFromTable(db, "teaching_categories", "category_id", "category_name", "category_church_id", churchID, raw)
}

// ResolveServiceTypeID resolve id-ou-nome em `service_types` do tenant.
func ResolveServiceTypeID(db *gorm.DB, churchID uuid.UUID, raw string) (uuid.UUID, error) {
	return resolveFromTable(db, "service_types", "service_type_id", "service_type_name", "service_type_church_id", churchID, raw)
}
