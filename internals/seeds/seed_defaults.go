package seeds

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	churchmodel "minhaigreja_backend/internals/features/churches/model"
	churchsvc "minhaigreja_backend/internals/features/churches/service"
	deptmodel "minhaigreja_backend/internals/features/departments/model"
	svcmodel "minhaigreja_backend/internals/features/services/model"
	teachmodel "minhaigreja_backend/internals/features/teaching/model"
)

// Taxonomias e departamentos padrão de uma igreja recém-criada.
var (
	defaultStages = []struct {
		Name  string
		Order int
	}{
		{"Novo Convertido", 1},
		{"Batizado", 2},
		{"Em Discipulado", 3},
		{"Líder em Treinamento", 4},
		{"Líder", 5},
	}

	defaultTeachingCategories = []string{
		"Fundamentos da Fé",
		"Escola Bíblica",
		"Preparação para o Batismo",
		"Liderança",
	}

	defaultServiceTypes = []string{
		"Culto de Celebração",
		"Culto de Oração",
		"Escola Bíblica Dominical",
		"Vigília",
	}

	defaultDepartments = []struct {
		Name string
		Icon string
	}{
		{"Louvor", "music"},
		{"Ministério Infantil", "child"},
		{"Recepção", "handshake"},
		{"Mídia e Som", "video"},
		{"Intercessão", "pray"},
	}
)

// SeedChurchDefaults semeia taxonomias, departamentos padrão e o mapa de
// permissões de um tenant. Idempotente: linhas já existentes (por nome)
// não são duplicadas.
func SeedChurchDefaults(db *gorm.DB, churchID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var church churchmodel.ChurchModel
		if err := tx.Where("church_id = ?", churchID).First(&church).Error; err != nil {
			return fmt.Errorf("igreja %s: %w", churchID, err)
		}

		if err := seedStages(tx, churchID); err != nil {
			return err
		}
		if err := seedTeachingCategories(tx, churchID); err != nil {
			return err
		}
		if err := seedServiceTypes(tx, churchID); err != nil {
			return err
		}
		if err := seedDepartments(tx, churchID); err != nil {
			return err
		}
		return seedSettings(tx, &church)
	})
}

func seedStages(tx *gorm.DB, churchID uuid.UUID) error {
	for _, s := range defaultStages {
		var count int64
		if err := tx.Model(&teachmodel.ChristianStageModel{}).
			Where("stage_church_id = ? AND LOWER(stage_name) = LOWER(?)", churchID, s.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		row := teachmodel.ChristianStageModel{
			StageChurchID: churchID,
			StageName:     s.Name,
			StageOrder:    s.Order,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("estágio %q: %w", s.Name, err)
		}
	}
	log.Printf("[seed] estágios ok church=%s", churchID)
	return nil
}

func seedTeachingCategories(tx *gorm.DB, churchID uuid.UUID) error {
	for _, name := range defaultTeachingCategories {
		var count int64
		if err := tx.Model(&teachmodel.TeachingCategoryModel{}).
			Where("category_church_id = ? AND LOWER(category_name) = LOWER(?)", churchID, name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		row := teachmodel.TeachingCategoryModel{
			CategoryChurchID: churchID,
			CategoryName:     name,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("categoria %q: %w", name, err)
		}
	}
	log.Printf("[seed] categorias de ensino ok church=%s", churchID)
	return nil
}

func seedServiceTypes(tx *gorm.DB, churchID uuid.UUID) error {
	for _, name := range defaultServiceTypes {
		var count int64
		if err := tx.Model(&svcmodel.ServiceTypeModel{}).
			Where("service_type_church_id = ? AND LOWER(service_type_name) = LOWER(?)", churchID, name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		row := svcmodel.ServiceTypeModel{
			ServiceTypeChurchID: churchID,
			ServiceTypeName:     name,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("tipo de culto %q: %w", name, err)
		}
	}
	log.Printf("[seed] tipos de culto ok church=%s", churchID)
	return nil
}

func seedDepartments(tx *gorm.DB, churchID uuid.UUID) error {
	for _, d := range defaultDepartments {
		var count int64
		if err := tx.Model(&deptmodel.DepartmentModel{}).
			Where("department_church_id = ? AND LOWER(department_name) = LOWER(?)", churchID, d.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		icon := d.Icon
		row := deptmodel.DepartmentModel{
			DepartmentChurchID:  churchID,
			DepartmentName:      d.Name,
			DepartmentIcon:      &icon,
			DepartmentIsDefault: true,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("departamento %q: %w", d.Name, err)
		}
	}
	log.Printf("[seed] departamentos padrão ok church=%s", churchID)
	return nil
}

// seedSettings materializa o mapa padrão quando o blob ainda está vazio.
func seedSettings(tx *gorm.DB, church *churchmodel.ChurchModel) error {
	s, err := churchsvc.ParseChurchSettings(church.ChurchSettings)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := tx.Model(&churchmodel.ChurchModel{}).
		Where("church_id = ?", church.ChurchID).
		Update("church_settings", datatypes.JSON(raw)).Error; err != nil {
		return err
	}
	log.Printf("[seed] permissões padrão ok church=%s", church.ChurchID)
	return nil
}
