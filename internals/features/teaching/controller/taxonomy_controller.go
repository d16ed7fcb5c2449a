package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/features/teaching/dto"
	"minhaigreja_backend/internals/features/teaching/model"
	helper "minhaigreja_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type TaxonomyController struct {
	DB *gorm.DB
}

func NewTaxonomyController(db *gorm.DB) *TaxonomyController {
	return &TaxonomyController{DB: db}
}

/* ================= Estágios de crescimento ================= */

// GET /admin/teaching/stages: ordenados por display order
func (ctl *TaxonomyController) ListStages(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	var rows []model.ChristianStageModel
	if err := ctl.DB.Where("stage_church_id = ?", churchID).
		Order("stage_order ASC, stage_name ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[taxonomy] stages church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar estágios")
	}
	out := make([]*dto.StageResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewStageResponse(&rows[i]))
	}
	return helper.JsonOK(c, "", out)
}

// POST /admin/teaching/stages
func (ctl *TaxonomyController) CreateStage(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.CreateStageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	m := &model.ChristianStageModel{
		StageChurchID:    churchID,
		StageName:        req.StageName,
		StageDescription: req.StageDescription,
	}
	if req.StageOrder != nil {
		m.StageOrder = *req.StageOrder
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		log.Printf("[taxonomy] create stage church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar estágio")
	}
	return helper.JsonCreated(c, "Estágio criado", dto.NewStageResponse(m))
}

// PUT /admin/teaching/stages/:id
func (ctl *TaxonomyController) UpdateStage(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req dto.UpdateStageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.ChristianStageModel
	if err := ctl.DB.Where("stage_id = ? AND stage_church_id = ?", id, churchID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Estágio não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar estágio")
	}
	if req.StageName != nil {
		m.StageName = *req.StageName
	}
	if req.StageDescription != nil {
		m.StageDescription = req.StageDescription
	}
	if req.StageOrder != nil {
		m.StageOrder = *req.StageOrder
	}
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar estágio")
	}
	return helper.JsonUpdated(c, "Estágio atualizado", dto.NewStageResponse(&m))
}

// DELETE /admin/teaching/stages/:id
func (ctl *TaxonomyController) DeleteStage(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	res := ctl.DB.Where("stage_id = ? AND stage_church_id = ?", id, churchID).
		Delete(&model.ChristianStageModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover estágio")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Estágio não encontrado")
	}
	return helper.JsonDeleted(c, "Estágio removido", fiber.Map{"stage_id": id})
}

/* ================= Categorias de ensino ================= */

// GET /admin/teaching/categories
func (ctl *TaxonomyController) ListCategories(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	var rows []model.TeachingCategoryModel
	if err := ctl.DB.Where("category_church_id = ?", churchID).
		Order("category_name ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[taxonomy] categories church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar categorias")
	}
	out := make([]*dto.CategoryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewCategoryResponse(&rows[i]))
	}
	return helper.JsonOK(c, "", out)
}

// POST /admin/teaching/categories
func (ctl *TaxonomyController) CreateCategory(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	m := &model.TeachingCategoryModel{
		CategoryChurchID:    churchID,
		CategoryName:        req.CategoryName,
		CategoryDescription: req.CategoryDescription,
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		log.Printf("[taxonomy] create category church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar categoria")
	}
	return helper.JsonCreated(c, "Categoria criada", dto.NewCategoryResponse(m))
}

// PUT /admin/teaching/categories/:id
func (ctl *TaxonomyController) UpdateCategory(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.TeachingCategoryModel
	if err := ctl.DB.Where("category_id = ? AND category_church_id = ?", id, churchID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Categoria não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar categoria")
	}
	if req.CategoryName != nil {
		m.CategoryName = *req.CategoryName
	}
	if req.CategoryDescription != nil {
		m.CategoryDescription = req.CategoryDescription
	}
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar categoria")
	}
	return helper.JsonUpdated(c, "Categoria atualizada", dto.NewCategoryResponse(&m))
}

// DELETE /admin/teaching/categories/:id
func (ctl *TaxonomyController) DeleteCategory(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	res := ctl.DB.Where("category_id = ? AND category_church_id = ?", id, churchID).
		Delete(&model.TeachingCategoryModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover categoria")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Categoria não encontrada")
	}
	return helper.JsonDeleted(c, "Categoria removida", fiber.Map{"category_id": id})
}
