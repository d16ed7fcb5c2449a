package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/features/finance/dto"
	"minhaigreja_backend/internals/features/finance/model"
	svc "minhaigreja_backend/internals/features/finance/service"
	helper "minhaigreja_backend/internals/helpers"
)

var validate = validator.New()

/* ================= Controller & Constructor ================= */

type TransactionController struct {
	DB *gorm.DB
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db}
}

var transactionSortCols = map[string]string{
	"date":       "transaction_date",
	"amount":     "transaction_amount_cents",
	"created_at": "transaction_created_at",
}

func (ctl *TransactionController) categoryNamesByID(churchID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := map[uuid.UUID]string{}
	if len(ids) == 0 {
		return out, nil
	}
	var rows []model.TransactionCategoryModel
	if err := ctl.DB.Select("category_id, category_name").
		Where("category_id IN ? AND category_church_id = ?", ids, churchID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.CategoryID] = r.CategoryName
	}
	return out, nil
}

// filteredQuery aplica os filtros de listagem/totais compartilhados.
func (ctl *TransactionController) filteredQuery(c *fiber.Ctx, churchID uuid.UUID) *gorm.DB {
	q := ctl.DB.Model(&model.TransactionModel{}).Where("transaction_church_id = ?", churchID)
	if tt := strings.TrimSpace(c.Query("type")); tt != "" {
		q = q.Where("transaction_type = ?", tt)
	}
	if cat := strings.TrimSpace(c.Query("category_id")); cat != "" {
		if cid, err := uuid.Parse(cat); err == nil {
			q = q.Where("transaction_category_id = ?", cid)
		}
	}
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		q = q.Where("transaction_date >= ?", from)
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		q = q.Where("transaction_date <= ?", to)
	}
	return q
}

/* ================= Lançamentos ================= */

// GET /admin/finance/transactions
func (ctl *TransactionController) ListTransactions(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ParsePaging(c, "date", "desc", helper.DefaultOpts)
	q := ctl.filteredQuery(c, churchID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao contar lançamentos")
	}

	order, _ := p.SafeOrderClause(transactionSortCols, "date")
	var rows []model.TransactionModel
	if err := q.Order(order).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		log.Printf("[finance] list church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar lançamentos")
	}

	catIDs := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		if r.TransactionCategoryID != nil {
			catIDs = append(catIDs, *r.TransactionCategoryID)
		}
	}
	names, err := ctl.categoryNamesByID(churchID, catIDs)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar categorias")
	}

	out := make([]dto.TransactionResponse, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		var catName *string
		if r.TransactionCategoryID != nil {
			if n, ok := names[*r.TransactionCategoryID]; ok {
				catName = &n
			}
		}
		out = append(out, dto.NewTransactionResponse(r, catName))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /admin/finance/totals
// Respeita os mesmos filtros da listagem; tudo em centavos.
func (ctl *TransactionController) GetTotals(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	var rows []struct {
		Type        string `gorm:"column:transaction_type"`
		AmountCents int64  `gorm:"column:transaction_amount_cents"`
	}
	if err := ctl.filteredQuery(c, churchID).
		Select("transaction_type, transaction_amount_cents").
		Scan(&rows).Error; err != nil {
		log.Printf("[finance] totals church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao calcular totais")
	}
	entries := make([]svc.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, svc.Entry{Type: r.Type, AmountCents: r.AmountCents})
	}
	return helper.JsonOK(c, "", svc.ComputeTotals(entries))
}

// POST /admin/finance/transactions
func (ctl *TransactionController) CreateTransaction(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if req.TransactionCategoryID != nil {
		var exists int64
		if err := ctl.DB.Model(&model.TransactionCategoryModel{}).
			Where("category_id = ? AND category_church_id = ?", *req.TransactionCategoryID, churchID).
			Count(&exists).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao verificar categoria")
		}
		if exists == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Categoria desconhecida")
		}
	}
	m := req.ToModel(churchID)
	if err := ctl.DB.Create(m).Error; err != nil {
		log.Printf("[finance] create church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar lançamento")
	}
	return helper.JsonCreated(c, "Lançamento criado", dto.NewTransactionResponse(m, nil))
}

// PUT /admin/finance/transactions/:id
func (ctl *TransactionController) UpdateTransaction(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req dto.UpdateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	var m model.TransactionModel
	if err := ctl.DB.Where("transaction_id = ? AND transaction_church_id = ?", id, churchID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lançamento não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar lançamento")
	}
	req.ApplyToModel(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar lançamento")
	}
	return helper.JsonUpdated(c, "Lançamento atualizado", dto.NewTransactionResponse(&m, nil))
}

// DELETE /admin/finance/transactions/:id
func (ctl *TransactionController) DeleteTransaction(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	res := ctl.DB.Where("transaction_id = ? AND transaction_church_id = ?", id, churchID).
		Delete(&model.TransactionModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover lançamento")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lançamento não encontrado")
	}
	return helper.JsonDeleted(c, "Lançamento removido", fiber.Map{"transaction_id": id})
}

/* ================= Categorias ================= */

// GET /admin/finance/categories
func (ctl *TransactionController) ListCategories(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	q := ctl.DB.Where("category_church_id = ?", churchID)
	if tt := strings.TrimSpace(c.Query("type")); tt != "" {
		q = q.Where("category_type = ?", tt)
	}
	var rows []model.TransactionCategoryModel
	if err := q.Order("category_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar categorias")
	}
	out := make([]*dto.CategoryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewCategoryResponse(&rows[i]))
	}
	return helper.JsonOK(c, "", out)
}

// POST /admin/finance/categories
func (ctl *TransactionController) CreateCategory(c *fiber.Ctx) error {
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
	m := &model.TransactionCategoryModel{
		CategoryChurchID: churchID,
		CategoryName:     req.CategoryName,
		CategoryType:     req.CategoryType,
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		log.Printf("[finance] create category church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar categoria")
	}
	return helper.JsonCreated(c, "Categoria criada", dto.NewCategoryResponse(m))
}

// PUT /admin/finance/categories/:id
func (ctl *TransactionController) UpdateCategory(c *fiber.Ctx) error {
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
	var m model.TransactionCategoryModel
	if err := ctl.DB.Where("category_id = ? AND category_church_id = ?", id, churchID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Categoria não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar categoria")
	}
	if req.CategoryName != nil {
		m.CategoryName = *req.CategoryName
	}
	if req.CategoryType != nil {
		m.CategoryType = *req.CategoryType
	}
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar categoria")
	}
	return helper.JsonUpdated(c, "Categoria atualizada", dto.NewCategoryResponse(&m))
}

// DELETE /admin/finance/categories/:id
// Lançamentos da categoria removida ficam sem categoria.
func (ctl *TransactionController) DeleteCategory(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("category_id = ? AND category_church_id = ?", id, churchID).
			Delete(&model.TransactionCategoryModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&model.TransactionModel{}).
			Where("transaction_category_id = ? AND transaction_church_id = ?", id, churchID).
			Update("transaction_category_id", nil).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Categoria não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover categoria")
	}
	return helper.JsonDeleted(c, "Categoria removida", fiber.Map{"category_id": id})
}
