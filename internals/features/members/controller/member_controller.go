package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/features/members/dto"
	"minhaigreja_backend/internals/features/members/model"
	helper "minhaigreja_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

var validate = validator.New()

var memberSortCols = map[string]string{
	"name":       "member_name",
	"created_at": "member_created_at",
}

/* ================= Handlers ================= */

// GET /admin/members
func (ctl *MemberController) ListMembers(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ParsePaging(c, "name", "asc", helper.DefaultOpts)
	order, _ := p.SafeOrderClause(memberSortCols, "name")

	q := ctl.DB.Model(&model.MemberModel{}).
		Where("member_church_id = ? AND member_deleted_at IS NULL", churchID)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("member_name ILIKE ? OR member_email ILIKE ? OR member_phone ILIKE ?", like, like, like)
	}
	if groupID := strings.TrimSpace(c.Query("group_id")); groupID != "" {
		if gid, err := uuid.Parse(groupID); err == nil {
			q = q.Where("member_group_id = ?", gid)
		}
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("[members] count church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao contar membros")
	}

	var rows []model.MemberModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		log.Printf("[members] list church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar membros")
	}

	out := make([]*dto.MemberResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewMemberResponse(&rows[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /admin/members/refs: referências leves para seletores do painel
func (ctl *MemberController) ListMemberRefs(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.MemberModel
	q := ctl.DB.
		Select("member_id, member_name, member_avatar_url").
		Where("member_church_id = ? AND member_deleted_at IS NULL", churchID)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("member_name ILIKE ?", "%"+search+"%")
	}
	if err := q.Order("member_name ASC").Limit(500).Find(&rows).Error; err != nil {
		log.Printf("[members] refs church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar membros")
	}

	out := make([]dto.MemberRef, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewMemberRef(&rows[i]))
	}
	return helper.JsonOK(c, "", out)
}

// GET /admin/members/:id
func (ctl *MemberController) GetMemberByID(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var m model.MemberModel
	if err := ctl.DB.
		Where("member_id = ? AND member_church_id = ? AND member_deleted_at IS NULL", id, churchID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Membro não encontrado")
		}
		log.Printf("[members] get church=%s id=%s err=%v", churchID, id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar membro")
	}
	return helper.JsonOK(c, "", dto.NewMemberResponse(&m))
}

// POST /admin/members
func (ctl *MemberController) CreateMember(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := req.ToModel(churchID)
	if err := ctl.DB.Create(m).Error; err != nil {
		log.Printf("[members] create church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar membro")
	}
	return helper.JsonCreated(c, "Membro cadastrado", dto.NewMemberResponse(m))
}

// PUT /admin/members/:id
func (ctl *MemberController) UpdateMember(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.MemberModel
	if err := ctl.DB.
		Where("member_id = ? AND member_church_id = ? AND member_deleted_at IS NULL", id, churchID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Membro não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar membro")
	}

	req.ApplyToModel(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		log.Printf("[members] update church=%s id=%s err=%v", churchID, id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar membro")
	}
	return helper.JsonUpdated(c, "Membro atualizado", dto.NewMemberResponse(&m))
}

// DELETE /admin/members/:id (soft delete)
func (ctl *MemberController) SoftDeleteMember(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctl.DB.Model(&model.MemberModel{}).
		Where("member_id = ? AND member_church_id = ? AND member_deleted_at IS NULL", id, churchID).
		Update("member_deleted_at", time.Now())
	if res.Error != nil {
		log.Printf("[members] delete church=%s id=%s err=%v", churchID, id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover membro")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Membro não encontrado")
	}
	return helper.JsonDeleted(c, "Membro removido", fiber.Map{"member_id": id})
}
