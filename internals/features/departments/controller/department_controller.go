package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/features/departments/dto"
	"minhaigreja_backend/internals/features/departments/model"
	memberdto "minhaigreja_backend/internals/features/members/dto"
	membermodel "minhaigreja_backend/internals/features/members/model"
	helper "minhaigreja_backend/internals/helpers"
)

var validate = validator.New()

/* ================= Controller & Constructor ================= */

type DepartmentController struct {
	DB *gorm.DB
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db}
}

var departmentSortCols = map[string]string{
	"name":       "department_name",
	"created_at": "department_created_at",
}

func memberRefsByID(db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]memberdto.MemberRef, error) {
	out := make(map[uuid.UUID]memberdto.MemberRef, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []membermodel.MemberModel
	if err := db.Select("member_id, member_name, member_avatar_url").
		Where("member_id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		out[rows[i].MemberID] = memberdto.NewMemberRef(&rows[i])
	}
	return out, nil
}

func (ctl *DepartmentController) departmentOfChurch(tx *gorm.DB, id, churchID uuid.UUID) (*model.DepartmentModel, error) {
	var d model.DepartmentModel
	err := tx.Where("department_id = ? AND department_church_id = ?", id, churchID).First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

/* ================= Handlers ================= */

// GET /admin/departments
func (ctl *DepartmentController) ListDepartments(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ParsePaging(c, "name", "asc", helper.DefaultOpts)

	q := ctl.DB.Model(&model.DepartmentModel{}).Where("department_church_id = ?", churchID)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("department_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao contar departamentos")
	}

	order, _ := p.SafeOrderClause(departmentSortCols, "name")
	var departments []model.DepartmentModel
	if err := q.Order(order).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&departments).Error; err != nil {
		log.Printf("[departments] list church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar departamentos")
	}

	deptIDs := make([]uuid.UUID, 0, len(departments))
	leaderIDs := make([]uuid.UUID, 0, len(departments)*2)
	for _, d := range departments {
		deptIDs = append(deptIDs, d.DepartmentID)
		if d.DepartmentLeaderID != nil {
			leaderIDs = append(leaderIDs, *d.DepartmentLeaderID)
		}
		if d.DepartmentCoLeaderID != nil {
			leaderIDs = append(leaderIDs, *d.DepartmentCoLeaderID)
		}
	}
	refs, err := memberRefsByID(ctl.DB, leaderIDs)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar líderes")
	}

	counts := map[uuid.UUID]int{}
	if len(deptIDs) > 0 {
		var rows []struct {
			DepartmentID uuid.UUID `gorm:"column:department_member_department_id"`
			Total        int       `gorm:"column:total"`
		}
		if err := ctl.DB.Model(&model.DepartmentMemberModel{}).
			Select("department_member_department_id, COUNT(*) AS total").
			Where("department_member_department_id IN ?", deptIDs).
			Group("department_member_department_id").
			Scan(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao contar membros")
		}
		for _, r := range rows {
			counts[r.DepartmentID] = r.Total
		}
	}

	out := make([]dto.DepartmentListItem, 0, len(departments))
	for i := range departments {
		d := &departments[i]
		var leader, coLeader *memberdto.MemberRef
		if d.DepartmentLeaderID != nil {
			if ref, ok := refs[*d.DepartmentLeaderID]; ok {
				leader = &ref
			}
		}
		if d.DepartmentCoLeaderID != nil {
			if ref, ok := refs[*d.DepartmentCoLeaderID]; ok {
				coLeader = &ref
			}
		}
		out = append(out, dto.NewDepartmentListItem(d, leader, coLeader, counts[d.DepartmentID]))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /admin/departments/:id
func (ctl *DepartmentController) GetDepartmentByID(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	d, err := ctl.departmentOfChurch(ctl.DB, id, churchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Departamento não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar departamento")
	}

	var memberships []model.DepartmentMemberModel
	if err := ctl.DB.Where("department_member_department_id = ?", id).
		Order("department_member_joined_at ASC").
		Find(&memberships).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar membros")
	}

	refIDs := make([]uuid.UUID, 0, len(memberships)+2)
	for _, ms := range memberships {
		refIDs = append(refIDs, ms.DepartmentMemberMemberID)
	}
	if d.DepartmentLeaderID != nil {
		refIDs = append(refIDs, *d.DepartmentLeaderID)
	}
	if d.DepartmentCoLeaderID != nil {
		refIDs = append(refIDs, *d.DepartmentCoLeaderID)
	}
	refs, err := memberRefsByID(ctl.DB, refIDs)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar membros")
	}

	members := make([]memberdto.MemberRef, 0, len(memberships))
	for _, ms := range memberships {
		if ref, ok := refs[ms.DepartmentMemberMemberID]; ok {
			members = append(members, ref)
		}
	}
	var leader, coLeader *memberdto.MemberRef
	if d.DepartmentLeaderID != nil {
		if ref, ok := refs[*d.DepartmentLeaderID]; ok {
			leader = &ref
		}
	}
	if d.DepartmentCoLeaderID != nil {
		if ref, ok := refs[*d.DepartmentCoLeaderID]; ok {
			coLeader = &ref
		}
	}

	resp := dto.DepartmentDetailResponse{
		DepartmentListItem: dto.NewDepartmentListItem(d, leader, coLeader, len(members)),
		Members:            members,
	}
	return helper.JsonOK(c, "", resp)
}

// POST /admin/departments
func (ctl *DepartmentController) CreateDepartment(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	m := req.ToModel(churchID)
	if err := ctl.DB.Create(m).Error; err != nil {
		log.Printf("[departments] create church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar departamento")
	}
	return helper.JsonCreated(c, "Departamento criado", dto.NewDepartmentListItem(m, nil, nil, 0))
}

// PUT /admin/departments/:id
func (ctl *DepartmentController) UpdateDepartment(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req dto.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	d, err := ctl.departmentOfChurch(ctl.DB, id, churchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Departamento não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar departamento")
	}
	req.ApplyToModel(d)
	if err := ctl.DB.Save(d).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar departamento")
	}
	return helper.JsonUpdated(c, "Departamento atualizado", dto.NewDepartmentListItem(d, nil, nil, 0))
}

// DELETE /admin/departments/:id
// Departamentos padrão não podem ser removidos.
func (ctl *DepartmentController) DeleteDepartment(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		d, err := ctl.departmentOfChurch(tx, id, churchID)
		if err != nil {
			return err
		}
		if d.DepartmentIsDefault {
			return fiber.ErrForbidden
		}
		if err := tx.Where("department_member_department_id = ?", id).
			Delete(&model.DepartmentMemberModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(d).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Departamento não encontrado")
		}
		if errors.Is(err, fiber.ErrForbidden) {
			return helper.JsonError(c, fiber.StatusForbidden, "Departamentos padrão não podem ser removidos")
		}
		log.Printf("[departments] delete id=%s err=%v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover departamento")
	}
	return helper.JsonDeleted(c, "Departamento removido", fiber.Map{"department_id": id})
}

/* ================= Membros do departamento ================= */

// POST /admin/departments/:id/members
func (ctl *DepartmentController) AddDepartmentMember(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req dto.AddDepartmentMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var ms model.DepartmentMemberModel
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := ctl.departmentOfChurch(tx, id, churchID); err != nil {
			return err
		}
		var exists int64
		if err := tx.Model(&model.DepartmentMemberModel{}).
			Where("department_member_department_id = ? AND department_member_member_id = ?", id, req.MemberID).
			Count(&exists).Error; err != nil {
			return err
		}
		if exists > 0 {
			return fiber.ErrConflict
		}
		ms = model.DepartmentMemberModel{
			DepartmentMemberDepartmentID: id,
			DepartmentMemberMemberID:     req.MemberID,
		}
		return tx.Create(&ms).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Departamento não encontrado")
		}
		if errors.Is(err, fiber.ErrConflict) {
			return helper.JsonError(c, fiber.StatusConflict, "Membro já pertence ao departamento")
		}
		log.Printf("[departments] add member dept=%s err=%v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao adicionar membro")
	}
	return helper.JsonCreated(c, "Membro adicionado ao departamento", ms)
}

// DELETE /admin/departments/:id/members/:memberId
func (ctl *DepartmentController) RemoveDepartmentMember(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if _, err := ctl.departmentOfChurch(ctl.DB, id, churchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Departamento não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar departamento")
	}
	res := ctl.DB.Where("department_member_department_id = ? AND department_member_member_id = ?", id, memberID).
		Delete(&model.DepartmentMemberModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover membro")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Membro não pertence ao departamento")
	}
	return helper.JsonDeleted(c, "Membro removido do departamento", fiber.Map{"member_id": memberID})
}
