package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/features/services/dto"
	"minhaigreja_backend/internals/features/services/model"
	taxsvc "minhaigreja_backend/internals/features/teaching/service"
	helper "minhaigreja_backend/internals/helpers"
)

var validate = validator.New()

/* ================= Controller & Constructor ================= */

type ServiceController struct {
	DB *gorm.DB
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db}
}

var serviceSortCols = map[string]string{
	"date":       "service_date",
	"status":     "service_status",
	"created_at": "service_created_at",
}

func (ctl *ServiceController) serviceOfChurch(tx *gorm.DB, id, churchID uuid.UUID) (*model.ServiceModel, error) {
	var s model.ServiceModel
	err := tx.Where("service_id = ? AND service_church_id = ?", id, churchID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// resolveTypeField resolve o tipo de culto cru (id-ou-nome) para FK.
func (ctl *ServiceController) resolveTypeField(churchID uuid.UUID, raw *string) (*uuid.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	id, err := taxsvc.ResolveServiceTypeID(ctl.DB, churchID, *raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Tipo de culto desconhecido: "+*raw)
	}
	return &id, nil
}

func (ctl *ServiceController) typeNamesByID(churchID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := map[uuid.UUID]string{}
	if len(ids) == 0 {
		return out, nil
	}
	var rows []model.ServiceTypeModel
	if err := ctl.DB.Select("service_type_id, service_type_name").
		Where("service_type_id IN ? AND service_type_church_id = ?", ids, churchID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.ServiceTypeID] = r.ServiceTypeName
	}
	return out, nil
}

/* ================= Cultos ================= */

// GET /admin/services
func (ctl *ServiceController) ListServices(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ParsePaging(c, "date", "desc", helper.DefaultOpts)

	q := ctl.DB.Model(&model.ServiceModel{}).Where("service_church_id = ?", churchID)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("service_status = ?", status)
	}
	if typeID := strings.TrimSpace(c.Query("type_id")); typeID != "" {
		if tid, err := uuid.Parse(typeID); err == nil {
			q = q.Where("service_type_id = ?", tid)
		}
	}
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		q = q.Where("service_date >= ?", from)
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		q = q.Where("service_date <= ?", to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao contar cultos")
	}

	order, _ := p.SafeOrderClause(serviceSortCols, "date")
	var services []model.ServiceModel
	if err := q.Order(order).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&services).Error; err != nil {
		log.Printf("[services] list church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar cultos")
	}

	typeIDs := make([]uuid.UUID, 0, len(services))
	for _, s := range services {
		if s.ServiceTypeID != nil {
			typeIDs = append(typeIDs, *s.ServiceTypeID)
		}
	}
	names, err := ctl.typeNamesByID(churchID, typeIDs)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar tipos")
	}

	out := make([]dto.ServiceResponse, 0, len(services))
	for i := range services {
		s := &services[i]
		var typeName *string
		if s.ServiceTypeID != nil {
			if n, ok := names[*s.ServiceTypeID]; ok {
				typeName = &n
			}
		}
		out = append(out, dto.NewServiceResponse(s, typeName))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /admin/services/:id
func (ctl *ServiceController) GetServiceByID(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	s, err := ctl.serviceOfChurch(ctl.DB, id, churchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Culto não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar culto")
	}
	var typeName *string
	if s.ServiceTypeID != nil {
		names, err := ctl.typeNamesByID(churchID, []uuid.UUID{*s.ServiceTypeID})
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar tipo")
		}
		if n, ok := names[*s.ServiceTypeID]; ok {
			typeName = &n
		}
	}
	return helper.JsonOK(c, "", dto.NewServiceResponse(s, typeName))
}

// GET /admin/services/:id/stats
func (ctl *ServiceController) GetServiceStats(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	s, err := ctl.serviceOfChurch(ctl.DB, id, churchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Culto não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar culto")
	}
	return helper.JsonOK(c, "", dto.NewServiceStatsResponse(dto.BreakdownOf(s)))
}

// POST /admin/services
func (ctl *ServiceController) CreateService(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	typeID, err := ctl.resolveTypeField(churchID, req.ServiceType)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao resolver tipo de culto")
	}
	m := req.ToModel(churchID, typeID)
	if err := ctl.DB.Create(m).Error; err != nil {
		log.Printf("[services] create church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar culto")
	}
	return helper.JsonCreated(c, "Culto criado", dto.NewServiceResponse(m, nil))
}

// PUT /admin/services/:id
func (ctl *ServiceController) UpdateService(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req dto.UpdateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	s, err := ctl.serviceOfChurch(ctl.DB, id, churchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Culto não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar culto")
	}
	typeID, err := ctl.resolveTypeField(churchID, req.ServiceType)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao resolver tipo de culto")
	}
	req.ApplyToModel(s, typeID)
	if err := ctl.DB.Save(s).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar culto")
	}
	return helper.JsonUpdated(c, "Culto atualizado", dto.NewServiceResponse(s, nil))
}

// DELETE /admin/services/:id
func (ctl *ServiceController) DeleteService(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	res := ctl.DB.Where("service_id = ? AND service_church_id = ?", id, churchID).
		Delete(&model.ServiceModel{})
	if res.Error != nil {
		log.Printf("[services] delete id=%s err=%v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover culto")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Culto não encontrado")
	}
	return helper.JsonDeleted(c, "Culto removido", fiber.Map{"service_id": id})
}

/* ================= Tipos de culto ================= */

// GET /admin/services/types
func (ctl *ServiceController) ListServiceTypes(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	var rows []model.ServiceTypeModel
	if err := ctl.DB.Where("service_type_church_id = ?", churchID).
		Order("service_type_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar tipos de culto")
	}
	out := make([]*dto.ServiceTypeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewServiceTypeResponse(&rows[i]))
	}
	return helper.JsonOK(c, "", out)
}

// POST /admin/services/types
func (ctl *ServiceController) CreateServiceType(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.CreateServiceTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	m := &model.ServiceTypeModel{
		ServiceTypeChurchID:    churchID,
		ServiceTypeName:        req.ServiceTypeName,
		ServiceTypeDescription: req.ServiceTypeDescription,
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		log.Printf("[services] create type church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar tipo de culto")
	}
	return helper.JsonCreated(c, "Tipo de culto criado", dto.NewServiceTypeResponse(m))
}

// PUT /admin/services/types/:id
func (ctl *ServiceController) UpdateServiceType(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req dto.UpdateServiceTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	var m model.ServiceTypeModel
	if err := ctl.DB.Where("service_type_id = ? AND service_type_church_id = ?", id, churchID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tipo de culto não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar tipo de culto")
	}
	if req.ServiceTypeName != nil {
		m.ServiceTypeName = *req.ServiceTypeName
	}
	if req.ServiceTypeDescription != nil {
		m.ServiceTypeDescription = req.ServiceTypeDescription
	}
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar tipo de culto")
	}
	return helper.JsonUpdated(c, "Tipo de culto atualizado", dto.NewServiceTypeResponse(&m))
}

// DELETE /admin/services/types/:id
func (ctl *ServiceController) DeleteServiceType(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("service_type_id = ? AND service_type_church_id = ?", id, churchID).
			Delete(&model.ServiceTypeModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		// cultos que apontavam para o tipo removido ficam sem tipo
		return tx.Model(&model.ServiceModel{}).
			Where("service_type_id = ? AND service_church_id = ?", id, churchID).
			Update("service_type_id", nil).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tipo de culto não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover tipo de culto")
	}
	return helper.JsonDeleted(c, "Tipo de culto removido", fiber.Map{"service_type_id": id})
}
