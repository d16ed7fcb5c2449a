package controller

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/features/churches/dto"
	"minhaigreja_backend/internals/features/churches/model"
	"minhaigreja_backend/internals/features/churches/service"
	helper "minhaigreja_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db}
}

var validate = validator.New()

/* ================= Internals ================= */

func (ctl *SettingsController) loadChurch(churchID uuid.UUID) (*model.ChurchModel, *service.ChurchSettings, error) {
	var church model.ChurchModel
	if err := ctl.DB.First(&church, "church_id = ?", churchID).Error; err != nil {
		return nil, nil, err
	}
	settings, err := service.ParseChurchSettings(church.ChurchSettings)
	if err != nil {
		return nil, nil, err
	}
	return &church, settings, nil
}

// persistSettings grava o blob inteiro em uma única escrita (read-modify-write).
func (ctl *SettingsController) persistSettings(churchID uuid.UUID, s *service.ChurchSettings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return ctl.DB.Model(&model.ChurchModel{}).
		Where("church_id = ?", churchID).
		Update("church_settings", datatypes.JSON(raw)).Error
}

/* ================= Handlers ================= */

// GET /admin/settings
func (ctl *SettingsController) GetSettings(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	church, settings, err := ctl.loadChurch(churchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Igreja não encontrada")
		}
		log.Printf("[settings] load church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar configurações")
	}

	// primeira leitura sem blob: semeia os defaults antes de responder
	if len(church.ChurchSettings) == 0 || string(church.ChurchSettings) == "{}" || string(church.ChurchSettings) == "null" {
		if err := ctl.persistSettings(churchID, settings); err != nil {
			log.Printf("[settings] seed defaults church=%s err=%v", churchID, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao inicializar configurações")
		}
	}

	return helper.JsonOK(c, "", dto.NewSettingsResponse(settings))
}

// POST /admin/settings/permissions/toggle
func (ctl *SettingsController) TogglePermission(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.TogglePermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if !service.ValidPermissionKey(service.PermissionKey(req.Module, req.Action)) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Módulo ou ação desconhecidos")
	}
	if req.Role == "admin" {
		return helper.JsonError(c, fiber.StatusBadRequest, "As permissões de admin não são editáveis")
	}

	_, settings, err := ctl.loadChurch(churchID)
	if err != nil {
		log.Printf("[settings] load church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar configurações")
	}

	settings.RolePermissions.Toggle(req.Role, req.Module, req.Action)

	if err := ctl.persistSettings(churchID, settings); err != nil {
		log.Printf("[settings] persist church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar permissões")
	}
	return helper.JsonUpdated(c, "Permissão atualizada", dto.NewSettingsResponse(settings))
}

// POST /admin/settings/roles
func (ctl *SettingsController) AddCustomRole(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.AddCustomRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	_, settings, err := ctl.loadChurch(churchID)
	if err != nil {
		log.Printf("[settings] load church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar configurações")
	}

	key, err := settings.AddCustomRole(req.Name)
	if err != nil {
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}

	if err := ctl.persistSettings(churchID, settings); err != nil {
		log.Printf("[settings] persist church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar papel")
	}
	return helper.JsonCreated(c, "Papel criado", fiber.Map{"role": key})
}

// DELETE /admin/settings/roles/:name
func (ctl *SettingsController) RemoveCustomRole(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	name := c.Params("name")

	_, settings, err := ctl.loadChurch(churchID)
	if err != nil {
		log.Printf("[settings] load church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar configurações")
	}

	if err := settings.RemoveCustomRole(name); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.persistSettings(churchID, settings); err != nil {
		log.Printf("[settings] persist church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover papel")
	}
	return helper.JsonDeleted(c, "Papel removido", fiber.Map{"role": service.NormalizeRoleName(name)})
}

// PUT /admin/settings/branding
func (ctl *SettingsController) UpdateBranding(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateBrandingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	_, settings, err := ctl.loadChurch(churchID)
	if err != nil {
		log.Printf("[settings] load church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar configurações")
	}

	if req.DisplayName != nil {
		settings.Branding.DisplayName = *req.DisplayName
	}
	if req.LogoURL != nil {
		settings.Branding.LogoURL = *req.LogoURL
	}
	if req.PrimaryColor != nil {
		settings.Branding.PrimaryColor = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		settings.Branding.SecondaryColor = *req.SecondaryColor
	}

	if err := ctl.persistSettings(churchID, settings); err != nil {
		log.Printf("[settings] persist church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar identidade visual")
	}
	return helper.JsonUpdated(c, "Identidade visual atualizada", settings.Branding)
}
