package dto

import (
	"minhaigreja_backend/internals/features/churches/service"
)

/* ========== REQUEST DTOs ========== */

type TogglePermissionRequest struct {
	Role   string `json:"role"   validate:"required,min=2,max=60"`
	Module string `json:"module" validate:"required"`
	Action string `json:"action" validate:"required,oneof=view create edit delete"`
}

type AddCustomRoleRequest struct {
	Name string `json:"name" validate:"required,min=2,max=60"`
}

type UpdateBrandingRequest struct {
	DisplayName    *string `json:"display_name"    validate:"omitempty,max=160"`
	LogoURL        *string `json:"logo_url"        validate:"omitempty,url"`
	PrimaryColor   *string `json:"primary_color"   validate:"omitempty,hexcolor"`
	SecondaryColor *string `json:"secondary_color" validate:"omitempty,hexcolor"`
}

/* ========== RESPONSE DTO ========== */

// SettingsResponse devolve o blob já saneado (papéis órfãos fora) mais as
// enumerações fixas que o painel usa para montar a matriz.
type SettingsResponse struct {
	RolePermissions   service.RolePermissionMap `json:"role_permissions"`
	CustomSystemRoles []string                  `json:"custom_system_roles"`
	Branding          service.BrandingSettings  `json:"branding"`
	Modules           []string                  `json:"modules"`
	Actions           []string                  `json:"actions"`
}

func NewSettingsResponse(s *service.ChurchSettings) *SettingsResponse {
	visible := service.RolePermissionMap{}
	for _, role := range s.KnownRoles() {
		if role == "admin" {
			continue // admin é implícito, nunca representado no mapa
		}
		if perms, ok := s.RolePermissions[role]; ok {
			visible[role] = perms
		} else {
			visible[role] = []string{}
		}
	}
	return &SettingsResponse{
		RolePermissions:   visible,
		CustomSystemRoles: s.CustomSystemRoles,
		Branding:          s.Branding,
		Modules:           service.Modules,
		Actions:           service.Actions,
	}
}
