package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"minhaigreja_backend/internals/constants"
)

/* =================================================
   Matriz de permissões: papel -> ["modulo_acao", ...]
==================================================*/

// Módulos e ações são enumerações fixas (8 módulos × 4 ações).
var (
	Modules = []string{
		"members", "groups", "teaching", "discipleship",
		"departments", "services", "finance", "settings",
	}
	Actions = []string{"view", "create", "edit", "delete"}
)

func PermissionKey(module, action string) string {
	return module + "_" + action
}

func ValidPermissionKey(key string) bool {
	for _, m := range Modules {
		for _, a := range Actions {
			if key == PermissionKey(m, a) {
				return true
			}
		}
	}
	return false
}

// RolePermissionMap é o valor persistido em churches.church_settings.
// admin é implicitamente todas-as-permissões e nunca aparece no mapa.
type RolePermissionMap map[string][]string

func (m RolePermissionMap) Has(role, module, action string) bool {
	if role == constants.RoleAdmin {
		return true
	}
	key := PermissionKey(module, action)
	for _, k := range m[role] {
		if k == key {
			return true
		}
	}
	return false
}

// Toggle inverte a presença de "{module}_{action}" no papel informado.
func (m RolePermissionMap) Toggle(role, module, action string) {
	key := PermissionKey(module, action)
	list := m[role]
	for i, k := range list {
		if k == key {
			m[role] = append(list[:i], list[i+1:]...)
			return
		}
	}
	m[role] = append(list, key)
}

// DefaultRolePermissions é o mapa semeado quando o tenant ainda não tem
// configurações persistidas.
func DefaultRolePermissions() RolePermissionMap {
	return RolePermissionMap{
		constants.RoleSupervisor: {
			"members_view", "members_create", "members_edit",
			"groups_view", "groups_create", "groups_edit",
			"teaching_view", "teaching_create", "teaching_edit",
			"discipleship_view", "discipleship_create", "discipleship_edit",
			"departments_view", "services_view", "finance_view",
		},
		constants.RoleLeader: {
			"members_view",
			"groups_view", "groups_edit",
			"teaching_view", "teaching_edit",
			"discipleship_view", "discipleship_edit",
			"departments_view", "services_view",
		},
		constants.RoleMember: {
			"groups_view", "teaching_view", "services_view",
		},
	}
}

/* =================================================
   Settings do tenant (blob JSON único)
==================================================*/

type ChurchSettings struct {
	RolePermissions   RolePermissionMap `json:"role_permissions"`
	CustomSystemRoles []string          `json:"custom_system_roles"`
	SharedPermissions json.RawMessage   `json:"shared_permissions,omitempty"`

	Branding BrandingSettings `json:"branding"`
}

type BrandingSettings struct {
	DisplayName    string `json:"display_name,omitempty"`
	LogoURL        string `json:"logo_url,omitempty"`
	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
}

// ParseChurchSettings decodifica o blob e garante os defaults na primeira
// leitura (mapa vazio -> DefaultRolePermissions).
func ParseChurchSettings(raw []byte) (*ChurchSettings, error) {
	s := &ChurchSettings{}
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, s); err != nil {
			return nil, fmt.Errorf("church_settings corrompido: %w", err)
		}
	}
	if len(s.RolePermissions) == 0 {
		s.RolePermissions = DefaultRolePermissions()
	}
	if s.CustomSystemRoles == nil {
		s.CustomSystemRoles = []string{}
	}
	return s, nil
}

// KnownRoles devolve os papéis na ordem de exibição: nativos primeiro,
// depois os customizados. Chaves órfãs no mapa (papel removido) ficam de fora.
func (s *ChurchSettings) KnownRoles() []string {
	out := make([]string, 0, len(constants.BuiltInRoles)+len(s.CustomSystemRoles))
	out = append(out, constants.BuiltInRoles...)
	out = append(out, s.CustomSystemRoles...)
	return out
}

// NormalizeRoleName transforma um nome livre em chave de papel:
// minúsculas e espaços viram underscore.
func NormalizeRoleName(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.Join(strings.Fields(key), "_")
	return key
}

// AddCustomRole valida colisão (case-insensitive, após normalização) com os
// papéis nativos e os customizados existentes. Sem mutação quando rejeitado.
func (s *ChurchSettings) AddCustomRole(name string) (string, error) {
	key := NormalizeRoleName(name)
	if key == "" {
		return "", fmt.Errorf("nome de papel vazio")
	}
	if constants.IsBuiltInRole(key) {
		return "", fmt.Errorf("o papel %q já existe no sistema", key)
	}
	for _, existing := range s.CustomSystemRoles {
		if existing == key {
			return "", fmt.Errorf("o papel %q já existe", key)
		}
	}
	s.CustomSystemRoles = append(s.CustomSystemRoles, key)
	if s.RolePermissions[key] == nil {
		s.RolePermissions[key] = []string{}
	}
	return key, nil
}

// RemoveCustomRole tira o papel da lista de customizados. As entradas dele em
// role_permissions ficam como estão (órfãs); KnownRoles as ignora na leitura.
func (s *ChurchSettings) RemoveCustomRole(name string) error {
	key := NormalizeRoleName(name)
	if constants.IsBuiltInRole(key) {
		return fmt.Errorf("papéis nativos não podem ser removidos")
	}
	for i, existing := range s.CustomSystemRoles {
		if existing == key {
			s.CustomSystemRoles = append(s.CustomSystemRoles[:i], s.CustomSystemRoles[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("papel %q não encontrado", key)
}
