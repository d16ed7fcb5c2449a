package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	churchctrl "minhaigreja_backend/internals/features/churches/controller"
	"minhaigreja_backend/internals/constants"
	authmw "minhaigreja_backend/internals/middlewares/auth"
)

func SettingsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := churchctrl.NewSettingsController(db)

	settings := admin.Group("/settings", authmw.RoleGate(constants.AdminOnly...))

	settings.Get("/", h.GetSettings)
	settings.Post("/permissions/toggle", h.TogglePermission)
	settings.Post("/roles", h.AddCustomRole)
	settings.Delete("/roles/:name", h.RemoveCustomRole)
	settings.Put("/branding", h.UpdateBranding)
}
