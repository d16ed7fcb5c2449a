package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/constants"
	svcctrl "minhaigreja_backend/internals/features/services/controller"
	authmw "minhaigreja_backend/internals/middlewares/auth"
)

func ServiceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	services := svcctrl.NewServiceController(db)

	s := admin.Group("/services", authmw.RoleGate(constants.LeaderAndAbove...))

	// rotas fixas antes das parametrizadas
	s.Get("/types", services.ListServiceTypes)
	s.Post("/types", services.CreateServiceType)
	s.Put("/types/:id", services.UpdateServiceType)
	s.Delete("/types/:id", services.DeleteServiceType)

	s.Get("/", services.ListServices)
	s.Get("/:id", services.GetServiceByID)
	s.Get("/:id/stats", services.GetServiceStats)
	s.Post("/", services.CreateService)
	s.Put("/:id", services.UpdateService)
	s.Delete("/:id", services.DeleteService)
}
