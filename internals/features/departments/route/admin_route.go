package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/constants"
	deptctrl "minhaigreja_backend/internals/features/departments/controller"
	authmw "minhaigreja_backend/internals/middlewares/auth"
)

func DepartmentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	departments := deptctrl.NewDepartmentController(db)

	d := admin.Group("/departments", authmw.RoleGate(constants.LeaderAndAbove...))
	d.Get("/", departments.ListDepartments)
	d.Get("/:id", departments.GetDepartmentByID)
	d.Post("/", departments.CreateDepartment)
	d.Put("/:id", departments.UpdateDepartment)
	d.Delete("/:id", departments.DeleteDepartment)

	d.Post("/:id/members", departments.AddDepartmentMember)
	d.Delete("/:id/members/:memberId", departments.RemoveDepartmentMember)
}
