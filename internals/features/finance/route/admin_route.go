package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/constants"
	finctrl "minhaigreja_backend/internals/features/finance/controller"
	authmw "minhaigreja_backend/internals/middlewares/auth"
)

func FinanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	transactions := finctrl.NewTransactionController(db)

	f := admin.Group("/finance", authmw.RoleGate(constants.SupervisorAndAbove...))

	f.Get("/totals", transactions.GetTotals)

	t := f.Group("/transactions")
	t.Get("/", transactions.ListTransactions)
	t.Post("/", transactions.CreateTransaction)
	t.Put("/:id", transactions.UpdateTransaction)
	t.Delete("/:id", transactions.DeleteTransaction)

	cat := f.Group("/categories")
	cat.Get("/", transactions.ListCategories)
	cat.Post("/", transactions.CreateCategory)
	cat.Put("/:id", transactions.UpdateCategory)
	cat.Delete("/:id", transactions.DeleteCategory)
}
