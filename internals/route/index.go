package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/configs"
	churchroute "minhaigreja_backend/internals/features/churches/route"
	deptroute "minhaigreja_backend/internals/features/departments/route"
	discroute "minhaigreja_backend/internals/features/discipleship/route"
	finroute "minhaigreja_backend/internals/features/finance/route"
	grouproute "minhaigreja_backend/internals/features/groups/route"
	memberroute "minhaigreja_backend/internals/features/members/route"
	svcroute "minhaigreja_backend/internals/features/services/route"
	teachroute "minhaigreja_backend/internals/features/teaching/route"
	authmw "minhaigreja_backend/internals/middlewares/auth"
)

// SetupRoutes registra a árvore de rotas da API administrativa.
// Tudo abaixo de /api/a exige JWT válido com church_id no claim.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")
	admin := api.Group("/a", authmw.AuthJWT(authmw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))

	memberroute.MemberAdminRoutes(admin, db)
	grouproute.GroupAdminRoutes(admin, db)
	teachroute.TeachingAdminRoutes(admin, db)
	discroute.DiscipleshipAdminRoutes(admin, db)
	deptroute.DepartmentAdminRoutes(admin, db)
	svcroute.ServiceAdminRoutes(admin, db)
	finroute.FinanceAdminRoutes(admin, db)
	churchroute.SettingsAdminRoutes(admin, db)
}
