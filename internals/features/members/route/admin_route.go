package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/constants"
	memberctrl "minhaigreja_backend/internals/features/members/controller"
	authmw "minhaigreja_backend/internals/middlewares/auth"
)

func MemberAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := memberctrl.NewMemberController(db)

	members := admin.Group("/members", authmw.RoleGate(constants.LeaderAndAbove...))

	members.Get("/", h.ListMembers)
	members.Get("/refs", h.ListMemberRefs)
	members.Get("/:id", h.GetMemberByID)
	members.Post("/", h.CreateMember)
	members.Put("/:id", h.UpdateMember)
	members.Delete("/:id", h.SoftDeleteMember)
}
