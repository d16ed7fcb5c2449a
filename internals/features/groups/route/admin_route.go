package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/constants"
	groupctrl "minhaigreja_backend/internals/features/groups/controller"
	authmw "minhaigreja_backend/internals/middlewares/auth"
)

func GroupAdminRoutes(admin fiber.Router, db *gorm.DB) {
	groups := groupctrl.NewGroupController(db)
	meetings := groupctrl.NewMeetingController(db)

	g := admin.Group("/groups", authmw.RoleGate(constants.LeaderAndAbove...))
	g.Get("/", groups.ListGroups)
	g.Get("/:id", groups.GetGroupByID)
	g.Post("/", groups.CreateGroup)
	g.Put("/:id", groups.UpdateGroup)
	g.Delete("/:id", groups.DeleteGroup)

	g.Post("/:id/members", groups.AddGroupMember)
	g.Put("/:id/members/:memberId", groups.UpdateGroupMemberRole)
	g.Delete("/:id/members/:memberId", groups.RemoveGroupMember)

	g.Post("/:id/meetings", meetings.UpsertMeeting)
	g.Put("/:id/meetings/:meetingId/attendance", meetings.RecordAttendance)
	g.Delete("/:id/meetings/:meetingId", meetings.DeleteMeeting)
}
