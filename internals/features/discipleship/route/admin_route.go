package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/constants"
	discctrl "minhaigreja_backend/internals/features/discipleship/controller"
	authmw "minhaigreja_backend/internals/middlewares/auth"
)

func DiscipleshipAdminRoutes(admin fiber.Router, db *gorm.DB) {
	leaders := discctrl.NewLeaderController(db)
	meetings := discctrl.NewMeetingController(db)

	d := admin.Group("/discipleship", authmw.RoleGate(constants.LeaderAndAbove...))

	l := d.Group("/leaders")
	l.Get("/", leaders.ListLeaders)
	l.Get("/:id", leaders.GetLeaderByID)
	l.Post("/", leaders.CreateLeader)
	l.Delete("/:id", leaders.DeleteLeader)

	l.Post("/:id/disciples", leaders.AddDisciple)
	l.Delete("/:id/disciples/:memberId", leaders.RemoveDisciple)

	l.Post("/:id/meetings", meetings.UpsertMeeting)
	l.Delete("/:id/meetings/:meetingId", meetings.DeleteMeeting)
}
