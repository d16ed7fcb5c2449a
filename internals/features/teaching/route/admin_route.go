package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/constants"
	teachctrl "minhaigreja_backend/internals/features/teaching/controller"
	authmw "minhaigreja_backend/internals/middlewares/auth"
)

func TeachingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	classes := teachctrl.NewClassController(db)
	lessons := teachctrl.NewLessonController(db)
	taxonomy := teachctrl.NewTaxonomyController(db)

	teaching := admin.Group("/teaching", authmw.RoleGate(constants.LeaderAndAbove...))

	cls := teaching.Group("/classes")
	cls.Get("/", classes.ListClasses)
	cls.Get("/:id", classes.GetClassByID)
	cls.Post("/", classes.CreateClass)
	cls.Put("/:id", classes.UpdateClass)
	cls.Delete("/:id", classes.DeleteClass)
	cls.Put("/:id/students", classes.SetClassStudents)

	cls.Get("/:classId/lessons", lessons.ListLessons)
	cls.Post("/:classId/lessons", lessons.UpsertLessonWithAttendance)
	cls.Delete("/:classId/lessons/:id", lessons.DeleteLesson)

	stages := teaching.Group("/stages")
	stages.Get("/", taxonomy.ListStages)
	stages.Post("/", taxonomy.CreateStage)
	stages.Put("/:id", taxonomy.UpdateStage)
	stages.Delete("/:id", taxonomy.DeleteStage)

	categories := teaching.Group("/categories")
	categories.Get("/", taxonomy.ListCategories)
	categories.Post("/", taxonomy.CreateCategory)
	categories.Put("/:id", taxonomy.UpdateCategory)
	categories.Delete("/:id", taxonomy.DeleteCategory)
}
