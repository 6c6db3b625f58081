// file: internals/features/sessions/schedules/route/tutor_route.go
package route

import (
	schedController "tutorku_backend/internals/features/sessions/schedules/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// WeeklyScheduleTutorRoutes mounts recurring-pattern management under
// the tutor group.
func WeeklyScheduleTutorRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := schedController.NewWeeklyScheduleController(db)

	g := app.Group("/classes/:class_id/schedules")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Patch("/:schedule_id", ctrl.Update)
	g.Delete("/:schedule_id", ctrl.Delete)
}
