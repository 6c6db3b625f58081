// file: internals/features/classes/enrollments/route/tutor_route.go
package route

import (
	enrollController "tutorku_backend/internals/features/classes/enrollments/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrollmentTutorRoutes mounts roster management under the tutor group.
func EnrollmentTutorRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := enrollController.NewEnrollmentController(db)

	g := app.Group("/classes/:class_id/students")
	g.Post("/", ctrl.Assign)
	g.Get("/", ctrl.List)
	g.Delete("/:student_id", ctrl.Remove)
}
