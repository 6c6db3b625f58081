// file: internals/features/classes/classes/route/tutor_route.go
package route

import (
	classController "tutorku_backend/internals/features/classes/classes/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ClassTutorRoutes mounts class CRUD under the tutor group.
func ClassTutorRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := classController.NewClassController(db)

	g := app.Group("/classes")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:class_id", ctrl.GetByID)
	g.Patch("/:class_id", ctrl.Update)
	g.Delete("/:class_id", ctrl.Delete)
}
