// file: internals/features/sessions/sessions/route/tutor_route.go
package route

import (
	sessController "tutorku_backend/internals/features/sessions/sessions/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SessionTutorRoutes mounts session and attendance management under
// the tutor group.
func SessionTutorRoutes(app fiber.Router, db *gorm.DB) {
	sessCtrl := sessController.NewSessionController(db)
	attCtrl := sessController.NewAttendanceController(db)

	// ===== SESSIONS =====
	g := app.Group("/classes/:class_id/sessions")
	g.Post("/", sessCtrl.CreateManual)
	g.Get("/", sessCtrl.List)
	g.Patch("/:session_id/status", sessCtrl.PatchStatus)
	g.Delete("/:session_id", sessCtrl.Delete)

	// Bulk expansion from the active weekly patterns.
	app.Post("/classes/:class_id/generate-sessions", sessCtrl.Generate)

	// ===== ATTENDANCE =====
	a := app.Group("/classes/:class_id/sessions/:session_id")
	a.Get("/attendance", attCtrl.ListBySession)
	a.Post("/attendance/resync", attCtrl.Resync)
	a.Get("/students/:student_id/attendance", attCtrl.GetForStudent)
	a.Put("/students/:student_id/attendance", attCtrl.Mark)
	a.Delete("/students/:student_id/attendance", attCtrl.DeleteForStudent)
}
