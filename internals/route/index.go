// file: internals/route/index.go
package routes

import (
	"log"

	"tutorku_backend/internals/configs"
	classRoute "tutorku_backend/internals/features/classes/classes/route"
	enrollRoute "tutorku_backend/internals/features/classes/enrollments/route"
	schedRoute "tutorku_backend/internals/features/sessions/schedules/route"
	sessRoute "tutorku_backend/internals/features/sessions/sessions/route"
	authMiddleware "tutorku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes mounts every feature group. Everything lives behind JWT:
// a tutor only ever sees their own classes, so there is no public
// surface besides /health in main.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== TUTOR (private) =====================
	log.Println("[INFO] Setting up TUTOR group...")
	tutor := app.Group("/api/t",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Class routes...")
	classRoute.ClassTutorRoutes(tutor, db)
	enrollRoute.EnrollmentTutorRoutes(tutor, db)

	log.Println("[INFO] Mounting Schedule & Session routes...")
	schedRoute.WeeklyScheduleTutorRoutes(tutor, db)
	sessRoute.SessionTutorRoutes(tutor, db)
}
