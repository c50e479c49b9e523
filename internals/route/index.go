package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "symposium_backend/internals/route/details"
)

// SetupRoutes mounts every feature router. Controllers that share service
// state (session slots, evaluation averages) are created once here and passed
// down, so all writers contend on the same locks.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up UserRoutes...")
	routeDetails.UserRoutes(app, db)

	log.Println("[INFO] Setting up SessionRoutes...")
	sessionCtl := routeDetails.SessionRoutes(app, db)

	log.Println("[INFO] Setting up RegistrationRoutes...")
	routeDetails.RegistrationRoutes(app, db, sessionCtl.Service)

	log.Println("[INFO] Setting up EvaluationRoutes...")
	evalCtl := routeDetails.EvaluationRoutes(app, db)

	log.Println("[INFO] Setting up AwardRoutes...")
	routeDetails.AwardRoutes(app, db, evalCtl.Service)

	log.Println("[INFO] Setting up ReportRoutes...")
	routeDetails.ReportRoutes(app, db)
}
