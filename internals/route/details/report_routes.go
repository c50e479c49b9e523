package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"symposium_backend/internals/constants"
	reportController "symposium_backend/internals/features/symposium/reports/controller"
	authMiddleware "symposium_backend/internals/middlewares/auth"
)

func ReportRoutes(app *fiber.App, db *gorm.DB) {
	ctl := reportController.NewReportController(db)

	reports := app.Group("/api/reports",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorCoordinator("reports"), constants.CoordinatorAndUp...),
	)

	reports.Get("/registrations", ctl.Registrations)
	reports.Get("/sessions", ctl.Sessions)
	reports.Get("/scores", ctl.Scores)
}
