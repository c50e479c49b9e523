package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"symposium_backend/internals/constants"
	awardController "symposium_backend/internals/features/symposium/awards/controller"
	evalService "symposium_backend/internals/features/symposium/evaluations/service"
	authMiddleware "symposium_backend/internals/middlewares/auth"
)

func AwardRoutes(app *fiber.App, db *gorm.DB, scores *evalService.EvaluationService) {
	ctl := awardController.NewAwardController(db, scores)

	awards := app.Group("/api/awards", authMiddleware.AuthMiddleware(db))

	awards.Get("/", ctl.List)
	awards.Post("/calculate",
		authMiddleware.OnlyRoles(constants.RoleErrorCoordinator("award calculation"), constants.CoordinatorAndUp...),
		ctl.Calculate)
}
