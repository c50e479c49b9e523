package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"symposium_backend/internals/constants"
	sessionController "symposium_backend/internals/features/symposium/sessions/controller"
	authMiddleware "symposium_backend/internals/middlewares/auth"
)

// SessionRoutes wires the presentation-session endpoints. The controller is
// returned so registration routes can share its slot-reserving service.
func SessionRoutes(app *fiber.App, db *gorm.DB) *sessionController.SessionController {
	ctl := sessionController.NewSessionController(db, nil)

	sessions := app.Group("/api/sessions", authMiddleware.AuthMiddleware(db))

	// Reads are open to every authenticated role.
	sessions.Get("/", ctl.List)
	sessions.Get("/:id", ctl.GetByID)

	coordinatorGate := authMiddleware.OnlyRoles(
		constants.RoleErrorCoordinator("session management"), constants.CoordinatorAndUp...)

	sessions.Post("/", coordinatorGate, ctl.Create)
	sessions.Put("/:id", coordinatorGate, ctl.Update)
	sessions.Patch("/:id/status", coordinatorGate, ctl.ChangeStatus)
	sessions.Delete("/:id", coordinatorGate, ctl.Delete)

	return ctl
}
