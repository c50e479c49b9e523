package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"symposium_backend/internals/constants"
	registrationController "symposium_backend/internals/features/symposium/registrations/controller"
	sessionService "symposium_backend/internals/features/symposium/sessions/service"
	authMiddleware "symposium_backend/internals/middlewares/auth"
)

// RegistrationRoutes wires the registration workflow. It shares the session
// service so slot reservations hit the same per-session locks as session
// writes.
func RegistrationRoutes(app *fiber.App, db *gorm.DB, sessions *sessionService.SessionService) {
	ctl := registrationController.NewRegistrationController(db, sessions, nil)

	regs := app.Group("/api/registrations", authMiddleware.AuthMiddleware(db))

	coordinatorGate := authMiddleware.OnlyRoles(
		constants.RoleErrorCoordinator("registration management"), constants.CoordinatorAndUp...)

	regs.Post("/",
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("presentation registration"), constants.RoleStudent),
		ctl.Create)
	regs.Get("/mine", ctl.Mine)

	regs.Get("/",
		authMiddleware.OnlyRoles(constants.RoleErrorCoordinator("the registration list"), constants.EvaluatorAndUp...),
		ctl.List)

	// Ownership for reads/edits/cancel is checked in the controller: students
	// reach their own record, coordinators and admins reach any.
	regs.Get("/:id", ctl.GetByID)
	regs.Put("/:id", ctl.Update)
	regs.Patch("/:id/cancel", ctl.Cancel)
	regs.Patch("/:id/file", ctl.UpdateFilePath)

	regs.Patch("/:id/approve", coordinatorGate, ctl.Approve)
	regs.Patch("/:id/reject", coordinatorGate, ctl.Reject)
	regs.Patch("/:id/session", coordinatorGate, ctl.AssignToSession)
	regs.Delete("/:id/session", coordinatorGate, ctl.UnassignFromSession)
	regs.Patch("/:id/board", coordinatorGate, ctl.UpdateBoard)
}
