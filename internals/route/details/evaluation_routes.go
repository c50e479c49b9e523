package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"symposium_backend/internals/constants"
	evaluationController "symposium_backend/internals/features/symposium/evaluations/controller"
	authMiddleware "symposium_backend/internals/middlewares/auth"
)

// EvaluationRoutes wires scoring. The controller is returned so award routes
// can read averages through the same service.
func EvaluationRoutes(app *fiber.App, db *gorm.DB) *evaluationController.EvaluationController {
	ctl := evaluationController.NewEvaluationController(db, nil)

	evals := app.Group("/api/evaluations", authMiddleware.AuthMiddleware(db))

	coordinatorGate := authMiddleware.OnlyRoles(
		constants.RoleErrorCoordinator("evaluator assignment"), constants.CoordinatorAndUp...)
	evaluatorGate := authMiddleware.OnlyRoles(
		constants.RoleErrorEvaluator("evaluations"), constants.EvaluatorAndUp...)

	evals.Post("/assign", coordinatorGate, ctl.Assign)
	evals.Delete("/assign", coordinatorGate, ctl.Remove)

	evals.Get("/mine", evaluatorGate, ctl.Mine)
	evals.Put("/:id", evaluatorGate, ctl.SaveDraft)
	evals.Post("/:id/submit", evaluatorGate, ctl.Submit)

	evals.Get("/registration/:registrationId", evaluatorGate, ctl.ListByRegistration)
	evals.Get("/registration/:registrationId/average", evaluatorGate, ctl.Average)

	return ctl
}
