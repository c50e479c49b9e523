package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"symposium_backend/internals/constants"
	userController "symposium_backend/internals/features/users/user/controller"
	authMiddleware "symposium_backend/internals/middlewares/auth"
)

func UserRoutes(app *fiber.App, db *gorm.DB) {
	ctl := userController.NewUserController(db, nil)

	users := app.Group("/api/users", authMiddleware.AuthMiddleware(db))

	users.Get("/me", ctl.Me)
	users.Put("/me", ctl.UpdateMe)

	users.Get("/",
		authMiddleware.OnlyRoles(constants.RoleErrorCoordinator("user listing"), constants.CoordinatorAndUp...),
		ctl.ListByRole)
	users.Get("/:id",
		authMiddleware.OnlyRoles(constants.RoleErrorCoordinator("user records"), constants.CoordinatorAndUp...),
		ctl.GetByID)
	users.Patch("/:id/active",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("account activation"), constants.RoleAdmin),
		ctl.SetActive)
}
