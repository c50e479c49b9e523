package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "symposium_backend/internals/features/users/auth/controller"
	"symposium_backend/internals/middlewares"
)

// AuthRoutes wires the public authentication endpoints. Login carries its own
// tighter rate limit on top of the global one.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db, nil)

	auth := app.Group("/api/auth")
	auth.Post("/register", ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}
