package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

var startTime = time.Now()

// BaseRoutes serves the unauthenticated service endpoints.
func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "symposium_backend",
			"status":  "running",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).Round(time.Second).String(),
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
}
