package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"craftedshots_backend/internals/constants"
)

func BaseRoutes(app *fiber.App, d Deps, startTime time.Time) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(constants.MsgServerRunning)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if d.Ping != nil {
			if err := d.Ping(c.UserContext()); err != nil {
				dbStatus = "Database connection error"
				serverStatus = "DOWN"
				httpStatus = fiber.StatusServiceUnavailable
			}
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		})
	})

	if d.Metrics != nil {
		app.Get("/metrics", d.Metrics.Handler())
	}
}
