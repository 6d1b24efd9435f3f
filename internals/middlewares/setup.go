package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"

	"craftedshots_backend/internals/configs"
	"craftedshots_backend/internals/metrics"
	"craftedshots_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global. Urutan penting: recover
// paling luar, lalu request id supaya log dan panic membawa reqid.
// Compress dan etag dipasang di sini juga agar tetap di bawah recover.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config, m *metrics.Metrics, log *zap.Logger) {
	app.Use(RecoveryMiddleware(log))
	app.Use(logger.RequestID())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(logger.LoggerMiddleware(log))
	if m != nil {
		app.Use(m.Middleware())
	}
	app.Use(CorsMiddleware(cfg.CORSOrigins))
	app.Use(RequestTimeout(cfg.RequestTimeout))
}
