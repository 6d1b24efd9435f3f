// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	controller "craftedshots_backend/internals/features/users/auth/controller"
)

func AuthRoutes(app fiber.Router, tokens controller.Issuer, log *zap.Logger) {
	authController := controller.NewAuthController(tokens, log)

	app.Post("/jwt", authController.IssueToken)
}
