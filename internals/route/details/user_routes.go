package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	database "craftedshots_backend/internals/databases"
	authRoute "craftedshots_backend/internals/features/users/auth/route"
	authService "craftedshots_backend/internals/features/users/auth/service"
	userRoute "craftedshots_backend/internals/features/users/user/route"
)

func AuthUserRoutes(app *fiber.App, cols *database.Collections, tokens *authService.TokenService, verifyJWT fiber.Handler, log *zap.Logger) {
	authRoute.AuthRoutes(app, tokens, log)
	userRoute.UserRoutes(app, cols.Users, verifyJWT, log)
}
