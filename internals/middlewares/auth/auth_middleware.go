// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"craftedshots_backend/internals/constants"
	authService "craftedshots_backend/internals/features/users/auth/service"
	helper "craftedshots_backend/internals/helpers"
)

// Verifier diimplementasikan oleh TokenService.
type Verifier interface {
	Verify(raw string) (*authService.Claims, error)
}

// VerifyJWT: unauthenticated → authenticated. Tidak ada cek role di sini.
func VerifyJWT(tokens Verifier, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := extractBearerToken(c)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, constants.MsgUnauthorized)
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			log.Debug("token rejected", zap.String("path", c.Path()), zap.Error(err))
			return helper.JsonError(c, fiber.StatusUnauthorized, constants.MsgUnauthorized)
		}

		c.Locals(LocDecoded, claims)
		return c.Next()
	}
}
