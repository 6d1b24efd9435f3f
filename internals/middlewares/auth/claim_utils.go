// internals/middlewares/auth/claim_utils.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"craftedshots_backend/internals/constants"
	authService "craftedshots_backend/internals/features/users/auth/service"
	helper "craftedshots_backend/internals/helpers"
)

const LocDecoded = "decoded"

// extractBearerToken: header ada → ambil field kedua ("Bearer <token>").
// Header kosong berarti belum login.
func extractBearerToken(c *fiber.Ctx) (string, bool) {
	authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if authz == "" {
		return "", false
	}
	fields := strings.Fields(authz)
	if len(fields) < 2 {
		return "", true
	}
	return strings.Trim(fields[1], "\"'"), true
}

// Decoded mengambil claims yang dipasang VerifyJWT.
func Decoded(c *fiber.Ctx) (*authService.Claims, bool) {
	claims, ok := c.Locals(LocDecoded).(*authService.Claims)
	return claims, ok && claims != nil
}

// RequireSelf memastikan email yang diminta = email di token.
// Mengembalikan (false, err) kalau response 403/401 sudah ditulis.
func RequireSelf(c *fiber.Ctx, email string) (bool, error) {
	claims, ok := Decoded(c)
	if !ok {
		return false, helper.JsonError(c, fiber.StatusUnauthorized, constants.MsgUnauthorized)
	}
	if claims.Email != email {
		return false, helper.JsonError(c, fiber.StatusForbidden, constants.MsgForbidden)
	}
	return true, nil
}
