// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error shape (401 / 403)
=================================*/

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// JsonError: satu-satunya bentuk error terstruktur API ini.
// Error lain dibiarkan jatuh ke error handler default Fiber.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(ErrorResponse{Error: true, Message: message})
}

/* ===============================
   Success shapes (tanpa envelope)
=================================*/

// JsonMessage: {"message": "..."}
func JsonMessage(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": message})
}

// JsonFlag: {"<key>": true|false}, dipakai endpoint cek role.
func JsonFlag(c *fiber.Ctx, key string, value bool) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{key: value})
}

// JsonList: slice nil tetap dikirim sebagai [].
func JsonList[T any](c *fiber.Ctx, items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.Status(fiber.StatusOK).JSON(items)
}
