package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Issuer diimplementasikan oleh service.TokenService.
type Issuer interface {
	Issue(payload map[string]any) (string, error)
}

type AuthController struct {
	Tokens Issuer
	Log    *zap.Logger
}

func NewAuthController(tokens Issuer, log *zap.Logger) *AuthController {
	return &AuthController{Tokens: tokens, Log: log}
}

// POST /jwt: body berisi identitas user (minimal email), dibalas {token}.
func (ac *AuthController) IssueToken(c *fiber.Ctx) error {
	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	token, err := ac.Tokens.Issue(payload)
	if err != nil {
		ac.Log.Error("issue token failed", zap.Error(err))
		return err
	}

	email, _ := payload["email"].(string)
	ac.Log.Info("token issued", zap.String("email", email))
	return c.JSON(fiber.Map{"token": token})
}
