package controller

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"craftedshots_backend/internals/features/classes/selections/model"
	helper "craftedshots_backend/internals/helpers"
	authMiddleware "craftedshots_backend/internals/middlewares/auth"
	"craftedshots_backend/internals/store"
)

type SelectedClassController struct {
	Selected store.Collection[model.SelectedClassModel]
	Log      *zap.Logger
}

func NewSelectedClassController(selected store.Collection[model.SelectedClassModel], log *zap.Logger) *SelectedClassController {
	return &SelectedClassController{Selected: selected, Log: log}
}

// POST /selectedclass
func (sc *SelectedClassController) SelectClass(c *fiber.Ctx) error {
	var doc model.SelectedClassModel
	if err := c.BodyParser(&doc); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	// id selalu dibuat server
	doc.ID = uuid.Nil

	res, err := sc.Selected.InsertOne(c.UserContext(), &doc)
	if err != nil {
		return err
	}
	sc.Log.Info("class selected", zap.String("email", doc.Email), zap.Any("id", res.InsertedID))
	return c.JSON(res)
}

// GET /selectedmyclass?email=: hanya milik pemilik token.
func (sc *SelectedClassController) GetMySelectedClasses(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		return helper.JsonList[model.SelectedClassModel](c, nil)
	}
	if ok, err := authMiddleware.RequireSelf(c, email); !ok {
		return err
	}

	items, err := sc.Selected.ListByFilter(c.UserContext(), store.Filter{"email": email})
	if err != nil {
		return err
	}
	return helper.JsonList(c, items)
}

// DELETE /selectedmyclass/:id
func (sc *SelectedClassController) DeleteSelectedClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fmt.Errorf("invalid selected class id: %w", err)
	}
	res, err := sc.Selected.DeleteOne(c.UserContext(), store.Filter{"id": id})
	if err != nil {
		return err
	}
	return c.JSON(res)
}
