package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"craftedshots_backend/internals/constants"
	"craftedshots_backend/internals/features/classes/listings/dto"
	"craftedshots_backend/internals/features/classes/listings/model"
	helper "craftedshots_backend/internals/helpers"
	"craftedshots_backend/internals/store"
)

type ClassController struct {
	Classes store.Collection[model.ClassModel]
	Log     *zap.Logger
}

func NewClassController(classes store.Collection[model.ClassModel], log *zap.Logger) *ClassController {
	return &ClassController{Classes: classes, Log: log}
}

// POST /alldata
func (cc *ClassController) CreateClass(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	res, err := cc.Classes.InsertOne(c.UserContext(), req.ToModel())
	if err != nil {
		return err
	}
	cc.Log.Info("class created", zap.Any("id", res.InsertedID), zap.String("instructor", req.InstructorEmail))
	return c.JSON(res)
}

// GET /alldata
func (cc *ClassController) GetClasses(c *fiber.Ctx) error {
	classes, err := cc.Classes.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonList(c, classes)
}

// GET /alldata/:email: listing milik satu instructor.
func (cc *ClassController) GetClassesByInstructor(c *fiber.Ctx) error {
	classes, err := cc.Classes.ListByFilter(c.UserContext(), store.Filter{"instructor_email": c.Params("email")})
	if err != nil {
		return err
	}
	return helper.JsonList(c, classes)
}

// PATCH /updateclass/:id
func (cc *ClassController) UpdateClass(c *fiber.Ctx) error {
	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return cc.patch(c, store.Patch{Set: req.ToSet()})
}

// PATCH /approvedclasses/:id
func (cc *ClassController) ApproveClass(c *fiber.Ctx) error {
	return cc.patch(c, store.Patch{Set: map[string]any{"status": constants.ClassStatusApproved}})
}

// PATCH /denyclass/:id
func (cc *ClassController) DenyClass(c *fiber.Ctx) error {
	var req dto.DenyClassRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}
	set := map[string]any{"status": constants.ClassStatusDenied}
	if req.Feedback != "" {
		feedback := req.Feedback
		set["feedback"] = &feedback
	}
	return cc.patch(c, store.Patch{Set: set})
}

func (cc *ClassController) patch(c *fiber.Ctx, p store.Patch) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fmt.Errorf("invalid class id: %w", err)
	}
	res, err := cc.Classes.UpdateOne(c.UserContext(), store.Filter{"id": id}, p)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
