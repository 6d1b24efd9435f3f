package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"craftedshots_backend/internals/constants"
	"craftedshots_backend/internals/features/users/user/dto"
	"craftedshots_backend/internals/features/users/user/model"
	helper "craftedshots_backend/internals/helpers"
	"craftedshots_backend/internals/store"
)

type UserController struct {
	Users store.Collection[model.UserModel]
	Log   *zap.Logger
}

func NewUserController(users store.Collection[model.UserModel], log *zap.Logger) *UserController {
	return &UserController{Users: users, Log: log}
}

// GET /users
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	users, err := uc.Users.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonList(c, users)
}

// POST /users: idempotent by email.
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input format")
	}
	req := dto.FromBody(body)
	req.Normalize()

	ctx := c.UserContext()
	_, err := uc.Users.FindOne(ctx, store.Filter{"email": req.Email})
	switch {
	case err == nil:
		return helper.JsonMessage(c, constants.MsgUserAlreadyExists)
	case !errors.Is(err, store.ErrNotFound):
		return err
	}

	res, err := uc.Users.InsertOne(ctx, req.ToModel())
	if err != nil {
		return err
	}
	uc.Log.Info("user created", zap.String("email", req.Email), zap.Any("id", res.InsertedID))
	return c.JSON(res)
}

/* ===============================
   Role check (trust :email)
=================================*/

// GET /users/admin/:email
func (uc *UserController) IsAdmin(c *fiber.Ctx) error {
	return uc.roleFlag(c, constants.RoleAdmin, (*model.UserModel).IsAdmin)
}

// GET /users/instructor/:email
func (uc *UserController) IsInstructor(c *fiber.Ctx) error {
	return uc.roleFlag(c, constants.RoleInstructor, (*model.UserModel).IsInstructor)
}

// GET /users/student/:email
func (uc *UserController) IsStudent(c *fiber.Ctx) error {
	return uc.roleFlag(c, constants.RoleStudent, (*model.UserModel).IsStudent)
}

// roleFlag membaca role dari :email, bukan dari identitas token.
// User yang tidak ada → error biasa (500 dari handler default).
func (uc *UserController) roleFlag(c *fiber.Ctx, key string, check func(*model.UserModel) bool) error {
	email := c.Params("email")
	user, err := uc.Users.FindOne(c.UserContext(), store.Filter{"email": email})
	if err != nil {
		return fmt.Errorf("role check %s for %q: %w", key, email, err)
	}
	return helper.JsonFlag(c, key, check(user))
}

/* ===============================
   Role elevation (by :id, tanpa auth)
=================================*/

// PATCH /users/admin/:id
func (uc *UserController) MakeAdmin(c *fiber.Ctx) error {
	return uc.setRole(c, constants.RoleAdmin)
}

// PATCH /users/instructor/:id
func (uc *UserController) MakeInstructor(c *fiber.Ctx) error {
	return uc.setRole(c, constants.RoleInstructor)
}

// PATCH /users/student/:id
func (uc *UserController) MakeStudent(c *fiber.Ctx) error {
	return uc.setRole(c, constants.RoleStudent)
}

func (uc *UserController) setRole(c *fiber.Ctx, role string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}
	res, err := uc.Users.UpdateOne(c.UserContext(),
		store.Filter{"id": id},
		store.Patch{Set: map[string]any{"role": role}},
	)
	if err != nil {
		return err
	}
	uc.Log.Info("user role changed", zap.String("id", id.String()), zap.String("role", role),
		zap.Int64("matched", res.MatchedCount))
	return c.JSON(res)
}
