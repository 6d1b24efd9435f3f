package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	userController "craftedshots_backend/internals/features/users/user/controller"
	"craftedshots_backend/internals/features/users/user/model"
	"craftedshots_backend/internals/store"
)

func UserRoutes(app fiber.Router, users store.Collection[model.UserModel], verifyJWT fiber.Handler, log *zap.Logger) {
	ctrl := userController.NewUserController(users, log)

	app.Get("/users", ctrl.GetUsers)
	app.Post("/users", ctrl.CreateUser)

	// 🔐 cek role: butuh token, tapi email diambil dari path
	app.Get("/users/admin/:email", verifyJWT, ctrl.IsAdmin)
	app.Get("/users/instructor/:email", verifyJWT, ctrl.IsInstructor)
	app.Get("/users/student/:email", verifyJWT, ctrl.IsStudent)

	// 🔓 ubah role by id (tanpa middleware)
	app.Patch("/users/admin/:id", ctrl.MakeAdmin)
	app.Patch("/users/instructor/:id", ctrl.MakeInstructor)
	app.Patch("/users/student/:id", ctrl.MakeStudent)
}
