package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	classController "craftedshots_backend/internals/features/classes/listings/controller"
	"craftedshots_backend/internals/features/classes/listings/model"
	"craftedshots_backend/internals/store"
)

func ClassRoutes(app fiber.Router, classes store.Collection[model.ClassModel], verifyJWT fiber.Handler, log *zap.Logger) {
	ctrl := classController.NewClassController(classes, log)

	app.Post("/alldata", verifyJWT, ctrl.CreateClass)
	app.Get("/alldata", ctrl.GetClasses)
	app.Get("/alldata/:email", ctrl.GetClassesByInstructor)

	app.Patch("/updateclass/:id", ctrl.UpdateClass)

	// 🔐 keputusan admin
	app.Patch("/approvedclasses/:id", verifyJWT, ctrl.ApproveClass)
	app.Patch("/denyclass/:id", verifyJWT, ctrl.DenyClass)
}
