package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	selectedController "craftedshots_backend/internals/features/classes/selections/controller"
	"craftedshots_backend/internals/features/classes/selections/model"
	"craftedshots_backend/internals/store"
)

func SelectedClassRoutes(app fiber.Router, selected store.Collection[model.SelectedClassModel], verifyJWT fiber.Handler, log *zap.Logger) {
	ctrl := selectedController.NewSelectedClassController(selected, log)

	app.Post("/selectedclass", ctrl.SelectClass)
	app.Get("/selectedmyclass", verifyJWT, ctrl.GetMySelectedClasses)
	app.Delete("/selectedmyclass/:id", verifyJWT, ctrl.DeleteSelectedClass)
}
