package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	database "craftedshots_backend/internals/databases"
	classRoute "craftedshots_backend/internals/features/classes/listings/route"
	selectedRoute "craftedshots_backend/internals/features/classes/selections/route"
	reviewRoute "craftedshots_backend/internals/features/reviews/route"
)

func ClassRoutes(app *fiber.App, cols *database.Collections, verifyJWT fiber.Handler, log *zap.Logger) {
	classRoute.ClassRoutes(app, cols.Classes, verifyJWT, log)
	selectedRoute.SelectedClassRoutes(app, cols.SelectedClasses, verifyJWT, log)
	reviewRoute.ReviewRoutes(app, cols.Reviews)
}
