package route

import (
	"github.com/gofiber/fiber/v2"

	reviewController "craftedshots_backend/internals/features/reviews/controller"
	"craftedshots_backend/internals/features/reviews/model"
	"craftedshots_backend/internals/store"
)

func ReviewRoutes(app fiber.Router, reviews store.Collection[model.ReviewModel]) {
	ctrl := reviewController.NewReviewController(reviews)

	app.Get("/reviews", ctrl.GetReviews)
}
