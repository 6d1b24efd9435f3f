package controller

import (
	"github.com/gofiber/fiber/v2"

	"craftedshots_backend/internals/features/reviews/model"
	helper "craftedshots_backend/internals/helpers"
	"craftedshots_backend/internals/store"
)

type ReviewController struct {
	Reviews store.Collection[model.ReviewModel]
}

func NewReviewController(reviews store.Collection[model.ReviewModel]) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

// GET /reviews
func (rc *ReviewController) GetReviews(c *fiber.Ctx) error {
	reviews, err := rc.Reviews.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonList(c, reviews)
}
