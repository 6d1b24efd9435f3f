package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"craftedshots_backend/internals/constants"
	"craftedshots_backend/internals/features/payment/payments/dto"
	"craftedshots_backend/internals/features/payment/payments/model"
	"craftedshots_backend/internals/features/payment/payments/service"
	helper "craftedshots_backend/internals/helpers"
	authMiddleware "craftedshots_backend/internals/middlewares/auth"
	"craftedshots_backend/internals/store"
)

type PaymentController struct {
	Payments   store.Collection[model.PaymentModel]
	Gateway    service.IntentGateway
	Settlement *service.SettlementService
	Log        *zap.Logger
	now        func() time.Time
}

func NewPaymentController(
	payments store.Collection[model.PaymentModel],
	gateway service.IntentGateway,
	settlement *service.SettlementService,
	log *zap.Logger,
) *PaymentController {
	return &PaymentController{Payments: payments, Gateway: gateway, Settlement: settlement, Log: log, now: time.Now}
}

var newestFirst = store.FindOptions{SortBy: "date", SortDir: store.Descending}

// POST /create-payment-intent: langkah "begin payment".
func (pc *PaymentController) CreatePaymentIntent(c *fiber.Ctx) error {
	var req dto.CreatePaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	email := ""
	if claims, ok := authMiddleware.Decoded(c); ok {
		email = claims.Email
	}
	amount := service.AmountFromFee(req.CourseFee)
	orderID := fmt.Sprintf("CLASS-%s", uuid.NewString())

	intent, err := pc.Gateway.CreateIntent(c.UserContext(), service.IntentRequest{
		OrderID: orderID,
		Amount:  amount,
		Email:   email,
	})
	if err != nil {
		pc.Log.Error("create payment intent failed", zap.String("order_id", orderID), zap.Int64("amount", amount), zap.Error(err))
		return err
	}

	pc.Log.Info("payment intent created", zap.String("order_id", orderID), zap.Int64("amount", amount))
	return c.JSON(dto.CreatePaymentIntentResponse{ClientSecret: intent.ClientSecret})
}

// POST /payments: settlement tiga langkah.
func (pc *PaymentController) CompletePayment(c *fiber.Ctx) error {
	var req dto.CompletePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	claims, ok := authMiddleware.Decoded(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, constants.MsgUnauthorized)
	}

	res, err := pc.Settlement.Settle(c.UserContext(), req.ToModel(claims.Email, pc.now()))
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// GET /payments: history milik pemilik token.
func (pc *PaymentController) GetMyPayments(c *fiber.Ctx) error {
	claims, ok := authMiddleware.Decoded(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, constants.MsgUnauthorized)
	}
	items, err := pc.Payments.ListByFilter(c.UserContext(), store.Filter{"email": claims.Email}, newestFirst)
	if err != nil {
		return err
	}
	return helper.JsonList(c, items)
}

// GET /enrolled-classes?email=: memakai email dari query, bukan dari token.
func (pc *PaymentController) GetEnrolledClasses(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		return helper.JsonList[model.PaymentModel](c, nil)
	}
	items, err := pc.Payments.ListByFilter(c.UserContext(), store.Filter{"email": email}, newestFirst)
	if err != nil {
		return err
	}
	return helper.JsonList(c, items)
}
