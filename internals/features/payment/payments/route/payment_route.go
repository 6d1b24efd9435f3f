package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	paymentController "craftedshots_backend/internals/features/payment/payments/controller"
	"craftedshots_backend/internals/features/payment/payments/model"
	"craftedshots_backend/internals/features/payment/payments/service"
	"craftedshots_backend/internals/store"
)

func PaymentRoutes(
	app fiber.Router,
	payments store.Collection[model.PaymentModel],
	gateway service.IntentGateway,
	settlement *service.SettlementService,
	verifyJWT fiber.Handler,
	log *zap.Logger,
) {
	ctrl := paymentController.NewPaymentController(payments, gateway, settlement, log)

	app.Post("/create-payment-intent", verifyJWT, ctrl.CreatePaymentIntent)
	app.Post("/payments", verifyJWT, ctrl.CompletePayment)
	app.Get("/payments", verifyJWT, ctrl.GetMyPayments)
	app.Get("/enrolled-classes", verifyJWT, ctrl.GetEnrolledClasses)
}
