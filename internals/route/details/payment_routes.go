package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	database "craftedshots_backend/internals/databases"
	paymentRoute "craftedshots_backend/internals/features/payment/payments/route"
	paymentService "craftedshots_backend/internals/features/payment/payments/service"
)

func PaymentRoutes(
	app *fiber.App,
	cols *database.Collections,
	gateway paymentService.IntentGateway,
	settlement *paymentService.SettlementService,
	verifyJWT fiber.Handler,
	log *zap.Logger,
) {
	paymentRoute.PaymentRoutes(app, cols.Payments, gateway, settlement, verifyJWT, log)
}
