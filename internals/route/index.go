// file: internals/route/index.go
package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	database "craftedshots_backend/internals/databases"
	authService "craftedshots_backend/internals/features/users/auth/service"
	paymentService "craftedshots_backend/internals/features/payment/payments/service"
	"craftedshots_backend/internals/metrics"
	authMiddleware "craftedshots_backend/internals/middlewares/auth"
	routeDetails "craftedshots_backend/internals/route/details"
)

// Deps dibangun sekali di main lalu dioper turun ke semua route.
type Deps struct {
	Collections *database.Collections
	Tokens      *authService.TokenService
	Gateway     paymentService.IntentGateway
	Metrics     *metrics.Metrics
	Log         *zap.Logger
	Ping        func(ctx context.Context) error
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime := time.Now()

	d.Log.Info("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, d, startTime)

	verifyJWT := authMiddleware.VerifyJWT(d.Tokens, d.Log)

	d.Log.Info("[INFO] Setting up AuthRoutes + UserRoutes...")
	routeDetails.AuthUserRoutes(app, d.Collections, d.Tokens, verifyJWT, d.Log)

	d.Log.Info("[INFO] Setting up ClassRoutes...")
	routeDetails.ClassRoutes(app, d.Collections, verifyJWT, d.Log)

	d.Log.Info("[INFO] Setting up PaymentRoutes...")
	var steps paymentService.StepRecorder
	if d.Metrics != nil {
		steps = d.Metrics
	}
	settlement := paymentService.NewSettlementService(
		d.Collections.Payments,
		d.Collections.Classes,
		d.Collections.SelectedClasses,
		steps,
		d.Log,
	)
	routeDetails.PaymentRoutes(app, d.Collections, d.Gateway, settlement, verifyJWT, d.Log)
}
