package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"craftedshots_backend/internals/configs"
	database "craftedshots_backend/internals/databases"
	paymentService "craftedshots_backend/internals/features/payment/payments/service"
	authService "craftedshots_backend/internals/features/users/auth/service"
	"craftedshots_backend/internals/metrics"
	middlewares "craftedshots_backend/internals/middlewares"
	routes "craftedshots_backend/internals/route"
	"craftedshots_backend/internals/seeds"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	logger := configs.NewLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()

	// 🔌 store: postgres (GORM) atau memory
	cols, db, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatal("❌ store init failed", zap.Error(err))
	}

	tokens, err := authService.NewTokenService(cfg.AccessTokenSecret, cfg.AccessTokenTTL)
	if err != nil {
		logger.Fatal("❌ token service", zap.Error(err))
	}

	// ✅ MIDTRANS
	gateway := paymentService.NewMidtransGateway(cfg.MidtransServerKey, cfg.MidtransUseProd)
	if cfg.MidtransServerKey == "" {
		logger.Warn("⚠️ MIDTRANS_SERVER_KEY kosong, /create-payment-intent akan gagal")
	}

	m := metrics.New()

	app := fiber.New(fiber.Config{
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	// ⚙️ middleware dasar + performa (recover paling luar)
	middlewares.SetupMiddlewares(app, cfg, m, logger)

	var ping func(ctx context.Context) error
	if db != nil {
		ping = func(ctx context.Context) error { return database.Ping(ctx, db) }
	}

	// ✅ Routes
	routes.SetupRoutes(app, routes.Deps{
		Collections: cols,
		Tokens:      tokens,
		Gateway:     gateway,
		Metrics:     m,
		Log:         logger,
		Ping:        ping,
	})

	seeds.RunAllSeeds(context.Background(), cols, cfg.SeedReviewsFile, logger)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		logger.Info("✅ Listening", zap.String("port", cfg.Port), zap.String("store", cfg.StoreDriver))
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if db != nil {
		if err := database.Close(db); err != nil {
			logger.Warn("close db", zap.Error(err))
		}
	}
	logger.Info("👋 server stopped")
}

func openStore(cfg *configs.Config, logger *zap.Logger) (*database.Collections, *gorm.DB, error) {
	if cfg.StoreDriver == configs.StoreDriverMemory {
		logger.Info("🧪 memakai memory store")
		cols, err := database.NewMemoryCollections()
		return cols, nil, err
	}

	if cfg.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := database.Migrate(ctx, cfg.DSN(), logger); err != nil {
			return nil, nil, err
		}
	}

	db, err := database.Connect(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	cols, err := database.NewGormCollections(db)
	if err != nil {
		return nil, nil, err
	}
	return cols, db, nil
}
