package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/estoque-pro/estoque-api/internal/application/auth"
	"github.com/estoque-pro/estoque-api/internal/application/purchase"
	"github.com/estoque-pro/estoque-api/internal/application/report"
	"github.com/estoque-pro/estoque-api/internal/application/stock"
	"github.com/estoque-pro/estoque-api/internal/application/usecase"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	infracsv "github.com/estoque-pro/estoque-api/internal/infrastructure/csv"
	infraexcel "github.com/estoque-pro/estoque-api/internal/infrastructure/excel"
	"github.com/estoque-pro/estoque-api/internal/infrastructure/memory"
	infrapdf "github.com/estoque-pro/estoque-api/internal/infrastructure/pdf"
	"github.com/estoque-pro/estoque-api/internal/infrastructure/postgres"
	infraredis "github.com/estoque-pro/estoque-api/internal/infrastructure/redis"
	"github.com/estoque-pro/estoque-api/internal/infrastructure/scheduler"
	httpRouter "github.com/estoque-pro/estoque-api/internal/interfaces/http"
	"github.com/estoque-pro/estoque-api/pkg/config"
	"github.com/estoque-pro/estoque-api/pkg/logger"
)

func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	if err := runMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("aplicar migrações")
	}
	log.Info().Msg("migrações aplicadas")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Blacklist de tokens: Redis quando configurado, senão em memória.
	var blacklist auth.TokenBlacklist
	if cfg.Redis.URL != "" {
		redisBlacklist, err := infraredis.NewBlacklist(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão com Redis")
		}
		defer func() { _ = redisBlacklist.Close() }()
		blacklist = redisBlacklist
		log.Info().Msg("blacklist de tokens no Redis")
	} else {
		memBlacklist := memory.NewBlacklist()
		defer func() { _ = memBlacklist.Close() }()
		blacklist = memBlacklist
		log.Info().Msg("blacklist de tokens em memória")
	}

	productUC := usecase.NewProductUseCase(txRunner, productRepo, supplierRepo, categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, categoryRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	purchaseUC := purchase.NewUseCase(txRunner, orderRepo, productRepo, supplierRepo)
	stockUC := stock.NewUseCase(movementRepo, productRepo)
	reportUC := report.NewUseCase(productRepo, supplierRepo, categoryRepo, orderRepo, reportRepo, map[string]report.Renderer{
		entity.ReportFormatPDF:   infrapdf.NewMarotoRenderer(),
		entity.ReportFormatExcel: infraexcel.NewExcelizeRenderer(),
		entity.ReportFormatCSV:   infracsv.NewRenderer(),
	})
	authUC := auth.NewUseCase(userRepo, blacklist, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	// Varredura diária de sugestões de compra (09:00 por padrão)
	sched := scheduler.New(purchaseUC, log)
	if err := sched.Start(cfg.Scheduler.SuggestCron); err != nil {
		log.Fatal().Err(err).Msg("iniciar agendador")
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		SupplierUC: supplierUC,
		CategoryUC: categoryUC,
		UserUC:     userUC,
		PurchaseUC: purchaseUC,
		StockUC:    stockUC,
		ReportUC:   reportUC,
		AuthUC:     authUC,
		Blacklist:  blacklist,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
