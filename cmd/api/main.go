// @title           Album Inventory API
// @version         1.0
// @description     Ledger de inventario de álbumes y merch: movimientos idempotentes, traslados y lotes.
// @BasePath        /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token JWT>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	_ "github.com/jhoicas/album-inventory/docs"
	"github.com/jhoicas/album-inventory/internal/application/inventory"
	"github.com/jhoicas/album-inventory/internal/domain/repository"
	"github.com/jhoicas/album-inventory/internal/infrastructure/cache"
	"github.com/jhoicas/album-inventory/internal/infrastructure/memory"
	"github.com/jhoicas/album-inventory/internal/infrastructure/metrics"
	"github.com/jhoicas/album-inventory/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/album-inventory/internal/interfaces/http"
	"github.com/jhoicas/album-inventory/pkg/config"
	"github.com/jhoicas/album-inventory/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		Name:  cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		txRunner inventory.TxRunner
		scopes   repository.ScopeRepository
		periods  repository.PeriodRepository
	)
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		store := memory.NewStore()
		txRunner, scopes, periods = store, store, store
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		if cfg.Store.Migrate {
			if err := postgres.Migrate(ctx, postgres.ResolveDSN(cfg.DB)); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
			log.Info().Msg("migraciones aplicadas")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		txRunner = postgres.NewTxRunner(pool)
		scopes = postgres.NewScopeRepository(pool)
		periods = postgres.NewPeriodRepository(pool)
	}

	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis no responde; la caché de alcances degradará a la fuente")
		}
		scopes = cache.NewScopeCache(rdb, scopes, time.Duration(cfg.Redis.ScopeTTLSeconds)*time.Second, log.Zerolog())
	}

	var ledgerMetrics inventory.Metrics
	registry := prometheus.NewRegistry()
	if cfg.Metrics.Enabled {
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		ledgerMetrics = metrics.NewPrometheus(registry)
	}

	barcodes := inventory.NewBarcodeResolver(txRunner)
	ledger := inventory.NewApplyMovementUseCase(txRunner, barcodes, ledgerMetrics, log.Zerolog())
	transfers := inventory.NewTransferUseCase(ledger, barcodes, ledgerMetrics, log.Zerolog())
	bulk := inventory.NewBulkTransferUseCase(transfers, ledgerMetrics, log.Zerolog(), cfg.Bulk.Concurrency, cfg.Bulk.MaxItems)
	queries := inventory.NewStockQueryUseCase(txRunner)
	periodUseCase := inventory.NewPeriodUseCase(periods, log.Zerolog())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs (regenerar con `swag init -g cmd/api/main.go`)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Album Inventory API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("documento swagger no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.Store.Driver})
	})
	if cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Ledger:    ledger,
		Transfers: transfers,
		Bulk:      bulk,
		Queries:   queries,
		Barcodes:  barcodes,
		Periods:   periodUseCase,
		Scopes:    scopes,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
