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

	"github.com/muebleria/muebleria-api/internal/application/auth"
	"github.com/muebleria/muebleria-api/internal/application/usecase"
	"github.com/muebleria/muebleria-api/internal/infrastructure/postgres"
	httpRouter "github.com/muebleria/muebleria-api/internal/interfaces/http"
	"github.com/muebleria/muebleria-api/pkg/config"
	"github.com/muebleria/muebleria-api/pkg/logger"
	"github.com/muebleria/muebleria-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	ruleRepo := postgres.NewAccessRuleRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	driverRepo := postgres.NewDriverRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)

	m := metrics.New("muebleria")

	authUC := auth.NewUseCase(userRepo, log, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	userUC := usecase.NewUserUseCase(userRepo, branchRepo, log)
	ruleUC := usecase.NewAccessRuleUseCase(ruleRepo, userRepo, log)
	branchUC := usecase.NewBranchUseCase(branchRepo, log)
	driverUC := usecase.NewDriverUseCase(driverRepo, log)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Mueblería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		AccessRuleUC: ruleUC,
		BranchUC:     branchUC,
		DriverUC:     driverUC,
		CategoryUC:   categoryUC,
		Metrics:      m,
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
