package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/catalogo-api/internal/application/auth"
	"github.com/tu-usuario/catalogo-api/internal/application/catalog"
	"github.com/tu-usuario/catalogo-api/internal/application/usecase"
	"github.com/tu-usuario/catalogo-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/catalogo-api/internal/infrastructure/storage"
	httpRouter "github.com/tu-usuario/catalogo-api/internal/interfaces/http"
	"github.com/tu-usuario/catalogo-api/pkg/config"
	"github.com/tu-usuario/catalogo-api/pkg/logger"
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

	blobs, err := storage.NewLocalStorage(cfg.Storage.Dir, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar storage de imágenes")
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	validator := catalog.NewTreeValidator(categoryRepo)
	categoryCommands := catalog.NewCommandService(categoryRepo, validator, txRunner, blobs, log)
	categoryQueries := catalog.NewQueryService(categoryRepo, productRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: 4 * 1024 * 1024, // margen sobre el máximo de imagen
	})
	app.Use(recover.New())
	app.Static(cfg.Storage.BaseURL, cfg.Storage.Dir)

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryCommands: categoryCommands,
		CategoryQueries:  categoryQueries,
		OrderUC:          orderUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
		Log:              log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("API escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
