package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/accounts-api/internal/application/account"
	"github.com/jhoicas/accounts-api/internal/infrastructure/hash"
	"github.com/jhoicas/accounts-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/accounts-api/internal/interfaces/http"
	"github.com/jhoicas/accounts-api/pkg/config"
	"github.com/jhoicas/accounts-api/pkg/logger"
	"github.com/jhoicas/accounts-api/pkg/token"
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

	if cfg.Auth.TokenSecret == "" {
		log.Fatal().Msg("TOKEN_SECRET es requerido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	accountRepo := postgres.NewAccountRepository(pool)
	hasher := hash.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := token.NewIssuer(cfg.Auth.TokenSecret, cfg.Auth.TokenIssuer)
	accountUC := account.NewAccountUseCase(accountRepo, hasher, tokens, nil)

	locations, err := httpRouter.NewLocations(cfg.Auth.PublicBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("PUBLIC_BASE_URL inválida")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AccountUC: accountUC,
		Tokens:    tokens,
		Accounts:  accountRepo,
		Locations: locations,
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
