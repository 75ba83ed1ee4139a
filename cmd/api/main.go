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
	"github.com/viagrua/viagrua-api/internal/application/auth"
	"github.com/viagrua/viagrua-api/internal/application/equipo"
	"github.com/viagrua/viagrua-api/internal/application/gastos"
	"github.com/viagrua/viagrua-api/internal/application/suscripciones"
	"github.com/viagrua/viagrua-api/internal/application/traslados"
	inframp "github.com/viagrua/viagrua-api/internal/infrastructure/mercadopago"
	infrapdf "github.com/viagrua/viagrua-api/internal/infrastructure/pdf"
	"github.com/viagrua/viagrua-api/internal/infrastructure/postgres"
	infrastorage "github.com/viagrua/viagrua-api/internal/infrastructure/storage"
	httpRouter "github.com/viagrua/viagrua-api/internal/interfaces/http"
	"github.com/viagrua/viagrua-api/pkg/config"
	"github.com/viagrua/viagrua-api/pkg/logger"
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

	perfilRepo := postgres.NewPerfilRepository(pool)
	empresaRepo := postgres.NewEmpresaRepository(pool)
	trasladoRepo := postgres.NewTrasladoRepository(pool)
	gastoRepo := postgres.NewGastoRepository(pool)
	invitacionRepo := postgres.NewInvitacionRepository(pool)
	pagoRepo := postgres.NewPagoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	fotoStorage, err := infrastorage.NewS3Storage(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("storage de fotos")
	}

	mpGateway, err := inframp.NewGateway(cfg.MercadoPago)
	if err != nil {
		log.Fatal().Err(err).Msg("gateway de Mercado Pago")
	}

	comprobantes := infrapdf.NewMarotoComprobanteGenerator()

	authUC := auth.NewAuthUseCase(perfilRepo, empresaRepo, invitacionRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	createTrasladoUC := traslados.NewCreateTrasladoUseCase(txRunner, perfilRepo)
	trasladoUC := traslados.NewTrasladoUseCase(trasladoRepo, perfilRepo, empresaRepo, fotoStorage, comprobantes)
	gastoUC := gastos.NewGastoUseCase(gastoRepo)
	equipoUC := equipo.NewEquipoUseCase(perfilRepo, invitacionRepo, txRunner)
	checkoutUC := suscripciones.NewCheckoutUseCase(perfilRepo, mpGateway, cfg.MercadoPago.CurrencyID)
	webhookUC := suscripciones.NewWebhookUseCase(perfilRepo, pagoRepo, mpGateway)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024, // fotos de hasta 10 MB
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ViaGrua API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CreateTraslado: createTrasladoUC,
		TrasladoUC:     trasladoUC,
		GastoUC:        gastoUC,
		EquipoUC:       equipoUC,
		CheckoutUC:     checkoutUC,
		WebhookUC:      webhookUC,
		JWTSecret:      cfg.JWT.Secret,
		Logger:         log.Zerolog(),
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
