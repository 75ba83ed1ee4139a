package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/viagrua/viagrua-api/internal/application/auth"
	"github.com/viagrua/viagrua-api/internal/application/equipo"
	"github.com/viagrua/viagrua-api/internal/application/gastos"
	"github.com/viagrua/viagrua-api/internal/application/suscripciones"
	"github.com/viagrua/viagrua-api/internal/application/traslados"
	"github.com/viagrua/viagrua-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CreateTraslado *traslados.CreateTrasladoUseCase
	TrasladoUC     *traslados.TrasladoUseCase
	GastoUC        *gastos.GastoUseCase
	EquipoUC       *equipo.EquipoUseCase
	CheckoutUC     *suscripciones.CheckoutUseCase
	WebhookUC      *suscripciones.WebhookUseCase
	JWTSecret      string
	Logger         zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/registro", authHandler.Registro)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/unirse", authHandler.Unirse)

	// Pantalla pública de canje: consulta de invitación por código
	api.Get("/invitaciones/:codigo", authHandler.ValidarInvitacion)

	// Webhook de Mercado Pago (público, el procesador no manda JWT)
	suscripcionHandler := NewSuscripcionHandler(deps.CheckoutUC, deps.WebhookUC, deps.Logger)
	api.Post("/webhooks/mercadopago", suscripcionHandler.Webhook)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/perfil", authHandler.Perfil)

	// Traslados: el alta y el borrado son de admin; el resto lo comparte el chofer asignado
	trasladoHandler := NewTrasladoHandler(deps.CreateTraslado, deps.TrasladoUC)
	trasladosGroup := protected.Group("/traslados")
	trasladosGroup.Post("/", RequireRole(entity.RolAdmin), trasladoHandler.Create)
	trasladosGroup.Get("/", trasladoHandler.List)
	trasladosGroup.Get("/resumen", trasladoHandler.Resumen)
	trasladosGroup.Get("/:id", trasladoHandler.Get)
	trasladosGroup.Patch("/:id/estado", trasladoHandler.CambiarEstado)
	trasladosGroup.Patch("/:id/pago", trasladoHandler.CambiarEstadoPago)
	trasladosGroup.Post("/:id/fotos/:tipo", trasladoHandler.SubirFoto)
	trasladosGroup.Get("/:id/comprobante", trasladoHandler.Comprobante)
	trasladosGroup.Delete("/:id", RequireRole(entity.RolAdmin), trasladoHandler.Delete)

	// Gastos (cualquier miembro de la empresa)
	gastoHandler := NewGastoHandler(deps.GastoUC)
	gastosGroup := protected.Group("/gastos")
	gastosGroup.Post("/", gastoHandler.Create)
	gastosGroup.Get("/", gastoHandler.List)
	gastosGroup.Delete("/:id", gastoHandler.Delete)

	// Equipo (solo admin)
	equipoHandler := NewEquipoHandler(deps.EquipoUC)
	equipoGroup := protected.Group("/equipo", RequireRole(entity.RolAdmin))
	equipoGroup.Get("/choferes", equipoHandler.ListChoferes)
	equipoGroup.Post("/invitaciones", equipoHandler.CrearInvitacion)
	equipoGroup.Delete("/choferes/:id", equipoHandler.ExpulsarChofer)

	// Suscripciones (solo admin compra planes)
	suscripcionesGroup := protected.Group("/suscripciones", RequireRole(entity.RolAdmin))
	suscripcionesGroup.Post("/checkout", suscripcionHandler.Checkout)
}
