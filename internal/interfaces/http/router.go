package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/accounts-api/internal/application/account"
	"github.com/jhoicas/accounts-api/pkg/token"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AccountUC *account.AccountUseCase
	Tokens    *token.Issuer
	Accounts  AccountSource
	Locations *Locations
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	handler := NewAccountHandler(deps.AccountUC, deps.Locations)

	// Público
	api.Post("/registration", handler.Register)
	api.Post("/login", handler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Tokens, deps.Accounts))
	protected.Get("/me", handler.Me)
	protected.Put("/:id", handler.Edit)
}
