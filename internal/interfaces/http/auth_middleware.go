package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/accounts-api/internal/application/dto"
	"github.com/jhoicas/accounts-api/internal/domain/entity"
	"github.com/jhoicas/accounts-api/pkg/token"
)

// AccountSource carga cuentas para el middleware de autenticación.
// Lo satisface el repositorio de cuentas.
type AccountSource interface {
	FindByID(id string) (*entity.Account, error)
}

// LocalAccount key de la cuenta autenticada en c.Locals.
const LocalAccount = "account"

// AuthMiddleware valida el Bearer Token, carga la cuenta del store y la deja
// en c.Locals. El token presentado debe coincidir con el almacenado en la
// cuenta: el registro en DB es la fuente de verdad de la credencial.
func AuthMiddleware(tokens *token.Issuer, accounts AccountSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		accountID, _, err := tokens.Parse(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
		}
		acct, err := accounts.FindByID(accountID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if acct == nil || acct.APIToken != tokenString {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
		}
		c.Locals(LocalAccount, acct)
		return c.Next()
	}
}

// GetAccount devuelve la cuenta autenticada del contexto (después del middleware).
func GetAccount(c *fiber.Ctx) *entity.Account {
	v := c.Locals(LocalAccount)
	if v == nil {
		return nil
	}
	acct, _ := v.(*entity.Account)
	return acct
}
