package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/pkg/jwt"
)

// LocalUserID key del subject autenticado en c.Locals.
const LocalUserID = "user_id"

// unauthorized respuesta única del guard: header ausente, formato inválido,
// firma inválida, token expirado o malformado responden exactamente igual,
// sin filtrar cuál fue la falla.
func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
}

// AuthMiddleware exige `Authorization: Bearer <token>`, lo valida contra el
// servicio de tokens y deja el ID del subject en c.Locals para el handler.
func AuthMiddleware(tokens *jwt.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c)
		}
		userID, err := tokens.Validate(tokenString)
		if err != nil {
			return unauthorized(c)
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUserID devuelve el ID del subject autenticado (después del guard).
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}
