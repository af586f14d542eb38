package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/album-inventory/internal/application/dto"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
	"github.com/jhoicas/album-inventory/internal/domain/repository"
)

// ScopeMiddleware carga el alcance de ubicaciones de los roles restringidos y lo deja en c.Locals.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalUserID y LocalRole).
//
// Comportamiento:
//   - Roles sin restricción o viewer: no se consulta nada.
//   - Rol con alcance sin política: continúa con Scope nil; el autorizador lo deniega.
//   - 503 Service Unavailable si el almacén de políticas falla.
func ScopeMiddleware(scopes repository.ScopeRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !entity.IsScoped(GetRole(c)) {
			return c.Next()
		}
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id no encontrado en el token",
			})
		}
		scope, err := scopes.ScopeFor(c.UserContext(), userID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "SCOPE_CHECK_FAILED",
				Message: "no se pudo leer el alcance de ubicaciones, intente más tarde",
			})
		}
		if scope != nil {
			c.Locals(LocalScope, scope)
		}
		return c.Next()
	}
}
