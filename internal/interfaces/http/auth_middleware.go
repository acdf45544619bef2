package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ecopack/ecopack-api/internal/application/dto"
	"github.com/ecopack/ecopack-api/internal/domain/policy"
	"github.com/ecopack/ecopack-api/pkg/jwt"
)

// Locals keys para los claims del token en Fiber.
const (
	LocalUserID    = "user_id"
	LocalRole      = "role"
	LocalSuperuser = "superuser"
)

// AuthMiddleware valida el Bearer Token JWT y extrae userID, role y el flag de
// superusuario a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
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
		userID, role, superuser, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		c.Locals(LocalSuperuser, superuser)
		return c.Next()
	}
}

// RequireCapability devuelve un middleware que autoriza la ruta contra el
// predicado único de policy. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 si el contexto no trae rol (el AuthMiddleware debería haberlo puesto).
//   - 403 con mensaje visible si el rol no alcanza; el cliente redirige al
//     dashboard con ese mensaje.
func RequireCapability(cap policy.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "rol no encontrado en el token",
			})
		}
		if !policy.Allowed(role, IsSuperuser(c), cap) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "esta vista es solo para administradores",
			})
		}
		return c.Next()
	}
}

// GetUserID devuelve el userID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// IsSuperuser devuelve el flag de superusuario del contexto.
func IsSuperuser(c *fiber.Ctx) bool {
	v := c.Locals(LocalSuperuser)
	if v == nil {
		return false
	}
	b, _ := v.(bool)
	return b
}
