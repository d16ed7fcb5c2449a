package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "minhaigreja_backend/internals/helpers"
)

// RoleGate restringe a rota aos papéis informados. admin sempre passa.
func RoleGate(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromToken(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: papel ausente no token",
			})
		}
		if role == "admin" {
			return c.Next()
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Você não tem permissão para acessar este recurso",
		})
	}
}
