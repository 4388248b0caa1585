package auth

import (
	"github.com/gofiber/fiber/v2"

	"civicdata_backend/internals/constants"
	helper "civicdata_backend/internals/helpers"
)

// RequireRoles allows only the listed roles. Runs after AuthMiddleware.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromLocals(c)
		if _, ok := allowed[role]; !ok {
			return helper.JsonError(c, fiber.StatusForbidden, "You are not authorized to perform this action")
		}
		return c.Next()
	}
}

// RequireAtLeast allows any role at least as privileged as min,
// per the rank table in constants.
func RequireAtLeast(min string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromLocals(c)
		if !constants.RoleAtLeast(role, min) {
			return helper.JsonError(c, fiber.StatusForbidden, "You are not authorized to perform this action")
		}
		return c.Next()
	}
}
