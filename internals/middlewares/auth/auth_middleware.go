package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"civicdata_backend/internals/configs"
	userModel "civicdata_backend/internals/features/users/user/model"
	helper "civicdata_backend/internals/helpers"
)

// AuthMiddleware verifies the access token and loads the live user.
// Identity lands in Locals: user_id, user_name, user_role.
// 401 = identity not established, 403 = established but deactivated.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Not authenticated")
		}
		helper.SetRawAccessToken(c, tokenString)

		if configs.JWTSecret == "" {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT secret")
		}

		claims, err := helper.ParseToken(configs.JWTSecret, tokenString)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Authentication failed")
		}
		if t, _ := claims["type"].(string); t != "access" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Authentication failed")
		}

		userID, err := helper.UserIDFromClaims(claims)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Authentication failed")
		}

		// role comes from the DB row, not the token: revocations and
		// role changes apply on the next request
		var user userModel.UserModel
		if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Authentication failed")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		if !user.UserIsActive {
			return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
		}

		c.Locals("user_id", user.UserID.String())
		c.Locals("user_name", user.UserUsername)
		c.Locals("user_role", user.UserRole)

		return c.Next()
	}
}
