package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"civicdata_backend/internals/features/users/auth/controller"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	// credential endpoints get a tighter rate limit than the rest
	tokens := api.Group("/users/tokens", limiter.New(limiter.Config{
		Max: 20,
	}))
	tokens.Post("/generate/", ctrl.Login)
	tokens.Post("/refresh/", ctrl.Refresh)
	tokens.Post("/google/", ctrl.GoogleLogin)

	api.Post("/users/register/", ctrl.Register)
}
