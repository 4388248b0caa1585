package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"civicdata_backend/internals/constants"
	"civicdata_backend/internals/features/political/achievements/controller"
	"civicdata_backend/internals/middlewares/auth"
)

func AchievementRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAchievementController(db)

	public := api.Group("/political-figures/achievements")
	public.Get("/get/list/", ctrl.GetList)
	public.Get("/get/detail/:id/", ctrl.GetDetail)

	protected := api.Group("/political-figures/achievements",
		auth.AuthMiddleware(db),
		auth.RequireAtLeast(constants.RoleAdmin),
	)
	protected.Post("/create/", ctrl.Create)
	protected.Patch("/update/:id/", ctrl.Update)
	protected.Delete("/delete/:id/", ctrl.Delete)
}
